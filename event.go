package irc

import (
	"encoding/json"
	"time"

	"github.com/gissleh/ircsession/store"
)

// EventKind tells which fields of an Event are in use.
type EventKind int

// The event kinds. EventMessage is emitted for every dispatched message,
// before the more specific event if there is one.
const (
	EventMessage EventKind = iota
	EventPing
	EventPrivmsg
	EventNotice
	EventJoin
	EventPart
	EventQuit
	EventKick
	EventNick
	EventInvite
	EventTopic
	EventModeSet
	EventModeUnset
	EventModes
	EventIdle
	EventConnect
	EventDisconnect
)

var eventKindNames = [...]string{
	EventMessage:    "message",
	EventPing:       "ping",
	EventPrivmsg:    "privmsg",
	EventNotice:     "notice",
	EventJoin:       "join",
	EventPart:       "part",
	EventQuit:       "quit",
	EventKick:       "kick",
	EventNick:       "nick",
	EventInvite:     "invite",
	EventTopic:      "topic",
	EventModeSet:    "mode_set",
	EventModeUnset:  "mode_unset",
	EventModes:      "modes",
	EventIdle:       "idle",
	EventConnect:    "connect",
	EventDisconnect: "disconnect",
}

func (kind EventKind) String() string {
	if kind < 0 || int(kind) >= len(eventKindNames) {
		return "unknown"
	}

	return eventKindNames[kind]
}

// EventKinds lists every kind.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(eventKindNames))
	for i := range kinds {
		kinds[i] = EventKind(i)
	}

	return kinds
}

// An Event is a decoded message or a lifecycle change, handed to every
// Handler by value.
//
//	Kind            Prefix         Target    Subject    Text
//	privmsg/notice  sender         target               text
//	join            joiner         channel
//	part            parter         channel              reason
//	quit            quitter                             reason
//	kick            kicker         channel   kicked     reason
//	nick            old identity             new identity
//	invite          inviter        channel   invitee
//	topic           setter         channel              new topic (OldTopic)
//	mode_set/unset  setter         channel   argument   (Mode)
//	modes           setter         channel              mode string (Args)
type Event struct {
	Kind EventKind
	Time time.Time

	Prefix   string
	Target   string
	Subject  string
	Text     string
	OldTopic string
	Mode     rune
	Args     []string

	// Message is the dispatched message, only set on EventMessage.
	Message *Message

	// LastIdle is the time of the previous idle event, only set on EventIdle.
	LastIdle time.Time
}

func newEvent(kind EventKind) Event {
	return Event{Kind: kind, Time: time.Now()}
}

// Name gets the event name, which is the kind's name for everything but
// EventMessage. Those get "message." and the command.
func (event *Event) Name() string {
	if event.Kind == EventMessage && event.Message != nil {
		return "message." + event.Message.Command.String()
	}

	return event.Kind.String()
}

// Nick gets the nick part of the prefix.
func (event *Event) Nick() string {
	return store.NickOf(event.Prefix)
}

// MarshalJSON makes a JSON object from the event.
func (event *Event) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"kind": event.Kind.String(),
		"time": event.Time,
	}

	if event.Prefix != "" {
		data["prefix"] = event.Prefix
	}
	if event.Target != "" {
		data["target"] = event.Target
	}
	if event.Subject != "" {
		data["subject"] = event.Subject
	}
	if event.Text != "" {
		data["text"] = event.Text
	}
	if event.Kind == EventTopic {
		data["oldTopic"] = event.OldTopic
	}
	if event.Mode != 0 {
		data["mode"] = string(event.Mode)
	}
	if len(event.Args) > 0 {
		data["args"] = event.Args
	}
	if event.Message != nil {
		data["line"] = event.Message.String()
	}
	if !event.LastIdle.IsZero() {
		data["lastIdle"] = event.LastIdle
	}

	return json.Marshal(data)
}
