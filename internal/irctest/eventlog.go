package irctest

import irc "github.com/gissleh/ircsession"

type EventLog struct {
	events []irc.Event
}

func (l *EventLog) First(kind irc.EventKind) *irc.Event {
	for i := range l.events {
		if l.events[i].Kind == kind {
			return &l.events[i]
		}
	}

	return nil
}

func (l *EventLog) Last(kind irc.EventKind) *irc.Event {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Kind == kind {
			return &l.events[i]
		}
	}

	return nil
}

func (l *EventLog) Count(kind irc.EventKind) int {
	count := 0
	for i := range l.events {
		if l.events[i].Kind == kind {
			count++
		}
	}

	return count
}

// Kinds lists the kinds of the logged events, leaving out EventMessage.
func (l *EventLog) Kinds() []irc.EventKind {
	kinds := make([]irc.EventKind, 0, len(l.events))
	for i := range l.events {
		if l.events[i].Kind != irc.EventMessage {
			kinds = append(kinds, l.events[i].Kind)
		}
	}

	return kinds
}

func (l *EventLog) Reset() {
	l.events = l.events[:0]
}

func (l *EventLog) HandleEvent(event irc.Event) bool {
	l.events = append(l.events, event)
	return false
}

func (l *EventLog) All(kind irc.EventKind) []irc.Event {
	events := make([]irc.Event, 0, 4)
	for i := range l.events {
		if l.events[i].Kind == kind {
			events = append(events, l.events[i])
		}
	}

	return events
}
