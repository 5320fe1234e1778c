package irc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ergochat/irc-go/ircutils"
	"github.com/gissleh/ircsession/command"
	"github.com/gissleh/ircsession/ircutil"
)

// Send passes the message through the send filters and writes it. Filters
// work on a copy, so the caller's message is never changed.
func (session *Session) Send(msg Message) error {
	msg = msg.Copy()

	for _, filter := range session.filters {
		if err := filter(&msg); err != nil {
			session.debugln("send aborted:", msg.String(), err)
			return fmt.Errorf("%w: %w", ErrSendAborted, err)
		}
	}

	if err := msg.Validate(); err != nil {
		return err
	}
	if session.writer == nil {
		return ErrNoWriter
	}

	_, err := io.WriteString(session.writer, msg.String()+"\r\n")
	return err
}

// Privmsg sends a message to the target. Line breaks are turned into spaces,
// and the text is cut into several messages if it's too long for one.
func (session *Session) Privmsg(target, text string) error {
	return session.sendText(command.Privmsg, target, text, false)
}

// Notice is like Privmsg, but sends notices.
func (session *Session) Notice(target, text string) error {
	return session.sendText(command.Notice, target, text, false)
}

// Action is like Privmsg, but sends a CTCP ACTION (/me).
func (session *Session) Action(target, text string) error {
	return session.sendText(command.Privmsg, target, text, true)
}

func (session *Session) sendText(cmd command.Command, target, text string, action bool) error {
	overhead := session.MessageOverhead(target, action)
	if overhead >= ircutil.LineLimit {
		return fmt.Errorf("%w: %q", ErrNoRoom, target)
	}

	text = ircutils.SanitizeText(text, len(text)*2)

	for _, cut := range ircutil.CutMessage(text, overhead) {
		if action {
			cut = ircutil.FormatCTCP("ACTION", cut)
		}

		err := session.Send(Message{
			Command:       cmd,
			Params:        []string{target},
			Trailing:      cut,
			ForceTrailing: true,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// MessageOverhead returns the overhead on a privmsg to the target. If `action`
// is true, it will also count the extra overhead of a CTCP ACTION.
func (session *Session) MessageOverhead(target string, action bool) int {
	// Return a really safe estimate if user or host is missing.
	if session.user == "" || session.host == "" {
		return 200 + len(target)
	}

	return ircutil.MessageOverhead(session.nick, session.user, session.host, target, action)
}

// Join joins one or more channels without a key.
func (session *Session) Join(channels ...string) error {
	return session.Send(NewMessage(command.Join, strings.Join(channels, ",")))
}

// Part leaves the channel. The reason may be empty.
func (session *Session) Part(channel, reason string) error {
	return session.Send(Message{Command: command.Part, Params: []string{channel}, Trailing: reason})
}

// Quit asks the server to end the connection. The reason may be empty.
func (session *Session) Quit(reason string) error {
	return session.Send(Message{Command: command.Quit, Trailing: reason})
}

// SetNick asks for a new nick. The session's nick changes when the server
// confirms it.
func (session *Session) SetNick(nick string) error {
	return session.Send(NewMessage(command.Nick, nick))
}

// SetTopic changes the channel topic.
func (session *Session) SetTopic(channel, topic string) error {
	return session.Send(Message{Command: command.Topic, Params: []string{channel}, Trailing: topic, ForceTrailing: true})
}

// Mode sends a mode change, e.g. Mode("#Channel", "+o-v", "Nick1", "Nick2").
func (session *Session) Mode(target, modes string, args ...string) error {
	return session.Send(NewMessage(command.Mode, append([]string{target, modes}, args...)...))
}
