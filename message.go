package irc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gissleh/ircsession/command"
	"github.com/gissleh/ircsession/store"
)

// ErrMalformedMessage is returned when a line has no command, or when a message
// to be sent has parameters that can't be encoded.
var ErrMalformedMessage = errors.New("irc: malformed message")

// ErrTruncated is returned by a strict Parser when a field didn't fit within
// its limit or there were too many parameters.
var ErrTruncated = errors.New("irc: message truncated")

// ErrUnknownCommand is returned when the command token isn't in the registry.
var ErrUnknownCommand = command.ErrUnknownCommand

// A Message is a single IRC line. Params holds the middle parameters, none of
// which may contain a space or start with ':'. Trailing is the optional final
// parameter that may contain spaces.
type Message struct {
	Prefix   string
	Command  command.Command
	Params   []string
	Trailing string

	// ForceTrailing makes String render the trailing parameter even when it's
	// empty. The parser sets it when the line ends with an empty trailing ':'.
	ForceTrailing bool
}

// NewMessage creates a message without prefix or trailing parameter.
func NewMessage(cmd command.Command, params ...string) Message {
	return Message{Command: cmd, Params: params}
}

// Param gets the parameter at the index, or an empty string if there isn't one.
func (msg *Message) Param(index int) string {
	if index < 0 || index >= len(msg.Params) {
		return ""
	}

	return msg.Params[index]
}

// Arg gets the parameter at the index, counting the trailing parameter as the
// one after the last middle parameter. This is useful since servers differ on
// which parameters they send as trailing.
func (msg *Message) Arg(index int) string {
	if index == len(msg.Params) {
		return msg.Trailing
	}

	return msg.Param(index)
}

// Args gets the middle parameters followed by the trailing one, if present.
func (msg *Message) Args() []string {
	args := make([]string, len(msg.Params), len(msg.Params)+1)
	copy(args, msg.Params)
	if msg.Trailing != "" || msg.ForceTrailing {
		args = append(args, msg.Trailing)
	}

	return args
}

// Nick gets the nick part of the prefix.
func (msg *Message) Nick() string {
	return store.NickOf(msg.Prefix)
}

// Copy returns a copy that shares nothing with the original.
func (msg *Message) Copy() Message {
	msgCopy := *msg
	msgCopy.Params = append([]string(nil), msg.Params...)

	return msgCopy
}

// String serializes the message without the line ending. The prefix is left out
// if empty, and the trailing parameter is left out if empty unless
// ForceTrailing is set.
func (msg *Message) String() string {
	var builder strings.Builder
	builder.Grow(64)

	if msg.Prefix != "" {
		builder.WriteByte(':')
		builder.WriteString(msg.Prefix)
		builder.WriteByte(' ')
	}

	builder.WriteString(msg.Command.String())

	for _, param := range msg.Params {
		builder.WriteByte(' ')
		builder.WriteString(param)
	}

	if msg.Trailing != "" || msg.ForceTrailing {
		builder.WriteString(" :")
		builder.WriteString(msg.Trailing)
	}

	return builder.String()
}

// Size returns the byte length of the serialized message, not counting the
// line ending. The ~512 byte wire limit is up to the caller.
func (msg *Message) Size() int {
	size := len(msg.Command.String())
	if msg.Prefix != "" {
		size += len(msg.Prefix) + 2
	}
	for _, param := range msg.Params {
		size += len(param) + 1
	}
	if msg.Trailing != "" || msg.ForceTrailing {
		size += len(msg.Trailing) + 2
	}

	return size
}

// Validate checks that the message can be serialized and parsed back to the
// same message.
func (msg *Message) Validate() error {
	if !msg.Command.Known() {
		return fmt.Errorf("%w: command %d", ErrUnknownCommand, int(msg.Command))
	}
	if strings.ContainsAny(msg.Prefix, " \r\n\x00") {
		return fmt.Errorf("%w: invalid prefix %q", ErrMalformedMessage, msg.Prefix)
	}

	for i, param := range msg.Params {
		if param == "" || param[0] == ':' || strings.ContainsAny(param, " \r\n\x00") {
			return fmt.Errorf("%w: invalid parameter %d %q", ErrMalformedMessage, i, param)
		}
	}

	if strings.ContainsAny(msg.Trailing, "\r\n\x00") {
		return fmt.Errorf("%w: invalid trailing parameter", ErrMalformedMessage)
	}

	return nil
}
