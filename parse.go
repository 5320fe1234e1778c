package irc

import (
	"fmt"
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
	"github.com/gissleh/ircsession/command"
)

// Limits are the capacities of each message field, in bytes. Zero values fall
// back on DefaultLimits.
type Limits struct {
	Prefix   int `json:"prefix" yaml:"prefix" toml:"prefix" validate:"gte=0"`
	Param    int `json:"param" yaml:"param" toml:"param" validate:"gte=0"`
	Trailing int `json:"trailing" yaml:"trailing" toml:"trailing" validate:"gte=0"`
	Params   int `json:"params" yaml:"params" toml:"params" validate:"gte=0"`
}

// DefaultLimits are used for every zero field of a Parser's Limits.
var DefaultLimits = Limits{
	Prefix:   255,
	Param:    255,
	Trailing: 511,
	Params:   15,
}

// WithDefaults returns the limits with zero values replaced by the defaults.
func (limits Limits) WithDefaults() Limits {
	if limits.Prefix == 0 {
		limits.Prefix = DefaultLimits.Prefix
	}
	if limits.Param == 0 {
		limits.Param = DefaultLimits.Param
	}
	if limits.Trailing == 0 {
		limits.Trailing = DefaultLimits.Trailing
	}
	if limits.Params == 0 {
		limits.Params = DefaultLimits.Params
	}

	return limits
}

// A Parser turns lines into messages. Fields longer than their limit are cut
// and parameters past the maximum count are dropped. That happens silently
// unless Strict is set, in which case Parse still returns the cut message
// along with ErrTruncated.
type Parser struct {
	Limits Limits
	Strict bool
}

// ParseMessage parses a line with the default, lenient parser.
func ParseMessage(line string) (Message, error) {
	return Parser{}.Parse(line)
}

// Parse parses an irc line with an optional prefix and trailing parameter. A
// trailing CR LF or bare LF is ignored, and so is a leading IRCv3 tag section.
func (parser Parser) Parse(line string) (Message, error) {
	msg := Message{}
	limits := parser.Limits.WithDefaults()
	truncated := false

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) == 0 {
		return msg, fmt.Errorf("%w: empty line", ErrMalformedMessage)
	}

	// Skip tags
	if line[0] == '@' {
		spaceIndex := strings.IndexByte(line, ' ')
		if spaceIndex == -1 {
			return msg, fmt.Errorf("%w: tags only", ErrMalformedMessage)
		}

		line = trimSpaces(line[spaceIndex:])
		if len(line) == 0 {
			return msg, fmt.Errorf("%w: tags only", ErrMalformedMessage)
		}
	}

	// Parse prefix
	if line[0] == ':' {
		spaceIndex := strings.IndexByte(line, ' ')
		if spaceIndex == -1 {
			return msg, fmt.Errorf("%w: prefix only", ErrMalformedMessage)
		}

		msg.Prefix, truncated = fit(line[1:spaceIndex], limits.Prefix, truncated)
		line = trimSpaces(line[spaceIndex:])
	}

	// Parse command
	token, rest := nextToken(line)
	if token == "" {
		return Message{}, fmt.Errorf("%w: missing command", ErrMalformedMessage)
	}

	cmd, err := command.Parse(token)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %q", err, token)
	}
	msg.Command = cmd

	// Parse params
	for rest != "" {
		if rest[0] == ':' {
			msg.Trailing, truncated = fit(rest[1:], limits.Trailing, truncated)
			msg.ForceTrailing = msg.Trailing == ""
			break
		}

		token, rest = nextToken(rest)
		if len(msg.Params) >= limits.Params {
			truncated = true
			continue
		}

		var param string
		param, truncated = fit(token, limits.Param, truncated)
		msg.Params = append(msg.Params, param)
	}

	if truncated && parser.Strict {
		return msg, ErrTruncated
	}

	return msg, nil
}

func nextToken(s string) (token, rest string) {
	spaceIndex := strings.IndexByte(s, ' ')
	if spaceIndex == -1 {
		return s, ""
	}

	return s[:spaceIndex], trimSpaces(s[spaceIndex:])
}

func trimSpaces(s string) string {
	return strings.TrimLeft(s, " ")
}

func fit(s string, limit int, truncated bool) (string, bool) {
	if len(s) <= limit {
		return s, truncated
	}

	return ircmsg.TruncateUTF8Safe(s, limit), true
}
