// Package command maps IRC command tokens and three-digit numeric replies to
// a closed enumeration. All tables in this package are built once at init and
// never modified afterwards, so they are safe to share between sessions.
package command

import (
	"errors"
	"strconv"
)

// ErrUnknownCommand is returned by Parse when the token is neither a known
// command nor a known three-digit numeric.
var ErrUnknownCommand = errors.New("irc: unknown command")

// A Command is either a numeric reply (its value is the numeric itself, 1-999)
// or a named command (values from 1000 and up).
type Command int

// Unknown is the zero value and never produced by Parse.
const Unknown Command = 0

// Named commands.
const (
	Admin Command = iota + 1000
	Account
	Authenticate
	Away
	Cap
	Chghost
	Error
	Info
	Invite
	Ison
	Join
	Kick
	Kill
	Links
	List
	Lusers
	Mode
	Motd
	Names
	Nick
	Notice
	Oper
	Part
	Pass
	Ping
	Pong
	Privmsg
	Quit
	Stats
	Tagmsg
	Time
	Topic
	User
	Userhost
	Version
	Wallops
	Who
	Whois
	Whowas

	lastNamed
)

var namedTokens = map[Command]string{
	Admin:        "ADMIN",
	Account:      "ACCOUNT",
	Authenticate: "AUTHENTICATE",
	Away:         "AWAY",
	Cap:          "CAP",
	Chghost:      "CHGHOST",
	Error:        "ERROR",
	Info:         "INFO",
	Invite:       "INVITE",
	Ison:         "ISON",
	Join:         "JOIN",
	Kick:         "KICK",
	Kill:         "KILL",
	Links:        "LINKS",
	List:         "LIST",
	Lusers:       "LUSERS",
	Mode:         "MODE",
	Motd:         "MOTD",
	Names:        "NAMES",
	Nick:         "NICK",
	Notice:       "NOTICE",
	Oper:         "OPER",
	Part:         "PART",
	Pass:         "PASS",
	Ping:         "PING",
	Pong:         "PONG",
	Privmsg:      "PRIVMSG",
	Quit:         "QUIT",
	Stats:        "STATS",
	Tagmsg:       "TAGMSG",
	Time:         "TIME",
	Topic:        "TOPIC",
	User:         "USER",
	Userhost:     "USERHOST",
	Version:      "VERSION",
	Wallops:      "WALLOPS",
	Who:          "WHO",
	Whois:        "WHOIS",
	Whowas:       "WHOWAS",
}

var tokenCommands = make(map[string]Command, len(namedTokens))

func init() {
	for cmd, token := range namedTokens {
		tokenCommands[token] = cmd
	}
}

// String renders the wire token. Numerics are always three zero-padded digits.
func (cmd Command) String() string {
	if IsNumeric(cmd) {
		s := strconv.Itoa(int(cmd))
		for len(s) < 3 {
			s = "0" + s
		}

		return s
	}
	if token, ok := namedTokens[cmd]; ok {
		return token
	}

	return "UNKNOWN"
}

// Name gets the symbolic name, e.g. RPL_WELCOME for 001 and PRIVMSG for PRIVMSG.
// Numerics without a registered name are rendered like String.
func (cmd Command) Name() string {
	if IsNumeric(cmd) {
		if name, ok := numericNames[cmd]; ok {
			return name
		}
	}

	return cmd.String()
}

// Known returns true if the command is part of the registry.
func (cmd Command) Known() bool {
	if IsNumeric(cmd) {
		_, ok := numericNames[cmd]
		return ok
	}

	_, ok := namedTokens[cmd]
	return ok
}

// IsNumeric returns true if the command is in the numeric range.
func IsNumeric(cmd Command) bool {
	return cmd >= 1 && cmd <= 999
}

// Parse resolves a wire token. Named commands must match exactly, including
// case. Numerics must be exactly three ASCII digits and refer to a known reply.
func Parse(token string) (Command, error) {
	if len(token) == 3 && isDigit(token[0]) && isDigit(token[1]) && isDigit(token[2]) {
		cmd := Command(int(token[0]-'0')*100 + int(token[1]-'0')*10 + int(token[2]-'0'))
		if _, ok := numericNames[cmd]; ok {
			return cmd, nil
		}

		return Unknown, ErrUnknownCommand
	}

	if cmd, ok := tokenCommands[token]; ok {
		return cmd, nil
	}

	return Unknown, ErrUnknownCommand
}

// All returns every command in the registry, named commands first.
func All() []Command {
	result := make([]Command, 0, len(namedTokens)+len(numericNames))
	for cmd := Admin; cmd < lastNamed; cmd++ {
		result = append(result, cmd)
	}
	for n := Command(1); n <= 999; n++ {
		if _, ok := numericNames[n]; ok {
			result = append(result, n)
		}
	}

	return result
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
