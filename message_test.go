package irc_test

import (
	"strings"
	"testing"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/command"
	"github.com/gissleh/ircsession/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageTestRow struct {
	Data     string
	Prefix   string
	Command  command.Command
	Params   []string
	Trailing string
}

var messageTestTable = []messageTestRow{
	{"PRIVMSG #chan :hello world", "", command.Privmsg, []string{"#chan"}, "hello world"},
	{":a!b@c PRIVMSG #chan :hi", "a!b@c", command.Privmsg, []string{"#chan"}, "hi"},
	{":test.server PING Test", "test.server", command.Ping, []string{"Test"}, ""},
	{":test.server PING :Test", "test.server", command.Ping, nil, "Test"},
	{"PING", "", command.Ping, nil, ""},
	{":srv 433 * Test :Nickname is already in use\r\n", "srv", command.ErrNicknameInUse, []string{"*", "Test"}, "Nickname is already in use"},
	{":srv   005  Test   CHANTYPES=#   :are supported\n", "srv", command.RplISupport, []string{"Test", "CHANTYPES=#"}, "are supported"},
	{":x MODE #chan +o-v+b nick1 nick2 *!*@host", "x", command.Mode, []string{"#chan", "+o-v+b", "nick1", "nick2", "*!*@host"}, ""},
	{":x PRIVMSG #chan ::-) :two colons", "x", command.Privmsg, []string{"#chan"}, ":-) :two colons"},
	{"@time=2019-01-01T00:00:00Z :x QUIT :bye", "x", command.Quit, nil, "bye"},
}

func TestParseMessage(t *testing.T) {
	for _, row := range messageTestTable {
		t.Run(row.Data, func(t *testing.T) {
			msg, err := irc.ParseMessage(row.Data)
			require.NoError(t, err)

			assert.Equal(t, row.Prefix, msg.Prefix, "prefix")
			assert.Equal(t, row.Command, msg.Command, "command")
			assert.Equal(t, row.Params, msg.Params, "params")
			assert.Equal(t, row.Trailing, msg.Trailing, "trailing")
		})
	}
}

func TestParseMessage_Errors(t *testing.T) {
	table := []struct {
		Data string
		Err  error
	}{
		{"", irc.ErrMalformedMessage},
		{"\r\n", irc.ErrMalformedMessage},
		{":onlyprefix", irc.ErrMalformedMessage},
		{":prefix   ", irc.ErrMalformedMessage},
		{"@tags=only", irc.ErrMalformedMessage},
		{"abc #chan", irc.ErrUnknownCommand},
		{":a!b@c privmsg #chan :hi", irc.ErrUnknownCommand},
		{"999 Test :hello", irc.ErrUnknownCommand},
	}

	for _, row := range table {
		t.Run(row.Data, func(t *testing.T) {
			_, err := irc.ParseMessage(row.Data)
			assert.ErrorIs(t, err, row.Err)
		})
	}
}

func TestParseMessage_TrailingStopsScanning(t *testing.T) {
	msg, err := irc.ParseMessage("KICK #chan :victim reason here")
	require.NoError(t, err)
	assert.Equal(t, []string{"#chan"}, msg.Params)
	assert.Equal(t, "victim reason here", msg.Trailing)
}

func TestParser_Truncation(t *testing.T) {
	limits := irc.Limits{Prefix: 5, Param: 4, Trailing: 6, Params: 2}
	line := ":prefix.example PRIVMSG #channel second third :trailing text"

	lenient := irc.Parser{Limits: limits}
	msg, err := lenient.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, "prefi", msg.Prefix)
	assert.Equal(t, []string{"#cha", "seco"}, msg.Params)
	assert.Equal(t, "traili", msg.Trailing)

	strict := irc.Parser{Limits: limits, Strict: true}
	strictMsg, err := strict.Parse(line)
	assert.ErrorIs(t, err, irc.ErrTruncated)
	assert.Equal(t, msg, strictMsg)

	// Nothing to report if everything fits.
	_, err = strict.Parse("PING :hi")
	assert.NoError(t, err)
}

func TestParser_TooManyParams(t *testing.T) {
	line := "MODE #chan +ooooooooooooooooo" + strings.Repeat(" nick", 17)

	msg, err := irc.ParseMessage(line)
	require.NoError(t, err)
	assert.Len(t, msg.Params, irc.DefaultLimits.Params)

	_, err = irc.Parser{Strict: true}.Parse(line)
	assert.ErrorIs(t, err, irc.ErrTruncated)
}

func TestParser_TruncationKeepsUTF8(t *testing.T) {
	msg, err := irc.Parser{Limits: irc.Limits{Trailing: 4}}.Parse("PRIVMSG #chan :ææææ")
	require.NoError(t, err)
	assert.Equal(t, "ææ", msg.Trailing)
}

func TestMessage_String(t *testing.T) {
	table := []struct {
		Message irc.Message
		Line    string
	}{
		{irc.Message{Command: command.Privmsg, Params: []string{"#chan"}, Trailing: "hello world"}, "PRIVMSG #chan :hello world"},
		{irc.Message{Prefix: "a!b@c", Command: command.Join, Params: []string{"#chan"}}, ":a!b@c JOIN #chan"},
		{irc.Message{Command: command.ErrNicknameInUse, Params: []string{"*", "Test"}}, "433 * Test"},
		{irc.Message{Command: command.Part, Params: []string{"#chan"}, Trailing: ""}, "PART #chan"},
		{irc.Message{Command: command.Part, Params: []string{"#chan"}, ForceTrailing: true}, "PART #chan :"},
		{irc.NewMessage(command.Pong, "server"), "PONG server"},
	}

	for _, row := range table {
		t.Run(row.Line, func(t *testing.T) {
			assert.Equal(t, row.Line, row.Message.String())
			assert.Equal(t, len(row.Line), row.Message.Size())
		})
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	table := []irc.Message{
		{Command: command.Privmsg, Params: []string{"#chan"}, Trailing: "hello :) world"},
		{Prefix: "nick!user@host", Command: command.Mode, Params: []string{"#chan", "+ov", "a", "b"}},
		{Prefix: "server", Command: command.RplNamReply, Params: []string{"me", "=", "#chan"}, Trailing: "@a +b c"},
		{Command: command.Quit},
		{Command: command.Topic, Params: []string{"#chan"}, ForceTrailing: true},
	}

	for _, msg := range table {
		t.Run(msg.String(), func(t *testing.T) {
			require.NoError(t, msg.Validate())

			parsed, err := irc.ParseMessage(msg.String())
			require.NoError(t, err)
			assert.Equal(t, msg, parsed)
		})
	}
}

func TestMessage_Validate(t *testing.T) {
	table := []irc.Message{
		{Command: command.Privmsg, Params: []string{"#chan", "two words"}},
		{Command: command.Privmsg, Params: []string{":colon"}},
		{Command: command.Privmsg, Params: []string{""}},
		{Command: command.Privmsg, Params: []string{"#chan"}, Trailing: "line\r\nbreak"},
		{Prefix: "has space", Command: command.Ping},
	}

	for _, msg := range table {
		t.Run(msg.String(), func(t *testing.T) {
			assert.ErrorIs(t, msg.Validate(), irc.ErrMalformedMessage)
		})
	}

	unknown := irc.Message{Command: command.Command(998)}
	assert.ErrorIs(t, unknown.Validate(), irc.ErrUnknownCommand)
}

func TestMessage_Helpers(t *testing.T) {
	msg, err := irc.ParseMessage(":Nick!user@host KICK #chan Victim :reason")
	require.NoError(t, err)

	assert.Equal(t, "Nick", msg.Nick())

	// Nicks are taken the same way as the store takes them.
	for _, prefix := range []string{"Nick!user@host", "nick@host", "irc.example.net"} {
		msg := irc.Message{Prefix: prefix}
		user := store.User{Identity: prefix}
		assert.Equal(t, user.Nick(), msg.Nick(), prefix)
	}
	assert.Equal(t, "nick@host", (&irc.Message{Prefix: "nick@host"}).Nick())
	assert.Equal(t, "Victim", msg.Param(1))
	assert.Equal(t, "", msg.Param(2))
	assert.Equal(t, "", msg.Param(-1))
	assert.Equal(t, "reason", msg.Arg(2))
	assert.Equal(t, "", msg.Arg(3))
	assert.Equal(t, []string{"#chan", "Victim", "reason"}, msg.Args())

	join, err := irc.ParseMessage(":Nick!user@host JOIN :#chan")
	require.NoError(t, err)
	assert.Equal(t, "#chan", join.Arg(0))
	assert.Equal(t, []string{"#chan"}, join.Args())

	msgCopy := msg.Copy()
	msgCopy.Params[0] = "#other"
	assert.Equal(t, "#chan", msg.Params[0])
}
