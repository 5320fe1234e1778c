package command_test

import (
	"testing"

	"github.com/gissleh/ircsession/command"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	table := []struct {
		Token   string
		Command command.Command
		OK      bool
	}{
		{"PRIVMSG", command.Privmsg, true},
		{"PING", command.Ping, true},
		{"MODE", command.Mode, true},
		{"433", command.ErrNicknameInUse, true},
		{"001", command.RplWelcome, true},
		{"005", command.RplISupport, true},
		{"privmsg", command.Unknown, false},
		{"abc", command.Unknown, false},
		{"", command.Unknown, false},
		{"43", command.Unknown, false},
		{"0433", command.Unknown, false},
		{"+43", command.Unknown, false},
		{"-43", command.Unknown, false},
		{"4a3", command.Unknown, false},
		{"999", command.Unknown, false},
		{" 433", command.Unknown, false},
	}

	for _, row := range table {
		t.Run(row.Token, func(t *testing.T) {
			cmd, err := command.Parse(row.Token)
			if row.OK {
				assert.NoError(t, err)
				assert.Equal(t, row.Command, cmd)
			} else {
				assert.ErrorIs(t, err, command.ErrUnknownCommand)
				assert.Equal(t, command.Unknown, cmd)
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "433", command.ErrNicknameInUse.String())
	assert.Equal(t, "001", command.RplWelcome.String())
	assert.Equal(t, "010", command.RplBounce.String())
	assert.Equal(t, "PRIVMSG", command.Privmsg.String())
	assert.Equal(t, "RPL_WELCOME", command.RplWelcome.Name())
	assert.Equal(t, "NOTICE", command.Notice.Name())
}

func TestRoundTrip(t *testing.T) {
	for _, cmd := range command.All() {
		t.Run(cmd.Name(), func(t *testing.T) {
			assert.True(t, cmd.Known())

			parsed, err := command.Parse(cmd.String())
			assert.NoError(t, err)
			assert.Equal(t, cmd, parsed)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, command.IsNumeric(command.RplNamReply))
	assert.False(t, command.IsNumeric(command.Join))
	assert.False(t, command.IsNumeric(command.Unknown))
}
