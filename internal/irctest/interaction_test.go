package irctest_test

import (
	"errors"
	"testing"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/internal/irctest"
	"github.com/stretchr/testify/assert"
)

func TestInteraction(t *testing.T) {
	conn := &irctest.Conn{}
	session := irc.New(irc.Config{Nick: "Test"}, conn)

	interaction := irctest.Interaction{
		Strict: true,
		Lines: []irctest.InteractionLine{
			{Server: "PING :first"},
			{Client: "PONG :first"},
			{Server: "PING second"},
			{Client: "PONG sec*"},
			{Server: "not a command", Err: irc.ErrUnknownCommand},
		},
	}

	interaction.Run(session, conn)

	assert.Nil(t, interaction.Failure)
	assert.Equal(t, []string{"PONG :first", "PONG second"}, interaction.Log)
}

func TestInteraction_Failures(t *testing.T) {
	table := []struct {
		Name  string
		Lines []irctest.InteractionLine
		Check func(t *testing.T, failure *irctest.InteractionFailure)
	}{
		{"Mismatch", []irctest.InteractionLine{
			{Server: "PING :first"},
			{Client: "PONG :second"},
		}, func(t *testing.T, failure *irctest.InteractionFailure) {
			assert.Equal(t, 1, failure.Index)
			assert.Equal(t, "PONG :first", failure.Result)
		}},
		{"Missing", []irctest.InteractionLine{
			{Client: "NICK Test"},
		}, func(t *testing.T, failure *irctest.InteractionFailure) {
			assert.True(t, failure.Missing)
		}},
		{"Callback", []irctest.InteractionLine{
			{Callback: func() error { return errors.New("nope") }},
		}, func(t *testing.T, failure *irctest.InteractionFailure) {
			assert.EqualError(t, failure.CBErr, "nope")
		}},
		{"HandleError", []irctest.InteractionLine{
			{Server: ":prefixonly"},
		}, func(t *testing.T, failure *irctest.InteractionFailure) {
			assert.ErrorIs(t, failure.Err, irc.ErrMalformedMessage)
		}},
	}

	for _, row := range table {
		t.Run(row.Name, func(t *testing.T) {
			conn := &irctest.Conn{}
			session := irc.New(irc.Config{}, conn)
			interaction := irctest.Interaction{Strict: true, Lines: row.Lines}

			interaction.Run(session, conn)

			if assert.NotNil(t, interaction.Failure) {
				row.Check(t, interaction.Failure)
			}
		})
	}
}

func TestConn(t *testing.T) {
	conn := &irctest.Conn{}

	_, _ = conn.Write([]byte("FIRST\r\nSEC"))
	_, _ = conn.Write([]byte("OND\r\n"))

	line, ok := conn.Next()
	assert.True(t, ok)
	assert.Equal(t, "FIRST", line)

	line, ok = conn.Next()
	assert.True(t, ok)
	assert.Equal(t, "SECOND", line)

	_, ok = conn.Next()
	assert.False(t, ok)
	assert.Equal(t, []string{"FIRST", "SECOND"}, conn.Lines())
}
