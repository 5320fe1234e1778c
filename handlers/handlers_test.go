package handlers_test

import (
	"strings"
	"testing"
	"time"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/handlers"
	"github.com/gissleh/ircsession/internal/irctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*irc.Session, *irctest.Conn) {
	conn := &irctest.Conn{}
	session := irc.New(irc.Config{Nick: "Me"}, conn)

	require.NoError(t, session.Connected())
	require.NoError(t, session.HandleLine(":server 001 Me :Welcome"))
	conn.Drain()

	return session, conn
}

func TestCTCP(t *testing.T) {
	session, conn := newSession(t)
	logger := &irctest.EventLog{}
	session.AddHandler(&handlers.CTCP{
		Session: session,
		Version: "test 1.0",
		Now:     func() time.Time { return time.Date(2018, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	session.AddHandler(logger)

	table := []struct {
		Line  string
		Reply string
	}{
		{":Other!o@host PRIVMSG Me :\x01VERSION\x01", "NOTICE Other :\x01VERSION test 1.0\x01"},
		{":Other!o@host PRIVMSG Me :\x01PING 1525176000\x01", "NOTICE Other :\x01PING 1525176000\x01"},
		{":Other!o@host PRIVMSG Me :\x01CLIENTINFO\x01", "NOTICE Other :\x01CLIENTINFO ACTION CLIENTINFO PING TIME VERSION\x01"},
		{":Other!o@host PRIVMSG Me :\x01TIME\x01", "NOTICE Other :\x01TIME " + time.Date(2018, 5, 1, 12, 0, 0, 0, time.UTC).Local().Format(time.RFC1123) + "\x01"},
	}

	for _, row := range table {
		t.Run(row.Reply, func(t *testing.T) {
			require.NoError(t, session.HandleLine(row.Line))
			assert.Equal(t, []string{row.Reply}, conn.Drain())
		})
	}

	// Answered queries stop there.
	assert.Equal(t, 0, logger.Count(irc.EventPrivmsg))

	require.NoError(t, session.HandleLine(":Other!o@host PRIVMSG #Chan :\x01ACTION waves\x01"))
	require.NoError(t, session.HandleLine(":Other!o@host PRIVMSG Me :\x01DCC SEND x\x01"))
	require.NoError(t, session.HandleLine(":Other!o@host PRIVMSG Me :hello"))
	assert.Empty(t, conn.Drain())
	assert.Equal(t, 3, logger.Count(irc.EventPrivmsg))
}

func TestCTCP_DefaultVersion(t *testing.T) {
	session, conn := newSession(t)
	session.AddHandler(&handlers.CTCP{Session: session})

	require.NoError(t, session.HandleLine(":Other!o@host PRIVMSG Me :\x01version\x01"))
	assert.Equal(t, []string{"NOTICE Other :\x01VERSION " + handlers.DefaultVersion + "\x01"}, conn.Drain())
}

func TestInput(t *testing.T) {
	table := []struct {
		Input string
		Lines []string
	}{
		{"/msg #Chan hello there", []string{"PRIVMSG #Chan :hello there"}},
		{"/notice Someone  psst", []string{"NOTICE Someone :psst"}},
		{"/me #Chan waves", []string{"PRIVMSG #Chan :\x01ACTION waves\x01"}},
		{"/describe Someone waves", []string{"PRIVMSG Someone :\x01ACTION waves\x01"}},
		{"/join #a,#b", []string{"JOIN #a,#b"}},
		{"/part #a", []string{"PART #a"}},
		{"/part #a see you", []string{"PART #a :see you"}},
		{"/quit", []string{"QUIT"}},
		{"/QUIT going home", []string{"QUIT :going home"}},
		{"/nick Other", []string{"NICK Other"}},
		{"/topic #a New topic", []string{"TOPIC #a :New topic"}},
		{"/topic #a", []string{"TOPIC #a :"}},
		{"/mode #a +ov One Two", []string{"MODE #a +ov One Two"}},
		{"/raw WHOIS Someone", []string{"WHOIS Someone"}},
	}

	for _, row := range table {
		t.Run(row.Input, func(t *testing.T) {
			session, conn := newSession(t)

			require.NoError(t, handlers.Input(session, row.Input))
			assert.Equal(t, row.Lines, conn.Drain())
		})
	}
}

func TestInput_Errors(t *testing.T) {
	table := []struct {
		Input string
		Err   error
	}{
		{"hello", handlers.ErrUnknownInput},
		{"/dance", handlers.ErrUnknownInput},
		{"/msg #Chan", handlers.ErrInputUsage},
		{"/me", handlers.ErrInputUsage},
		{"/join", handlers.ErrInputUsage},
		{"/part", handlers.ErrInputUsage},
		{"/nick", handlers.ErrInputUsage},
		{"/mode #a", handlers.ErrInputUsage},
		{"/raw", handlers.ErrInputUsage},
		{"/raw NOTACOMMAND x", irc.ErrUnknownCommand},
		{"/msg #" + strings.Repeat("x", 489) + " hi", irc.ErrNoRoom},
	}

	for _, row := range table {
		t.Run(row.Input, func(t *testing.T) {
			session, conn := newSession(t)

			assert.ErrorIs(t, handlers.Input(session, row.Input), row.Err)
			assert.Empty(t, conn.Drain())
		})
	}
}
