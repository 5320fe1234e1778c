package handlers

import (
	"strings"
	"time"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/ircutil"
)

// DefaultVersion is the VERSION reply when CTCP.Version is empty.
const DefaultVersion = "github.com/gissleh/ircsession v1.0"

// CTCP answers the widely used CTCP queries (CLIENTINFO, VERSION, TIME, and
// PING) with notices. It does not implement DCC, and it leaves ACTION and
// unknown queries to the handlers after it.
//
// Add it with session.AddHandler(&handlers.CTCP{Session: session}).
type CTCP struct {
	Session *irc.Session

	// Version is the VERSION reply.
	Version string
	// ClientInfo lists extra verbs for the CLIENTINFO reply, for handlers
	// added after this one that answer their own queries.
	ClientInfo []string
	// Now defaults to time.Now.
	Now func() time.Time
}

// HandleEvent implements irc.Handler. It stops the event if it answered it.
func (ctcp *CTCP) HandleEvent(event irc.Event) bool {
	if event.Kind != irc.EventPrivmsg {
		return false
	}

	verb, args, ok := ircutil.ParseCTCP(event.Text)
	if !ok {
		return false
	}

	var reply string
	switch verb {
	case "CLIENTINFO":
		reply = strings.Join(append([]string{"ACTION", "CLIENTINFO", "PING", "TIME", "VERSION"}, ctcp.ClientInfo...), " ")
	case "VERSION":
		reply = ctcp.Version
		if reply == "" {
			reply = DefaultVersion
		}
	case "TIME":
		now := time.Now
		if ctcp.Now != nil {
			now = ctcp.Now
		}

		reply = now().Local().Format(time.RFC1123)
	case "PING":
		reply = args
	default:
		return false
	}

	// Replies go through the session's filters, and a refused reply is
	// still an answered query.
	_ = ctcp.Session.Notice(event.Nick(), ircutil.FormatCTCP(verb, reply))
	return true
}
