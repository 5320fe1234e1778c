package handlers

import (
	"errors"
	"fmt"
	"strings"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/ircutil"
)

// ErrUnknownInput is returned by Input for commands it does not know.
var ErrUnknownInput = errors.New("unknown input command")

// ErrInputUsage is returned by Input when a command is missing arguments. The
// usage text is wrapped around it.
var ErrInputUsage = errors.New("usage")

// Input handles a line typed by a user, like "/msg Nick hello". Text without a
// leading slash is refused since Input has no notion of a current target.
func Input(session *irc.Session, line string) error {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, "/") {
		return fmt.Errorf("%w: %q", ErrUnknownInput, line)
	}

	name, text := ircutil.ParseArgAndText(line[1:])
	name = strings.ToLower(name)

	switch name {
	// /msg sends a message to a target specified before the message.
	case "msg", "notice":
		targetName, text := ircutil.ParseArgAndText(text)
		if targetName == "" || text == "" {
			return usage("/" + name + " <target> <text...>")
		}

		if name == "notice" {
			return session.Notice(targetName, text)
		}

		return session.Privmsg(targetName, text)

	// /describe sends an action to a target specified before the message, like /msg.
	case "me", "describe", "action":
		targetName, text := ircutil.ParseArgAndText(text)
		if targetName == "" || text == "" {
			return usage("/" + name + " <target> <text...>")
		}

		return session.Action(targetName, text)

	case "join":
		if text == "" {
			return usage("/join <channel[,channel...]>")
		}

		return session.Join(strings.Split(strings.Fields(text)[0], ",")...)

	case "part":
		channelName, reason := ircutil.ParseArgAndText(text)
		if channelName == "" {
			return usage("/part <channel> [reason...]")
		}

		return session.Part(channelName, reason)

	case "quit":
		return session.Quit(text)

	case "nick":
		if text == "" {
			return usage("/nick <nick>")
		}

		return session.SetNick(strings.Fields(text)[0])

	case "topic":
		channelName, topic := ircutil.ParseArgAndText(text)
		if channelName == "" {
			return usage("/topic <channel> <topic...>")
		}

		return session.SetTopic(channelName, topic)

	case "mode", "m":
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return usage("/mode <target> <modes> [args...]")
		}

		return session.Mode(fields[0], fields[1], fields[2:]...)

	// /raw sends the rest of the line as it is, after parsing it so that the
	// send filters see a proper message.
	case "raw", "quote":
		if text == "" {
			return usage("/raw <line...>")
		}

		msg, err := session.Parser().Parse(text)
		if err != nil {
			return err
		}

		return session.Send(msg)
	}

	return fmt.Errorf("%w: /%s", ErrUnknownInput, name)
}

func usage(text string) error {
	return fmt.Errorf("%w: %s", ErrInputUsage, text)
}
