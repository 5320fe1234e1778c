package irc

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/ergochat/irc-go/ircmsg"
	"github.com/gissleh/ircsession/command"
	"github.com/gissleh/ircsession/modes"
)

// HandleMessage updates the session with the message and emits the events it
// causes. Every message first gets an EventMessage, including commands the
// session does nothing else with.
//
// Messages that don't match the channels and users the session knows of are
// not errors, they just don't change anything. The returned error is from
// writing replies, e.g. the PONG to a PING.
func (session *Session) HandleMessage(msg Message) error {
	session.lastReceived = time.Now()
	session.pingTime = time.Time{}

	event := newEvent(EventMessage)
	event.Prefix = msg.Prefix
	msgCopy := msg.Copy()
	event.Message = &msgCopy
	session.emit(event)

	switch msg.Command {
	case command.Ping:
		return session.handlePing(&msg)
	case command.Privmsg, command.Notice:
		session.handleText(&msg)
	case command.Join:
		session.handleJoin(&msg)
	case command.Part:
		session.handlePart(&msg)
	case command.Quit:
		session.handleQuit(&msg)
	case command.Kick:
		session.handleKick(&msg)
	case command.Nick:
		session.handleNick(&msg)
	case command.Invite:
		session.handleInvite(&msg)
	case command.Topic:
		session.handleTopic(&msg)
	case command.Mode:
		session.handleMode(&msg)
	case command.Chghost:
		session.handleChghost(&msg)
	case command.Cap:
		return session.handleCap(&msg)
	case command.RplWelcome:
		return session.handleWelcome(&msg)
	case command.ErrNicknameInUse:
		return session.handleNickInUse(&msg)
	case command.RplISupport:
		if len(msg.Params) > 1 {
			session.isupport.ParseTokens(msg.Params[1:])
		}
	case command.RplNamReply:
		session.handleNames(&msg)
	case command.RplTopic, command.RplTopicWhoTime, command.RplCreationTime, command.RplChannelModeIs:
		session.handleChannelInfo(&msg)
	case command.RplWhoReply:
		// Example args: test * ~irce 127.0.0.1 localhost.localnetwork Gissleh H :0 ...
		if session.isSelf(msg.Param(5)) {
			session.user = msg.Param(2)
			session.host = msg.Param(3)
		}
	}

	return nil
}

func (session *Session) handlePing(msg *Message) error {
	err := session.reply(Message{
		Command:       command.Pong,
		Params:        append([]string(nil), msg.Params...),
		Trailing:      msg.Trailing,
		ForceTrailing: msg.ForceTrailing,
	})

	session.emit(newEvent(EventPing))

	return err
}

func (session *Session) handleText(msg *Message) {
	kind := EventPrivmsg
	if msg.Command == command.Notice {
		kind = EventNotice
	}

	event := newEvent(kind)
	event.Prefix = msg.Prefix
	event.Target = msg.Param(0)
	event.Text = msg.Arg(1)
	session.emit(event)
}

// handleJoin only creates channels for the session's own joins. Other users
// joining a channel the session isn't on are passed on without changing the
// store.
func (session *Session) handleJoin(msg *Message) {
	name := msg.Arg(0)

	channel, err := session.store.Channel(name)
	if session.isSelf(msg.Prefix) {
		session.learnSelf(msg.Prefix)

		if err != nil {
			channel, err = session.store.AddChannel(name)
		}
	}

	if err != nil {
		session.debugln("join:", name, err)
	} else if _, err := channel.AddUser(msg.Prefix); err != nil {
		session.debugln("join:", name, msg.Prefix, err)
	}

	event := newEvent(EventJoin)
	event.Prefix = msg.Prefix
	event.Target = name
	session.emit(event)
}

func (session *Session) handlePart(msg *Message) {
	name := msg.Arg(0)
	session.leave(name, msg.Prefix)

	event := newEvent(EventPart)
	event.Prefix = msg.Prefix
	event.Target = name
	event.Text = msg.Arg(1)
	session.emit(event)
}

func (session *Session) handleQuit(msg *Message) {
	removed := session.store.RemoveUserEverywhere(msg.Prefix)
	session.debugln("quit:", msg.Prefix, "removed from", removed, "channels")

	event := newEvent(EventQuit)
	event.Prefix = msg.Prefix
	event.Text = msg.Arg(0)
	session.emit(event)
}

func (session *Session) handleKick(msg *Message) {
	name := msg.Param(0)
	kicked := msg.Arg(1)
	if channel, err := session.store.Channel(name); err == nil {
		if user, err := channel.User(kicked); err == nil {
			kicked = user.Identity
		}
	}
	session.leave(name, kicked)

	event := newEvent(EventKick)
	event.Prefix = msg.Prefix
	event.Target = name
	event.Subject = kicked
	event.Text = msg.Arg(2)
	session.emit(event)
}

// leave removes the identity from the channel, or the channel itself if the
// identity is the session's.
func (session *Session) leave(name, identity string) {
	channel, err := session.store.Channel(name)
	if err != nil {
		session.debugln("leave:", name, err)
		return
	}

	if session.isSelf(identity) {
		err = session.store.RemoveChannel(channel.Name)
	} else {
		err = channel.RemoveUser(identity)
	}
	if err != nil {
		session.debugln("leave:", name, identity, err)
	}
}

func (session *Session) handleNick(msg *Message) {
	newNick := msg.Arg(0)
	newIdentity := withNick(msg.Prefix, newNick)

	if session.isSelf(msg.Prefix) {
		session.nick = newNick
	}
	session.store.RenameUser(msg.Prefix, newIdentity)

	event := newEvent(EventNick)
	event.Prefix = msg.Prefix
	event.Subject = newIdentity
	session.emit(event)
}

func (session *Session) handleChghost(msg *Message) {
	nuh, err := ircmsg.ParseNUH(msg.Prefix)
	if err != nil || len(msg.Params) < 2 {
		return
	}

	nuh.User = msg.Param(0)
	nuh.Host = msg.Arg(1)

	if session.isSelf(msg.Prefix) {
		session.user = nuh.User
		session.host = nuh.Host
	}
	session.store.RenameUser(msg.Prefix, nuh.Canonical())
}

func (session *Session) handleInvite(msg *Message) {
	event := newEvent(EventInvite)
	event.Prefix = msg.Prefix
	event.Subject = msg.Param(0)
	event.Target = msg.Arg(1)
	session.emit(event)
}

func (session *Session) handleTopic(msg *Message) {
	name := msg.Param(0)
	topic := msg.Arg(1)

	event := newEvent(EventTopic)
	event.Prefix = msg.Prefix
	event.Target = name
	event.Text = topic

	channel, err := session.store.Channel(name)
	if err == nil {
		event.OldTopic = channel.Topic

		channel.Topic = topic
		channel.TopicSetter = msg.Prefix
		channel.TopicTime = event.Time
	} else {
		session.debugln("topic:", name, err)
	}

	session.emit(event)
}

// handleMode applies channel mode changes. User modes are left to the
// generic event.
func (session *Session) handleMode(msg *Message) {
	args := msg.Args()
	if len(args) < 2 || !session.isupport.IsChannel(args[0]) {
		return
	}

	channel, err := session.store.Channel(args[0])
	if err != nil {
		session.debugln("mode:", args[0], err)
		return
	}

	_, err = modes.Apply(session.isupport.ModeTable(), channel, args[1], args[2:], func(change modes.Change) {
		kind := EventModeSet
		if !change.Plus {
			kind = EventModeUnset
		}

		event := newEvent(kind)
		event.Prefix = msg.Prefix
		event.Target = args[0]
		event.Mode = change.Letter
		event.Subject = change.Arg
		session.emit(event)
	})
	if err != nil {
		session.debugln("mode:", args[0], err)
	}

	event := newEvent(EventModes)
	event.Prefix = msg.Prefix
	event.Target = args[0]
	event.Text = args[1]
	event.Args = args[2:]
	session.emit(event)
}

func (session *Session) handleWelcome(msg *Message) error {
	session.nick = msg.Param(0)
	session.state = StateActive

	return session.reply(NewMessage(command.Who, session.nick))
}

// handleNickInUse tries the next alternative while registering. It goes
// "Nick" -> "Alt1" -> "Alt2" -> ... -> "Nick12345".
func (session *Session) handleNickInUse(msg *Message) error {
	if session.state != StateRegistering {
		return nil
	}

	nick := msg.Param(1)
	prev := session.config.Nick
	for _, alt := range session.config.Alternatives {
		if nick == prev {
			return session.reply(NewMessage(command.Nick, alt))
		}

		prev = alt
	}

	return session.reply(NewMessage(command.Nick, session.config.Nick+strconv.Itoa(10000+rand.Intn(90000))))
}

// handleNames syncs the roster from a RPL_NAMREPLY. Members already on the
// roster get the reply's flags, and its full identity if it has one
// (userhost-in-names).
func (session *Session) handleNames(msg *Message) {
	name := msg.Param(2)
	channel, err := session.store.Channel(name)
	if err != nil {
		session.debugln("names:", name, err)
		return
	}

	for _, token := range strings.Fields(msg.Arg(3)) {
		identity, flags, _ := session.isupport.ParsePrefixedNick(token)
		if identity == "" {
			continue
		}

		user, err := channel.User(identity)
		if err != nil {
			user, err = channel.AddUser(identity)
			if err != nil {
				continue
			}
		} else {
			if strings.ContainsRune(identity, '!') {
				user.Identity = identity
			}
			user.Flags = ""
		}

		for _, flag := range flags {
			user.SetFlag(flag)
		}
	}
}

// handleChannelInfo handles the replies describing a channel, which all have
// the channel as the second parameter.
func (session *Session) handleChannelInfo(msg *Message) {
	name := msg.Param(1)
	channel, err := session.store.Channel(name)
	if err != nil {
		session.debugln(msg.Command.Name(), name, err)
		return
	}

	switch msg.Command {
	case command.RplTopic:
		channel.Topic = msg.Arg(2)
	case command.RplTopicWhoTime:
		channel.TopicSetter = msg.Param(2)
		channel.TopicTime = parseUnix(msg.Arg(3))
	case command.RplCreationTime:
		channel.Created = parseUnix(msg.Arg(2))
	case command.RplChannelModeIs:
		args := msg.Args()
		if len(args) < 3 {
			return
		}

		_, err := modes.Apply(session.isupport.ModeTable(), channel, args[2], args[3:], nil)
		if err != nil {
			session.debugln(msg.Command.Name(), name, err)
		}
	}
}

func (session *Session) handleCap(msg *Message) error {
	subCommand := strings.ToUpper(msg.Param(1))

	tokens := msg.Arg(2)
	more := false
	if msg.Param(2) == "*" && len(msg.Params) == 3 {
		tokens = msg.Arg(3)
		more = true
	}

	switch subCommand {
	case "LS":
		for _, token := range strings.Fields(tokens) {
			name := strings.SplitN(token, "=", 2)[0]
			if indexOf(session.config.Capabilities, name) != -1 && indexOf(session.capsRequested, name) == -1 {
				session.capsRequested = append(session.capsRequested, name)
			}
		}

		if more || session.state != StateRegistering {
			return nil
		}
		if len(session.capsRequested) > 0 {
			return session.reply(Message{Command: command.Cap, Params: []string{"REQ"}, Trailing: strings.Join(session.capsRequested, " ")})
		}

		return session.endCap()
	case "ACK":
		for _, token := range strings.Fields(tokens) {
			if strings.HasPrefix(token, "-") {
				session.capsEnabled = remove(session.capsEnabled, token[1:])
			} else if !session.CapEnabled(token) {
				session.capsEnabled = append(session.capsEnabled, token)
			}
		}

		return session.endCap()
	case "NAK":
		for _, token := range strings.Fields(tokens) {
			session.capsRequested = remove(session.capsRequested, token)
		}

		return session.endCap()
	case "NEW":
		requests := make([]string, 0, 4)
		for _, token := range strings.Fields(tokens) {
			name := strings.SplitN(token, "=", 2)[0]
			if indexOf(session.config.Capabilities, name) != -1 && !session.CapEnabled(name) {
				requests = append(requests, name)
			}
		}

		if len(requests) > 0 {
			return session.reply(Message{Command: command.Cap, Params: []string{"REQ"}, Trailing: strings.Join(requests, " ")})
		}
	case "DEL":
		for _, token := range strings.Fields(tokens) {
			session.capsEnabled = remove(session.capsEnabled, token)
		}
	}

	return nil
}

// endCap ends negotiation if it's part of registration.
func (session *Session) endCap() error {
	if session.state != StateRegistering {
		return nil
	}

	return session.reply(NewMessage(command.Cap, "END"))
}

// reply sends a message the session made itself. A send filter refusing it is
// not an error for the caller.
func (session *Session) reply(msg Message) error {
	err := session.Send(msg)
	if errors.Is(err, ErrSendAborted) {
		return nil
	}

	return err
}

// withNick replaces the nick of an identity.
func withNick(identity, nick string) string {
	nuh, err := ircmsg.ParseNUH(identity)
	if err != nil {
		return nick
	}

	nuh.Name = nick
	return nuh.Canonical()
}

func parseUnix(s string) time.Time {
	seconds, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(seconds, 0)
}

func remove(list []string, s string) []string {
	if i := indexOf(list, s); i != -1 {
		return append(list[:i], list[i+1:]...)
	}

	return list
}
