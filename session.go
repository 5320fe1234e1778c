package irc

import (
	"errors"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/ergochat/irc-go/ircmsg"
	"github.com/gissleh/ircsession/command"
	"github.com/gissleh/ircsession/isupport"
	"github.com/gissleh/ircsession/store"
	"github.com/google/uuid"
)

// A Session is the client side of one IRC connection. It is fed lines by
// whatever owns the connection, keeps track of channels, users and modes, and
// writes its replies to the writer.
//
// A Session is not safe for concurrent use. Lines, ticks and sends must come
// from one goroutine at a time, and handlers are called on that goroutine.
// Separate sessions share nothing and can run in parallel.
type Session struct {
	id     string
	config Config
	parser Parser
	writer io.Writer

	state  State
	killed atomic.Bool

	nick     string
	user     string
	host     string
	store    *store.Store
	isupport isupport.ISupport

	capsEnabled   []string
	capsRequested []string

	handlers []Handler
	filters  []SendFilter
	logger   DebugLogger

	lastReceived time.Time
	lastIdle     time.Time
	pingTime     time.Time
}

// New creates a new session that writes to writer. The writer may be nil, but
// then nothing can be sent until SetWriter is called.
func New(config Config, writer io.Writer) *Session {
	config = config.WithDefaults()

	return &Session{
		id:     uuid.NewString(),
		config: config,
		parser: Parser{Limits: config.Limits, Strict: config.Strict},
		writer: writer,
		store:  store.New(),
	}
}

// ID gets the unique identifier for the session.
func (session *Session) ID() string {
	return session.id
}

// Config gets the session's config, with defaults applied.
func (session *Session) Config() Config {
	return session.config
}

// Parser gets the parser used for received lines.
func (session *Session) Parser() Parser {
	return session.parser
}

// State gets where the session is in the connection attempt.
func (session *Session) State() State {
	return session.state
}

// Nick gets the nick of the session. It's empty until the server has
// welcomed it.
func (session *Session) Nick() string {
	return session.nick
}

// User gets the user/ident of the session, if the server has told it.
func (session *Session) User() string {
	return session.user
}

// Host gets the hostname of the session, if the server has told it.
func (session *Session) Host() string {
	return session.host
}

// Store gets the channels. It must not be changed outside of the session's
// goroutine.
func (session *Session) Store() *store.Store {
	return session.store
}

// ISupport gets the session's ISupport. This is mutable, and changes to it
// *will* affect the session.
func (session *Session) ISupport() *isupport.ISupport {
	return &session.isupport
}

// Caps gets the enabled capabilities.
func (session *Session) Caps() []string {
	return append([]string(nil), session.capsEnabled...)
}

// CapEnabled returns true if the capability has been acknowledged.
func (session *Session) CapEnabled(name string) bool {
	return indexOf(session.capsEnabled, name) != -1
}

// SetWriter replaces the writer, e.g. after reconnecting.
func (session *Session) SetWriter(writer io.Writer) {
	session.writer = writer
}

// AddHandler adds a handler. Handlers are called in the order they were added.
func (session *Session) AddHandler(handler Handler) {
	session.handlers = append(session.handlers, handler)
}

// AddSendFilter adds a filter that is called before every send, in the order
// they were added.
func (session *Session) AddSendFilter(filter SendFilter) {
	session.filters = append(session.filters, filter)
}

// Kill asks the loop driving the session to stop. It's up to that loop to
// check Killed between lines. Kill and Killed may be called from any
// goroutine.
func (session *Session) Kill() {
	session.killed.Store(true)
}

// Killed returns true if Kill has been called.
func (session *Session) Killed() bool {
	return session.killed.Load()
}

// Connecting resets the session for a new connection attempt. The channels
// and capabilities of the previous connection are forgotten.
func (session *Session) Connecting() {
	session.state = StateConnecting
	session.isupport.Reset()
	session.store.Clear()
	session.capsEnabled = nil
	session.capsRequested = nil
	session.user = ""
	session.host = ""
}

// Connected starts registration: capability negotiation if any capabilities
// are configured, then PASS, NICK and USER.
func (session *Session) Connected() error {
	now := time.Now()

	session.state = StateRegistering
	session.lastReceived = now
	session.lastIdle = now
	session.pingTime = time.Time{}

	var errs []error
	if len(session.config.Capabilities) > 0 {
		errs = append(errs, session.reply(NewMessage(command.Cap, "LS", "302")))
	}
	if session.config.Password != "" {
		errs = append(errs, session.reply(Message{Command: command.Pass, Trailing: session.config.Password}))
	}

	nick := session.config.Nick
	if session.nick != "" {
		nick = session.nick
	}
	errs = append(errs, session.reply(NewMessage(command.Nick, nick)))
	errs = append(errs, session.reply(Message{
		Command:  command.User,
		Params:   []string{session.config.User, "8", "*"},
		Trailing: session.config.RealName,
	}))

	session.emit(newEvent(EventConnect))

	return errors.Join(errs...)
}

// Disconnected ends the connection attempt. All channels are removed.
func (session *Session) Disconnected() {
	session.state = StateDisconnected
	session.store.Clear()
	session.capsEnabled = nil
	session.capsRequested = nil

	session.emit(newEvent(EventDisconnect))
}

// Tick should be called periodically by the loop driving the session. It
// emits an idle event every IdleInterval, and pings the server if it's been
// silent for Timeout. If the ping isn't answered within another Timeout, it
// returns ErrTimeout.
func (session *Session) Tick(now time.Time) error {
	if session.state == StateDisconnected {
		return nil
	}

	if session.lastIdle.IsZero() {
		session.lastIdle = now
	}
	if now.Sub(session.lastIdle) >= session.config.IdleInterval {
		event := newEvent(EventIdle)
		event.LastIdle = session.lastIdle
		session.lastIdle = now

		session.emit(event)
	}

	if session.lastReceived.IsZero() {
		session.lastReceived = now
	}
	if now.Sub(session.lastReceived) < session.config.Timeout {
		return nil
	}

	if session.pingTime.IsZero() {
		session.pingTime = now
		return session.reply(Message{Command: command.Ping, Trailing: strconv.FormatInt(now.Unix(), 10)})
	}
	if now.Sub(session.pingTime) >= session.config.Timeout {
		return ErrTimeout
	}

	return nil
}

// HandleLine parses the line and handles the message. A line that can't be
// parsed is discarded, and the parse error returned.
func (session *Session) HandleLine(line string) error {
	msg, err := session.parser.Parse(line)
	if err != nil {
		session.debugln("discarding line:", err)
		return err
	}

	return session.HandleMessage(msg)
}

// Snapshot gets a copy of the session state.
func (session *Session) Snapshot() SessionState {
	state := SessionState{
		ID:       session.id,
		Nick:     session.nick,
		User:     session.user,
		Host:     session.host,
		State:    session.state,
		ISupport: session.isupport.State(),
		Caps:     session.Caps(),
		Channels: make([]ChannelState, 0, session.store.Len()),
	}

	for _, channel := range session.store.Channels() {
		state.Channels = append(state.Channels, ChannelState{
			Name:  channel.Name,
			Topic: channel.Topic,
			Modes: channel.ModeString(),
			Lists: channel.ListEntries(),
			Users: channel.Users(),
		})
	}

	return state
}

func (session *Session) emit(event Event) {
	for _, handler := range session.handlers {
		if handler.HandleEvent(event) {
			break
		}
	}
}

func (session *Session) isSelf(identity string) bool {
	return session.nick != "" && store.SameUser(identity, session.nick)
}

// learnSelf picks up the user and host from one of the session's own
// prefixes.
func (session *Session) learnSelf(identity string) {
	nuh, err := ircmsg.ParseNUH(identity)
	if err != nil {
		return
	}

	if nuh.User != "" {
		session.user = nuh.User
	}
	if nuh.Host != "" {
		session.host = nuh.Host
	}
}

func indexOf(list []string, s string) int {
	for i := range list {
		if list[i] == s {
			return i
		}
	}

	return -1
}
