package irc

import (
	"errors"

	"github.com/gissleh/ircsession/modes"
	"github.com/gissleh/ircsession/store"
)

// ErrSendAborted is returned by Session.Send when a send filter refused the
// message.
var ErrSendAborted = errors.New("irc: send aborted")

// ErrNoWriter is returned if you try to send something on a session that
// has no writer.
var ErrNoWriter = errors.New("irc: no writer")

// Store and interpreter errors, so that callers can check everything against
// this package.
var (
	ErrDuplicateChannel = store.ErrDuplicateChannel
	ErrDuplicateUser    = store.ErrDuplicateUser
	ErrNotFound         = store.ErrNotFound
	ErrExhausted        = modes.ErrExhausted
)

// ErrTimeout is returned by Session.Tick when the server hasn't answered a
// ping within the timeout.
var ErrTimeout = errors.New("irc: server timed out")

// ErrNoRoom is returned when sending text to a target whose name leaves no
// room for any text within a line.
var ErrNoRoom = errors.New("irc: no room for text")
