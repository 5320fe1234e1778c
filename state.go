package irc

import (
	"github.com/gissleh/ircsession/isupport"
	"github.com/gissleh/ircsession/store"
)

// State is where a session is in its connection attempt.
type State int

// The session states. A session goes through them in order, and back to
// StateDisconnected when the connection is lost.
const (
	StateDisconnected State = iota
	StateConnecting
	StateRegistering
	StateActive
)

func (state State) String() string {
	switch state {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateRegistering:
		return "registering"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// MarshalText makes the state show up by name in JSON.
func (state State) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

// SessionState is a snapshot of a session, suitable for serializing.
type SessionState struct {
	ID       string          `json:"id"`
	Nick     string          `json:"nick"`
	User     string          `json:"user"`
	Host     string          `json:"host"`
	State    State           `json:"state"`
	ISupport *isupport.State `json:"isupport"`
	Caps     []string        `json:"caps"`
	Channels []ChannelState  `json:"channels"`
}

// ChannelState is a snapshot of a channel.
type ChannelState struct {
	Name  string            `json:"name"`
	Topic string            `json:"topic,omitempty"`
	Modes string            `json:"modes,omitempty"`
	Lists []store.ListEntry `json:"lists,omitempty"`
	Users []store.User      `json:"users,omitempty"`
}
