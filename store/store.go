// Package store keeps a session's view of joined channels, their members and
// their modes. A Store has a single writer: the session dispatching messages.
// It does no locking of its own.
package store

import (
	"errors"
	"sort"
)

// ErrDuplicateChannel is returned by Store.AddChannel if a channel with an equal
// name (ignoring ASCII case) already exists.
var ErrDuplicateChannel = errors.New("irc: duplicate channel")

// ErrDuplicateUser is returned by Channel.AddUser if a member with the same nick
// is already on the channel.
var ErrDuplicateUser = errors.New("irc: duplicate user")

// ErrNotFound is returned when a channel, member or list-mode entry does not exist.
var ErrNotFound = errors.New("irc: not found")

// A Store owns every channel of one session.
type Store struct {
	channels map[string]*Channel
}

// New creates an empty store.
func New() *Store {
	return &Store{
		channels: make(map[string]*Channel, 16),
	}
}

// AddChannel creates a channel.
func (store *Store) AddChannel(name string) (*Channel, error) {
	key := foldASCII(name)
	if store.channels[key] != nil {
		return nil, ErrDuplicateChannel
	}

	channel := newChannel(name)
	store.channels[key] = channel

	return channel, nil
}

// RemoveChannel destroys a channel along with its roster and modes.
func (store *Store) RemoveChannel(name string) error {
	key := foldASCII(name)
	if store.channels[key] == nil {
		return ErrNotFound
	}

	delete(store.channels, key)

	return nil
}

// Channel gets a channel by name, ignoring ASCII case.
func (store *Store) Channel(name string) (*Channel, error) {
	channel := store.channels[foldASCII(name)]
	if channel == nil {
		return nil, ErrNotFound
	}

	return channel, nil
}

// Channels gets all channels sorted by name.
func (store *Store) Channels() []*Channel {
	result := make([]*Channel, 0, len(store.channels))
	for _, channel := range store.channels {
		result = append(result, channel)
	}

	sort.Slice(result, func(i, j int) bool {
		return foldASCII(result[i].Name) < foldASCII(result[j].Name)
	})

	return result
}

// Len returns the number of channels.
func (store *Store) Len() int {
	return len(store.channels)
}

// UserChannels gets the channels the identity is a member of.
func (store *Store) UserChannels(identity string) []*Channel {
	result := make([]*Channel, 0, 4)
	for _, channel := range store.Channels() {
		if _, err := channel.User(identity); err == nil {
			result = append(result, channel)
		}
	}

	return result
}

// RemoveUserEverywhere removes the identity from every roster and returns the
// number of rosters it was removed from.
func (store *Store) RemoveUserEverywhere(identity string) int {
	removed := 0
	for _, channel := range store.channels {
		if channel.RemoveUser(identity) == nil {
			removed++
		}
	}

	return removed
}

// RenameUser replaces the stored identity of the member matching oldIdentity
// with newIdentity in every channel. Channels where another member already
// holds the new nick are left untouched. It returns the number of channels
// where the member was renamed.
func (store *Store) RenameUser(oldIdentity, newIdentity string) int {
	renamed := 0
	for _, channel := range store.channels {
		if channel.renameUser(oldIdentity, newIdentity) {
			renamed++
		}
	}

	return renamed
}

// Clear removes all channels.
func (store *Store) Clear() {
	for key := range store.channels {
		delete(store.channels, key)
	}
}

func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
