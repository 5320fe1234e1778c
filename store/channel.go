package store

import (
	"sort"
	"time"
)

// A Channel is a joined channel with its roster and mode state.
type Channel struct {
	Name        string
	Created     time.Time
	Topic       string
	TopicSetter string
	TopicTime   time.Time

	users []*User
	index map[string]*User
	lists []ListEntry
	flags map[rune]string
}

// A ListEntry is one entry of a list mode such as a ban mask.
type ListEntry struct {
	Letter rune   `json:"letter"`
	Arg    string `json:"arg"`
}

// A Flag is a boolean channel mode, optionally carrying one argument such as a
// key or a limit.
type Flag struct {
	Letter rune   `json:"letter"`
	Arg    string `json:"arg,omitempty"`
}

func newChannel(name string) *Channel {
	return &Channel{
		Name:  name,
		users: make([]*User, 0, 64),
		index: make(map[string]*User, 64),
		flags: make(map[rune]string, 8),
	}
}

// AddUser adds a member to the roster.
func (channel *Channel) AddUser(identity string) (*User, error) {
	key := NickKey(identity)
	if channel.index[key] != nil {
		return nil, ErrDuplicateUser
	}

	user := &User{Identity: identity}
	channel.users = append(channel.users, user)
	channel.index[key] = user

	return user, nil
}

// RemoveUser removes the member matching identity from the roster.
func (channel *Channel) RemoveUser(identity string) error {
	key := NickKey(identity)
	user := channel.index[key]
	if user == nil {
		return ErrNotFound
	}

	for i := range channel.users {
		if channel.users[i] == user {
			channel.users = append(channel.users[:i], channel.users[i+1:]...)
			break
		}
	}
	delete(channel.index, key)

	return nil
}

// User gets the member matching identity. The returned user is owned by the
// channel and must not be retained.
func (channel *Channel) User(identity string) (*User, error) {
	user := channel.index[NickKey(identity)]
	if user == nil {
		return nil, ErrNotFound
	}

	return user, nil
}

// Users gets a copy of the roster in join order.
func (channel *Channel) Users() []User {
	result := make([]User, len(channel.users))
	for i := range channel.users {
		result[i] = *channel.users[i]
	}

	return result
}

// UserCount returns the roster size.
func (channel *Channel) UserCount() int {
	return len(channel.users)
}

// AddListMode adds a list-mode entry. Adding an entry that already exists is
// a no-op. It returns true if the entry is new.
func (channel *Channel) AddListMode(letter rune, arg string) bool {
	for _, entry := range channel.lists {
		if entry.Letter == letter && entry.Arg == arg {
			return false
		}
	}

	channel.lists = append(channel.lists, ListEntry{Letter: letter, Arg: arg})
	return true
}

// DelListMode removes the exact list-mode entry.
func (channel *Channel) DelListMode(letter rune, arg string) error {
	for i, entry := range channel.lists {
		if entry.Letter == letter && entry.Arg == arg {
			channel.lists = append(channel.lists[:i], channel.lists[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

// ListModes gets the entries of one list mode, in the order they were added.
func (channel *Channel) ListModes(letter rune) []string {
	result := make([]string, 0, 4)
	for _, entry := range channel.lists {
		if entry.Letter == letter {
			result = append(result, entry.Arg)
		}
	}

	return result
}

// ListEntries gets a copy of every list-mode entry.
func (channel *Channel) ListEntries() []ListEntry {
	result := make([]ListEntry, len(channel.lists))
	copy(result, channel.lists)

	return result
}

// SetMode sets a boolean mode, overwriting the argument if it's already set.
func (channel *Channel) SetMode(letter rune, arg string) {
	channel.flags[letter] = arg
}

// UnsetMode removes a boolean mode. Unsetting an absent mode is a no-op.
func (channel *Channel) UnsetMode(letter rune) {
	delete(channel.flags, letter)
}

// Mode gets a boolean mode and its argument.
func (channel *Channel) Mode(letter rune) (arg string, ok bool) {
	arg, ok = channel.flags[letter]
	return
}

// Modes gets the boolean modes sorted by letter.
func (channel *Channel) Modes() []Flag {
	result := make([]Flag, 0, len(channel.flags))
	for letter, arg := range channel.flags {
		result = append(result, Flag{Letter: letter, Arg: arg})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Letter < result[j].Letter
	})

	return result
}

// ModeString renders the boolean modes as "+klnt key 10", arguments in letter order.
func (channel *Channel) ModeString() string {
	flags := channel.Modes()
	if len(flags) == 0 {
		return ""
	}

	letters := make([]rune, 0, len(flags)+1)
	letters = append(letters, '+')
	args := ""
	for _, flag := range flags {
		letters = append(letters, flag.Letter)
		if flag.Arg != "" {
			args += " " + flag.Arg
		}
	}

	return string(letters) + args
}

func (channel *Channel) renameUser(oldIdentity, newIdentity string) bool {
	oldKey := NickKey(oldIdentity)
	newKey := NickKey(newIdentity)

	user := channel.index[oldKey]
	if user == nil {
		return false
	}
	if oldKey != newKey && channel.index[newKey] != nil {
		return false
	}

	user.Identity = newIdentity

	delete(channel.index, oldKey)
	channel.index[newKey] = user

	return true
}
