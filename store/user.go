package store

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// A User is a member of a channel's roster. Identity is either "nick!user@host"
// or a bare nick, and Flags holds the member's status mode letters (e.g. "ov")
// in the order they were given.
type User struct {
	Identity string `json:"identity"`
	Flags    string `json:"flags"`
}

// Nick gets the part of the identity preceding the first '!'.
func (user *User) Nick() string {
	return NickOf(user.Identity)
}

// NUH splits the identity into nick, user and host. A bare nick yields a NUH
// with only the Name set.
func (user *User) NUH() ircmsg.NUH {
	nuh, err := ircmsg.ParseNUH(user.Identity)
	if err != nil {
		return ircmsg.NUH{Name: user.Identity}
	}

	return nuh
}

// HasFlag returns true if the member has the status flag.
func (user *User) HasFlag(flag rune) bool {
	return strings.ContainsRune(user.Flags, flag)
}

// SetFlag adds a status flag. Setting a flag the member already has is a no-op.
// It returns true if the flags changed.
func (user *User) SetFlag(flag rune) bool {
	if user.HasFlag(flag) {
		return false
	}

	user.Flags += string(flag)
	return true
}

// UnsetFlag removes a status flag. It returns true if the flags changed.
func (user *User) UnsetFlag(flag rune) bool {
	if !user.HasFlag(flag) {
		return false
	}

	user.Flags = strings.Replace(user.Flags, string(flag), "", 1)
	return true
}

// SameUser returns true if both identities denote the same user: the parts
// before each string's first '!' have the same length and are equal ignoring
// ASCII case. User and host are not considered.
func SameUser(a, b string) bool {
	nickA := NickOf(a)
	nickB := NickOf(b)
	if len(nickA) != len(nickB) {
		return false
	}

	for i := 0; i < len(nickA); i++ {
		if lowerASCII(nickA[i]) != lowerASCII(nickB[i]) {
			return false
		}
	}

	return true
}

// NickKey returns the normalized form used by SameUser, so that two identities
// are the same user iff their keys are equal.
func NickKey(identity string) string {
	return foldASCII(NickOf(identity))
}

// NickOf gets the part of an identity preceding the first '!', or the whole
// identity if it has none.
func NickOf(identity string) string {
	if i := strings.IndexByte(identity, '!'); i != -1 {
		return identity[:i]
	}

	return identity
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}

	return b
}
