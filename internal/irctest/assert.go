package irctest

import (
	"errors"
	"strings"
	"testing"

	irc "github.com/gissleh/ircsession"
)

// AssertUserlist compares the channel's roster to a list of nicks prefixed
// with their highest status.
func AssertUserlist(t *testing.T, session *irc.Session, channelName string, assertedOrder ...string) error {
	channel, err := session.Store().Channel(channelName)
	if err != nil {
		t.Logf("Channel %s: %s", channelName, err)
		t.Fail()

		return err
	}

	users := channel.Users()
	order := make([]string, 0, len(users))
	for _, user := range users {
		prefix := ""
		if symbol := session.ISupport().Highest(user.Flags); symbol != 0 {
			prefix = string(symbol)
		}

		order = append(order, prefix+user.Nick())
	}

	orderA := strings.Join(order, ", ")
	orderB := strings.Join(assertedOrder, ", ")

	if orderA != orderB {
		t.Logf("Userlist: %s", orderA)
		t.Logf("Asserted: %s", orderB)

		t.Fail()

		return errors.New("Userlists does not match")
	}

	return nil
}
