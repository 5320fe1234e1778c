package modes

import (
	"errors"
	"fmt"

	"github.com/gissleh/ircsession/store"
)

// ErrExhausted is returned by Apply when a letter needs an argument but none
// are left. Changes before that letter are kept.
var ErrExhausted = errors.New("irc: mode arguments exhausted")

// A Change is one applied mode change.
type Change struct {
	Letter rune   `json:"letter"`
	Plus   bool   `json:"plus"`
	Arg    string `json:"arg,omitempty"`
}

// String renders the change as e.g. "+o Nick" or "-n".
func (change Change) String() string {
	s := "-" + string(change.Letter)
	if change.Plus {
		s = "+" + string(change.Letter)
	}
	if change.Arg != "" {
		s += " " + change.Arg
	}

	return s
}

// Apply interprets a mode string such as "+o-v+b" with its arguments and
// applies it to the channel. The polarity defaults to '+' until the first
// '+' or '-'. Each applied change is passed to observe, if it is not nil, and
// returned.
//
// A status argument that doesn't match a member, or the removal of a list entry
// that doesn't exist, is skipped and reported without stopping the scan. If the
// arguments run out, the scan stops there and ErrExhausted is reported. All
// failures are combined with errors.Join.
func Apply(table *Table, channel *store.Channel, modestr string, args []string, observe func(Change)) ([]Change, error) {
	if table == nil {
		table = Default
	}

	changes := make([]Change, 0, len(modestr))
	var errs []error

	plus := true
	argIndex := 0

	for _, letter := range modestr {
		if letter == '+' {
			plus = true
			continue
		}
		if letter == '-' {
			plus = false
			continue
		}

		change := Change{Letter: letter, Plus: plus}
		if table.TakesArgument(letter, plus) {
			if argIndex >= len(args) {
				errs = append(errs, fmt.Errorf("%s: %w", change, ErrExhausted))
				break
			}

			change.Arg = args[argIndex]
			argIndex++
		}

		if err := apply(table, channel, change); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", change, err))
			continue
		}

		changes = append(changes, change)
		if observe != nil {
			observe(change)
		}
	}

	return changes, errors.Join(errs...)
}

func apply(table *Table, channel *store.Channel, change Change) error {
	kind, _ := table.Kind(change.Letter)

	switch kind {
	case List:
		if change.Plus {
			channel.AddListMode(change.Letter, change.Arg)
			return nil
		}

		return channel.DelListMode(change.Letter, change.Arg)
	case Status:
		user, err := channel.User(change.Arg)
		if err != nil {
			return err
		}

		if change.Plus {
			user.SetFlag(change.Letter)
		} else {
			user.UnsetFlag(change.Letter)
		}
	default:
		if change.Plus {
			channel.SetMode(change.Letter, change.Arg)
		} else {
			channel.UnsetMode(change.Letter)
		}
	}

	return nil
}
