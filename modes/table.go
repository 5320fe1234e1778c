// Package modes classifies channel mode letters and applies MODE strings to a
// channel in the store.
package modes

import "strings"

// A Kind says how a mode letter is stored and whether it takes an argument.
type Kind int

const (
	// Flag is a pure boolean channel mode (CHANMODES type D).
	Flag Kind = iota
	// List is a list mode such as bans (CHANMODES type A).
	List
	// Param is a boolean mode with an argument both when set and unset (type B).
	Param
	// SetParam is a boolean mode with an argument only when set (type C).
	SetParam
	// Status is a per-member status mode such as operator or voice (PREFIX).
	Status
)

// A Class says when a mode letter consumes an argument.
type Class int

const (
	// Never means the letter never takes an argument.
	Never Class = iota
	// Always means the letter takes an argument under either polarity.
	Always
	// SetOnly means the letter takes an argument only when set with '+'.
	SetOnly
)

// Class gets the argument class of the kind.
func (kind Kind) Class() Class {
	switch kind {
	case List, Param, Status:
		return Always
	case SetParam:
		return SetOnly
	default:
		return Never
	}
}

func (kind Kind) String() string {
	switch kind {
	case List:
		return "list"
	case Param:
		return "param"
	case SetParam:
		return "setparam"
	case Status:
		return "status"
	default:
		return "flag"
	}
}

// A Table maps mode letters to kinds. It's immutable once created and can be
// shared freely.
type Table struct {
	kinds    map[rune]Kind
	statuses string
}

// Default is used until the server tells otherwise. Key and limit only take an
// argument when set.
var Default = NewTable("beI", "", "kl", "imnpst", "ov")

// NewTable creates a table from the letters of each kind, in the same order as
// the CHANMODES token (A,B,C,D) followed by the PREFIX modes.
func NewTable(lists, params, setParams, flags, statuses string) *Table {
	table := &Table{
		kinds:    make(map[rune]Kind, len(lists)+len(params)+len(setParams)+len(flags)+len(statuses)),
		statuses: statuses,
	}

	for _, block := range []struct {
		letters string
		kind    Kind
	}{
		{flags, Flag},
		{lists, List},
		{params, Param},
		{setParams, SetParam},
		{statuses, Status},
	} {
		for _, letter := range block.letters {
			table.kinds[letter] = block.kind
		}
	}

	return table
}

// Kind gets the kind of the letter. Letters missing from the table are
// reported as Flag with ok set to false.
func (table *Table) Kind(letter rune) (kind Kind, ok bool) {
	kind, ok = table.kinds[letter]
	return
}

// TakesArgument returns true if the letter consumes an argument under the
// given polarity.
func (table *Table) TakesArgument(letter rune, plus bool) bool {
	kind, _ := table.Kind(letter)

	switch kind.Class() {
	case Always:
		return true
	case SetOnly:
		return plus
	default:
		return false
	}
}

// IsStatus returns true if the letter is a member status mode.
func (table *Table) IsStatus(letter rune) bool {
	return strings.ContainsRune(table.statuses, letter)
}

// Statuses gets the status letters in rank order, highest first.
func (table *Table) Statuses() string {
	return table.statuses
}
