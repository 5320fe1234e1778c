package modes_test

import (
	"testing"

	"github.com/gissleh/ircsession/modes"
	"github.com/gissleh/ircsession/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannel(t *testing.T, identities ...string) *store.Channel {
	channel, err := store.New().AddChannel("#Test")
	require.NoError(t, err)

	for _, identity := range identities {
		_, err := channel.AddUser(identity)
		require.NoError(t, err)
	}

	return channel
}

func TestApply_Mixed(t *testing.T) {
	channel := newTestChannel(t, "nick1!a@b", "nick2!c@d")
	user2, _ := channel.User("nick2")
	user2.SetFlag('v')

	observed := make([]modes.Change, 0, 3)
	changes, err := modes.Apply(nil, channel, "+o-v+b", []string{"nick1", "nick2", "*!*@host"}, func(change modes.Change) {
		observed = append(observed, change)
	})
	require.NoError(t, err)

	expected := []modes.Change{
		{Letter: 'o', Plus: true, Arg: "nick1"},
		{Letter: 'v', Plus: false, Arg: "nick2"},
		{Letter: 'b', Plus: true, Arg: "*!*@host"},
	}
	assert.Equal(t, expected, changes)
	assert.Equal(t, expected, observed)

	user1, _ := channel.User("nick1")
	assert.True(t, user1.HasFlag('o'))
	assert.False(t, user2.HasFlag('v'))
	assert.Equal(t, []string{"*!*@host"}, channel.ListModes('b'))
}

func TestApply_Exhausted(t *testing.T) {
	channel := newTestChannel(t, "nick1")

	changes, err := modes.Apply(nil, channel, "+o", nil, nil)
	assert.ErrorIs(t, err, modes.ErrExhausted)
	assert.Empty(t, changes)

	// Changes before the missing argument stand.
	changes, err = modes.Apply(nil, channel, "+nob", []string{"nick1"}, nil)
	assert.ErrorIs(t, err, modes.ErrExhausted)
	assert.Equal(t, []modes.Change{{Letter: 'n', Plus: true}, {Letter: 'o', Plus: true, Arg: "nick1"}}, changes)
	assert.Empty(t, channel.ListModes('b'))
}

func TestApply_DefaultPolarity(t *testing.T) {
	channel := newTestChannel(t)

	changes, err := modes.Apply(nil, channel, "nt", nil, nil)
	require.NoError(t, err)
	assert.Len(t, changes, 2)

	_, ok := channel.Mode('n')
	assert.True(t, ok)
	_, ok = channel.Mode('t')
	assert.True(t, ok)
}

func TestApply_SetOnlyArguments(t *testing.T) {
	channel := newTestChannel(t)

	_, err := modes.Apply(nil, channel, "+kl", []string{"secret", "25"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "+kl secret 25", channel.ModeString())

	// No arguments are consumed when unsetting, so the ban mask lines up.
	changes, err := modes.Apply(nil, channel, "-kl+b", []string{"*!*@spam"}, nil)
	require.NoError(t, err)
	assert.Len(t, changes, 3)
	assert.Equal(t, "", channel.ModeString())
	assert.Equal(t, []string{"*!*@spam"}, channel.ListModes('b'))
}

func TestApply_UnresolvedStatus(t *testing.T) {
	channel := newTestChannel(t, "Present")

	changes, err := modes.Apply(nil, channel, "+oo", []string{"Missing", "present"}, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, modes.ErrExhausted)
	assert.Equal(t, []modes.Change{{Letter: 'o', Plus: true, Arg: "present"}}, changes)

	user, _ := channel.User("Present")
	assert.Equal(t, "o", user.Flags)
}

func TestApply_ListRemovalMissing(t *testing.T) {
	channel := newTestChannel(t)

	changes, err := modes.Apply(nil, channel, "-b+b", []string{"a!b@c", "a!b@c"}, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, changes, 1)
	assert.Equal(t, []string{"a!b@c"}, channel.ListModes('b'))
}

func TestApply_UnknownLetterIsBoolean(t *testing.T) {
	channel := newTestChannel(t)

	changes, err := modes.Apply(nil, channel, "+Zb", []string{"mask!*@*"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []modes.Change{{Letter: 'Z', Plus: true}, {Letter: 'b', Plus: true, Arg: "mask!*@*"}}, changes)

	_, ok := channel.Mode('Z')
	assert.True(t, ok)

	_, err = modes.Apply(nil, channel, "-Z", nil, nil)
	require.NoError(t, err)
	_, ok = channel.Mode('Z')
	assert.False(t, ok)
}

func TestTable(t *testing.T) {
	table := modes.NewTable("eIbq", "k", "flj", "CFLNPQcgimnprstz", "ov")

	rows := []struct {
		Letter rune
		Plus   bool
		Takes  bool
	}{
		{'b', true, true},
		{'b', false, true},
		{'k', true, true},
		{'k', false, true},
		{'l', true, true},
		{'l', false, false},
		{'o', false, true},
		{'n', true, false},
		{'X', true, false},
	}

	for _, row := range rows {
		t.Run(modes.Change{Letter: row.Letter, Plus: row.Plus}.String(), func(t *testing.T) {
			assert.Equal(t, row.Takes, table.TakesArgument(row.Letter, row.Plus))
		})
	}

	kind, ok := table.Kind('q')
	assert.True(t, ok)
	assert.Equal(t, modes.List, kind)
	_, ok = table.Kind('X')
	assert.False(t, ok)
	assert.True(t, table.IsStatus('v'))
	assert.False(t, modes.Default.TakesArgument('k', false))
}
