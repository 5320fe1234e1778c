package ircutil_test

import (
	"testing"

	"github.com/gissleh/ircsession/ircutil"
	"github.com/stretchr/testify/assert"
)

func TestParseCTCP(t *testing.T) {
	table := []struct {
		Text string
		Verb string
		Args string
		OK   bool
	}{
		{"\x01VERSION\x01", "VERSION", "", true},
		{"\x01ACTION waves hello\x01", "ACTION", "waves hello", true},
		{"\x01ping 12345", "PING", "12345", true},
		{"just text", "", "", false},
		{"\x01\x01", "", "", false},
		{"\x01", "", "", false},
	}

	for _, row := range table {
		t.Run(row.Text, func(t *testing.T) {
			verb, args, ok := ircutil.ParseCTCP(row.Text)

			assert.Equal(t, row.OK, ok)
			assert.Equal(t, row.Verb, verb)
			assert.Equal(t, row.Args, args)
		})
	}
}

func TestFormatCTCP(t *testing.T) {
	assert.Equal(t, "\x01VERSION\x01", ircutil.FormatCTCP("VERSION", ""))
	assert.Equal(t, "\x01ACTION waves\x01", ircutil.FormatCTCP("ACTION", "waves"))
}

func TestParseArgAndText(t *testing.T) {
	table := []struct {
		Input string
		Arg   string
		Text  string
	}{
		{"#Channel stuff and things", "#Channel", "stuff and things"},
		{"#Channel", "#Channel", ""},
		{"  #Channel   spaced out", "#Channel", "spaced out"},
		{"", "", ""},
	}

	for _, row := range table {
		t.Run(row.Input, func(t *testing.T) {
			arg, text := ircutil.ParseArgAndText(row.Input)

			assert.Equal(t, row.Arg, arg)
			assert.Equal(t, row.Text, text)
		})
	}
}
