package ircutil_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gissleh/ircsession/ircutil"
	"github.com/stretchr/testify/assert"
)

func TestMessageOverhead(t *testing.T) {
	line := ":Nick!user@host PRIVMSG #Chan :"
	assert.Equal(t, len(line), ircutil.MessageOverhead("Nick", "user", "host", "#Chan", false))
	assert.Equal(t, len(line)+len("\x01ACTION \x01"), ircutil.MessageOverhead("Nick", "user", "host", "#Chan", true))
}

func TestCutMessage(t *testing.T) {
	longOverhead := ircutil.MessageOverhead("Longer_Name", "mircuser", "some-long-hostname-from-some-isp.com", "#Test", true)
	shortOverhead := ircutil.MessageOverhead("=Scene=", "Gissleh", "npc.fakeuser.invalid", "#Channel3", false)

	table := []struct {
		Name     string
		Overhead int
		Space    bool
		Text     string
		Cuts     int
	}{
		{"Words", longOverhead, true, strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 60), 9},
		{"Short", shortOverhead, true, "A really short message that will not be cut.", 1},
		{"Empty", shortOverhead, true, "", 1},
		{"DoubleSpaces", shortOverhead, true, strings.Repeat("two  spaces ", 100), 3},
		{"NoSpaces", shortOverhead, false, strings.Repeat("1234567890", 100), 3},
		{"LongWord", shortOverhead, false, "short " + strings.Repeat("x", 600), 2},
		{"MultiByte", shortOverhead, false, strings.Repeat("弟ノネセ設程カメ分軽談オイヲ趣英シ破与預ニ細試", 20), 4},
	}

	for _, row := range table {
		t.Run(row.Name, func(t *testing.T) {
			cuts := ircutil.CutMessage(row.Text, row.Overhead)

			for i, cut := range cuts {
				assert.LessOrEqual(t, len(cut), ircutil.LineLimit-row.Overhead, fmt.Sprintf("cut %d is too long", i))
				assert.True(t, utf8.ValidString(cut), fmt.Sprintf("cut %d splits a rune", i))
			}

			sep := ""
			if row.Space {
				sep = " "
			}

			assert.Equal(t, row.Text, strings.Join(cuts, sep))
			assert.Len(t, cuts, row.Cuts)
		})
	}
}

func TestCutMessage_NoRoom(t *testing.T) {
	for _, overhead := range []int{ircutil.LineLimit, ircutil.LineLimit + 10} {
		assert.Equal(t, []string{"hello world"}, ircutil.CutMessage("hello world", overhead))
		assert.Equal(t, []string{"hello world"}, ircutil.CutMessageNoSpace("hello world", overhead))
	}
}
