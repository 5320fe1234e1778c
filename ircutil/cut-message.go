package ircutil

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// LineLimit is the most a line can hold, not counting the CR LF.
const LineLimit = 510

// MessageOverhead calculates the overhead in a `PRIVMSG` sent by a client
// with the given nick, user, host and target name. A `NOTICE` is shorter, so
// it is safe to use the same function for it.
func MessageOverhead(nick, user, host, target string, action bool) int {
	template := ":!@ PRIVMSG  :"
	if action {
		template += "\x01ACTION \x01"
	}

	return len(template) + len(nick) + len(user) + len(host) + len(target)
}

// CutMessage returns cuts of the message with the given overhead, cutting
// between words. Joining the cuts with spaces gives back the text. If there
// are words that don't fit in a cut, it will call CutMessageNoSpace instead.
// If the overhead leaves no room, the text is returned as one cut.
func CutMessage(text string, overhead int) []string {
	cutLength := LineLimit - overhead
	if cutLength <= 0 {
		return []string{text}
	}

	words := strings.Split(text, " ")
	for _, word := range words {
		if len(word) >= cutLength {
			return CutMessageNoSpace(text, overhead)
		}
	}

	result := make([]string, 0, (len(text)/cutLength)+1)
	var current strings.Builder
	current.Grow(cutLength)

	for i, word := range words {
		if i > 0 && current.Len()+1+len(word) > cutLength {
			result = append(result, current.String())
			current.Reset()
		} else if i > 0 {
			current.WriteByte(' ')
		}

		current.WriteString(word)
	}

	return append(result, current.String())
}

// CutMessageNoSpace cuts the message without regard for words, but never in
// the middle of an utf-8 rune. Joining the cuts gives back the text.
func CutMessageNoSpace(text string, overhead int) []string {
	cutLength := LineLimit - overhead
	if cutLength <= 0 {
		return []string{text}
	}

	result := make([]string, 0, (len(text)/cutLength)+1)

	for len(text) > cutLength {
		cut := ircmsg.TruncateUTF8Safe(text, cutLength)
		if cut == "" {
			cut = text[:cutLength]
		}

		result = append(result, cut)
		text = text[len(cut):]
	}

	return append(result, text)
}
