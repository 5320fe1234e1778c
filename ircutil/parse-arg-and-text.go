package ircutil

import (
	"strings"
)

// ParseArgAndText parses a text like "#Channel stuff and things" into "#Channel"
// and "stuff and things". This is commonly used for input commands which has
// no standard. Extra spaces after the argument are skipped.
func ParseArgAndText(s string) (arg, text string) {
	arg, text, _ = strings.Cut(strings.TrimLeft(s, " "), " ")
	return arg, strings.TrimLeft(text, " ")
}
