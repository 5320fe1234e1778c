package ircutil

import "strings"

// ParseCTCP splits a CTCP message like "\x01VERSION\x01" into its verb and
// arguments. The closing \x01 is optional, since some clients leave it out.
func ParseCTCP(text string) (verb, args string, ok bool) {
	if len(text) < 2 || text[0] != '\x01' {
		return "", "", false
	}

	text = strings.TrimSuffix(text[1:], "\x01")
	verb, args = ParseArgAndText(text)
	if verb == "" {
		return "", "", false
	}

	return strings.ToUpper(verb), args, true
}

// FormatCTCP makes a CTCP message. The args may be empty.
func FormatCTCP(verb, args string) string {
	if args == "" {
		return "\x01" + verb + "\x01"
	}

	return "\x01" + verb + " " + args + "\x01"
}
