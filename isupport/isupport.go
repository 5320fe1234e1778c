package isupport

import (
	"strconv"
	"strings"

	"github.com/gissleh/ircsession/modes"
)

// ISupport is a data structure containing server instructions about
// supported modes, channel types, lengths, prefixes, and so on. It is built
// from the 005 numeric's data, and has helper methods that makes sense
// of it. It belongs to a single session and is not safe for concurrent
// mutation.
type ISupport struct {
	state State
	table *modes.Table
}

// Get gets an isupport key. This is unprocessed data, and a helper should
// be used if available.
func (isupport *ISupport) Get(key string) (value string, ok bool) {
	value, ok = isupport.state.Raw[key]
	return
}

// Number gets a key and converts it to a number.
func (isupport *ISupport) Number(key string) (value int, ok bool) {
	strValue, ok := isupport.state.Raw[key]
	if !ok {
		return 0, ok
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		return value, false
	}

	return value, ok
}

// ParsePrefixedNick parses a full nick into its components.
// Example: "@+HammerTime62" -> `"HammerTime62", "ov", "@+"`
func (isupport *ISupport) ParsePrefixedNick(fullnick string) (nick, modes, prefixes string) {
	if fullnick == "" {
		return fullnick, "", ""
	}

	for i, ch := range fullnick {
		mode := isupport.Mode(ch)
		if mode == 0 {
			return fullnick[i:], modes, prefixes
		}

		modes += string(mode)
		prefixes += string(ch)
	}

	return "", modes, prefixes
}

// Mode gets the mode for the prefix symbol, or 0 if it isn't one.
func (isupport *ISupport) Mode(prefix rune) rune {
	prefixes := isupport.prefixes()
	return prefixes[prefix]
}

// Prefix gets the prefix symbol for the mode. It's a bit slower
// than the other way around, but is a far less frequently
// used.
func (isupport *ISupport) Prefix(mode rune) rune {
	for prefix, mappedMode := range isupport.prefixes() {
		if mappedMode == mode {
			return prefix
		}
	}

	return rune(0)
}

// Highest gets the prefix symbol of the highest ranked status mode among the
// flags, or 0 if none of them are status modes.
func (isupport *ISupport) Highest(flags string) rune {
	order := isupport.state.ModeOrder
	if isupport.state.Prefixes == nil {
		order = DefaultModeOrder
	}

	for _, mode := range order {
		if strings.ContainsRune(flags, mode) {
			return isupport.Prefix(mode)
		}
	}

	return rune(0)
}

// IsChannel returns whether the target name is a channel.
func (isupport *ISupport) IsChannel(targetName string) bool {
	if targetName == "" {
		return false
	}

	chantypes, ok := isupport.state.Raw["CHANTYPES"]
	if !ok {
		chantypes = DefaultChanTypes
	}

	return strings.IndexByte(chantypes, targetName[0]) != -1
}

// ModeTable gets the mode table built from CHANMODES and PREFIX, or
// modes.Default if the server hasn't sent either.
func (isupport *ISupport) ModeTable() *modes.Table {
	if isupport.table == nil {
		return modes.Default
	}

	return isupport.table
}

// Set sets an isupport key, and related structs. This should only be used
// if a 005 packet contains the Key-Value pair or if it can be "polyfilled"
// in some other way.
func (isupport *ISupport) Set(key, value string) {
	key = strings.ToUpper(key)

	if isupport.state.Raw == nil {
		isupport.state.Raw = make(map[string]string, 32)
	}

	isupport.state.Raw[key] = value

	switch key {
	case "PREFIX": // PREFIX=(ov)@+
		{
			isupport.state.ModeOrder = ""
			isupport.state.PrefixOrder = ""
			isupport.state.Prefixes = nil

			split := strings.SplitN(strings.TrimPrefix(value, "("), ")", 2)
			if strings.HasPrefix(value, "(") && len(split) == 2 && len(split[0]) == len(split[1]) {
				isupport.state.ModeOrder = split[0]
				isupport.state.PrefixOrder = split[1]
				isupport.state.Prefixes = make(map[rune]rune, len(split[0]))
				for i, ch := range split[0] {
					isupport.state.Prefixes[rune(split[1][i])] = ch
				}
			}

			isupport.rebuildTable()
		}
	case "CHANMODES": // CHANMODES=eIbq,k,flj,CFLNPQcgimnprstz
		{
			isupport.state.ChannelModes = strings.Split(value, ",")
			isupport.rebuildTable()
		}
	}
}

// ParseTokens sets every KEY=value token of a 005 reply. Tokens starting with
// '-' remove the key, as servers do when a feature is withdrawn.
func (isupport *ISupport) ParseTokens(tokens []string) {
	for _, token := range tokens {
		if strings.HasPrefix(token, "-") {
			isupport.Unset(token[1:])
			continue
		}

		kvpair := strings.SplitN(token, "=", 2)
		if len(kvpair) == 2 {
			isupport.Set(kvpair[0], kvpair[1])
		} else {
			isupport.Set(kvpair[0], "")
		}
	}
}

// Unset removes a key. Removing PREFIX or CHANMODES falls back on the defaults.
func (isupport *ISupport) Unset(key string) {
	key = strings.ToUpper(key)
	delete(isupport.state.Raw, key)

	switch key {
	case "PREFIX":
		isupport.state.ModeOrder = ""
		isupport.state.PrefixOrder = ""
		isupport.state.Prefixes = nil
		isupport.rebuildTable()
	case "CHANMODES":
		isupport.state.ChannelModes = nil
		isupport.rebuildTable()
	}
}

// State gets a copy of the isupport state.
func (isupport *ISupport) State() *State {
	return isupport.state.Copy()
}

// Reset clears everything.
func (isupport *ISupport) Reset() {
	isupport.state.PrefixOrder = ""
	isupport.state.ModeOrder = ""
	isupport.state.Prefixes = nil
	isupport.state.ChannelModes = nil
	isupport.table = nil

	for key := range isupport.state.Raw {
		delete(isupport.state.Raw, key)
	}
}

func (isupport *ISupport) prefixes() map[rune]rune {
	if isupport.state.Prefixes == nil {
		return defaultPrefixes
	}

	return isupport.state.Prefixes
}

func (isupport *ISupport) rebuildTable() {
	if isupport.state.Prefixes == nil && isupport.state.ChannelModes == nil {
		isupport.table = nil
		return
	}

	blocks := [4]string{"beI", "", "kl", "imnpst"}
	if isupport.state.ChannelModes != nil {
		blocks = [4]string{}
		copy(blocks[:], isupport.state.ChannelModes)
	}

	statuses := DefaultModeOrder
	if isupport.state.Prefixes != nil {
		statuses = isupport.state.ModeOrder
	}

	isupport.table = modes.NewTable(blocks[0], blocks[1], blocks[2], blocks[3], statuses)
}
