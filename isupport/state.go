package isupport

// Defaults assumed until the server's 005 says otherwise.
const (
	DefaultChanTypes   = "#&"
	DefaultModeOrder   = "ov"
	DefaultPrefixOrder = "@+"
)

var defaultPrefixes = map[rune]rune{'@': 'o', '+': 'v'}

// State is a copy of what the server has told about itself, for snapshots.
// Prefixes maps prefix symbols to status mode letters.
type State struct {
	Raw          map[string]string `json:"raw"`
	Prefixes     map[rune]rune     `json:"-"`
	ModeOrder    string            `json:"modeOrder"`
	PrefixOrder  string            `json:"prefixOrder"`
	ChannelModes []string          `json:"channelModes"`
}

// Copy makes a deep copy, except for Prefixes which is never changed in place.
func (state *State) Copy() *State {
	stateCopy := *state
	stateCopy.Raw = make(map[string]string, len(state.Raw))
	for key, value := range state.Raw {
		stateCopy.Raw[key] = value
	}
	stateCopy.ChannelModes = append([]string(nil), state.ChannelModes...)

	return &stateCopy
}
