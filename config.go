package irc

import (
	"strconv"
	"time"
)

// Defaults for the timing fields of Config.
const (
	DefaultTimeout      = 5 * time.Minute
	DefaultIdleInterval = time.Second
)

// The Config for an IRC session.
type Config struct {
	// The nick that you go by. By default it's "IrcUser"
	Nick string `json:"nick" yaml:"nick" toml:"nick" validate:"omitempty,max=32,excludesall= :!@"`

	// Alternatives are a list of nicks to try if Nick is occupied, in order of preference. By default
	// it's your nick with numbers 1 through 9.
	Alternatives []string `json:"alternatives" yaml:"alternatives" toml:"alternatives" validate:"dive,required,max=32,excludesall= :!@"`

	// User is sent along with all messages and commonly shown before the @ on join, quit, etc....
	// Some servers tack on a ~ in front of it if you do not have an ident server.
	User string `json:"user" yaml:"user" toml:"user" validate:"omitempty,max=16,excludesall= @"`

	// RealName is shown in WHOIS as your real name. By default "..."
	RealName string `json:"realName" yaml:"realName" toml:"realName" validate:"max=64"`

	// The Password used upon connection. This is not your NickServ/SASL password!
	Password string `json:"password" yaml:"password" toml:"password"`

	// Capabilities are requested if the server offers them. No CAP negotiation
	// happens if it's empty.
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities" validate:"dive,required,excludesall= "`

	// Strict makes the session's parser report truncated lines instead of
	// dispatching them.
	Strict bool `json:"strict" yaml:"strict" toml:"strict"`

	// Limits are the parser's field capacities.
	Limits Limits `json:"limits" yaml:"limits" toml:"limits"`

	// Timeout is how long the server may be silent before it's pinged. Five
	// minutes by default.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout" validate:"gte=0"`

	// IdleInterval is the time between idle events. One second by default.
	IdleInterval time.Duration `json:"idleInterval" yaml:"idleInterval" toml:"idleInterval" validate:"gte=0"`
}

// WithDefaults returns the config with the default values
func (config Config) WithDefaults() Config {
	if config.Nick == "" {
		config.Nick = "IrcUser"
	}
	if config.User == "" {
		config.User = "IrcUser"
	}
	if config.RealName == "" {
		config.RealName = "..."
	}

	if len(config.Alternatives) == 0 {
		config.Alternatives = make([]string, 9)
		for i := 0; i < 9; i++ {
			config.Alternatives[i] = config.Nick + strconv.FormatInt(int64(i+1), 10)
		}
	}

	config.Limits = config.Limits.WithDefaults()

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.IdleInterval == 0 {
		config.IdleInterval = DefaultIdleInterval
	}

	return config
}
