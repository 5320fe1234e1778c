// Package config loads session configs from YAML or TOML files, with
// overrides from the environment and .env files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	irc "github.com/gissleh/ircsession"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown format")

// ErrInvalid is wrapped around validation failures.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix is put in front of the variable names LoadEnv looks for.
const EnvPrefix = "IRC_"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report the names used in the files rather than the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Load reads the file at path, applies the environment on top of it and
// validates the result. The format is picked from the file extension.
func Load(path string) (irc.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return irc.Config{}, err
	}

	config, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return irc.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := ApplyEnv(&config, os.LookupEnv); err != nil {
		return irc.Config{}, err
	}

	return config, Validate(config)
}

// Parse decodes a config. The format is "yaml", "yml" or "toml", with or
// without a leading dot.
func Parse(data []byte, format string) (irc.Config, error) {
	config := irc.Config{}

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&config); err != nil {
			return irc.Config{}, err
		}
	case "toml":
		meta, err := toml.Decode(string(data), &config)
		if err != nil {
			return irc.Config{}, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return irc.Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		return irc.Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return config, nil
}

// LoadEnv applies the variables from the .env files, then the process
// environment, to the config. Variables set in the process win. Missing files
// are skipped.
func LoadEnv(config *irc.Config, files ...string) error {
	values := make(map[string]string)

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}

		fileValues, err := godotenv.Read(file)
		if err != nil {
			return err
		}

		for key, value := range fileValues {
			values[key] = value
		}
	}

	return ApplyEnv(config, func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}

		value, ok := values[key]
		return value, ok
	})
}

// ApplyEnv overrides config fields with IRC_NICK, IRC_ALTERNATIVES,
// IRC_USER, IRC_REALNAME, IRC_PASSWORD, IRC_CAPABILITIES, IRC_STRICT,
// IRC_TIMEOUT and IRC_IDLE_INTERVAL. Lists are comma separated and durations
// use time.ParseDuration.
func ApplyEnv(config *irc.Config, lookup func(key string) (string, bool)) error {
	get := func(name string) (string, bool) {
		value, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(value), ok
	}

	if value, ok := get("NICK"); ok {
		config.Nick = value
	}
	if value, ok := get("ALTERNATIVES"); ok {
		config.Alternatives = splitList(value)
	}
	if value, ok := get("USER"); ok {
		config.User = value
	}
	if value, ok := get("REALNAME"); ok {
		config.RealName = value
	}
	if value, ok := get("PASSWORD"); ok {
		config.Password = value
	}
	if value, ok := get("CAPABILITIES"); ok {
		config.Capabilities = splitList(value)
	}
	if value, ok := get("STRICT"); ok {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%sSTRICT: %w", EnvPrefix, err)
		}

		config.Strict = strict
	}

	durations := []struct {
		name  string
		field *time.Duration
	}{
		{"TIMEOUT", &config.Timeout},
		{"IDLE_INTERVAL", &config.IdleInterval},
	}
	for _, duration := range durations {
		value, ok := get(duration.name)
		if !ok {
			continue
		}

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, duration.name, err)
		}

		*duration.field = parsed
	}

	return nil
}

// Validate checks the fields of the config. Zero values are allowed, since
// irc.New fills them in.
func Validate(config irc.Config) error {
	if err := validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fieldErr.Namespace()+" ("+fieldErr.Tag()+")")
			}

			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}

		return err
	}

	return nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	list := strings.Split(value, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}

	return list
}
