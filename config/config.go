// Package config loads logger settings from a config file, environment variables
// and command-line flags using Viper.
//
// Precedence, highest first: flags, SHAREDLOG_* environment variables, the config
// file, defaults. Recognised keys:
//
//	level:      off | normal | verbose   (default normal)
//	info_file:  path informational output is appended to
//	error_file: path error output is appended to
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/rgpaul/sharedlog/logger"
)

// DefaultEnvPrefix is used when Options.EnvPrefix is empty.
const DefaultEnvPrefix = "SHAREDLOG"

// Keys understood by Load.
const (
	KeyLevel     = "level"
	KeyInfoFile  = "info_file"
	KeyErrorFile = "error_file"
)

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"level":      KeyLevel,
	"info-file":  KeyInfoFile,
	"error-file": KeyErrorFile,
}

var (
	// ErrInvalidConfig indicates the loaded settings failed validation.
	ErrInvalidConfig = errors.New("invalid logger configuration")

	// ErrReadConfig indicates the config file could not be read or parsed.
	ErrReadConfig = errors.New("cannot read logger configuration")
)

// Settings is the validated logger configuration.
type Settings struct {
	Level     string `mapstructure:"level" validate:"oneof=off normal verbose"`
	InfoFile  string `mapstructure:"info_file" validate:"omitempty,filepath"`
	ErrorFile string `mapstructure:"error_file" validate:"omitempty,filepath"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an optional yaml/json/toml file. Empty skips file loading.
	ConfigFile string
	// EnvPrefix prefixes environment variables. Default: DefaultEnvPrefix.
	EnvPrefix string
	// Flags, when set, are bound so that explicitly set flags win over every other source.
	Flags *pflag.FlagSet
}

// Target is what Apply configures; *logger.Logger satisfies it.
type Target interface {
	SetLevel(logger.Level)
	UseInfoFile(path string) error
	UseErrorFile(path string) error
}

var validate = validator.New()

// Load reads settings from the configured sources and validates them.
func Load(opts Options) (Settings, error) {
	v := viper.New()

	v.SetDefault(KeyLevel, logger.NormalLevel.String())
	v.SetDefault(KeyInfoFile, "")
	v.SetDefault(KeyErrorFile, "")

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("%w %s: %w", ErrReadConfig, opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	s.Level = strings.ToLower(strings.TrimSpace(s.Level))

	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s, nil
}

// Apply pushes s into t. The level is always applied; file redirections are
// attempted independently and their errors are combined.
func Apply(t Target, s Settings) error {
	level, err := logger.ParseLevel(s.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	t.SetLevel(level)

	var errs error
	if s.InfoFile != "" {
		errs = multierr.Append(errs, t.UseInfoFile(s.InfoFile))
	}
	if s.ErrorFile != "" {
		errs = multierr.Append(errs, t.UseErrorFile(s.ErrorFile))
	}
	return errs
}
