// Package config resolves run settings from defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultEncoding   = "auto"
	DefaultSuffix     = "shifted"
	DefaultTimeFormat = "HH:MM:SS,mmm"

	// Keys shared by the config file and flags
	KeyEncoding   = "encoding"
	KeySuffix     = "suffix"
	KeyVerbose    = "verbose"
	KeyTimeFormat = "time-format"
)

type Config struct {
	Encoding string `mapstructure:"encoding"`
	Suffix   string `mapstructure:"suffix"` // appended before the extension of derived output names
	Verbose  bool   `mapstructure:"verbose"`
	// layout of timing lines, HH:MM:SS,mmm or HH:MM:SS.mmm
	TimeFormat string `mapstructure:"time-format"`
}

// Load reads the YAML file at path when path is non-empty. Flags that the
// user set explicitly override file values; the file overrides defaults.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyEncoding, DefaultEncoding)
	v.SetDefault(KeySuffix, DefaultSuffix)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyTimeFormat, DefaultTimeFormat)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyEncoding, KeySuffix, KeyVerbose, KeyTimeFormat} {
			flag := flags.Lookup(key)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
