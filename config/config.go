// Package config loads the HTTP server configuration from an optional YAML
// file, CPUSCHED_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "CPUSCHED"

	KeyPort        = "port"
	KeyQuantum     = "scheduler.round_robin.time_quantum"
	KeyMaxMakespan = "max_makespan"
	KeyLogLevel    = "log_level"

	DefaultPort        = 9095
	DefaultLevel       = "info"
	DefaultMaxMakespan = 1_000_000
)

// ServerConfig is the resolved configuration of `cpusched serve`.
type ServerConfig struct {
	Port           int
	DefaultQuantum int64 // used for Round Robin when a request carries no quantum; 0 = none
	MaxMakespan    int64 // requests whose latest arrival plus total burst exceeds this are rejected
	LogLevel       string
}

// FlagKeys maps command-line flag names to config keys for Load.
var FlagKeys = map[string]string{
	"port":         KeyPort,
	"quantum":      KeyQuantum,
	"max-makespan": KeyMaxMakespan,
	"log":          KeyLogLevel,
}

// Load resolves a ServerConfig. With an empty path, config.yaml in the
// working directory is read if present. Flags in flags that the user set
// override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*ServerConfig, error) {
	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyQuantum, 0)
	v.SetDefault(KeyMaxMakespan, DefaultMaxMakespan)
	v.SetDefault(KeyLogLevel, DefaultLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debugf("No config.yaml found, using defaults")
	} else {
		logrus.Infof("Loaded server config from %s", v.ConfigFileUsed())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &ServerConfig{
		Port:           v.GetInt(KeyPort),
		DefaultQuantum: v.GetInt64(KeyQuantum),
		MaxMakespan:    v.GetInt64(KeyMaxMakespan),
		LogLevel:       v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the port range, quantum sign, makespan limit and log level name.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DefaultQuantum < 0 {
		return fmt.Errorf("invalid round robin time quantum %d", c.DefaultQuantum)
	}
	if c.MaxMakespan <= 0 {
		return fmt.Errorf("invalid max makespan %d", c.MaxMakespan)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
