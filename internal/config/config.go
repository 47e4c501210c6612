// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Mode selects the list container variant.
type Mode string

const (
	ModeBackend Mode = "backend" // remote REST service owns the collection
	ModeMemory  Mode = "memory"  // nothing persisted, state lives for one session
)

// Default values.
const (
	DefaultAPIURL         = "http://localhost:5000/api/todos"
	DefaultMode           = ModeBackend
	DefaultTheme          = "classic"
	DefaultLogLevel       = "warn"
	DefaultDevserverLevel = "info"
	DefaultLogFormat      = "text"
	DefaultDevserverAddr  = ":5000"
)

// Config holds the full configuration for the todo client.
type Config struct {
	APIURL string `toml:"api_url" yaml:"api_url"`
	Mode   Mode   `toml:"mode" yaml:"mode"`
	Token  string `toml:"token" yaml:"token"`

	// 0 leaves requests without an application deadline.
	RequestTimeout time.Duration `toml:"request_timeout" yaml:"request_timeout"`

	Theme string `toml:"theme" yaml:"theme"`

	LogLevel  string `toml:"log_level" yaml:"log_level"`   // debug | info | warn | error
	LogFormat string `toml:"log_format" yaml:"log_format"` // text | json | logfmt
	LogFile   string `toml:"log_file" yaml:"log_file"`     // empty => TUI logs are discarded

	// In-memory variant start state.
	SeedFile string `toml:"seed_file" yaml:"seed_file"`
	Demo     bool   `toml:"demo" yaml:"demo"`

	DevserverAddr string `toml:"devserver_addr" yaml:"devserver_addr"`

	// Flag-only.
	Group      bool     `toml:"-" yaml:"-"`
	ConfigFile string   `toml:"-" yaml:"-"` // file actually loaded, if any
	Args       []string `toml:"-" yaml:"-"` // positional args left after flags

	logLevelSet bool // log_level came from a file, env or flag
}

func setDefaults(cfg *Config) {
	cfg.APIURL = DefaultAPIURL
	cfg.Mode = DefaultMode
	cfg.Theme = DefaultTheme
	cfg.LogFormat = DefaultLogFormat
	cfg.DevserverAddr = DefaultDevserverAddr
}

// resolveLogLevel fills in the default level and remembers whether the user
// picked one.
func (c *Config) resolveLogLevel() {
	c.logLevelSet = c.LogLevel != ""
	if !c.logLevelSet {
		c.LogLevel = DefaultLogLevel
	}
}

// DevserverLogLevel is log_level when set, otherwise info so the access log
// is visible.
func (c *Config) DevserverLogLevel() string {
	if c.logLevelSet {
		return c.LogLevel
	}
	return DefaultDevserverLevel
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_url %q: want an absolute http(s) URL", c.APIURL)
	}
	switch c.Mode {
	case ModeBackend, ModeMemory:
	default:
		return fmt.Errorf("mode %q: want backend or memory", c.Mode)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout %s: must not be negative", c.RequestTimeout)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme %q: want classic, neon or mono", c.Theme)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	return nil
}
