// Package config loads the agent configuration from the environment and the command line.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/ilexum-group/ohos-deviceinfo/internal/export"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "OHOS_DEVICEINFO_"

var (
	// ErrInvalidFormat is returned for an output format export.ParseFormat rejects.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidTimeout is returned for a non-positive HTTP timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
)

// Config holds the configuration for the agent
type Config struct {
	// ServerURL receives the report as JSON. Sending is disabled when empty.
	ServerURL  string `env:"SERVER_URL"`
	AgentToken string `env:"AGENT_TOKEN"`

	Format     string `env:"FORMAT" envDefault:"json"`
	OutputPath string `env:"OUTPUT"`
	// StorePath is the sqlite report history. Disabled when empty.
	StorePath string `env:"STORE"`

	IncludeHost bool          `env:"INCLUDE_HOST" envDefault:"true"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
	Verbose     bool          `env:"VERBOSE"`

	ShowVersion bool
}

// Load reads the configuration from environment variables only.
func Load() (*Config, error) {
	return LoadFromFlags(nil)
}

// LoadFromFlags reads environment variables and then applies command-line
// flags on top of them.
func LoadFromFlags(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := pflag.NewFlagSet("ohos-deviceinfo", pflag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "server-url", cfg.ServerURL, "URL receiving the report as JSON (disabled when empty)")
	fs.StringVar(&cfg.AgentToken, "agent-token", cfg.AgentToken, "bearer token sent with the report")
	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: json, yaml (yml) or plist")
	fs.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "write the report to this file, or into this directory, instead of stdout")
	fs.StringVar(&cfg.StorePath, "store", cfg.StorePath, "sqlite database keeping the report history")
	fs.BoolVar(&cfg.IncludeHost, "include-host", cfg.IncludeHost, "add host facts (kernel, memory, uptime) to the report")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout for sending the report")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log every native query")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print the agent version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be enforced by the parsers.
// Format is normalized to its canonical name, so "YML" becomes "yaml".
func (c *Config) Validate() error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	c.Format = string(format)
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	return nil
}

// SendEnabled reports whether the report should be sent to a server.
func (c *Config) SendEnabled() bool {
	return c.ServerURL != ""
}
