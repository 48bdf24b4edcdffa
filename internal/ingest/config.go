package ingest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml configs can use strings like "250ms"
// or "1m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// Config holds the ingestion server configuration.
type Config struct {
	// Network settings
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`

	// Event stream settings
	MaxMessageSize int64 `yaml:"max_message_size"`

	// Observability
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    Duration{60 * time.Second},
		WriteTimeout:   Duration{10 * time.Second},
		MaxMessageSize: 64 * 1024,
		LogLevel:       "info",
	}
}

// LoadConfig reads a yaml config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("max_message_size must be positive, got %d", c.MaxMessageSize)
	}
	if c.ReadTimeout.Duration < 0 {
		return fmt.Errorf("read_timeout must not be negative, got %s", c.ReadTimeout.Duration)
	}
	if c.WriteTimeout.Duration < 0 {
		return fmt.Errorf("write_timeout must not be negative, got %s", c.WriteTimeout.Duration)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
