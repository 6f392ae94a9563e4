package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TLSConfig holds TLS-specific configurations.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// ReplicationConfig holds the configuration for the partition replication
// client.
type ReplicationConfig struct {
	LeaderAddress              string    `yaml:"leader_address"` // Address of the active node's replication service
	VBuckets                   []uint16  `yaml:"vbuckets"`       // Partition ids this node replicates
	GracefulStopTimeoutSeconds int       `yaml:"graceful_stop_timeout_seconds"`
	TLS                        TLSConfig `yaml:"tls"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // e.g., "debug", "info", "warn", "error"
	Output string `yaml:"output"` // e.g., "stdout", "file", "none"
	File   string `yaml:"file"`   // Path to the log file, used if output is "file"
}

// Config is the top-level configuration struct.
type Config struct {
	Replication ReplicationConfig `yaml:"replication"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// Load reads configuration from an io.Reader.
// This is the core logic, separated for testability.
func Load(r io.Reader) (*Config, error) {
	// Set default values
	cfg := &Config{
		Replication: ReplicationConfig{
			LeaderAddress:              "localhost:50052",
			VBuckets:                   nil,
			GracefulStopTimeoutSeconds: 30,
			TLS: TLSConfig{
				Enabled:  false,
				CertFile: "certs/server.crt",
				KeyFile:  "certs/server.key",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stdout",
			File:   "nexuskv.log",
		},
	}

	// If the reader is nil, it's like an empty file, return defaults.
	if r == nil {
		return cfg, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data: %w", err)
	}

	// If data is empty, return defaults.
	if len(data) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config data: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a yaml file at path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Load(nil)
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Replication.LeaderAddress == "" {
		return fmt.Errorf("replication.leader_address must not be empty")
	}
	if c.Replication.GracefulStopTimeoutSeconds < 0 {
		return fmt.Errorf("replication.graceful_stop_timeout_seconds must not be negative")
	}
	seen := make(map[uint16]struct{}, len(c.Replication.VBuckets))
	for _, id := range c.Replication.VBuckets {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("replication.vbuckets contains duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	switch c.Logging.Output {
	case "", "stdout", "file", "none":
	default:
		return fmt.Errorf("logging.output %q is not one of stdout, file, none", c.Logging.Output)
	}
	return nil
}
