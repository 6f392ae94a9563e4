package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:50052", cfg.Replication.LeaderAddress)
	assert.Equal(t, 30, cfg.Replication.GracefulStopTimeoutSeconds)
	assert.False(t, cfg.Replication.TLS.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)

	cfg, err = Load(strings.NewReader(""))
	require.NoError(t, err, "An empty file should yield the defaults")
	assert.Equal(t, "localhost:50052", cfg.Replication.LeaderAddress)
}

func TestLoad_FullConfig(t *testing.T) {
	yaml := `
replication:
  leader_address: "leader.internal:7100"
  vbuckets: [0, 1, 2]
  graceful_stop_timeout_seconds: 10
  tls:
    enabled: true
    cert_file: "tls/node.crt"
    key_file: "tls/node.key"
logging:
  level: "warn"
  output: "file"
  file: "follower.log"
`
	cfg, err := Load(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "leader.internal:7100", cfg.Replication.LeaderAddress)
	assert.Equal(t, []uint16{0, 1, 2}, cfg.Replication.VBuckets)
	assert.Equal(t, 10, cfg.Replication.GracefulStopTimeoutSeconds)
	assert.True(t, cfg.Replication.TLS.Enabled)
	assert.Equal(t, "tls/node.crt", cfg.Replication.TLS.CertFile)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "follower.log", cfg.Logging.File)
}

func TestLoad_PartialOverride(t *testing.T) {
	cfg, err := Load(strings.NewReader("logging:\n  level: \"debug\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "localhost:50052", cfg.Replication.LeaderAddress, "Unset sections keep their defaults")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "replication: ["},
		{"empty leader address", "replication:\n  leader_address: \"\"\n"},
		{"negative stop timeout", "replication:\n  graceful_stop_timeout_seconds: -1\n"},
		{"duplicate vbucket", "replication:\n  vbuckets: [3, 3]\n"},
		{"bad logging output", "logging:\n  output: \"syslog\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile("does-not-exist.yaml")
	require.NoError(t, err, "A missing config file should yield the defaults")
	assert.Equal(t, "localhost:50052", cfg.Replication.LeaderAddress)
}
