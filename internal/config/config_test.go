package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCKWATCH_AGENT_TOKEN", "test-token")

	// Point at an empty temp dir so a developer's local config.yaml is not picked up
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Agent.Token)
	assert.Equal(t, "0.0.0.0", cfg.Agent.Host)
	assert.Equal(t, 8080, cfg.Agent.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/", cfg.Host.DiskPath)
	assert.NotEmpty(t, cfg.Docker.SocketPath)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := `
agent:
  token: file-token
  host: 127.0.0.1
  port: 9000
docker:
  socket_path: unix:///tmp/docker.sock
log:
  level: debug
host:
  disk_path: /data
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Agent.Token)
	assert.Equal(t, "127.0.0.1", cfg.Agent.Host)
	assert.Equal(t, 9000, cfg.Agent.Port)
	assert.Equal(t, "unix:///tmp/docker.sock", cfg.Docker.SocketPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data", cfg.Host.DiskPath)
	assert.Equal(t, cfgPath, cfg.ConfigFilePath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOCKWATCH_AGENT_TOKEN", "env-token")
	t.Setenv("DOCKWATCH_LOG_LEVEL", "warn")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("agent:\n  host: 127.0.0.1\n"), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Agent.Token)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingToken(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("agent:\n  port: 8080\n"), 0o600))

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent.token is required")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Agent:  AgentConfig{Token: "t", Host: "0.0.0.0", Port: 8080},
		Docker: DockerConfig{SocketPath: "unix:///var/run/docker.sock"},
		Log:    LogConfig{Level: "info"},
		Host:   HostConfig{DiskPath: "/"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Agent.Token = "" },
			wantErr: "agent.token is required",
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Agent.Port = 0 },
			wantErr: "agent.port must be between",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Agent.Port = 70000 },
			wantErr: "agent.port must be between",
		},
		{
			name:    "missing socket path",
			mutate:  func(c *Config) { c.Docker.SocketPath = "" },
			wantErr: "docker.socket_path is required",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level must be one of",
		},
		{
			name:    "missing disk path",
			mutate:  func(c *Config) { c.Host.DiskPath = "" },
			wantErr: "host.disk_path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
