package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid stdio",
			config: Config{Spec: "openapi.yaml", Transport: "stdio"},
		},
		{
			name:   "valid http",
			config: Config{Spec: "openapi.yaml", Transport: "http", Addr: "localhost:8080"},
		},
		{
			name:    "missing spec",
			config:  Config{Transport: "stdio"},
			wantErr: "spec file is required",
		},
		{
			name:    "invalid transport",
			config:  Config{Spec: "openapi.yaml", Transport: "grpc"},
			wantErr: "invalid transport",
		},
		{
			name:    "http without addr",
			config:  Config{Spec: "openapi.yaml", Transport: "http"},
			wantErr: "addr is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cmd := newTestCommand(t, "--spec", "openapi.yaml")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "openapi.yaml", cfg.Spec)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.False(t, cfg.ValidateSpec)
}

func TestLoadMissingSpec(t *testing.T) {
	cmd := newTestCommand(t)

	_, err := Load(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec file is required")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "spec: from-file.yaml\ntransport: http\naddr: 0.0.0.0:9090\nvalidate: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := newTestCommand(t, "--config", path)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "from-file.yaml", cfg.Spec)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
	assert.True(t, cfg.ValidateSpec)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "spec: from-file.yaml\ntransport: http\naddr: 0.0.0.0:9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := newTestCommand(t, "--config", path, "--spec", "from-flag.yaml", "--transport", "stdio")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.yaml", cfg.Spec)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestLoadMissingConfigFile(t *testing.T) {
	cmd := newTestCommand(t, "--config", "/nonexistent/config.yaml", "--spec", "openapi.yaml")

	_, err := Load(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
