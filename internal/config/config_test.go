package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "pcimon", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)

	assert.Equal(t, filepath.Join("data", "pci_requirements.yaml"), cfg.Data.RequirementsPath())
	assert.Equal(t, filepath.Join("data", "simulated_control_status.json"), cfg.Data.ControlStatusPath())
	assert.Equal(t, filepath.Join("data", "simulated_findings.json"), cfg.Data.FindingsPath())
	assert.Equal(t, filepath.Join("data", "simulated_trend.json"), cfg.Data.TrendPath())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  environment: production
server:
  http_port: 9090
data:
  dir: /var/lib/pcimon
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, filepath.Join("/var/lib/pcimon", "simulated_findings.json"), cfg.Data.FindingsPath())
	assert.False(t, cfg.Metrics.Enabled)

	// Unset keys keep their defaults
	assert.Equal(t, "pcimon", cfg.App.Name)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PCIMON_SERVER_HTTP_PORT", "7070")
	t.Setenv("PCIMON_DATA_DIR", "/srv/compliance")

	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, filepath.Join("/srv/compliance", "pci_requirements.yaml"), cfg.Data.RequirementsPath())
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
