package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	origArgs := os.Args
	os.Args = []string{"complaintdesk"}
	t.Cleanup(func() { os.Args = origArgs })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "complaintdesk.db", c.DatabaseDSN)
	assert.Equal(t, "admin@cms.local", c.AdminEmail)
	assert.Equal(t, "admin123", c.AdminPassword)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "complaintdesk.db", cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("CDESK_DATABASE_DSN", "env.db")
	t.Setenv("CDESK_LOG_LEVEL", "warn")
	os.Args = []string{"complaintdesk", "-d", "flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DatabaseDSN, "flag must win over env")
	assert.Equal(t, "warn", cfg.LogLevel, "env must win over defaults")
}

func TestLoadConfig_DoubleDashFlagForm(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"complaintdesk", "--d=flag.db", "--l=debug"}

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_UnsetLeavesDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseEnv(cfg)

	assert.Equal(t, "admin@cms.local", cfg.AdminEmail)
}
