// filepath: internal/cli/root_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"habithub/internal/config"
	"habithub/internal/models"
	"habithub/internal/services/mocks"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals resets the global config and flags between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	cfg = nil
	host = ""
	port = 0
	logLevel = ""
	dbPath = ""
	initConfig = ""
	auditEnabled = false
	seedEnabled = false
	cfgFile = filepath.Join(t.TempDir(), "nonexistent.toml")
}

// newTestCommand returns a command carrying the same flags as RootCmd.
func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	var unused string
	cmd.Flags().StringVar(&unused, "config_path", "", "")
	cmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "")
	cmd.Flags().BoolVar(&seedEnabled, "seed", false, "")
	return cmd
}

func TestConfigPrecedence(t *testing.T) {
	// RootCmd.Execute() would start the server, so initializeConfig is tested directly.

	t.Run("Defaults", func(t *testing.T) {
		resetGlobals(t)

		require.NoError(t, initializeConfig(newTestCommand()))

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "habithub.db", cfg.Database.Path)
		assert.Equal(t, 30, cfg.Seed.Days)
		assert.False(t, cfg.Seed.Enabled)
		assert.Equal(t, time.Hour, cfg.HousekeepingInterval)
		assert.False(t, cfg.Housekeeping.DeleteUnparseable)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("HABITHUB_SERVER_PORT", "9090")
		t.Setenv("HABITHUB_LOGGING_LEVEL", "warn")
		t.Setenv("HABITHUB_DATABASE_PATH", "/tmp/env.db")
		t.Setenv("HABITHUB_SEED_ENABLED", "true")
		t.Setenv("HABITHUB_SEED_DAYS", "14")
		t.Setenv("HABITHUB_CACHE_TTL", "30s")
		t.Setenv("HABITHUB_HOUSEKEEPING_INTERVAL", "6h")
		t.Setenv("HABITHUB_HOUSEKEEPING_MAX_AGE", "365d")
		t.Setenv("HABITHUB_HOUSEKEEPING_DELETE_UNPARSEABLE", "true")

		require.NoError(t, initializeConfig(newTestCommand()))

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
		assert.True(t, cfg.Seed.Enabled)
		assert.Equal(t, 14, cfg.Seed.Days)
		assert.Equal(t, "30s", cfg.CacheTTL.String())
		assert.Equal(t, 6*time.Hour, cfg.HousekeepingInterval)
		assert.Equal(t, 365*24*time.Hour, cfg.CompletionMaxAge)
		assert.True(t, cfg.Housekeeping.DeleteUnparseable)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("HABITHUB_SERVER_PORT", "9090")
		t.Setenv("HABITHUB_LOGGING_AUDIT_ENABLED", "true")

		port = 7070
		cmd := newTestCommand()
		require.NoError(t, cmd.Flags().Set("audit-enabled", "false"))

		require.NoError(t, initializeConfig(cmd))

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.False(t, cfg.Logging.AuditEnabled)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		resetGlobals(t)

		content := []byte(`
[server]
port = 6060
[logging]
level = "error"
audit_enabled = true
[seed]
enabled = true
days = 7
`)
		cfgFile = filepath.Join(t.TempDir(), "test_config.toml")
		require.NoError(t, os.WriteFile(cfgFile, content, 0644))

		require.NoError(t, initializeConfig(newTestCommand()))

		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.True(t, cfg.Logging.AuditEnabled)
		assert.Equal(t, 7, cfg.Seed.Days)
	})

	t.Run("Config Path From Environment", func(t *testing.T) {
		resetGlobals(t)
		path := filepath.Join(t.TempDir(), "env_config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 5050\n"), 0644))
		t.Setenv("HABITHUB_CONFIG_PATH", path)

		require.NoError(t, initializeConfig(newTestCommand()))
		assert.Equal(t, 5050, cfg.Server.Port)
	})

	t.Run("Invalid Config", func(t *testing.T) {
		resetGlobals(t)
		t.Setenv("HABITHUB_CACHE_TTL", "forever")
		assert.Error(t, initializeConfig(newTestCommand()))
	})
}

func TestApplyOverrides(t *testing.T) {
	resetGlobals(t)
	c := &config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Logging: config.LoggingConfig{Level: "info"},
	}

	port = 9999
	logLevel = "debug"
	dbPath = "flag.db"
	host = "127.0.0.1"

	applyOverrides(c, newTestCommand(), newEnv())

	assert.Equal(t, 9999, c.Server.Port)
	assert.Equal(t, "127.0.0.1", c.Server.Host)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "flag.db", c.Database.Path)
}

func TestWriteConfig(t *testing.T) {
	resetGlobals(t)
	t.Setenv("HABITHUB_SERVER_PORT", "7070")
	t.Setenv("HABITHUB_HOUSEKEEPING_MAX_AGE", "90d")
	require.NoError(t, initializeConfig(newTestCommand()))

	out := filepath.Join(t.TempDir(), "generated.toml")
	require.NoError(t, writeConfig(out))

	written, err := config.LoadConfig(out)
	require.NoError(t, err)
	assert.Equal(t, 7070, written.Server.Port)
	assert.Equal(t, "90d", written.Housekeeping.MaxAge)
	assert.Equal(t, "1h", written.Housekeeping.Interval)
	assert.Equal(t, "habithub.db", written.Database.Path)

	assert.Error(t, writeConfig(filepath.Join(t.TempDir(), "missing", "out.toml")))
}

func TestPrintStreak(t *testing.T) {
	analytics := new(mocks.MockAnalyticsService)
	id := int64(4)
	analytics.On("LongestStreakOverall").Return(&models.BestStreak{HabitID: &id, Streak: 12}, nil).Once()
	analytics.On("LongestStreakForHabit", int64(2)).Return(&models.HabitStreak{HabitID: 2, Streak: 3}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, printStreak(&buf, analytics, 0))
	var best models.BestStreak
	require.NoError(t, json.Unmarshal(buf.Bytes(), &best))
	assert.Equal(t, 12, best.Streak)

	buf.Reset()
	require.NoError(t, printStreak(&buf, analytics, 2))
	assert.JSONEq(t, `{"habit_id":2,"streak":3}`, buf.String())

	analytics.AssertExpectations(t)
}
