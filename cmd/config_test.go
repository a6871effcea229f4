package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"depot/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, []string{"eng"}, cfg.OCR.Languages)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, 5, cfg.Reminder.AfterDays)
	assert.False(t, cfg.CallSystem.Enabled())

	region, err := cfg.Region.Region()
	require.NoError(t, err)
	assert.Equal(t, "Elliot Lake, ON", region.Locality())
}

func TestLoadConfig_DotEnvAndEnvironment(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("DEPOT_TEST_UNUSED=1\nREMINDER_AFTER_DAYS=7\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DEPOT_TEST_UNUSED")
		_ = os.Unsetenv("REMINDER_AFTER_DAYS")
	})
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REGION_CITY_ALIASES", "Elliott Lake,Elliot Lk")
	t.Setenv("DB_NAME", "depot")

	cfg, err := cmd.LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 7, cfg.Reminder.AfterDays)
	assert.Equal(t, []string{"Elliott Lake", "Elliot Lk"}, cfg.Region.CityAliases)
	assert.Contains(t, cfg.DB.DSN(), "dbname=depot")
}

func TestLoadConfig_IncompleteCallSystem(t *testing.T) {
	t.Setenv("CALL_SYSTEM_URL", "https://calls.example.com")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.ErrorContains(t, err, "invalid call system config")
}
