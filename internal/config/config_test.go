package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "khata.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)

	budget, err := cfg.MonthlyBudget()
	require.NoError(t, err)
	assert.True(t, budget.IsPositive())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.yaml")
	yaml := `storage:
  backend: sqlite
budget:
  monthly: "75000"
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	budget, err := cfg.MonthlyBudget()
	require.NoError(t, err)
	assert.Equal(t, "75000", budget.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: json\n"), 0o644))

	t.Setenv("KHATA_STORAGE_BACKEND", "sqlite")
	t.Setenv("KHATA_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_UnknownBackendRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: postgres\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestMonthlyBudget_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Budget.Monthly = "lots"

	_, err := cfg.MonthlyBudget()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.yaml")
	cfg := Default()
	cfg.Budget.Monthly = "12345.50"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
