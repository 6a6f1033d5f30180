package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("CATALOG_TRIGGER_RETRIES", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 7, cfg.Retry.MaxAttempts)
	assert.Equal(t, 20*time.Millisecond, cfg.Retry.InitialBackoff)
	assert.Equal(t, 5, cfg.Trigger.Retries)
	assert.Equal(t, "America/New_York", cfg.Trigger.Timezone)
	assert.Equal(t, "0 0 * * *", cfg.Trigger.Schedule)
	assert.Equal(t, int64(1000), cfg.Ledger.StartBalance)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6, cfg.Catalog.Selection.Items)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nSTORE_BACKEND=memory\nLEDGER_START_BALANCE=250\n"), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LEDGER_START_BALANCE", "")
	require.NoError(t, os.Unsetenv("LEDGER_START_BALANCE"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JwtSecret)
	assert.Equal(t, int64(250), cfg.Ledger.StartBalance)
}

func TestStoreConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := StoreConfig{Backend: BackendPostgres}
	valid.Retry.MaxAttempts = 3
	valid.Trigger.Timezone = "America/New_York"

	type testCase struct {
		name   string
		mutate func(cfg *StoreConfig)

		expectingError bool
	}

	tests := []testCase{
		{name: "valid", mutate: func(cfg *StoreConfig) {}},
		{name: "unknown backend", mutate: func(cfg *StoreConfig) { cfg.Backend = "mongo" }, expectingError: true},
		{name: "negative start balance", mutate: func(cfg *StoreConfig) { cfg.Ledger.StartBalance = -1 }, expectingError: true},
		{name: "no attempts", mutate: func(cfg *StoreConfig) { cfg.Retry.MaxAttempts = 0 }, expectingError: true},
		{name: "bad timezone", mutate: func(cfg *StoreConfig) { cfg.Trigger.Timezone = "Nowhere/City" }, expectingError: true},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			if tt.expectingError {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
