package bootstrap

import (
	"fmt"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/database"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	httpwrap "github.com/Lexv0lk/room-shop/internal/store/infrastructure/http"
	rediswrap "github.com/Lexv0lk/room-shop/internal/store/infrastructure/redis"
	"github.com/Lexv0lk/room-shop/internal/store/scheduler"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type HTTPSettings struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

type LoggingSettings struct {
	Format string `envconfig:"FORMAT" default:"text"`
	Level  string `envconfig:"LEVEL" default:"info"`
}

type LedgerSettings struct {
	StartBalance  int64 `envconfig:"START_BALANCE" default:"1000"`
	AutoProvision bool  `envconfig:"AUTO_PROVISION" default:"true"`
}

type CatalogSettings struct {
	PoolFile string `envconfig:"POOL_FILE" default:""`
	// Rotate switches from keeping the published catalog to drawing a random
	// subset of the pool for every window.
	Rotate    bool                  `envconfig:"ROTATE" default:"false"`
	Selection domain.SelectionSizes `envconfig:"SELECTION"`
}

type StoreConfig struct {
	Backend    string                    `envconfig:"STORE_BACKEND" default:"postgres"`
	HTTP       HTTPSettings              `envconfig:"HTTP"`
	DbSettings database.PostgresSettings
	Redis      rediswrap.Settings        `envconfig:"REDIS"`
	JwtSecret  string                    `envconfig:"JWT_SECRET" required:"true"`
	Ledger     LedgerSettings            `envconfig:"LEDGER"`
	Retry      retry.Policy              `envconfig:"RETRY"`
	Catalog    CatalogSettings           `envconfig:"CATALOG"`
	Trigger    scheduler.Settings        `envconfig:"CATALOG"`
	RateLimit  httpwrap.RateLimitSettings `envconfig:"RATE_LIMIT"`
	Logging    LoggingSettings           `envconfig:"LOG"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(envFiles ...string) (StoreConfig, error) {
	// a missing .env is fine, variables may come from the environment
	_ = godotenv.Load(envFiles...)

	var cfg StoreConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, err
	}

	return cfg, nil
}

func (c StoreConfig) Validate() error {
	switch c.Backend {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Backend)
	}

	if c.Ledger.StartBalance < 0 {
		return fmt.Errorf("start balance must not be negative, got %d", c.Ledger.StartBalance)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}

	if _, err := time.LoadLocation(c.Trigger.Timezone); err != nil {
		return fmt.Errorf("invalid catalog timezone %q: %w", c.Trigger.Timezone, err)
	}

	return nil
}
