package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	httpwrap "github.com/Lexv0lk/room-shop/internal/store/infrastructure/http"
	"github.com/Lexv0lk/room-shop/internal/store/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func memoryConfig() StoreConfig {
	return StoreConfig{
		Backend:   BackendMemory,
		HTTP:      HTTPSettings{Addr: ":0", ShutdownTimeout: time.Second},
		JwtSecret: testSecret,
		Ledger:    LedgerSettings{StartBalance: 100, AutoProvision: true},
		Retry:     retry.Policy{MaxAttempts: 5, BackoffMultiplier: 2},
		Trigger: scheduler.Settings{
			Timezone:     "America/New_York",
			Schedule:     "0 0 * * *",
			Retries:      3,
			DemoInterval: 10 * time.Second,
		},
		RateLimit: httpwrap.RateLimitSettings{RequestsPerSecond: 1000, Burst: 1000},
	}
}

func setupApp(t *testing.T, now time.Time) *StoreApp {
	t.Helper()

	app := NewStoreApp(memoryConfig(), logging.NopLogger)
	app.clock = func() time.Time { return now }

	require.NoError(t, app.Setup(context.Background()))
	t.Cleanup(app.Shutdown)

	return app
}

func issueToken(t *testing.T, userID, role string) string {
	t.Helper()

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(testSecret), userID, role, time.Hour)
	require.NoError(t, err)

	return token
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestStoreApp_PublishesCatalogOnSetup(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	app := setupApp(t, now)

	rec := doRequest(t, app.Handler(), http.MethodGet, "/api/catalog", issueToken(t, "user-1", jwt.RoleUser), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var metadata domain.ShopMetadata
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metadata))

	assert.True(t, metadata.LastRefresh.Equal(now))
	assert.True(t, metadata.NextRefresh.After(now))
}

func TestStoreApp_PurchaseFlow(t *testing.T) {
	t.Parallel()

	app := setupApp(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	handler := app.Handler()
	token := issueToken(t, "buyer", jwt.RoleUser)

	rec := doRequest(t, handler, http.MethodPost, "/api/purchase", token, map[string]any{"itemId": "lamp", "name": "Lamp", "cost": 60})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/api/purchase", token, map[string]any{"itemId": "lamp", "name": "Lamp", "cost": 60})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Not enough coins to buy Lamp.", result.Message)

	rec = doRequest(t, handler, http.MethodGet, "/api/ledger", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ledger domain.UserLedger
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ledger))
	assert.Equal(t, int64(40), ledger.Coins)
	require.Len(t, ledger.Inventory, 1)
	assert.Equal(t, "lamp", ledger.Inventory[0].ItemID)
}

func TestStoreApp_AdminRoutes(t *testing.T) {
	t.Parallel()

	app := setupApp(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	handler := app.Handler()

	userToken := issueToken(t, "user-1", jwt.RoleUser)
	adminToken := issueToken(t, "admin-1", jwt.RoleAdmin)

	rec := doRequest(t, handler, http.MethodPost, "/api/admin/catalog/refresh", userToken, map[string]any{"mode": "manual"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/api/admin/catalog/refresh", adminToken, map[string]any{"mode": "demo", "demoDurationSeconds": 30})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/api/admin/ledgers", adminToken, map[string]any{"userId": "new-user"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, "/api/admin/ledgers", adminToken, map[string]any{"userId": "new-user"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreApp_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	app := setupApp(t, time.Now())

	rec := doRequest(t, app.Handler(), http.MethodGet, "/api/ledger", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, app.Handler(), http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreApp_RotationNeedsPool(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Catalog.Rotate = true

	app := NewStoreApp(cfg, logging.NopLogger)
	assert.Error(t, app.Setup(context.Background()))
}
