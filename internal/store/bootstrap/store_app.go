package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/database"
	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/pkg/metrics"
	"github.com/Lexv0lk/room-shop/internal/store/application"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/Lexv0lk/room-shop/internal/store/infrastructure/documents"
	httpwrap "github.com/Lexv0lk/room-shop/internal/store/infrastructure/http"
	"github.com/Lexv0lk/room-shop/internal/store/infrastructure/postgres"
	rediswrap "github.com/Lexv0lk/room-shop/internal/store/infrastructure/redis"
	"github.com/Lexv0lk/room-shop/internal/store/scheduler"
	"github.com/Lexv0lk/room-shop/migrations"
	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

type shopService struct {
	*application.PurchaseCase
	*application.LedgerCase
	*application.CatalogCase
	*application.ShopViewCase
}

type adminService struct {
	*application.RefreshCatalogCase
	*application.LedgerCase
}

type StoreApp struct {
	cfg    StoreConfig
	logger logging.Logger
	clock  domain.Clock

	store       docstore.Store
	dbpool      *pgxpool.Pool
	redisClient *goredis.Client
	recorder    *metrics.Recorder

	refreshCase *application.RefreshCatalogCase
	catalogCase *application.CatalogCase
	trigger     *scheduler.Trigger
	router      *gin.Engine
	server      *http.Server
}

func NewStoreApp(cfg StoreConfig, logger logging.Logger) *StoreApp {
	return &StoreApp{
		cfg:    cfg,
		logger: logger,
		clock:  time.Now,
	}
}

// Setup connects the backends and builds the router and the refresh trigger.
// Run calls it when it has not been called yet.
func (a *StoreApp) Setup(ctx context.Context) error {
	cfg := a.cfg
	logger := a.logger

	location, err := time.LoadLocation(cfg.Trigger.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load catalog timezone: %w", err)
	}

	pool, err := a.loadPool()
	if err != nil {
		return err
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	a.store = store

	var cache domain.CatalogCache
	if cfg.Redis.Enabled() {
		client, err := rediswrap.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		a.redisClient = client
		cache = rediswrap.NewCatalogCache(client, cfg.Redis.TTL, a.clock)
		logger.Info("catalog cache enabled", "addr", cfg.Redis.Addr)
	}

	a.recorder = metrics.NewRecorder()

	txManager := docstore.NewDelegateTxManager(store, logger)
	ledgerRepository := documents.NewLedgerRepository(store)
	metadataRepository := documents.NewShopMetadataRepository(store)

	rotation := application.CatalogRotation{Pool: pool}
	if cfg.Catalog.Rotate {
		rotation.Selector = domain.NewRandomSubsetSelector(cfg.Catalog.Selection)
	}

	purchaseCase := application.NewPurchaseCase(txManager, ledgerRepository, ledgerRepository, cfg.Retry, a.clock, a.recorder, logger)
	ledgerCase := application.NewLedgerCase(txManager, ledgerRepository, ledgerRepository, cfg.Ledger.StartBalance, cfg.Retry, logger)
	a.catalogCase = application.NewCatalogCase(metadataRepository, cache, logger)
	a.refreshCase = application.NewRefreshCatalogCase(
		txManager,
		metadataRepository,
		cache,
		rotation,
		location,
		cfg.Trigger.DemoInterval,
		a.clock,
		a.recorder,
		logger,
	)
	shopViewCase := application.NewShopViewCase(ledgerCase, a.catalogCase)

	trigger, err := scheduler.NewTrigger(a.refreshCase, cfg.Trigger, logger)
	if err != nil {
		return err
	}
	a.trigger = trigger

	a.router = a.createRouter(
		shopService{purchaseCase, ledgerCase, a.catalogCase, shopViewCase},
		adminService{a.refreshCase, ledgerCase},
		pool,
	)

	return a.publishCatalogIfMissing(ctx)
}

// Handler is the HTTP surface built by Setup.
func (a *StoreApp) Handler() http.Handler {
	return a.router
}

func (a *StoreApp) Run(ctx context.Context) error {
	if a.router == nil {
		if err := a.Setup(ctx); err != nil {
			return err
		}
	}

	logger := a.logger

	a.server = &http.Server{
		Addr:    a.cfg.HTTP.Addr,
		Handler: a.router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", a.cfg.HTTP.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		return a.trigger.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		a.stopServer()
		return nil
	})

	return g.Wait()
}

// Shutdown releases the store and cache connections once Run has returned.
func (a *StoreApp) Shutdown() {
	a.stopServer()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
		a.redisClient = nil
	}

	if a.dbpool != nil {
		a.dbpool.Close()
		a.dbpool = nil
	}

	a.logger.Info("store stopped")
}

func (a *StoreApp) stopServer() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func (a *StoreApp) openStore(ctx context.Context) (docstore.Store, error) {
	if a.cfg.Backend == BackendMemory {
		a.logger.Warn("using in-memory document store, state is lost on restart")
		return docstore.NewMemoryStore(), nil
	}

	dbURL := a.cfg.DbSettings.GetURL()

	if err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect); err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	a.dbpool = dbpool

	return postgres.NewDocumentStore(dbpool), nil
}

func (a *StoreApp) loadPool() (domain.CatalogPool, error) {
	if a.cfg.Catalog.PoolFile == "" {
		if a.cfg.Catalog.Rotate {
			return domain.CatalogPool{}, errors.New("catalog rotation needs a pool file")
		}

		return domain.CatalogPool{}, nil
	}

	pool, err := domain.LoadCatalogPool(a.cfg.Catalog.PoolFile)
	if err != nil {
		return domain.CatalogPool{}, err
	}

	a.logger.Info("catalog pool loaded", "items", len(pool.Items), "wallpapers", len(pool.Wallpapers), "shelfColors", len(pool.ShelfColors))

	return pool, nil
}

// publishCatalogIfMissing runs a manual refresh on a fresh store so the shop
// has a window before the first scheduled tick.
func (a *StoreApp) publishCatalogIfMissing(ctx context.Context) error {
	_, err := a.catalogCase.GetCatalog(ctx)
	if err == nil {
		return nil
	}

	if !errors.Is(err, &domain.CatalogNotFoundError{}) {
		return fmt.Errorf("failed to read shop catalog: %w", err)
	}

	metadata, err := a.refreshCase.RefreshCatalog(ctx, domain.RefreshRequest{Mode: domain.RefreshManual})
	if err != nil {
		return fmt.Errorf("failed to publish initial catalog: %w", err)
	}

	a.logger.Info("initial catalog published", "nextRefresh", metadata.NextRefresh.Format(time.RFC3339))

	return nil
}

func (a *StoreApp) createRouter(shop httpwrap.ShopService, admin httpwrap.AdminService, pool domain.CatalogPool) *gin.Engine {
	cfg := a.cfg
	logger := a.logger

	router := gin.New()
	router.Use(gin.Recovery(), a.recorder.GinMiddleware())

	router.GET("/metrics", gin.WrapH(a.recorder.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, domain.Result{Success: true, Message: "ok"})
	})

	shopHandler := httpwrap.NewShopHandler(shop, pool, logger)
	adminHandler := httpwrap.NewAdminHandler(admin, logger)

	authMiddleware := httpwrap.NewAuthMiddlewareFabric(cfg.JwtSecret, jwt.NewJWTTokenParser(), logger).GetMiddleware()
	rateLimit := httpwrap.NewRateLimiter(cfg.RateLimit).GetMiddleware()

	api := router.Group("/api")
	{
		authenticated := api.Group("/", authMiddleware, rateLimit)
		if cfg.Ledger.AutoProvision {
			authenticated.Use(httpwrap.NewLedgerMiddlewareFabric(admin, logger).GetMiddleware())
		}
		{
			authenticated.POST("/purchase", shopHandler.Purchase)
			authenticated.GET("/ledger", shopHandler.GetLedger)
			authenticated.GET("/catalog", shopHandler.GetCatalog)
			authenticated.GET("/shop", shopHandler.GetShopView)
		}

		admins := api.Group("/admin", authMiddleware, httpwrap.NewAdminMiddleware(), rateLimit)
		{
			admins.POST("/catalog/refresh", adminHandler.RefreshCatalog)
			admins.POST("/ledgers", adminHandler.CreateLedger)
		}
	}

	return router
}
