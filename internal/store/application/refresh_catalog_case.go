package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

// CatalogRotation is what a refresh draws a new selection from.
type CatalogRotation struct {
	Pool     domain.CatalogPool
	Selector domain.CatalogSelector
}

// RefreshCatalogCase advances the shop refresh window. A single merge write
// moves lastRefresh and nextRefresh and, once per window, the offered catalog.
// Running it twice for the same window leaves the same document behind, so
// the trigger may redeliver freely.
type RefreshCatalogCase struct {
	txManager          docstore.TxManager
	metadataRepository domain.ShopMetadataRepository
	cache              domain.CatalogCache
	rotation           CatalogRotation
	location           *time.Location
	demoDuration       time.Duration
	clock              domain.Clock
	metrics            domain.MetricsRecorder
	logger             logging.Logger
}

func NewRefreshCatalogCase(
	txManager docstore.TxManager,
	metadataRepository domain.ShopMetadataRepository,
	cache domain.CatalogCache,
	rotation CatalogRotation,
	location *time.Location,
	demoDuration time.Duration,
	clock domain.Clock,
	metrics domain.MetricsRecorder,
	logger logging.Logger,
) *RefreshCatalogCase {
	if rotation.Selector == nil {
		rotation.Selector = domain.KeepCurrentSelector
	}
	if demoDuration <= 0 {
		demoDuration = domain.DefaultDemoDuration
	}

	return &RefreshCatalogCase{
		txManager:          txManager,
		metadataRepository: metadataRepository,
		cache:              cache,
		rotation:           rotation,
		location:           location,
		demoDuration:       demoDuration,
		clock:              clock,
		metrics:            metrics,
		logger:             logger,
	}
}

func (rc *RefreshCatalogCase) RefreshCatalog(ctx context.Context, req domain.RefreshRequest) (domain.ShopMetadata, error) {
	nextWindow, err := rc.nextWindow(req)
	if err != nil {
		rc.metrics.RecordRefresh(string(req.Mode), OutcomeInvalid)
		return domain.ShopMetadata{}, err
	}

	now := rc.clock()
	next := nextWindow(now)

	var result domain.ShopMetadata
	var rotated bool

	err = rc.txManager.WithinTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		existing, exists, err := rc.metadataRepository.LoadShopMetadata(ctx, tx)
		if err != nil {
			return err
		}

		nextRefresh := next
		if exists && existing.NextRefresh.After(nextRefresh) {
			nextRefresh = existing.NextRefresh
		}

		patch := domain.ShopMetadataPatch{
			LastRefresh: now,
			NextRefresh: nextRefresh,
		}

		result = existing
		result.LastRefresh = now
		result.NextRefresh = nextRefresh

		if !exists || existing.RotationWindow == nil || !existing.RotationWindow.Equal(nextRefresh) {
			selection := rc.rotation.Selector(rc.rotation.Pool, existing.CatalogSelection, nextRefresh)
			window := nextRefresh

			patch.Selection = &selection
			patch.RotationWindow = &window
			result.CatalogSelection = selection
			result.RotationWindow = &window
			rotated = true
		}

		return rc.metadataRepository.MergeShopMetadata(ctx, tx, patch)
	})
	if err != nil {
		rc.metrics.RecordRefresh(string(req.Mode), OutcomeFailed)
		rc.logger.Error("catalog refresh failed", "mode", string(req.Mode), "error", err.Error())

		return domain.ShopMetadata{}, &domain.RefreshFailedError{
			Msg: fmt.Sprintf("%s catalog refresh failed", req.Mode),
			Err: err,
		}
	}

	rc.metrics.RecordRefresh(string(req.Mode), OutcomeSuccess)
	rc.logger.Info("catalog refreshed",
		"mode", string(req.Mode),
		"last_refresh", result.LastRefresh.Format(time.RFC3339),
		"next_refresh", result.NextRefresh.Format(time.RFC3339),
		"rotated", rotated)

	if rc.cache != nil {
		if err := rc.cache.InvalidateShopMetadata(ctx); err != nil {
			rc.logger.Warn("failed to invalidate catalog cache", "error", err.Error())
		}
	}

	return result, nil
}

func (rc *RefreshCatalogCase) nextWindow(req domain.RefreshRequest) (func(now time.Time) time.Time, error) {
	switch req.Mode {
	case domain.RefreshScheduled, domain.RefreshManual:
		return func(now time.Time) time.Time {
			return domain.NextMidnight(now, rc.location)
		}, nil
	case domain.RefreshDemo:
		d := req.DemoDuration
		if d < 0 {
			return nil, &domain.InvalidArgumentsError{Msg: "demo duration must not be negative"}
		}
		if d == 0 {
			d = rc.demoDuration
		}

		return func(now time.Time) time.Time {
			return now.Add(d)
		}, nil
	default:
		return nil, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown refresh mode %q", req.Mode)}
	}
}
