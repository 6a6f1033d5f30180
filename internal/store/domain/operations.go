package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
)

//go:generate mockgen -destination=../../../gen/mocks/store/operations.go -package=mocks . LedgerLoader,LedgerFetcher,Purchaser,LedgerCreator,ShopMetadataRepository,CatalogCache

type LedgerLoader interface {
	LoadLedger(ctx context.Context, tx docstore.Tx, userID string) (UserLedger, error)
}

type LedgerFetcher interface {
	FetchLedger(ctx context.Context, userID string) (UserLedger, error)
}

// Purchaser persists a ledger after a purchase was applied to it.
type Purchaser interface {
	ProcessPurchase(ctx context.Context, tx docstore.Tx, ledger UserLedger) error
}

type LedgerCreator interface {
	EnsureLedgerCreated(ctx context.Context, tx docstore.Tx, userID string, startBalance int64) (bool, error)
}

type ShopMetadataRepository interface {
	LoadShopMetadata(ctx context.Context, tx docstore.Tx) (ShopMetadata, bool, error)
	MergeShopMetadata(ctx context.Context, tx docstore.Tx, patch ShopMetadataPatch) error
	FetchShopMetadata(ctx context.Context) (ShopMetadata, error)
}

type CatalogCache interface {
	GetShopMetadata(ctx context.Context) (ShopMetadata, bool, error)
	SetShopMetadata(ctx context.Context, metadata ShopMetadata) error
	InvalidateShopMetadata(ctx context.Context) error
}

type Clock func() time.Time

type MetricsRecorder interface {
	RecordPurchase(outcome string, attempts int)
	RecordRefresh(mode, outcome string)
}
