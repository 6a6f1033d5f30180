package http

import (
	"context"

	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

//go:generate mockgen -destination=../../../../gen/mocks/http/services.go -package=mocks . ShopService,AdminService,LedgerEnsurer

type ShopService interface {
	Purchase(ctx context.Context, userID string, item domain.CatalogItem) (domain.PurchaseRecord, error)
	GetLedger(ctx context.Context, userID string) (domain.UserLedger, error)
	GetCatalog(ctx context.Context) (domain.ShopMetadata, error)
	GetShopView(ctx context.Context, userID string) (domain.ShopView, error)
}

type AdminService interface {
	RefreshCatalog(ctx context.Context, req domain.RefreshRequest) (domain.ShopMetadata, error)
	EnsureLedger(ctx context.Context, userID string) (bool, error)
}

type LedgerEnsurer interface {
	EnsureLedger(ctx context.Context, userID string) (bool, error)
}
