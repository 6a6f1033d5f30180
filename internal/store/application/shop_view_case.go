package application

import (
	"context"

	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"golang.org/x/sync/errgroup"
)

type ledgerGetter interface {
	GetLedger(ctx context.Context, userID string) (domain.UserLedger, error)
}

type catalogGetter interface {
	GetCatalog(ctx context.Context) (domain.ShopMetadata, error)
}

type ShopViewCase struct {
	ledgers ledgerGetter
	catalog catalogGetter
}

func NewShopViewCase(ledgers ledgerGetter, catalog catalogGetter) *ShopViewCase {
	return &ShopViewCase{
		ledgers: ledgers,
		catalog: catalog,
	}
}

// GetShopView loads the user's ledger and the current catalog concurrently.
func (sc *ShopViewCase) GetShopView(ctx context.Context, userID string) (domain.ShopView, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var ledger domain.UserLedger
	var catalog domain.ShopMetadata

	group.Go(func() error {
		var err error
		ledger, err = sc.ledgers.GetLedger(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		catalog, err = sc.catalog.GetCatalog(groupCtx)
		return err
	})

	err := group.Wait()
	if err != nil {
		return domain.ShopView{}, err
	}

	inventory := ledger.Inventory
	if inventory == nil {
		inventory = []domain.PurchaseRecord{}
	}

	return domain.ShopView{
		Coins:      ledger.Coins,
		Inventory:  inventory,
		ItemCounts: ledger.ItemCounts(),
		Catalog:    catalog,
	}, nil
}
