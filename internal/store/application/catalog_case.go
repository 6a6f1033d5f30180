package application

import (
	"context"
	"errors"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

// CatalogCase serves the current shop metadata, reading through the cache
// when one is configured. Cache failures only cost a store read.
type CatalogCase struct {
	metadataRepository domain.ShopMetadataRepository
	cache              domain.CatalogCache
	logger             logging.Logger
}

func NewCatalogCase(metadataRepository domain.ShopMetadataRepository, cache domain.CatalogCache, logger logging.Logger) *CatalogCase {
	return &CatalogCase{
		metadataRepository: metadataRepository,
		cache:              cache,
		logger:             logger,
	}
}

func (cc *CatalogCase) GetCatalog(ctx context.Context) (domain.ShopMetadata, error) {
	if cc.cache != nil {
		metadata, found, err := cc.cache.GetShopMetadata(ctx)
		if err != nil {
			cc.logger.Warn("catalog cache read failed", "error", err.Error())
		} else if found {
			return metadata, nil
		}
	}

	metadata, err := cc.metadataRepository.FetchShopMetadata(ctx)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.ShopMetadata{}, &domain.CatalogNotFoundError{Msg: "shop catalog has not been published yet"}
		}

		return domain.ShopMetadata{}, classifyStoreError(err, "catalog read", 1)
	}

	if cc.cache != nil {
		if err := cc.cache.SetShopMetadata(ctx, metadata); err != nil {
			cc.logger.Warn("catalog cache write failed", "error", err.Error())
		}
	}

	return metadata, nil
}
