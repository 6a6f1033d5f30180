package application

import (
	"fmt"
	"testing"
	"time"

	storemocks "github.com/Lexv0lk/room-shop/gen/mocks/store"
	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCase_GetCatalog(t *testing.T) {
	t.Parallel()

	metadata := domain.ShopMetadata{
		LastRefresh:      time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC),
		NextRefresh:      time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC),
		CatalogSelection: domain.CatalogSelection{Items: []string{"lamp"}},
	}

	type testCase struct {
		name string

		prepareFn func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "cache hit",
			prepareFn: func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache) {
				cache.EXPECT().GetShopMetadata(gomock.Any()).Return(metadata, true, nil)
			},
		},
		{
			name: "cache miss fills cache",
			prepareFn: func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache) {
				cache.EXPECT().GetShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, false, nil)
				repo.EXPECT().FetchShopMetadata(gomock.Any()).Return(metadata, nil)
				cache.EXPECT().SetShopMetadata(gomock.Any(), metadata).Return(nil)
			},
		},
		{
			name: "cache errors fall back to the store",
			prepareFn: func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache) {
				cache.EXPECT().GetShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, false, assert.AnError)
				repo.EXPECT().FetchShopMetadata(gomock.Any()).Return(metadata, nil)
				cache.EXPECT().SetShopMetadata(gomock.Any(), metadata).Return(assert.AnError)
			},
		},
		{
			name: "catalog not published",
			prepareFn: func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache) {
				cache.EXPECT().GetShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, false, nil)
				repo.EXPECT().FetchShopMetadata(gomock.Any()).
					Return(domain.ShopMetadata{}, fmt.Errorf("failed to read shop metadata: %w", docstore.ErrNotFound))
			},
			expectedErr: &domain.CatalogNotFoundError{},
		},
		{
			name: "store unavailable",
			prepareFn: func(repo *storemocks.MockShopMetadataRepository, cache *storemocks.MockCatalogCache) {
				cache.EXPECT().GetShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, false, nil)
				repo.EXPECT().FetchShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, docstore.ErrUnavailable)
			},
			expectedErr: &domain.StoreUnavailableError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			repo := storemocks.NewMockShopMetadataRepository(ctrl)
			cache := storemocks.NewMockCatalogCache(ctrl)
			tt.prepareFn(repo, cache)

			got, err := NewCatalogCase(repo, cache, logging.NopLogger).GetCatalog(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, metadata, got)
			}
		})
	}
}

func TestCatalogCase_WithoutCache(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := storemocks.NewMockShopMetadataRepository(ctrl)
	repo.EXPECT().FetchShopMetadata(gomock.Any()).Return(domain.ShopMetadata{}, nil)

	_, err := NewCatalogCase(repo, nil, logging.NopLogger).GetCatalog(t.Context())
	assert.NoError(t, err)
}
