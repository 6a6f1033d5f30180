package documents

import (
	"context"
	"testing"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopMetadataRepository_MergeAndLoad(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	repo := NewShopMetadataRepository(store)
	manager := docstore.NewDelegateTxManager(store, logging.NopLogger)

	last := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	next := time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)

	err := manager.WithinTransaction(t.Context(), func(ctx context.Context, tx docstore.Tx) error {
		_, exists, err := repo.LoadShopMetadata(ctx, tx)
		require.NoError(t, err)
		assert.False(t, exists)

		return repo.MergeShopMetadata(ctx, tx, domain.ShopMetadataPatch{
			LastRefresh:    last,
			NextRefresh:    next,
			RotationWindow: &next,
			Selection:      &domain.CatalogSelection{Items: []string{"lamp"}, Wallpapers: []string{"stars"}},
		})
	})
	require.NoError(t, err)

	metadata, err := repo.FetchShopMetadata(t.Context())
	require.NoError(t, err)
	assert.True(t, last.Equal(metadata.LastRefresh))
	assert.True(t, next.Equal(metadata.NextRefresh))
	require.NotNil(t, metadata.RotationWindow)
	assert.True(t, next.Equal(*metadata.RotationWindow))
	assert.Equal(t, []string{"lamp"}, metadata.Items)
	assert.Equal(t, []string{}, metadata.ShelfColors)

	later := next.Add(24 * time.Hour)
	err = manager.WithinTransaction(t.Context(), func(ctx context.Context, tx docstore.Tx) error {
		return repo.MergeShopMetadata(ctx, tx, domain.ShopMetadataPatch{LastRefresh: next, NextRefresh: later})
	})
	require.NoError(t, err)

	err = manager.WithinTransaction(t.Context(), func(ctx context.Context, tx docstore.Tx) error {
		metadata, exists, err := repo.LoadShopMetadata(ctx, tx)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.True(t, later.Equal(metadata.NextRefresh))
		assert.Equal(t, []string{"lamp"}, metadata.Items, "timestamp-only merge keeps the catalog")
		assert.True(t, next.Equal(*metadata.RotationWindow))
		return nil
	})
	require.NoError(t, err)
}

func TestShopMetadataRepository_FetchMissing(t *testing.T) {
	t.Parallel()

	_, err := NewShopMetadataRepository(docstore.NewMemoryStore()).FetchShopMetadata(t.Context())
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestShopMetadataRepository_CorruptedDocument(t *testing.T) {
	t.Parallel()

	store := docstore.NewMemoryStore()
	doc, err := docstore.Fields(map[string]any{"lastRefresh": "yesterday"})
	require.NoError(t, err)
	store.Put(domain.GlobalSettingsCollection, domain.ShopMetadataID, doc)

	_, err = NewShopMetadataRepository(store).FetchShopMetadata(t.Context())
	assert.ErrorIs(t, err, &domain.CorruptedDocumentError{})
}
