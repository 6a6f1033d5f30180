package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

// ShopMetadataRepository maps ShopMetadata onto GlobalSettings/shopMetadata.
type ShopMetadataRepository struct {
	reader docstore.Reader
}

func NewShopMetadataRepository(reader docstore.Reader) *ShopMetadataRepository {
	return &ShopMetadataRepository{
		reader: reader,
	}
}

func (sr *ShopMetadataRepository) LoadShopMetadata(ctx context.Context, tx docstore.Tx) (domain.ShopMetadata, bool, error) {
	doc, err := tx.Get(ctx, domain.GlobalSettingsCollection, domain.ShopMetadataID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.ShopMetadata{}, false, nil
		}

		return domain.ShopMetadata{}, false, fmt.Errorf("failed to read shop metadata: %w", err)
	}

	metadata, err := decodeShopMetadata(doc)
	if err != nil {
		return domain.ShopMetadata{}, false, err
	}

	return metadata, true, nil
}

func (sr *ShopMetadataRepository) MergeShopMetadata(ctx context.Context, tx docstore.Tx, patch domain.ShopMetadataPatch) error {
	fields := map[string]any{
		domain.LastRefreshField: patch.LastRefresh.UTC(),
		domain.NextRefreshField: patch.NextRefresh.UTC(),
	}

	if patch.RotationWindow != nil {
		fields[domain.RotationWindowField] = patch.RotationWindow.UTC()
	}

	if patch.Selection != nil {
		fields[domain.ItemsField] = nonNil(patch.Selection.Items)
		fields[domain.WallpapersField] = nonNil(patch.Selection.Wallpapers)
		fields[domain.ShelfColorsField] = nonNil(patch.Selection.ShelfColors)
	}

	doc, err := docstore.Fields(fields)
	if err != nil {
		return err
	}

	err = tx.Set(ctx, domain.GlobalSettingsCollection, domain.ShopMetadataID, doc, docstore.Merge)
	if err != nil {
		return fmt.Errorf("failed to write shop metadata: %w", err)
	}

	return nil
}

func (sr *ShopMetadataRepository) FetchShopMetadata(ctx context.Context) (domain.ShopMetadata, error) {
	doc, err := sr.reader.Get(ctx, domain.GlobalSettingsCollection, domain.ShopMetadataID)
	if err != nil {
		return domain.ShopMetadata{}, fmt.Errorf("failed to read shop metadata: %w", err)
	}

	return decodeShopMetadata(doc)
}

func decodeShopMetadata(doc docstore.Document) (domain.ShopMetadata, error) {
	var metadata domain.ShopMetadata
	if err := docstore.Decode(doc, &metadata); err != nil {
		return domain.ShopMetadata{}, &domain.CorruptedDocumentError{Msg: "shop metadata: " + err.Error()}
	}

	metadata.Items = nonNil(metadata.Items)
	metadata.Wallpapers = nonNil(metadata.Wallpapers)
	metadata.ShelfColors = nonNil(metadata.ShelfColors)

	return metadata, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
