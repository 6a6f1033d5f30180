package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

// LedgerRepository maps UserLedger onto Users/{userId} documents.
type LedgerRepository struct {
	reader docstore.Reader
}

func NewLedgerRepository(reader docstore.Reader) *LedgerRepository {
	return &LedgerRepository{
		reader: reader,
	}
}

func (lr *LedgerRepository) LoadLedger(ctx context.Context, tx docstore.Tx, userID string) (domain.UserLedger, error) {
	doc, err := tx.Get(ctx, domain.UsersCollection, userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.UserLedger{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		return domain.UserLedger{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	var ledger domain.UserLedger
	if err := docstore.Decode(doc, &ledger); err != nil {
		return domain.UserLedger{}, &domain.CorruptedDocumentError{Msg: fmt.Sprintf("ledger of user %s: %s", userID, err.Error())}
	}
	ledger.UserID = userID

	if err := ledger.Validate(); err != nil {
		return domain.UserLedger{}, err
	}

	return ledger, nil
}

func (lr *LedgerRepository) ProcessPurchase(ctx context.Context, tx docstore.Tx, ledger domain.UserLedger) error {
	if err := ledger.Validate(); err != nil {
		return err
	}

	return lr.writeLedger(ctx, tx, ledger)
}

func (lr *LedgerRepository) EnsureLedgerCreated(ctx context.Context, tx docstore.Tx, userID string, startBalance int64) (bool, error) {
	_, err := tx.Get(ctx, domain.UsersCollection, userID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return false, fmt.Errorf("failed to read ledger: %w", err)
	}

	ledger := domain.UserLedger{UserID: userID, Coins: startBalance, Inventory: []domain.PurchaseRecord{}}
	if err := ledger.Validate(); err != nil {
		return false, &domain.InvalidArgumentsError{Msg: err.Error()}
	}

	if err := lr.writeLedger(ctx, tx, ledger); err != nil {
		return false, err
	}

	return true, nil
}

func (lr *LedgerRepository) writeLedger(ctx context.Context, tx docstore.Tx, ledger domain.UserLedger) error {
	inventory := ledger.Inventory
	if inventory == nil {
		inventory = []domain.PurchaseRecord{}
	}

	patch, err := docstore.Fields(map[string]any{
		domain.CoinsField:     ledger.Coins,
		domain.InventoryField: inventory,
	})
	if err != nil {
		return err
	}

	err = tx.Set(ctx, domain.UsersCollection, ledger.UserID, patch, docstore.Merge)
	if err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	return nil
}

// FetchLedger reads a ledger outside of any transaction, for display.
func (lr *LedgerRepository) FetchLedger(ctx context.Context, userID string) (domain.UserLedger, error) {
	doc, err := lr.reader.Get(ctx, domain.UsersCollection, userID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domain.UserLedger{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %s not found", userID)}
		}

		return domain.UserLedger{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	var ledger domain.UserLedger
	if err := docstore.Decode(doc, &ledger); err != nil {
		return domain.UserLedger{}, &domain.CorruptedDocumentError{Msg: fmt.Sprintf("ledger of user %s: %s", userID, err.Error())}
	}
	ledger.UserID = userID

	return ledger, nil
}
