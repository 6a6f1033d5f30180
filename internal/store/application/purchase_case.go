package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

const (
	OutcomeSuccess           = "success"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeUserNotFound      = "user_not_found"
	OutcomeInvalid           = "invalid"
	OutcomeConflict          = "conflict"
	OutcomeUnavailable       = "unavailable"
	OutcomeFailed            = "failed"
)

// PurchaseCase debits a ledger and appends the bought item in one store
// transaction, rerunning the whole read-modify-write when the store reports
// contention.
type PurchaseCase struct {
	txManager    docstore.TxManager
	ledgerLoader domain.LedgerLoader
	purchaser    domain.Purchaser
	retryPolicy  retry.Policy
	clock        domain.Clock
	metrics      domain.MetricsRecorder
	logger       logging.Logger
}

func NewPurchaseCase(
	txManager docstore.TxManager,
	ledgerLoader domain.LedgerLoader,
	purchaser domain.Purchaser,
	retryPolicy retry.Policy,
	clock domain.Clock,
	metrics domain.MetricsRecorder,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		txManager:    txManager,
		ledgerLoader: ledgerLoader,
		purchaser:    purchaser,
		retryPolicy:  retryPolicy,
		clock:        clock,
		metrics:      metrics,
		logger:       logger,
	}
}

func (pc *PurchaseCase) Purchase(ctx context.Context, userID string, item domain.CatalogItem) (domain.PurchaseRecord, error) {
	if userID == "" {
		pc.metrics.RecordPurchase(OutcomeInvalid, 0)
		return domain.PurchaseRecord{}, &domain.InvalidArgumentsError{Msg: "user id is required"}
	}

	if err := item.Validate(); err != nil {
		pc.metrics.RecordPurchase(OutcomeInvalid, 0)
		return domain.PurchaseRecord{}, err
	}

	record := domain.NewPurchaseRecord(item, pc.clock())
	attempts := 0

	err := retry.Do(ctx, pc.retryPolicy, isRetryable, func(attempt int) error {
		attempts = attempt
		if attempt > 1 {
			pc.logger.Debug("retrying purchase", "user_id", userID, "item_id", item.ItemID, "attempt", attempt)
		}

		return pc.txManager.WithinTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
			ledger, err := pc.ledgerLoader.LoadLedger(ctx, tx, userID)
			if err != nil {
				return err
			}

			updated, err := ledger.Apply(record)
			if err != nil {
				return err
			}

			return pc.purchaser.ProcessPurchase(ctx, tx, updated)
		})
	})

	if err != nil {
		err = classifyStoreError(err, fmt.Sprintf("purchase of %s by user %s", item.ItemID, userID), attempts)
		outcome := purchaseOutcome(err)
		pc.metrics.RecordPurchase(outcome, attempts)

		if outcome == OutcomeConflict || outcome == OutcomeUnavailable || outcome == OutcomeFailed {
			pc.logger.Error("purchase failed",
				"user_id", userID, "item_id", item.ItemID, "attempts", attempts, "error", err.Error())
		}

		return domain.PurchaseRecord{}, err
	}

	pc.metrics.RecordPurchase(OutcomeSuccess, attempts)
	pc.logger.Info("purchase committed",
		"user_id", userID, "item_id", item.ItemID, "cost", item.Cost, "purchase_id", record.PurchaseID, "attempts", attempts)

	return record, nil
}

func isRetryable(err error) bool {
	return errors.Is(err, docstore.ErrConflict) || errors.Is(err, docstore.ErrUnavailable)
}

// classifyStoreError turns the docstore sentinels left after the retry budget
// is spent into domain errors. Other errors are returned unchanged.
func classifyStoreError(err error, operation string, attempts int) error {
	switch {
	case errors.Is(err, docstore.ErrConflict):
		return &domain.TransactionConflictError{
			Msg: fmt.Sprintf("%s did not commit after %d attempts", operation, attempts),
			Err: err,
		}
	case errors.Is(err, docstore.ErrUnavailable):
		return &domain.StoreUnavailableError{
			Msg: fmt.Sprintf("%s failed: store unavailable", operation),
			Err: err,
		}
	default:
		return err
	}
}

func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		return OutcomeInsufficientFunds
	case errors.Is(err, &domain.UserNotFoundError{}):
		return OutcomeUserNotFound
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return OutcomeInvalid
	case errors.Is(err, &domain.TransactionConflictError{}):
		return OutcomeConflict
	case errors.Is(err, &domain.StoreUnavailableError{}):
		return OutcomeUnavailable
	default:
		return OutcomeFailed
	}
}
