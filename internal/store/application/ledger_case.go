package application

import (
	"context"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
)

type LedgerCase struct {
	txManager     docstore.TxManager
	ledgerCreator domain.LedgerCreator
	ledgerFetcher domain.LedgerFetcher
	startBalance  int64
	retryPolicy   retry.Policy
	logger        logging.Logger
}

func NewLedgerCase(
	txManager docstore.TxManager,
	ledgerCreator domain.LedgerCreator,
	ledgerFetcher domain.LedgerFetcher,
	startBalance int64,
	retryPolicy retry.Policy,
	logger logging.Logger,
) *LedgerCase {
	return &LedgerCase{
		txManager:     txManager,
		ledgerCreator: ledgerCreator,
		ledgerFetcher: ledgerFetcher,
		startBalance:  startBalance,
		retryPolicy:   retryPolicy,
		logger:        logger,
	}
}

// EnsureLedger creates the user's ledger with the start balance unless it
// already exists. It reports whether a ledger was created.
func (lc *LedgerCase) EnsureLedger(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, &domain.InvalidArgumentsError{Msg: "user id is required"}
	}

	var created bool
	attempts := 0

	err := retry.Do(ctx, lc.retryPolicy, isRetryable, func(attempt int) error {
		attempts = attempt
		return lc.txManager.WithinTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
			var err error
			created, err = lc.ledgerCreator.EnsureLedgerCreated(ctx, tx, userID, lc.startBalance)
			return err
		})
	})
	if err != nil {
		err = classifyStoreError(err, "ledger creation for user "+userID, attempts)
		lc.logger.Error("failed to ensure ledger", "user_id", userID, "error", err.Error())
		return false, err
	}

	if created {
		lc.logger.Info("ledger created", "user_id", userID, "coins", lc.startBalance)
	}

	return created, nil
}

func (lc *LedgerCase) GetLedger(ctx context.Context, userID string) (domain.UserLedger, error) {
	ledger, err := lc.ledgerFetcher.FetchLedger(ctx, userID)
	if err != nil {
		return domain.UserLedger{}, classifyStoreError(err, "ledger read for user "+userID, 1)
	}

	return ledger, nil
}
