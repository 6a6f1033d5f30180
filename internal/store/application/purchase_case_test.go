package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	docstoremocks "github.com/Lexv0lk/room-shop/gen/mocks/docstore"
	storemocks "github.com/Lexv0lk/room-shop/gen/mocks/store"
	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/Lexv0lk/room-shop/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseCase_Purchase(t *testing.T) {
	t.Parallel()

	type deps struct {
		ledgerLoader *storemocks.MockLedgerLoader
		purchaser    *storemocks.MockPurchaser
		txManager    *docstoremocks.MockTxManager
	}

	type testCase struct {
		name   string
		userID string
		item   domain.CatalogItem

		prepareFn func(t *testing.T, d *deps)

		expectedErr      error
		expectedOutcome  string
		expectedAttempts int
	}

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	lamp := domain.CatalogItem{ItemID: "lamp", Name: "Desk Lamp", Cost: 30}
	conflict := fmt.Errorf("failed to commit transaction: %w", docstore.ErrConflict)
	unavailable := fmt.Errorf("failed to begin transaction: %w", docstore.ErrUnavailable)

	tests := []testCase{
		{
			name:   "successful purchase",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "u1").
					Return(domain.UserLedger{UserID: "u1", Coins: 100}, nil)
				d.purchaser.EXPECT().ProcessPurchase(gomock.Any(), nil, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ docstore.Tx, ledger domain.UserLedger) error {
						assert.Equal(t, int64(70), ledger.Coins)
						require.Len(t, ledger.Inventory, 1)
						assert.Equal(t, "lamp", ledger.Inventory[0].ItemID)
						assert.Equal(t, int64(30), ledger.Inventory[0].Cost)
						assert.True(t, now.Equal(ledger.Inventory[0].PurchaseDate))
						return nil
					})
			},
			expectedOutcome:  OutcomeSuccess,
			expectedAttempts: 1,
		},
		{
			name:   "free item",
			userID: "u1",
			item:   domain.CatalogItem{ItemID: "poster", Cost: 0},
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "u1").
					Return(domain.UserLedger{UserID: "u1", Coins: 0}, nil)
				d.purchaser.EXPECT().ProcessPurchase(gomock.Any(), nil, gomock.Any()).Return(nil)
			},
			expectedOutcome:  OutcomeSuccess,
			expectedAttempts: 1,
		},
		{
			name:   "user not found",
			userID: "ghost",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "ghost").
					Return(domain.UserLedger{}, &domain.UserNotFoundError{Msg: "user with id ghost not found"})
			},
			expectedErr:      &domain.UserNotFoundError{},
			expectedOutcome:  OutcomeUserNotFound,
			expectedAttempts: 1,
		},
		{
			name:   "insufficient balance",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "u1").
					Return(domain.UserLedger{UserID: "u1", Coins: 29}, nil)
			},
			expectedErr:      &domain.InsufficientBalanceError{},
			expectedOutcome:  OutcomeInsufficientFunds,
			expectedAttempts: 1,
		},
		{
			name:            "empty user id",
			userID:          "",
			item:            lamp,
			prepareFn:       func(t *testing.T, d *deps) {},
			expectedErr:     &domain.InvalidArgumentsError{},
			expectedOutcome: OutcomeInvalid,
		},
		{
			name:            "negative cost",
			userID:          "u1",
			item:            domain.CatalogItem{ItemID: "lamp", Cost: -5},
			prepareFn:       func(t *testing.T, d *deps) {},
			expectedErr:     &domain.InvalidArgumentsError{},
			expectedOutcome: OutcomeInvalid,
		},
		{
			name:            "missing item id",
			userID:          "u1",
			item:            domain.CatalogItem{Cost: 5},
			prepareFn:       func(t *testing.T, d *deps) {},
			expectedErr:     &domain.InvalidArgumentsError{},
			expectedOutcome: OutcomeInvalid,
		},
		{
			name:   "conflict resolved by retry",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				gomock.InOrder(
					d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(conflict),
					d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn),
				)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "u1").
					Return(domain.UserLedger{UserID: "u1", Coins: 30}, nil)
				d.purchaser.EXPECT().ProcessPurchase(gomock.Any(), nil, gomock.Any()).Return(nil)
			},
			expectedOutcome:  OutcomeSuccess,
			expectedAttempts: 2,
		},
		{
			name:   "conflict exhausts retries",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(conflict).Times(3)
			},
			expectedErr:      &domain.TransactionConflictError{},
			expectedOutcome:  OutcomeConflict,
			expectedAttempts: 3,
		},
		{
			name:   "store unavailable",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(unavailable).Times(3)
			},
			expectedErr:      &domain.StoreUnavailableError{},
			expectedOutcome:  OutcomeUnavailable,
			expectedAttempts: 3,
		},
		{
			name:   "unexpected write error is not retried",
			userID: "u1",
			item:   lamp,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledgerLoader.EXPECT().LoadLedger(gomock.Any(), nil, "u1").
					Return(domain.UserLedger{UserID: "u1", Coins: 100}, nil)
				d.purchaser.EXPECT().ProcessPurchase(gomock.Any(), nil, gomock.Any()).Return(assert.AnError)
			},
			expectedErr:      assert.AnError,
			expectedOutcome:  OutcomeFailed,
			expectedAttempts: 1,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				ledgerLoader: storemocks.NewMockLedgerLoader(ctrl),
				purchaser:    storemocks.NewMockPurchaser(ctrl),
				txManager:    docstoremocks.NewMockTxManager(ctrl),
			}
			metrics := &fakeMetrics{}

			tt.prepareFn(t, d)

			purchaseCase := NewPurchaseCase(d.txManager, d.ledgerLoader, d.purchaser,
				instantRetries(3), fixedClock(now), metrics, logging.NopLogger)
			record, err := purchaseCase.Purchase(t.Context(), tt.userID, tt.item)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, record.PurchaseID)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, record.PurchaseID)
				assert.Equal(t, tt.item.ItemID, record.ItemID)
			}

			require.Len(t, metrics.purchases, 1)
			assert.Equal(t, tt.expectedOutcome, metrics.purchases[0].outcome)
			assert.Equal(t, tt.expectedAttempts, metrics.purchases[0].attempts)
		})
	}
}

func TestPurchaseCase_ConflictKeepsStoreCause(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	txManager := docstoremocks.NewMockTxManager(ctrl)
	txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(docstore.ErrConflict).Times(2)

	purchaseCase := NewPurchaseCase(txManager, storemocks.NewMockLedgerLoader(ctrl), storemocks.NewMockPurchaser(ctrl),
		instantRetries(2), time.Now, &fakeMetrics{}, logging.NopLogger)

	_, err := purchaseCase.Purchase(t.Context(), "u1", domain.CatalogItem{ItemID: "lamp", Cost: 1})
	assert.ErrorIs(t, err, docstore.ErrConflict)
	assert.Contains(t, err.Error(), "2 attempts")
}
