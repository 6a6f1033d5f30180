package application

import (
	"context"
	"sync"
	"time"

	"github.com/Lexv0lk/room-shop/internal/pkg/docstore"
	"github.com/Lexv0lk/room-shop/internal/pkg/retry"
)

// executeTxFn is a gomock DoAndReturn that actually invokes the TxFunc callback
func executeTxFn(ctx context.Context, txFn docstore.TxFunc) error {
	return txFn(ctx, nil)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func instantRetries(attempts int) retry.Policy {
	return retry.Policy{MaxAttempts: attempts}
}

type metricsCall struct {
	outcome  string
	attempts int
}

type fakeMetrics struct {
	mu        sync.Mutex
	purchases []metricsCall
	refreshes []string
}

func (m *fakeMetrics) RecordPurchase(outcome string, attempts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases = append(m.purchases, metricsCall{outcome: outcome, attempts: attempts})
}

func (m *fakeMetrics) RecordRefresh(mode, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes = append(m.refreshes, mode+":"+outcome)
}
