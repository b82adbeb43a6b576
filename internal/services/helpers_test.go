package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/payment"
	"github.com/Alamin4D/battle-server-website/internal/repositories"
	"github.com/Alamin4D/battle-server-website/internal/repositories/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryRepo(t *testing.T) repositories.Repository {
	t.Helper()
	rm := memory.NewRepositoryManager()
	require.NoError(t, rm.Initialize(context.Background()))
	return rm.GetRepository()
}

func newTestPublisher() *events.MockEventPublisher {
	return events.NewMockEventPublisher(testLogger())
}

// fakeProvider records requested amounts
type fakeProvider struct {
	amounts []int64
	err     error
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amountCents int64) (*payment.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.amounts = append(f.amounts, amountCents)
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", Amount: amountCents, Currency: "usd"}, nil
}
