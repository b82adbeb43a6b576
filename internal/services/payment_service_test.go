package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/payment"
)

func priceFrom(t *testing.T, body string) payment.Price {
	t.Helper()
	var req struct {
		Price payment.Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req.Price
}

func TestPaymentService_CreateIntent(t *testing.T) {
	provider := &fakeProvider{}
	publisher := newTestPublisher()
	svc := NewPaymentService(provider, publisher, testLogger())

	resp, err := svc.CreateIntent(context.Background(), priceFrom(t, `{"price":"10.00"}`))
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", resp.ClientSecret)
	assert.Equal(t, []int64{1000}, provider.amounts)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.PaymentIntentCreated, published[0].Type)
}

func TestPaymentService_RejectsInvalidPriceWithoutCallingProvider(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewPaymentService(provider, nil, testLogger())

	for _, body := range []string{`{"price":"0"}`, `{}`, `{"price":-1}`} {
		_, err := svc.CreateIntent(context.Background(), priceFrom(t, body))
		assert.ErrorIs(t, err, ErrInvalidPrice, body)
	}
	assert.Empty(t, provider.amounts)
}

func TestPaymentService_ProviderNotConfigured(t *testing.T) {
	svc := NewPaymentService(&fakeProvider{err: payment.ErrProviderNotConfigured}, nil, testLogger())

	_, err := svc.CreateIntent(context.Background(), payment.NewPrice(5))
	assert.ErrorIs(t, err, ErrPaymentUnavailable)
}
