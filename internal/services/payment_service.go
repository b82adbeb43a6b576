package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alamin4D/battle-server-website/internal/events"
	"github.com/Alamin4D/battle-server-website/internal/models"
	"github.com/Alamin4D/battle-server-website/internal/payment"
)

type paymentService struct {
	provider       payment.Provider
	eventPublisher events.EventPublisher
	logger         *slog.Logger
}

func NewPaymentService(provider payment.Provider, publisher events.EventPublisher, logger *slog.Logger) PaymentService {
	return &paymentService{
		provider:       provider,
		eventPublisher: publisher,
		logger:         logger,
	}
}

// CreateIntent converts the price to cents and asks the provider for a USD
// intent. Invalid amounts never reach the provider.
func (s *paymentService) CreateIntent(ctx context.Context, price payment.Price) (*models.PaymentIntentResponse, error) {
	cents, err := price.Cents()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	intent, err := s.provider.CreateIntent(ctx, cents)
	if err != nil {
		if errors.Is(err, payment.ErrProviderNotConfigured) {
			return nil, ErrPaymentUnavailable
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Payment intent created", "intent_id", intent.ID, "amount", cents)
	events.PublishSafe(ctx, s.eventPublisher, s.logger, events.PaymentIntentCreated, map[string]interface{}{
		"intentId": intent.ID,
		"amount":   cents,
		"currency": intent.Currency,
	})
	return &models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}
