package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired wraps ErrInvalidToken so callers that only care about
	// validity need a single check.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)

	ErrInvalidPrice       = errors.New("invalid price")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	ErrMissingEmail       = errors.New("email is required")
	ErrEmptyUpdate        = errors.New("update must set at least one field")
)
