package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingPrice = errors.New("price is required")
	ErrInvalidPrice = errors.New("price must be a positive amount of at least one cent")
)

// Price is a dollar amount accepted from JSON as either a number or a
// numeric string.
type Price struct {
	value float64
	set   bool
}

func NewPrice(v float64) Price {
	return Price{value: v, set: true}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidPrice
	}
	*p = Price{value: v, set: true}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// IsSet reports whether a price was supplied
func (p Price) IsSet() bool {
	return p.set
}

// Cents converts the price to the smallest currency unit, rounding to the
// nearest cent. Amounts below one cent are rejected before rounding.
func (p Price) Cents() (int64, error) {
	if !p.set {
		return 0, ErrMissingPrice
	}
	raw := p.value * 100
	if raw < 1 {
		return 0, ErrInvalidPrice
	}
	return int64(math.Round(raw)), nil
}
