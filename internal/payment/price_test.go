package payment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Cents(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int64
		wantErr error
	}{
		{name: "string amount", body: `{"price":"10.00"}`, want: 1000},
		{name: "number amount", body: `{"price":25}`, want: 2500},
		{name: "rounds to nearest cent", body: `{"price":19.999}`, want: 2000},
		{name: "float imprecision", body: `{"price":"0.29"}`, want: 29},
		{name: "one cent", body: `{"price":0.01}`, want: 1},
		{name: "zero string", body: `{"price":"0"}`, wantErr: ErrInvalidPrice},
		{name: "negative", body: `{"price":-5}`, wantErr: ErrInvalidPrice},
		{name: "sub cent", body: `{"price":0.004}`, wantErr: ErrInvalidPrice},
		{name: "half cent string", body: `{"price":"0.005"}`, wantErr: ErrInvalidPrice},
		{name: "just under a cent", body: `{"price":0.009}`, wantErr: ErrInvalidPrice},
		{name: "just under a cent string", body: `{"price":"0.0099"}`, wantErr: ErrInvalidPrice},
		{name: "missing", body: `{}`, wantErr: ErrMissingPrice},
		{name: "null", body: `{"price":null}`, wantErr: ErrMissingPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Price Price `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			got, err := req.Price.Cents()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_UnmarshalRejectsGarbage(t *testing.T) {
	for _, body := range []string{`{"price":"ten"}`, `{"price":"NaN"}`, `{"price":true}`} {
		var req struct {
			Price Price `json:"price"`
		}
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorIs(t, err, ErrInvalidPrice, body)
	}
}

func TestStripeProvider_NotConfigured(t *testing.T) {
	_, err := NewStripeProvider("").CreateIntent(context.Background(), 1000)
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}
