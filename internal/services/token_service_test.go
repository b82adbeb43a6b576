package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(now time.Time) *tokenService {
	s := NewTokenService("test-secret", time.Hour).(*tokenService)
	s.now = func() time.Time { return now }
	return s
}

func TestTokenService_IssueVerify(t *testing.T) {
	now := time.Now()
	s := newTestTokenService(now)

	token, err := s.Issue(Claims{"email": "a@b.com", "name": "A"})
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(59 * time.Minute) }
	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email())
	assert.Equal(t, "A", claims["name"])
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
}

func TestTokenService_Expired(t *testing.T) {
	now := time.Now()
	s := newTestTokenService(now)

	token, err := s.Issue(Claims{"email": "a@b.com"})
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(time.Hour + time.Minute) }
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsInvalid(t *testing.T) {
	s := newTestTokenService(time.Now())

	other := NewTokenService("other-secret", time.Hour)
	foreign, err := other.Issue(Claims{"email": "a@b.com"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret":    foreign,
		"none algorithm":  noneToken,
		"wrong algorithm": hs512,
		"garbage":         "not.a.token",
		"empty":           "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.NotErrorIs(t, err, ErrTokenExpired)
		})
	}
}
