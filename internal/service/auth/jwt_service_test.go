package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/taskhub-api/internal/config"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	return impl
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "tooshort",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// Expiration sits one hour after issuance
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(ctx, 42)
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = svc.ValidateToken(ctx, tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()
		other, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "anothersecretkeythatis32charslong!!!",
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, 42)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		issued := newTestService(t)
		issueTime := time.Now().Add(-2 * time.Hour)
		issued.timeFunc = func() time.Time { return issueTime }

		token, err := issued.GenerateToken(ctx, 42)
		require.NoError(t, err)

		// Validate with real time: the 1h lifetime plus clock skew has passed
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token within clock skew still validates", func(t *testing.T) {
		t.Parallel()

		issued := newTestService(t)
		issueTime := time.Now().Add(-61 * time.Minute)
		issued.timeFunc = func() time.Time { return issueTime }

		token, err := issued.GenerateToken(ctx, 42)
		require.NoError(t, err)

		// Expired by 1 minute, but within the 2 minute leeway
		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	})
}

func TestTokenLifetime(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	assert.Equal(t, time.Hour, svc.TokenLifetime())
}
