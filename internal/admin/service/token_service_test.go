package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestTokenService(t *testing.T) *tokenService {
	t.Helper()
	svc, err := NewTokenService(config.AdminConfig{
		Key:         "mysecretpassword",
		TokenSecret: "test-secret",
		TokenTTL:    time.Minute,
	})
	require.NoError(t, err)
	return svc.(*tokenService)
}

func TestNewTokenService(t *testing.T) {
	t.Run("Uses a precomputed hash", func(t *testing.T) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("k3y"), bcrypt.MinCost)
		require.NoError(t, err)

		svc, err := NewTokenService(config.AdminConfig{KeyHash: string(hashed), TokenSecret: "s"})
		require.NoError(t, err)
		_, err = svc.OpenSession("k3y")
		assert.NoError(t, err)
	})

	t.Run("Rejects a malformed hash", func(t *testing.T) {
		_, err := NewTokenService(config.AdminConfig{KeyHash: "plain", TokenSecret: "s"})
		assert.Error(t, err)
	})

	t.Run("Requires a key", func(t *testing.T) {
		_, err := NewTokenService(config.AdminConfig{TokenSecret: "s"})
		assert.Error(t, err)
	})

	t.Run("Requires a secret", func(t *testing.T) {
		_, err := NewTokenService(config.AdminConfig{Key: "k"})
		assert.Error(t, err)
	})
}

func TestTokenService_OpenSession(t *testing.T) {
	svc := newTestTokenService(t)

	t.Run("Correct key", func(t *testing.T) {
		session, err := svc.OpenSession("mysecretpassword")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.WithinDuration(t, time.Now().Add(time.Minute), session.ExpiresAt, 2*time.Second)

		claims, err := svc.VerifyToken(session.Token, domain.ScopeCreatePlants)
		require.NoError(t, err)
		assert.Equal(t, domain.TokenSubject, claims.Subject)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Wrong key", func(t *testing.T) {
		session, err := svc.OpenSession("guess")
		assert.Nil(t, session)
		assert.ErrorIs(t, err, ErrInvalidAdminKey)
	})
}

func TestTokenService_VerifyToken(t *testing.T) {
	svc := newTestTokenService(t)
	session, err := svc.IssueToken()
	require.NoError(t, err)

	t.Run("Wrong scope", func(t *testing.T) {
		_, err := svc.VerifyToken(session.Token, "plants:delete")
		assert.ErrorIs(t, err, ErrMissingScope)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken("not.a.token", domain.ScopeCreatePlants)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Signed with another secret", func(t *testing.T) {
		other := newTestTokenService(t)
		other.secret = []byte("other-secret")
		forged, err := other.IssueToken()
		require.NoError(t, err)

		_, err = svc.VerifyToken(forged.Token, domain.ScopeCreatePlants)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		defer func() { svc.now = time.Now }()

		_, err := svc.VerifyToken(session.Token, domain.ScopeCreatePlants)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Scope:            domain.ScopeCreatePlants,
			RegisteredClaims: jwt.RegisteredClaims{Subject: domain.TokenSubject},
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.VerifyToken(s, domain.ScopeCreatePlants)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
