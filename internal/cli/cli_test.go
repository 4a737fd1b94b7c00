package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adminDomain "github.com/ridloal/plant-catalog/internal/admin/domain"
	adminService "github.com/ridloal/plant-catalog/internal/admin/service"
	"github.com/ridloal/plant-catalog/internal/platform/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashKey(t *testing.T) {
	t.Run("From flag", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "")
		hashed, err := run(t, "hash-key", "--key", "s3cret")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("s3cret")))
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "from-env")
		hashed, err := run(t, "hash-key")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("from-env")))
	})

	t.Run("Flag wins over environment", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "from-env")
		hashed, err := run(t, "hash-key", "--key", "from-flag")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("from-flag")))
	})

	t.Run("Missing key", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "")
		_, err := run(t, "hash-key")
		assert.ErrorIs(t, err, errAdminKeyRequired)
	})
}

func TestToken(t *testing.T) {
	t.Setenv("ADMIN_KEY", "")
	t.Setenv("ADMIN_KEY_HASH", "")
	t.Setenv("ADMIN_TOKEN_SECRET", "cli-secret")
	t.Setenv("ADMIN_TOKEN_TTL", "")

	t.Run("Mints a verifiable token", func(t *testing.T) {
		token, err := run(t, "token", "--key", "s3cret", "--ttl", "5")
		require.NoError(t, err)

		verifier, err := adminService.NewTokenService(config.AdminConfig{
			Key:         "s3cret",
			TokenSecret: "cli-secret",
		})
		require.NoError(t, err)
		claims, err := verifier.VerifyToken(token, adminDomain.ScopeCreatePlants)
		require.NoError(t, err)
		assert.Equal(t, adminDomain.TokenSubject, claims.Subject)
	})

	t.Run("Key must match the configured hash", func(t *testing.T) {
		hashed, err := adminService.HashAdminKey("right")
		require.NoError(t, err)
		_, err = run(t, "token", "--key", "wrong", "--key-hash", hashed)
		assert.ErrorIs(t, err, adminService.ErrInvalidAdminKey)
	})

	t.Run("Invalid ttl", func(t *testing.T) {
		_, err := run(t, "token", "--key", "s3cret", "--ttl", "soon")
		assert.Error(t, err)
	})

	t.Run("Missing key", func(t *testing.T) {
		_, err := run(t, "token")
		assert.ErrorIs(t, err, errAdminKeyRequired)
	})
}

func TestSeed_RejectsMemoryStore(t *testing.T) {
	_, err := run(t, "seed", "--storage", config.StorageDriverMemory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeds itself")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	_, err := run(t, "migrate", "--db-driver", "sqlite-nope")
	assert.Error(t, err)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := run(t, "hash-key", "extra")
	assert.Error(t, err)
}
