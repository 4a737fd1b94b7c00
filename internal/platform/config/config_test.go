package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PLANT_TEST_VALUE", "x")
	assert.Equal(t, "x", GetEnv("PLANT_TEST_VALUE", "fallback"))

	t.Setenv("PLANT_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("PLANT_TEST_VALUE", "fallback"))
}

func TestGetEnvAsDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"90s":  90 * time.Second,
		"15":   15 * time.Minute,
		"junk": 30 * time.Minute,
		"-5m":  30 * time.Minute,
	}
	for raw, want := range cases {
		t.Setenv("PLANT_TEST_TTL", raw)
		assert.Equal(t, want, GetEnvAsDuration("PLANT_TEST_TTL", 30*time.Minute), raw)
	}
}

func TestLoadStorageConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("CATALOG_DB_DRIVER", "postgres")

	cfg := LoadStorageConfig()
	assert.Equal(t, StorageDriverMemory, cfg.Driver)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "postgres", cfg.Postgres.Driver)
	assert.Equal(t, "plant_store", cfg.Mongo.Database)
}

func TestLoadAdminConfig(t *testing.T) {
	t.Run("Insecure defaults", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "")
		t.Setenv("ADMIN_KEY_HASH", "")
		t.Setenv("ADMIN_TOKEN_SECRET", "")
		t.Setenv("ADMIN_TOKEN_TTL", "")

		cfg := LoadAdminConfig()
		assert.Equal(t, "mysecretpassword", cfg.Key)
		assert.NotEmpty(t, cfg.TokenSecret)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	})

	t.Run("Hash alone is enough", func(t *testing.T) {
		t.Setenv("ADMIN_KEY", "")
		t.Setenv("ADMIN_KEY_HASH", "$2a$10$abc")
		t.Setenv("ADMIN_TOKEN_TTL", "5m")

		cfg := LoadAdminConfig()
		assert.Empty(t, cfg.Key)
		assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	})
}

func TestLoadWebConfig(t *testing.T) {
	t.Setenv("CATALOG_API_URL", "http://catalog:5001/api/")
	t.Setenv("SERVER_PORT", "")

	cfg := LoadWebConfig()
	assert.Equal(t, "http://catalog:5001/api", cfg.APIBaseURL)
	assert.Equal(t, "3000", cfg.ListenPort)
	assert.Equal(t, "@every 1m", cfg.CategoryRefreshSpec)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PLANT_DOTENV_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PLANT_DOTENV_VALUE") })

	Load(file)
	assert.Equal(t, "from-file", os.Getenv("PLANT_DOTENV_VALUE"))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration(" 45s ")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	d, err = ParseDuration("2")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)

	for _, raw := range []string{"", "0", "-1m", "soon"} {
		_, err := ParseDuration(raw)
		assert.Error(t, err, raw)
	}
}
