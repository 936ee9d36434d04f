package cfg

import (
	"io"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, "error")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local/")
	t.Setenv("STORE_TIMEZONE", "UTC")

	c, err := Load(quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "http://api.local", c.Api.BaseURL)
	assert.Equal(t, "/uploads", c.Api.UploadsPrefix)
	assert.Equal(t, StorageRedis, c.Storage)
	assert.Equal(t, time.Hour, c.Store.MinLead)
	assert.Equal(t, "sid", c.Store.SessionCookie)
	assert.Equal(t, "8080", c.Http.Port)
	assert.False(t, c.Kafka.Enabled())
	assert.False(t, c.Minio.Enabled())
	assert.False(t, c.Db.Enabled())
}

func TestLoad_RequiresAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := Load(quietLogger())
	assert.Error(t, err)
}

func TestLoad_StorageDriver(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local")
	t.Setenv("STORE_TIMEZONE", "UTC")

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "etcd")
		_, err := Load(quietLogger())
		assert.ErrorIs(t, err, e.ErrUnknownStorageDriver)
	})

	t.Run("postgres requires credentials", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("POSTGRES_USER", "")
		_, err := Load(quietLogger())
		assert.Error(t, err)
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("POSTGRES_USER", "shop")
		t.Setenv("POSTGRES_DB", "shop")
		c, err := Load(quietLogger())
		require.NoError(t, err)
		assert.Equal(t, StoragePostgres, c.Storage)
		assert.Contains(t, c.Db.DSN(), "user=shop")
		assert.Equal(t, int32(10), c.Db.MaxConns)
		assert.Equal(t, "db/migrations", c.Db.MigrationsPath)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		t.Setenv("POSTGRES_MAX_CONNS", "many")
		_, err := Load(quietLogger())
		assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})
}

func TestLoad_KafkaBrokers(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local")
	t.Setenv("STORE_TIMEZONE", "UTC")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")

	c, err := Load(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.True(t, c.Kafka.Enabled())
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "x")
	_, err := parseIntEnv("SOME_INT", 3)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	v, err := parseIntEnv("MISSING_INT", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
