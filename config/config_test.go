package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableside/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Equal(t, "tableside-events", cfg.KafkaTopic)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tableside.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
storage: postgres
db_host: db.internal
redis_host: cache
public_base_url: https://table.example.com/
idempotency_ttl: 30m
`), 0o600))
	t.Setenv("DB_HOST", "db.override")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg, err := config.Load(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, "db.override", cfg.DBHost)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
	assert.Equal(t, "https://table.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 30*time.Minute, cfg.IdempotencyTTL)
	assert.Contains(t, cfg.PostgresDSN(), "host=db.override port=5432")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "unknown_storage",
			setup: func(t *testing.T) string {
				t.Setenv("STORAGE", "sqlite")
				return ""
			},
		},
		{
			name: "missing_file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			file := testCase.setup(t)
			_, err := config.Load(viper.New(), file)
			assert.Error(t, err)
		})
	}
}

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	logger, err := config.InitLogger("debug", "production")
	require.NoError(t, err)
	assert.Same(t, logger, zap.L())

	_, err = config.InitLogger("loud", "development")
	assert.Error(t, err)
}

func TestNewKafkaWriter(t *testing.T) {
	w := config.NewKafkaWriter(&config.Config{KafkaBroker: "kafka:9092", KafkaTopic: "tableside-events"})
	assert.Equal(t, "tableside-events", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}
