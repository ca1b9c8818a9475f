package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	raw := `
http:
  address: ":8080"
database:
  host: localhost
  port: 5432
  user: skyfare
  password: secret
  name: skyfare
  ssl_mode: disable
redis:
  addr: "localhost:6379"
kafka:
  brokers: ["localhost:9092"]
  fare_history_topic: fare-quotes
  group_id: fare-history-writer
quotes:
  cache_ttl_seconds: 30
payment:
  decline_rate: 0.1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "host=localhost port=5432 user=skyfare password=secret dbname=skyfare sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "fare-quotes", cfg.Kafka.FareHistoryTopic)
	assert.Equal(t, 30, cfg.Quotes.CacheTTLSeconds)
	assert.Equal(t, 0.1, cfg.Payment.DeclineRate)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
