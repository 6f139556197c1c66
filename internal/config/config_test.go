package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "raw-aviation-bulletins", cfg.KafkaSourceTopic)
	assert.Equal(t, "decoded-aviation-bulletins", cfg.KafkaSinkTopic)
	assert.Equal(t, "aero-bulletin-etl", cfg.KafkaGroupID)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.Equal(t, 4, cfg.DecodeWorkers)
	assert.False(t, cfg.AirportLookupEnabled)
	assert.Equal(t, "https://aviationweather.gov/api/data/airport", cfg.AirportAPIURL)
	assert.Equal(t, 5*time.Second, cfg.AirportAPITimeout)
	assert.InDelta(t, 2.0, cfg.AirportAPIRPS, 0.001)
	assert.Equal(t, 1000, cfg.AirportCacheSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("DECODE_WORKERS", "8")
	t.Setenv("AIRPORT_LOOKUP_ENABLED", "true")
	t.Setenv("AIRPORT_API_URL", "http://airports.internal/api")
	t.Setenv("AIRPORT_API_TIMEOUT", "2s")
	t.Setenv("AIRPORT_API_RPS", "0.5")
	t.Setenv("AIRPORT_CACHE_SIZE", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, 8, cfg.DecodeWorkers)
	assert.True(t, cfg.AirportLookupEnabled)
	assert.Equal(t, "http://airports.internal/api", cfg.AirportAPIURL)
	assert.Equal(t, 2*time.Second, cfg.AirportAPITimeout)
	assert.InDelta(t, 0.5, cfg.AirportAPIRPS, 0.001)
	assert.Equal(t, 250, cfg.AirportCacheSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"shutdown timeout", "SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
		{"zero batch size", "BATCH_SIZE", "0"},
		{"batch size too large", "BATCH_SIZE", "9999"},
		{"flush interval", "BATCH_FLUSH_INTERVAL", "not-a-duration"},
		{"zero workers", "DECODE_WORKERS", "0"},
		{"non-numeric workers", "DECODE_WORKERS", "many"},
		{"airport timeout", "AIRPORT_API_TIMEOUT", "bad"},
		{"airport rps", "AIRPORT_API_RPS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_InvalidAirportURLOnlyWhenEnabled(t *testing.T) {
	t.Setenv("AIRPORT_API_URL", "not a url")

	_, err := Load()
	require.NoError(t, err)

	t.Setenv("AIRPORT_LOOKUP_ENABLED", "true")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AIRPORT_API_URL")
}

func TestLoad_BadCacheSizeFallsBack(t *testing.T) {
	t.Setenv("AIRPORT_CACHE_SIZE", "-5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.AirportCacheSize)
}
