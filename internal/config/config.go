package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

const (
	defaultDecodeWorkers    = 4
	defaultAirportAPIURL    = "https://aviationweather.gov/api/data/airport"
	defaultAirportRPS       = 2.0
	defaultAirportCacheSize = 1000
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration
	DecodeWorkers      int

	// Remote airport directory. The static directory is always available.
	AirportLookupEnabled bool
	AirportAPIURL        string
	AirportAPITimeout    time.Duration
	AirportAPIRPS        float64
	AirportCacheSize     int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	workers, err := parsePositiveInt("DECODE_WORKERS", defaultDecodeWorkers)
	if err != nil {
		return nil, err
	}

	apiTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("AIRPORT_API_TIMEOUT", "5s"))
	if err != nil || apiTimeout <= 0 {
		return nil, errors.New("invalid AIRPORT_API_TIMEOUT")
	}

	rps := defaultAirportRPS
	if s := os.Getenv("AIRPORT_API_RPS"); s != "" {
		rps, err = strconv.ParseFloat(s, 64)
		if err != nil || rps <= 0 {
			return nil, errors.New("invalid AIRPORT_API_RPS")
		}
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-aviation-bulletins"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "decoded-aviation-bulletins"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "aero-bulletin-etl"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,
		DecodeWorkers:      workers,

		AirportLookupEnabled: os.Getenv("AIRPORT_LOOKUP_ENABLED") == "true",
		AirportAPIURL:        sharedcfg.EnvOrDefault("AIRPORT_API_URL", defaultAirportAPIURL),
		AirportAPITimeout:    apiTimeout,
		AirportAPIRPS:        rps,
		AirportCacheSize:     parseCacheSize(),
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.AirportLookupEnabled {
		if u, err := url.Parse(cfg.AirportAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, errors.New("invalid AIRPORT_API_URL")
		}
	}

	return cfg, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

// parseCacheSize falls back to the default on bad input; a cache that is too
// small only costs extra lookups.
func parseCacheSize() int {
	if s := os.Getenv("AIRPORT_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return defaultAirportCacheSize
}
