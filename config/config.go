package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port               string
	Env                string
	ProcessorURL       string
	ProcessorTimeout   time.Duration
	RequestTimeout     time.Duration
	MaxUploadBytes     int64
	SessionTTL         time.Duration
	SessionCapacity    int
	KafkaBrokers       string
	KafkaOrderTopic    string
	AllowedOrigins     []string
	RateLimitPerMinute int
	RateLimitBurst     int
	// PreserveMappingOverrides keeps manual column choices when a new file is selected.
	PreserveMappingOverrides bool
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("No .env file found, using environment variables")
	}

	return Config{
		Port:                     getEnv("PORT", "8080"),
		Env:                      getEnv("APP_ENV", "development"),
		ProcessorURL:             getEnv("PROCESSOR_URL", "http://localhost:8090/excel-parser"),
		ProcessorTimeout:         getDuration("PROCESSOR_TIMEOUT", 60*time.Second),
		RequestTimeout:           getDuration("REQUEST_TIMEOUT", 90*time.Second),
		MaxUploadBytes:           int64(getInt("MAX_UPLOAD_MB", 50)) << 20,
		SessionTTL:               getDuration("SESSION_TTL", 24*time.Hour),
		SessionCapacity:          getInt("SESSION_CAPACITY", 10000),
		KafkaBrokers:             getEnv("KAFKA_BROKERS", ""),
		KafkaOrderTopic:          getEnv("KAFKA_ORDER_TOPIC", "orders.placed"),
		AllowedOrigins:           splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		RateLimitPerMinute:       getInt("RATE_LIMIT_PER_MINUTE", 100),
		RateLimitBurst:           getInt("RATE_LIMIT_BURST", 50),
		PreserveMappingOverrides: getBool("MAPPING_PRESERVE_OVERRIDES", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSuffix(strings.TrimSpace(item), "/"); item != "" {
			out = append(out, item)
		}
	}
	return out
}
