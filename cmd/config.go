package cmd

import (
	"fmt"
	"strconv"

	redisout "tableorder/internal/adapters/out/redis"
)

const (
	defaultHTTPPort         = "8080"
	defaultDBPort           = "5432"
	defaultDBSslMode        = "disable"
	defaultRedisAddr        = "localhost:6379"
	defaultBusinessTimezone = "Asia/Bangkok"
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	RedisAddr                string
	RedisPassword            string
	RedisDB                  int
	RealtimeChannel          string
	BusinessTimezone         string
	ArchiveReconcileSchedule string
	Debug                    bool
}

// ConfigFromEnv builds the Config from environment lookups, usually
// os.Getenv. Unset variables take their defaults; a value that does not
// parse is an error rather than silently falling back.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	orDefault := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	config := Config{
		HTTPPort:                 orDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:                   getenv("DB_HOST"),
		DBPort:                   orDefault("DB_PORT", defaultDBPort),
		DBUser:                   getenv("DB_USER"),
		DBPassword:               getenv("DB_PASSWORD"),
		DBName:                   getenv("DB_NAME"),
		DBSslMode:                orDefault("DB_SSLMODE", defaultDBSslMode),
		RedisAddr:                orDefault("REDIS_ADDR", defaultRedisAddr),
		RedisPassword:            getenv("REDIS_PASSWORD"),
		RealtimeChannel:          orDefault("REALTIME_CHANNEL", redisout.DefaultChannel),
		BusinessTimezone:         orDefault("BUSINESS_TIMEZONE", defaultBusinessTimezone),
		ArchiveReconcileSchedule: getenv("ARCHIVE_RECONCILE_SCHEDULE"),
	}

	if raw := getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB must be a number: %w", err)
		}
		config.RedisDB = db
	}

	if raw := getenv("DEBUG"); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("DEBUG must be a boolean: %w", err)
		}
		config.Debug = debug
	}

	return config, nil
}
