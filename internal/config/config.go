package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	MySQLDSN    string
	SQLitePath  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
	StaticDir   string
	ResetDB     bool

	VenueID               uint
	VenueTimezone         string
	SlotCapacity          int
	TimeSlots             []string
	PublicMaxPartySize    int
	AdminMaxPartySize     int
	BookingHorizonDays    int
	BusinessDayCutoffHour int

	SSEInterval        time.Duration
	WriteTimeout       time.Duration
	SessionTTL         time.Duration
	RateLimitPerMinute int

	DebugEndpoints bool
	LogLevel       string
	LogFormat      string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/nocturna?charset=utf8mb4&parseTime=True&loc=UTC"),
		SQLitePath:  getEnv("SQLITE_PATH", "nocturna.db"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		ResetDB:     getEnvBool("RESET_DB", false),

		VenueID:               uint(getEnvInt("VENUE_ID", 1)),
		VenueTimezone:         getEnv("VENUE_TIMEZONE", "Europe/Madrid"),
		SlotCapacity:          getEnvInt("SLOT_CAPACITY", 30),
		TimeSlots:             getEnvList("TIME_SLOTS", []string{"20:15", "22:30"}),
		PublicMaxPartySize:    getEnvInt("PUBLIC_MAX_PARTY_SIZE", 6),
		AdminMaxPartySize:     getEnvInt("ADMIN_MAX_PARTY_SIZE", 20),
		BookingHorizonDays:    getEnvInt("BOOKING_HORIZON_DAYS", 60),
		BusinessDayCutoffHour: getEnvInt("BUSINESS_DAY_CUTOFF_HOUR", 6),

		SSEInterval:        getEnvDuration("SSE_INTERVAL", 15*time.Second),
		WriteTimeout:       getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		SessionTTL:         getEnvDuration("SESSION_TTL", 24*time.Hour),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10),

		DebugEndpoints: getEnvBool("DEBUG_ENDPOINTS", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

// Keys lists every environment variable Load reads, in a stable order.
func Keys() []string {
	return []string{
		"SERVER_PORT", "DB_DRIVER", "MYSQL_DSN", "SQLITE_PATH",
		"REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD", "JWT_SECRET",
		"SWAGGER_HOST", "STATIC_DIR", "RESET_DB",
		"VENUE_ID", "VENUE_TIMEZONE", "SLOT_CAPACITY", "TIME_SLOTS",
		"PUBLIC_MAX_PARTY_SIZE", "ADMIN_MAX_PARTY_SIZE", "BOOKING_HORIZON_DAYS",
		"BUSINESS_DAY_CUTOFF_HOUR", "SSE_INTERVAL", "WRITE_TIMEOUT", "SESSION_TTL",
		"RATE_LIMIT_PER_MINUTE", "DEBUG_ENDPOINTS", "LOG_LEVEL", "LOG_FORMAT",
	}
}

// IsSecret reports whether the value of key must never be echoed back.
func IsSecret(key string) bool {
	switch key {
	case "MYSQL_DSN", "REDIS_PASSWORD", "JWT_SECRET":
		return true
	}
	return false
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
