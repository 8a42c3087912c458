package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Booking endpoint
	BookingEndpointURL string
	BookingTimeout     time.Duration
	BookingAutoClose   time.Duration
	BookingRateLimit   int

	// Visitor sessions
	SessionSecret  string
	SessionTTL     time.Duration
	VisitorIdleTTL time.Duration
	SessionStore   string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	CORSAllowedOrigins []string

	// Presentation
	AvatarBaseURL   string
	GAMeasurementID string
	ClinicPhone     string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://smilebrightdental.in"), "/"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		BookingEndpointURL: getEnv("BOOKING_ENDPOINT_URL", "https://formspree.io/f/mlgwpejv"),
		BookingTimeout:     getEnvAsDuration("BOOKING_TIMEOUT", 15*time.Second),
		BookingAutoClose:   getEnvAsDuration("BOOKING_AUTO_CLOSE", 3*time.Second),
		BookingRateLimit:   getEnvAsInt("BOOKING_RATE_LIMIT", 10),

		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		VisitorIdleTTL: getEnvAsDuration("VISITOR_IDLE_TTL", 30*time.Minute),
		SessionStore:   strings.ToLower(strings.TrimSpace(getEnv("SESSION_STORE", "memory"))),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		AvatarBaseURL:   getEnv("AVATAR_BASE_URL", "https://ui-avatars.com/api/"),
		GAMeasurementID: getEnv("GA_MEASUREMENT_ID", ""),
		ClinicPhone:     getEnv("CLINIC_PHONE", "+917901934386"),
	}
}

// UsesRedis reports whether shared visitor state should live in Redis.
func (c *Config) UsesRedis() bool {
	return c.SessionStore == "redis"
}

// IsProduction reports whether the site runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
