package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimezone is the zone used when a profile location cannot be
// resolved. Overridable through DEFAULT_TIMEZONE.
const DefaultTimezone = "Africa/Cairo"

// Config holds the configuration values for the service.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisAddr   string
	CORSOrigins string

	BackendURL      string
	UpstreamTimeout time.Duration
	UpstreamRetries int
	RetryDelay      time.Duration

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	DefaultTimezone     string
	CarePackageDuration time.Duration
	MeetingLead         time.Duration
	CacheStaleTime      time.Duration
	CacheGCTime         time.Duration

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Config{
		Env:         getString("APP_ENV", "development"),
		Port:        getString("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CORSOrigins: getString("CORS_ORIGINS", "*"),

		BackendURL:      strings.TrimRight(getString("BACKEND_URL", "http://localhost:5000/api"), "/"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		UpstreamRetries: getInt("UPSTREAM_RETRIES", 3),
		RetryDelay:      getDuration("UPSTREAM_RETRY_DELAY", 500*time.Millisecond),

		JWTSecret:       getString("JWT_SECRET", "solid_secret_key"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		DefaultTimezone:     getString("DEFAULT_TIMEZONE", DefaultTimezone),
		CarePackageDuration: getDuration("CARE_PACKAGE_DURATION", 60*time.Minute),
		MeetingLead:         getDuration("MEETING_LEAD", 15*time.Minute),
		CacheStaleTime:      getDuration("CACHE_STALE_TIME", 5*time.Minute),
		CacheGCTime:         getDuration("CACHE_GC_TIME", 10*time.Minute),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getInt("SMTP_PORT", 587),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
