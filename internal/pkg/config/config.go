package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: secrets and values that differ between environments (port, DB
//   connection, password hashes)
// - default: the booking rule constants; they are fixed for the house but
//   kept overridable for tests and future deployments
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"CET"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// SessionConfig carries the shared-secret login of the original system:
// one password per role, stored as bcrypt hashes, exchanged for an
// HMAC-signed session token.
type SessionConfig struct {
	Secret            string `envconfig:"SESSION_SECRET" required:"true"`
	UserPasswordHash  string `envconfig:"USER_PASSWORD_HASH" required:"true"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	Duration          string `envconfig:"SESSION_DURATION" default:"24h"`
}

// BookingConfig holds the numeric booking rule constants. Times of day are
// "HH:MM" strings in the booking zone.
type BookingConfig struct {
	MaxDaysAhead           int    `envconfig:"BOOKING_MAX_DAYS_AHEAD" default:"14"`
	MinTime                string `envconfig:"BOOKING_MIN_TIME" default:"08:00"`
	MaxTime                string `envconfig:"BOOKING_MAX_TIME" default:"22:00"`
	StepMinutes            int    `envconfig:"BOOKING_STEP_MINUTES" default:"15"`
	DefaultDurationMinutes int    `envconfig:"BOOKING_DEFAULT_DURATION_MINUTES" default:"60"`
	TimeZoneOffsetSeconds  int    `envconfig:"BOOKING_TZ_OFFSET_SECONDS" default:"3600"` // fixed CET, no DST
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Location returns the fixed-offset booking zone.
func (c BookingConfig) Location() *time.Location {
	return time.FixedZone("CET", c.TimeZoneOffsetSeconds)
}

// ParseTimeOfDay converts "HH:MM" into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// NewTestConfig returns a config for tests. The password hashes are left
// empty; test setups fill them with freshly generated bcrypt hashes.
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "CET",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Session: SessionConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			MaxDaysAhead:           14,
			MinTime:                "08:00",
			MaxTime:                "22:00",
			StepMinutes:            15,
			DefaultDurationMinutes: 60,
			TimeZoneOffsetSeconds:  3600,
		},
	}
}

func LoadConfig() (Config, error) {
	// Optional .env, matching the original deployment's dotenv loading.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := ParseTimeOfDay(cfg.Booking.MinTime); err != nil {
		return Config{}, err
	}
	if _, err := ParseTimeOfDay(cfg.Booking.MaxTime); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
