package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// A .env file in the working directory is loaded first when present; real env vars win.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Payment   PaymentConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	// Calendar days (today, booking ranges) are evaluated in this zone.
	TimeZone string `envconfig:"APP_TIMEZONE" default:"America/Sao_Paulo"`
	// postgres | memory
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	AdminEmail  string `envconfig:"ADMIN_EMAIL" default:"admin@pontomais.com"`
	// The admin account always signs in with this password.
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns       int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MigrateOnStart bool   `envconfig:"DB_MIGRATE_ON_START" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type PaymentConfig struct {
	Delay time.Duration `envconfig:"PAYMENT_DELAY" default:"2s"`
}

// Addr empty disables the occupied-date cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	IndexTTL time.Duration `envconfig:"REDIS_INDEX_TTL" default:"10m"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("unknown APP_TIMEZONE, falling back to UTC", "timezone", c.TimeZone, "error", err.Error())
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			TimeZone:      "America/Sao_Paulo",
			StoreDriver:   "postgres",
			AdminEmail:    "admin@pontomais.com",
			AdminPassword: "admin-password",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Payment: PaymentConfig{
			Delay: 0,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}
