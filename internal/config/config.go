package config

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata" // zone database for ATTENDANCE_TIMEZONE on minimal images

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	App        AppConfig
	Storage    StorageConfig
	Attendance AttendanceConfig
	Tracing    TracingConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"pos_attendance"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"25"`
	MinConns int32  `env:"DB_MIN_CONNS" envDefault:"5"`
}

// RedisConfig holds the access cache connection. An empty URL disables caching.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET_KEY"`
	AccessExpiration string `env:"JWT_ACCESS_EXPIRATION_TIME" envDefault:"1h"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `env:"APP_PORT" envDefault:"8080"`
	Env            string   `env:"APP_ENV" envDefault:"development"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// TracingConfig enables OTLP span export. An empty endpoint keeps the no-op
// tracer.
type TracingConfig struct {
	OTLPEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SampleRatio  float64 `env:"OTEL_TRACES_SAMPLE_RATIO" envDefault:"0.1"`
}

type StorageConfig struct {
	BasePath string `env:"STORAGE_BASE_PATH" envDefault:"./storage"`
	BaseURL  string `env:"STORAGE_BASE_URL" envDefault:"http://localhost:8080/storage"`
}

// AttendanceConfig holds attendance rule settings
type AttendanceConfig struct {
	Timezone       string        `env:"ATTENDANCE_TIMEZONE" envDefault:"Asia/Jakarta"`
	AccessCacheTTL time.Duration `env:"ATTENDANCE_ACCESS_CACHE_TTL" envDefault:"5m"`
	TxMaxAttempts  int           `env:"ATTENDANCE_TX_MAX_ATTEMPTS" envDefault:"3"`
	ReportTimeout  time.Duration `env:"ATTENDANCE_REPORT_TIMEOUT" envDefault:"10s"`
	ShutdownGrace  time.Duration `env:"ATTENDANCE_SHUTDOWN_GRACE" envDefault:"15s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: cannot load .env file: %v, using environment variables", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLE_RATIO must be between 0 and 1")
	}
	if c.Attendance.TxMaxAttempts < 1 {
		return fmt.Errorf("ATTENDANCE_TX_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the zone attendance dates and times are recorded in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Attendance.Timezone)
}
