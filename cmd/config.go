package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment, optionally seeded from .env.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"roomservice"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// AdminNames are full names that get the admin role on placement.
	AdminNames      []string `envconfig:"ADMIN_NAMES"`
	AdminNameLocale string   `envconfig:"ADMIN_NAME_LOCALE" default:"tr"`

	// RedisAddr enables Idempotency-Key handling when set.
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`

	StatsSchedule string   `envconfig:"STATS_SCHEDULE" default:"*/15 * * * * *"`
	AutoMigrate   bool     `envconfig:"AUTO_MIGRATE" default:"true"`
	LogFormat     string   `envconfig:"LOG_FORMAT" default:"json"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

// DSN is the libpq connection string used by GORM and the migration runner.
// Empty settings are left out so libpq falls back to its own defaults.
func (c Config) DSN() string {
	settings := []struct{ key, value string }{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSslMode},
	}

	parts := make([]string, 0, len(settings))
	for _, s := range settings {
		if s.value == "" {
			continue
		}
		parts = append(parts, s.key+"="+quoteDSNValue(s.value))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes a value, escaping backslashes and quotes.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
