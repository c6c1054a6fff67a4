package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	defaultBatchSize = 100
	minBatchSize     = 100
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"InkLedger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"inkledger"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Archive struct {
		// RequireBackup selects the strict backup gate policy. Flexible
		// (false) is only meant for lower environments.
		RequireBackup bool `envconfig:"ARCHIVE_REQUIRE_BACKUP" default:"true"`
		// BatchSizeRaw is kept as a string so that malformed values fall
		// back to the default instead of failing startup.
		BatchSizeRaw  string        `envconfig:"ARCHIVE_BATCH_SIZE" default:"100"`
		CheckInterval time.Duration `envconfig:"ARCHIVE_CHECK_INTERVAL" default:"1h"`
	}

	Backup struct {
		BaseURL string `envconfig:"BACKUP_API_URL" default:"http://localhost:8090"`
		Token   string `envconfig:"BACKUP_API_TOKEN"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// ArchiveBatchSize returns the configured batch size, bounded below at 100.
// Non-numeric or non-positive values fall back to the default.
func (c *Config) ArchiveBatchSize() int {
	n, err := strconv.Atoi(c.Archive.BatchSizeRaw)
	if err != nil || n <= 0 {
		return defaultBatchSize
	}

	if n < minBatchSize {
		return minBatchSize
	}

	return n
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
