package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresURL string `env:"POSTGRES_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"catalog.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	UploadFolder      string            `env:"UPLOAD_FOLDER" envDefault:"uploads"`
	AllowedExtensions []string          `env:"ALLOWED_EXTENSIONS" envDefault:"jpg,jpeg,png,gif" envSeparator:","`
	AllowedLanguages  map[string]string `env:"ALLOWED_LANGUAGES" envDefault:"en:English,fr:Français" envSeparator:"," envKeyValSeparator:":"`
	DefaultLanguage   string            `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	// MaxUploadBytes bounds multipart bodies on the create endpoints.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"8388608"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if len(c.AllowedLanguages) == 0 {
		return errors.New("ALLOWED_LANGUAGES must list at least one language")
	}
	if c.UploadFolder == "" {
		return errors.New("UPLOAD_FOLDER is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
