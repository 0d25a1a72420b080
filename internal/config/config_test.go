package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "catalog.db", cfg.SQLitePath)
	assert.Equal(t, "uploads", cfg.UploadFolder)
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif"}, cfg.AllowedExtensions)
	assert.Equal(t, map[string]string{"en": "English", "fr": "Français"}, cfg.AllowedLanguages)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://catalog@localhost/catalog")
	t.Setenv("ALLOWED_EXTENSIONS", "png,webp")
	t.Setenv("ALLOWED_LANGUAGES", "en:English,es:Español,fr:Français")
	t.Setenv("UPLOAD_FOLDER", "/var/lib/catalog/uploads")
	t.Setenv("PORT", "9000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://catalog@localhost/catalog", cfg.PostgresURL)
	assert.Equal(t, []string{"png", "webp"}, cfg.AllowedExtensions)
	assert.Equal(t, "Español", cfg.AllowedLanguages["es"])
	assert.Equal(t, "/var/lib/catalog/uploads", cfg.UploadFolder)
	assert.Equal(t, ":9000", cfg.Addr())
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=sqlite\nSQLITE_PATH=/tmp/from-dotenv.db\n"), 0o600))
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	// godotenv never overrides variables that are already set, even to ""
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("SQLITE_PATH")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.SQLitePath)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBDriver:         DriverSQLite,
			SQLitePath:       "catalog.db",
			UploadFolder:     "uploads",
			AllowedLanguages: map[string]string{"en": "English"},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.DBDriver = "mysql"
	assert.ErrorContains(t, c.Validate(), "unsupported DB_DRIVER")

	c = valid()
	c.DBDriver = DriverPostgres
	assert.ErrorContains(t, c.Validate(), "POSTGRES_URL")

	c = valid()
	c.AllowedLanguages = nil
	assert.ErrorContains(t, c.Validate(), "ALLOWED_LANGUAGES")

	c = valid()
	c.UploadFolder = ""
	assert.ErrorContains(t, c.Validate(), "UPLOAD_FOLDER")
}
