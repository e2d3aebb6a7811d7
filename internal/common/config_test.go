package common

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_CONNECTION_STRING", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SCHEDULE_INTERVAL", "")

	cfg := LoadConfig()

	assert.Equal(t, "", cfg.Storage.ConnectionString)
	assert.Equal(t, "dbeditor", cfg.Storage.Container)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Schedule.Interval)
	assert.Equal(t, "Asia/Kolkata", cfg.Schedule.Timezone)
	assert.Equal(t, "eng", cfg.OCR.TesseractLang)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_CONNECTION_STRING", "file:///srv/blobs")
	t.Setenv("BLOB_CONTAINER", "letters")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_URL", "file:usage.db")
	t.Setenv("SCHEDULE_INTERVAL", "5m")
	t.Setenv("OCR_DPI", "300")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "file:///srv/blobs", cfg.Storage.ConnectionString)
	assert.Equal(t, "letters", cfg.Storage.Container)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.Interval)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, int32(4), cfg.Database.MaxConns, "unparseable values fall back to the default")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"postgres with dsn", func(c *Config) { c.Database.DSN = "postgres://localhost/usage" }, false},
		{"postgres without dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"sqlite without dsn", func(c *Config) { c.Database.Driver = DriverSQLite; c.Database.DSN = "" }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mssql"; c.Database.DSN = "x" }, true},
		{"zero interval", func(c *Config) { c.Database.DSN = "x"; c.Schedule.Interval = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{Driver: DriverPostgres},
				Schedule: ScheduleConfig{Interval: time.Minute},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, CodeConfigInvalid, CodeOf(err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := NewValidator().
		Field("DB_URL", " ", Required).
		Field("SCHEDULE_INTERVAL", time.Duration(0), Positive).
		Field("DB_DRIVER", "sqlite", OneOf(DriverPostgres, DriverSQLite))

	require.True(t, v.HasErrors())
	require.Len(t, v.Errors(), 2)
	assert.Equal(t, "DB_URL", v.Errors()[0].Field)
	assert.Contains(t, v.ErrorMessage(), "SCHEDULE_INTERVAL must be positive")
}
