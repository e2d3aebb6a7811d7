package common

import (
	"os"
	"strconv"
	"time"

	// Load environment variables from a .env file when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all application configuration
type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	OCR      OCRConfig
	Schedule ScheduleConfig
	Lock     LockConfig
	Server   ServerConfig
	LogLevel string
}

// StorageConfig holds blob-store configuration
type StorageConfig struct {
	ConnectionString string
	Container        string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" | "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
	AutoMigrate      bool
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// ScheduleConfig holds the periodic trigger configuration
type ScheduleConfig struct {
	Interval   time.Duration
	Timezone   string
	RunTimeout time.Duration
	RunOnStart bool
}

// LockConfig holds the single-run lock configuration
type LockConfig struct {
	RedisAddr     string
	RedisPassword string
	Key           string
	TTL           time.Duration
}

// ServerConfig holds daemon listener configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			ConnectionString: getEnv("STORAGE_CONNECTION_STRING", ""),
			Container:        getEnv("BLOB_CONTAINER", "dbeditor"),
		},
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", DriverPostgres),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 4),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
			AutoMigrate:      getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 200),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Schedule: ScheduleConfig{
			Interval:   getEnvAsDuration("SCHEDULE_INTERVAL", 15*time.Minute),
			Timezone:   getEnv("SCHEDULE_TIMEZONE", "Asia/Kolkata"),
			RunTimeout: getEnvAsDuration("RUN_TIMEOUT", 30*time.Minute),
			RunOnStart: getEnvAsBool("RUN_ON_START", true),
		},
		Lock: LockConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			Key:           getEnv("RUN_LOCK_KEY", "request-ocr:run"),
			TTL:           getEnvAsDuration("RUN_LOCK_TTL", 45*time.Minute),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Database drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A missing storage connection
// string is not an error here: runs log it and return an empty result.
func (c *Config) Validate() error {
	v := NewValidator().
		Field("DB_DRIVER", c.Database.Driver, OneOf(DriverPostgres, DriverSQLite)).
		Field("SCHEDULE_INTERVAL", c.Schedule.Interval, Positive)
	if c.Database.Driver == DriverPostgres {
		v.Field("DB_URL", c.Database.DSN, Required)
	}
	if v.HasErrors() {
		return NewAppError(CodeConfigInvalid, v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}
