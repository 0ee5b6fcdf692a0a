package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Backup   BackupConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Path string
}

// JWTConfig holds admin session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// BackupConfig controls the periodic database snapshot job.
type BackupConfig struct {
	Dir      string
	Interval time.Duration
	Keep     int
}

func Load() (*Config, error) {
	// .env is optional in a desktop deployment; explicit env vars still win.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Database = DatabaseConfig{
		Path: getEnv("DB_PATH", "attendance.db"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	backupInterval, err := time.ParseDuration(getEnv("BACKUP_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_INTERVAL: %w", err)
	}
	backupKeep, err := strconv.Atoi(getEnv("BACKUP_KEEP", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_KEEP: %w", err)
	}

	config.Backup = BackupConfig{
		Dir:      getEnv("BACKUP_DIR", "backups"),
		Interval: backupInterval,
		Keep:     backupKeep,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Backup.Keep < 1 {
		return fmt.Errorf("BACKUP_KEEP must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
