package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"worklog/internal/domain"
)

// Config holds all configuration options for the work log application
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Validation ValidationConfig `yaml:"validation"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `yaml:"dir" env:"WORKLOG_DB_DIR" env-description:"Database directory"`
	Filename       string        `yaml:"filename" env:"WORKLOG_DB_FILENAME" env-description:"Database filename"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"WORKLOG_DB_QUERY_TIMEOUT" env-description:"Timeout for a single read"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WORKLOG_DB_WRITE_TIMEOUT" env-description:"Timeout for a single insert or delete"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"WORKLOG_DB_DIR_PERMISSIONS" env-description:"Permissions of a created database directory (octal)"`
}

// ValidationConfig holds the input rules applied by the prompts
type ValidationConfig struct {
	TaskMaxLength int    `yaml:"task_max_length" env:"WORKLOG_TASK_MAX_LENGTH" env-description:"Maximum length of a completed task"`
	DateLayout    string `yaml:"date_layout" env:"WORKLOG_DATE_LAYOUT" env-description:"Go layout used to parse start and end dates"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat  string `yaml:"date_format" env:"WORKLOG_DISPLAY_DATE_FORMAT" env-description:"Go layout used to print dates"`
	ClearScreen bool   `yaml:"clear_screen" env:"WORKLOG_CLEAR_SCREEN" env-description:"Clear the terminal before prompts and pick-lists"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"WORKLOG_LOG_LEVEL" env-description:"Log level: debug, info, warn, error"`
	Format string `yaml:"format" env:"WORKLOG_LOG_FORMAT" env-description:"Log encoding: console or json"`
	File   string `yaml:"file" env:"WORKLOG_LOG_FILE" env-description:"Log file path, stderr when empty"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".worklog"),
			Filename:       "worklog.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskMaxLength: domain.MaxTaskLength,
			DateLayout:    "2/1/06 15:04",
		},
		Display: DisplayConfig{
			DateFormat:  "02/01/06 15:04",
			ClearScreen: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// EnsureDatabaseDir creates the database directory if it does not exist yet.
func (c *Config) EnsureDatabaseDir() error {
	if err := os.MkdirAll(c.Database.Dir, os.FileMode(c.Database.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", c.Database.Dir, err)
	}
	return nil
}

// LoadFromEnvironment overrides fields whose environment variable is set.
// Unset variables keep the current value.
func (c *Config) LoadFromEnvironment() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// LoadFromFile reads a YAML (or JSON/TOML/EDN) file and then the environment on top.
func (c *Config) LoadFromFile(path string) error {
	if err := cleanenv.ReadConfig(path, c); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TaskMaxLength < 1 || c.Validation.TaskMaxLength > domain.MaxTaskLength {
		return &ConfigError{Field: "validation.task_max_length", Message: fmt.Sprintf("task maximum length must be between 1 and %d", domain.MaxTaskLength)}
	}
	if c.Validation.DateLayout == "" {
		return &ConfigError{Field: "validation.date_layout", Message: "date layout cannot be empty"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "display date format cannot be empty"}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("unknown log format %q", c.Log.Format)}
	}

	return nil
}

// Description lists the environment variables understood by the application.
func Description() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(NewConfig(), &header)
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
