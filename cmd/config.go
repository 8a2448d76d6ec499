package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileEnv = "POS_CONFIG_FILE"

type Config struct {
	HTTPPort   string `yaml:"http_port"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	CleanupSchedule string        `yaml:"cleanup_schedule"`
	StaleAfter      time.Duration `yaml:"stale_after"`
}

// DefaultConfig returns the values used when neither the config file nor the
// environment sets them.
func DefaultConfig() Config {
	return Config{
		HTTPPort:        "8080",
		DBHost:          "localhost",
		DBPort:          "5432",
		DBSslMode:       "disable",
		CleanupSchedule: "0 */5 * * * *",
		StaleAfter:      24 * time.Hour,
	}
}

// LoadConfig builds the configuration from, in increasing precedence: the
// defaults, the YAML file named by POS_CONFIG_FILE, and environment variables
// (optionally seeded from a .env file in the working directory).
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := DefaultConfig()

	if path := os.Getenv(configFileEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overrideString(&config.HTTPPort, "HTTP_PORT")
	overrideString(&config.DBHost, "DB_HOST")
	overrideString(&config.DBPort, "DB_PORT")
	overrideString(&config.DBUser, "DB_USER")
	overrideString(&config.DBPassword, "DB_PASSWORD")
	overrideString(&config.DBName, "DB_NAME")
	overrideString(&config.DBSslMode, "DB_SSLMODE")
	overrideString(&config.CleanupSchedule, "CLEANUP_SCHEDULE")

	if v := os.Getenv("STALE_AFTER"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STALE_AFTER: %w", err)
		}
		config.StaleAfter = d
	}

	return config, nil
}

// DSN returns a postgres:// connection URL for lib/pq. Credentials and the
// database name are percent-encoded, so empty or space-containing values
// survive parsing.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	return u.String()
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
