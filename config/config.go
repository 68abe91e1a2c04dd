package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database   DatabaseConfig
	Telegram   TelegramConfig
	Log        LogConfig
	StrictExit bool
}

type DatabaseConfig struct {
	Driver     string
	Name       string
	User       string
	Password   string
	Host       string
	Port       int
	SSLMode    string
	SQLitePath string

	// Container is the docker container hosting the database. Informational only.
	Container string
}

// TelegramConfig is only checked by ValidateBot, so a broken bot setting
// never blocks the CLI commands.
type TelegramConfig struct {
	Token      string
	OwnerIDRaw string
	OwnerID    int64
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Name:       getEnv("DATABASE", "ponto"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Host:       getEnv("HOST", "localhost"),
			Port:       port,
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "ponto.db"),
			Container:  getEnv("DB_CONTAINER", ""),
		},
		Telegram: TelegramConfig{
			Token:      getEnv("TELEGRAM_TOKEN", ""),
			OwnerIDRaw: strings.TrimSpace(getEnv("TELEGRAM_OWNER_ID", "")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Pretty: isTruthy(getEnv("LOG_PRETTY", "")),
		},
		StrictExit: isTruthy(getEnv("STRICT_EXIT", "")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (want %s or %s)", c.Database.Driver, DriverPostgres, DriverSQLite)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d out of range", c.Database.Port)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// ValidateBot reports what the bot subcommand needs but the CLI does not,
// and fills in Telegram.OwnerID from TELEGRAM_OWNER_ID.
func (c *Config) ValidateBot() error {
	if c.Telegram.Token == "" {
		return ErrNoToken{}
	}
	if c.Telegram.OwnerIDRaw == "" {
		return ErrNoOwner{}
	}
	ownerID, err := strconv.ParseInt(c.Telegram.OwnerIDRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TELEGRAM_OWNER_ID: %w", err)
	}
	if ownerID == 0 {
		return ErrNoOwner{}
	}
	c.Telegram.OwnerID = ownerID
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN não definido no ambiente"
}

type ErrNoOwner struct{}

func (e ErrNoOwner) Error() string {
	return "TELEGRAM_OWNER_ID não definido no ambiente"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
