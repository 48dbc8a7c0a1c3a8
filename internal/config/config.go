package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	App      AppConfig
	Ledger   LedgerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port string
}

// AppConfig holds application-specific settings
type AppConfig struct {
	JWTSecret     string
	OracleWallets []string
}

// LedgerConfig holds the economic constants of the bounty ledger
type LedgerConfig struct {
	InitialBalance  decimal.Decimal // APT credited at account creation
	CreationBonus   decimal.Decimal // PAT credited when a bounty is posted
	SettlementBonus decimal.Decimal // PAT claim issued to the creator at resolution
	BountyWindow    time.Duration   // how long a bounty accepts bets
	SweepInterval   time.Duration   // how often stale pending bounties are expired
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	initialBalance, err := decimal.NewFromString(getEnv("INITIAL_BALANCE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_BALANCE: %w", err)
	}

	creationBonus, err := decimal.NewFromString(getEnv("CREATION_BONUS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid CREATION_BONUS: %w", err)
	}

	settlementBonus, err := decimal.NewFromString(getEnv("SETTLEMENT_BONUS", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid SETTLEMENT_BONUS: %w", err)
	}

	bountyWindow, err := time.ParseDuration(getEnv("BOUNTY_WINDOW", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOUNTY_WINDOW: %w", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "deepfake_hunters"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		App: AppConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			OracleWallets: splitList(getEnv("ORACLE_WALLETS", "")),
		},
		Ledger: LedgerConfig{
			InitialBalance:  initialBalance,
			CreationBonus:   creationBonus,
			SettlementBonus: settlementBonus,
			BountyWindow:    bountyWindow,
			SweepInterval:   sweepInterval,
		},
	}

	// Validate required fields
	if config.App.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList parses a comma-separated env value into a trimmed slice
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
