package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	JWT         JWTConfig         `yaml:"jwt"`
	Sendgrid    SendgridConfig    `yaml:"sendgrid"`
	Log         LogConfig         `yaml:"log"`
	Rent        RentConfig        `yaml:"rent"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains access token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// SendgridConfig contains email settings
type SendgridConfig struct {
	APIKey   string `yaml:"api_key"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// RentConfig contains rent vesting settings
type RentConfig struct {
	// CustodyAddress holds deposited rent until it is claimed.
	CustodyAddress string `yaml:"custody_address"`
	// OperatorAddress may fund balances (stand-in for on-ramp deposits).
	OperatorAddress string `yaml:"operator_address"`
}

// MarketplaceConfig contains marketplace settings
type MarketplaceConfig struct {
	// DefaultFeeBps is applied to categories created without an explicit fee.
	DefaultFeeBps int32 `yaml:"default_fee_bps"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendClaimableRentNotices string `yaml:"send_claimable_rent_notices"`
	TakeRentSnapshots        string `yaml:"take_rent_snapshots"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Sendgrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Sendgrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM"); val != "" {
		c.Sendgrid.From = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Rent
	if val := os.Getenv("RENT_CUSTODY_ADDRESS"); val != "" {
		c.Rent.CustodyAddress = val
	}
	if val := os.Getenv("RENT_OPERATOR_ADDRESS"); val != "" {
		c.Rent.OperatorAddress = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	// Rent defaults
	if c.Rent.CustodyAddress == "" {
		c.Rent.CustodyAddress = "rent-custody"
	}
	if c.Rent.OperatorAddress == "" {
		return fmt.Errorf("rent operator address is required")
	}

	// Marketplace defaults
	if c.Marketplace.DefaultFeeBps == 0 {
		c.Marketplace.DefaultFeeBps = 250 // 2.5%
	}
	if c.Marketplace.DefaultFeeBps < 0 || c.Marketplace.DefaultFeeBps > 10000 {
		return fmt.Errorf("invalid default fee: %d bps", c.Marketplace.DefaultFeeBps)
	}

	// Scheduler defaults
	if c.Scheduler.SendClaimableRentNotices == "" {
		c.Scheduler.SendClaimableRentNotices = "0 0 9 * * *" // 9 AM UTC daily
	}
	if c.Scheduler.TakeRentSnapshots == "" {
		c.Scheduler.TakeRentSnapshots = "0 30 23 L * *" // Last day of month at 11:30 PM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
