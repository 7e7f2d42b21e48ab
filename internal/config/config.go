package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Log       LogConfig
	Broker    BrokerConfig
	Scheduler SchedulerConfig
	MarketRef MarketRefConfig
	Analysis  analysis.Config
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// BrokerConfig holds the brokerage API credentials and the key used to
// encrypt access tokens at rest. An empty FernetKey disables broker
// connectivity rather than failing startup.
type BrokerConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
	FernetKey string
}

// SchedulerConfig holds background job configuration
type SchedulerConfig struct {
	Enabled      bool
	SyncSchedule string // cron expression with seconds field
}

// MarketRefConfig holds the optional market reference table override
type MarketRefConfig struct {
	Path string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealth_checkup.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Broker: BrokerConfig{
			APIKey:    getEnv("KITE_API_KEY", ""),
			APISecret: getEnv("KITE_API_SECRET", ""),
			BaseURL:   getEnv("KITE_BASE_URL", "https://api.kite.trade"),
			FernetKey: getEnv("FERNET_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			Enabled:      getEnvBool("SCHEDULER_ENABLED", true),
			SyncSchedule: getEnv("SYNC_SCHEDULE", "0 0 7 * * *"),
		},
		MarketRef: MarketRefConfig{
			Path: getEnv("MARKET_REF_PATH", ""),
		},
		Analysis: loadAnalysisConfig(),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// loadAnalysisConfig starts from the engine defaults and applies any
// environment overrides, keeping the thresholds tunable per deployment
// without a rebuild.
func loadAnalysisConfig() analysis.Config {
	cfg := analysis.DefaultConfig()
	cfg.AnnualGrowthRate = getEnvFloat("ANALYSIS_GROWTH_RATE", cfg.AnnualGrowthRate)
	cfg.EmergencyFundMonths = getEnvFloat("ANALYSIS_EMERGENCY_MONTHS", cfg.EmergencyFundMonths)
	cfg.SectorConcentrationPct = getEnvFloat("ANALYSIS_SECTOR_CONCENTRATION_PCT", cfg.SectorConcentrationPct)
	cfg.EquityOverweightPct = getEnvFloat("ANALYSIS_EQUITY_OVERWEIGHT_PCT", cfg.EquityOverweightPct)
	cfg.FundUnderweightPct = getEnvFloat("ANALYSIS_FUND_UNDERWEIGHT_PCT", cfg.FundUnderweightPct)
	cfg.HighBetaThreshold = getEnvFloat("ANALYSIS_HIGH_BETA", cfg.HighBetaThreshold)
	cfg.NotableTaxSavings = getEnvFloat("ANALYSIS_NOTABLE_TAX_SAVINGS", cfg.NotableTaxSavings)
	cfg.SmallCapAlertPct = getEnvFloat("ANALYSIS_SMALL_CAP_ALERT_PCT", cfg.SmallCapAlertPct)
	cfg.LowRatedFundAlertPct = getEnvFloat("ANALYSIS_LOW_RATED_ALERT_PCT", cfg.LowRatedFundAlertPct)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvList gets a comma-separated environment variable or returns a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
