// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Config holds application configuration
type Config struct {
	DataDir            string // Directory for the profile database (always absolute)
	LogLevel           string
	LogPretty          bool
	DevMode            bool // Pretty console logs at debug level unless LOG_LEVEL says otherwise
	MarketCondition    domain.MarketCondition
	ModelPath          string // Trained allocation model; empty selects the rule-based strategy
	MarketDataPath     string // Market snapshot file; empty starts from an empty snapshot
	MonteCarlo         MonteCarloConfig
	VaR                VaRConfig
	AlertSweepSchedule string
}

// MonteCarloConfig holds simulation defaults
type MonteCarloConfig struct {
	Simulations int
	Months      int
	Workers     int
	Seed        int // 0 seeds randomly
}

// VaRConfig holds Value at Risk defaults
type VaRConfig struct {
	Confidence  float64
	HorizonDays int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("PESAGURU_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	devMode := getEnvAsBool("DEV_MODE", false)
	defaultLevel := "info"
	if devMode {
		defaultLevel = "debug"
	}

	cfg := &Config{
		DataDir:         absDataDir,
		LogLevel:        getEnv("LOG_LEVEL", defaultLevel),
		LogPretty:       getEnvAsBool("LOG_PRETTY", devMode),
		DevMode:         devMode,
		MarketCondition: domain.MarketCondition(getEnv("MARKET_CONDITION", string(domain.MarketNormal))),
		ModelPath:       getEnv("RECOMMENDATION_MODEL_PATH", ""),
		MarketDataPath:  getEnv("MARKET_DATA_PATH", ""),
		MonteCarlo: MonteCarloConfig{
			Simulations: getEnvAsInt("MONTE_CARLO_SIMULATIONS", 1000),
			Months:      getEnvAsInt("MONTE_CARLO_MONTHS", 60),
			Workers:     getEnvAsInt("MONTE_CARLO_WORKERS", 4),
			Seed:        getEnvAsInt("MONTE_CARLO_SEED", 0),
		},
		VaR: VaRConfig{
			Confidence:  getEnvAsFloat("VAR_CONFIDENCE", 0.95),
			HorizonDays: getEnvAsInt("VAR_HORIZON_DAYS", 1),
		},
		AlertSweepSchedule: getEnv("ALERT_SWEEP_SCHEDULE", "0 */6 * * *"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabasePath returns the location of the profile database
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "pesaguru.db")
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if _, err := domain.ParseMarketCondition(string(c.MarketCondition)); err != nil {
		return fmt.Errorf("MARKET_CONDITION: %w", err)
	}
	if c.MonteCarlo.Simulations <= 0 {
		return fmt.Errorf("MONTE_CARLO_SIMULATIONS must be positive, got %d", c.MonteCarlo.Simulations)
	}
	if c.MonteCarlo.Months <= 0 {
		return fmt.Errorf("MONTE_CARLO_MONTHS must be positive, got %d", c.MonteCarlo.Months)
	}
	if c.MonteCarlo.Workers <= 0 {
		return fmt.Errorf("MONTE_CARLO_WORKERS must be positive, got %d", c.MonteCarlo.Workers)
	}
	if c.MonteCarlo.Seed < 0 {
		return fmt.Errorf("MONTE_CARLO_SEED must not be negative, got %d", c.MonteCarlo.Seed)
	}
	if c.VaR.Confidence <= 0 || c.VaR.Confidence >= 1 {
		return fmt.Errorf("VAR_CONFIDENCE must be between 0 and 1, got %g", c.VaR.Confidence)
	}
	if c.VaR.HorizonDays <= 0 {
		return fmt.Errorf("VAR_HORIZON_DAYS must be positive, got %d", c.VaR.HorizonDays)
	}
	if _, err := cron.ParseStandard(c.AlertSweepSchedule); err != nil {
		return fmt.Errorf("ALERT_SWEEP_SCHEDULE %q: %w", c.AlertSweepSchedule, err)
	}
	return nil
}

// Helper functions
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
