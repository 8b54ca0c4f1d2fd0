package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Posting accounts the invoice and payment flows write against.
	ReceivableAccountCode string
	RevenueAccountCode    string

	// LedgerPrecision is the minor-unit precision used when rendering
	// display amounts (2 for cent-based currencies).
	LedgerPrecision int

	// ReceiptArtifactDir is where rendered receipt documents land.
	ReceiptArtifactDir string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("AR_ACCOUNT_CODE", "1200")
	viper.SetDefault("REVENUE_ACCOUNT_CODE", "4000")
	viper.SetDefault("LEDGER_PRECISION", 2)
	viper.SetDefault("RECEIPT_ARTIFACT_DIR", "./artifacts/receipts")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		ReceivableAccountCode: viper.GetString("AR_ACCOUNT_CODE"),
		RevenueAccountCode:    viper.GetString("REVENUE_ACCOUNT_CODE"),
		LedgerPrecision:       viper.GetInt("LEDGER_PRECISION"),
		ReceiptArtifactDir:    viper.GetString("RECEIPT_ARTIFACT_DIR"),
		RateLimit:             viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
