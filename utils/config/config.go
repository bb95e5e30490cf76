package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is loaded once at process start and read-only thereafter.
type Config struct {
	AppPort     string
	Development bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	APIKey string

	PayPalClientID     string
	PayPalClientSecret string
	PayPalMode         string

	SuccessURL string
	CancelURL  string
	WebhookURL string

	LocalCurrency      string
	SettlementCurrency string
	ExchangeRate       string

	SeedFile        string
	GracefulTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:     getEnv("APP_PORT", "8080"),
		Development: getEnv("APP_ENV", "development") != "production",

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "payment"),
		DBPassword: getEnv("DB_PASSWORD", "payment123"),
		DBName:     getEnv("DB_NAME", "payment_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		APIKey: getEnv("API_KEY", ""),

		PayPalClientID:     getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalClientSecret: getEnv("PAYPAL_CLIENT_SECRET", ""),
		PayPalMode:         getEnv("PAYPAL_MODE", "sandbox"),

		SuccessURL: getEnv("PAYPAL_SUCCESS_URL", "http://localhost:8080/api/payment/paypal/success"),
		CancelURL:  getEnv("PAYPAL_CANCEL_URL", "http://localhost:8080/api/payment/paypal/cancel"),
		WebhookURL: getEnv("SUBSCRIPTION_WEBHOOK_URL", ""),

		LocalCurrency:      getEnv("LOCAL_CURRENCY", "VND"),
		SettlementCurrency: getEnv("SETTLEMENT_CURRENCY", "USD"),
		ExchangeRate:       getEnv("EXCHANGE_RATE", "0.000042"),

		SeedFile:        getEnv("SEED_FILE", ""),
		GracefulTimeout: parseDuration(getEnv("GRACEFUL_TIMEOUT", "5s"), 5*time.Second),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
