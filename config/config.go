package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// LiteAPI provider configuration.
	LiteAPIBaseURL    string `mapstructure:"LITEAPI_BASE_URL"`
	LiteAPIKey        string `mapstructure:"LITEAPI_API_KEY"`
	LiteAPISandboxKey string `mapstructure:"LITEAPI_SANDBOX_KEY"`
	ProviderTimeoutMs int    `mapstructure:"PROVIDER_TIMEOUT_MS"`
	FixtureFallback   bool   `mapstructure:"FIXTURE_FALLBACK"`
	DefaultCurrency   string `mapstructure:"DEFAULT_CURRENCY"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`

	// MongoDB (wishlist persistence).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Stripe key for the card payment adapter.
	StripeKey string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("LITEAPI_BASE_URL", "https://api.liteapi.travel/v3.0")
	viper.SetDefault("LITEAPI_API_KEY", "")
	viper.SetDefault("LITEAPI_SANDBOX_KEY", "")
	viper.SetDefault("PROVIDER_TIMEOUT_MS", 10000)
	viper.SetDefault("FIXTURE_FALLBACK", true)
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "islandstay")
	viper.SetDefault("STRIPE_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// ProviderAPIKey returns the sandbox key when set, otherwise the live key.
func ProviderAPIKey() string {
	if AppConfig.LiteAPISandboxKey != "" {
		return AppConfig.LiteAPISandboxKey
	}
	return AppConfig.LiteAPIKey
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
