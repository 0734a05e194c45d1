package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Redis configuration
	RedisURL       string        `json:"redis_url"`
	RedisPrefix    string        `json:"redis_prefix"`
	CacheFreshness time.Duration `json:"cache_freshness"`
	CacheRetention time.Duration `json:"cache_retention"`

	// Upstream APIs
	CountriesAPIURL string        `json:"countries_api_url"`
	WeatherAPIURL   string        `json:"weather_api_url"`
	WeatherAPIKey   string        `json:"weather_api_key"`
	FetchTimeout    time.Duration `json:"fetch_timeout"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Redis configuration
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix:    getEnv("REDIS_PREFIX", "geopulse:country:"),
		CacheFreshness: getEnvAsDuration("CACHE_FRESHNESS", 10*time.Minute),
		CacheRetention: getEnvAsDuration("CACHE_RETENTION", 24*time.Hour),

		// Upstream APIs
		CountriesAPIURL: getEnv("COUNTRIES_API_URL", "https://restcountries.com/v3.1/name"),
		WeatherAPIURL:   getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIKey:   getEnv("WEATHER_API_KEY", "demo_key"),
		FetchTimeout:    getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CountriesAPIURL == "" {
		return fmt.Errorf("COUNTRIES_API_URL must not be empty")
	}
	if c.CacheFreshness <= 0 {
		return fmt.Errorf("CACHE_FRESHNESS must be positive, got %v", c.CacheFreshness)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %v", c.FetchTimeout)
	}
	return nil
}

// MockWeather reports whether the weather fetcher should synthesize
// data instead of calling the live API.
func (c *Config) MockWeather() bool {
	return c.WeatherAPIKey == "" || c.WeatherAPIKey == "demo_key"
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
