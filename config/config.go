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

	// WorkMate backend API.
	APIBaseURL     string `mapstructure:"API_BASE_URL"`
	APITimeoutSecs int    `mapstructure:"API_TIMEOUT_SECS"`

	// Session persistence.
	SessionBackend  string `mapstructure:"SESSION_BACKEND"` // "file" or "redis"
	SessionFile     string `mapstructure:"SESSION_FILE"`
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisFeedDB    int    `mapstructure:"REDIS_FEED_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Jobs feed cache and refresh worker.
	FeedCacheEnabled bool `mapstructure:"FEED_CACHE_ENABLED"`
	FeedTTLMins      int  `mapstructure:"FEED_TTL_MINS"`
	FeedRefreshMins  int  `mapstructure:"FEED_REFRESH_MINS"`
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
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("API_BASE_URL", "http://127.0.0.1:5000")
	viper.SetDefault("API_TIMEOUT_SECS", 15)
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("SESSION_FILE", ".workmate-session")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_TTL_HOURS", 168)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_FEED_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("FEED_CACHE_ENABLED", false)
	viper.SetDefault("FEED_TTL_MINS", 5)
	viper.SetDefault("FEED_REFRESH_MINS", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
