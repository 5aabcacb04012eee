package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig      `mapstructure:"auth"`
	AI       AIConfig        `mapstructure:"ai"`
	Storage  StorageConfig   `mapstructure:"storage"`
	Session  SessionConfig   `mapstructure:"session"`
	Tracing  TracingConfig   `mapstructure:"tracing"`
	CORS     CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type AuthConfig struct {
	// bcrypt work factor for new registrations. 0 means bcrypt.DefaultCost.
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// AIConfig points at an OpenAI-compatible chat completion endpoint. The
// generation parameters are operator-configured constants, never
// request-controlled.
type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

// SessionConfig lists the path prefixes the session guard protects.
// Unmatched paths pass through unchecked.
type SessionConfig struct {
	ProtectedPrefixes []string `mapstructure:"protected_prefixes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("BIOTUTOR")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI provider
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	if cfg.JWT.ExpireTime <= 0 {
		cfg.JWT.ExpireTime = 72 * time.Hour
	}

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if len(cfg.Session.ProtectedPrefixes) == 0 {
		cfg.Session.ProtectedPrefixes = []string{"/api/lessons", "/api/chat", "/api/profile"}
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
