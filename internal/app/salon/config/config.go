package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all settings for the salon backend: HTTP server,
// PostgreSQL, MongoDB, Redis, Kafka, JWT and the bootstrap admin account.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	MongoDB  MongoConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig configures the PostgreSQL connection used for
// services, products, contact messages and admin users.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MongoConfig configures the MongoDB connection holding customer reviews.
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig configures Redis, used for admin sessions and the
// public catalog cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// KafkaConfig configures the producer for salon domain events
// (CONTACT_MESSAGE_CREATED, REVIEW_CREATED).
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JWTConfig struct {
	Secret          string
	AccessDuration  time.Duration
	RefreshDuration time.Duration
}

// AdminConfig is the bootstrap admin account created on first start
// when no admin user exists yet.
type AdminConfig struct {
	Username string
	Password string
}

type CacheConfig struct {
	TTL          time.Duration
	WarmSchedule string // cron spec for the catalog cache warmer
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	accessDuration, err := time.ParseDuration(getEnv("JWT_ACCESS_DURATION", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_DURATION value: %w", err)
	}

	refreshDuration, err := time.ParseDuration(getEnv("JWT_REFRESH_DURATION", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_DURATION value: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "salon"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		MongoDB: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "salon"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "salon_events"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-this-in-production"),
			AccessDuration:  accessDuration,
			RefreshDuration: refreshDuration,
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Cache: CacheConfig{
			TTL:          cacheTTL,
			WarmSchedule: getEnv("CACHE_WARM_SCHEDULE", "@every 10m"),
		},
	}, nil
}

// Address returns the host:port the HTTP server binds to.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address returns the Redis host:port.
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
