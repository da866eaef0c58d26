package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Rabbit      RabbitConfig
	JWT         JWTConfig
	Auction     AuctionConfig
	Payment     ProviderConfig
	Shipment    ProviderConfig
	InternalKey string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type AuctionConfig struct {
	// MinDuration rejects auctions that would close almost immediately.
	MinDuration time.Duration
}

type ProviderConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables, loading .env first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "marketplace"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Rabbit: RabbitConfig{
			Host:     getEnv("RABBIT_HOST", "localhost"),
			Port:     getInt("RABBIT_PORT", 5672),
			User:     getEnv("RABBIT_USER", "guest"),
			Password: getEnv("RABBIT_PASSWORD", "guest"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "secret"),
			Expiration: getDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Auction: AuctionConfig{
			MinDuration: getDuration("AUCTION_MIN_DURATION", time.Second),
		},
		Payment: ProviderConfig{
			BaseURL: getEnv("PAYMENT_BASE_URL", "http://localhost:9091"),
			Timeout: getDuration("PAYMENT_TIMEOUT", 10*time.Second),
		},
		Shipment: ProviderConfig{
			BaseURL: getEnv("SHIPMENT_BASE_URL", "http://localhost:9092"),
			Timeout: getDuration("SHIPMENT_TIMEOUT", 10*time.Second),
		},
		InternalKey: getEnv("INTERNAL_API_KEY", ""),
	}
}

// GetDSN builds the MySQL DSN for sqlx.Connect.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
