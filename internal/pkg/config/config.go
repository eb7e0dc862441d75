package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=720h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	// URI has no default: a missing connection string is a fatal startup
	// condition, not something to paper over with localhost.
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=salon"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
