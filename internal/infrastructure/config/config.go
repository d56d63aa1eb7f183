package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	MySQL MySQLConfig
	Redis RedisConfig
}

type MySQLConfig struct {
	DSN             string        `env:"MYSQL_DSN, default=minitweet:minitweet@tcp(localhost:3306)/minitweet?parseTime=true&charset=utf8mb4"`
	MaxOpenConns    int           `env:"MYSQL_MAX_OPEN_CONNS,    default=25"`
	MaxIdleConns    int           `env:"MYSQL_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"MYSQL_CONN_MAX_LIFETIME, default=5m"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB          int           `env:"REDIS_DB,   default=0"`
	TimelineTTL time.Duration `env:"TIMELINE_CACHE_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
