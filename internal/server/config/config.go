// Package config holds the server configuration, loaded from environment
// variables.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// Store selects the user repository backend: "memory" (seeded demo
	// data, the default) or "postgres" (requires DATABASE_DSN).
	Store       string `env:"STORE,        default=memory"`
	DatabaseDSN string `env:"DATABASE_DSN"`

	S3 S3Config
}

// S3Config enables presigned avatar URLs when Bucket is set; with an empty
// bucket the repository's stored avatar URLs are served as-is.
type S3Config struct {
	Bucket       string `env:"S3_BUCKET"`
	Region       string `env:"S3_REGION,  default=us-east-1"`
	BaseEndpoint string `env:"S3_ENDPOINT"`
	AccessKey    string `env:"S3_ACCESS_KEY"`
	SecretKey    string `env:"S3_SECRET_KEY"`
}

// Load reads configuration from the environment using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
