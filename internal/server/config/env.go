package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFiles are loaded into the process environment before it is read.
// Variables that are already set win over the files.
var dotenvFiles = []string{".env"}

// EnvConfig lists the environment variables the server understands. Only
// variables that are present override the current configuration.
type EnvConfig struct {
	HTTPAddress             *string        `env:"HTTP_ADDRESS"`
	Port                    *string        `env:"PORT"`
	DatabaseDriver          *string        `env:"DATABASE_DRIVER"`
	DatabaseDSN             *string        `env:"DATABASE_URL"`
	DatabaseMaxOpenConns    *int           `env:"DATABASE_MAX_OPEN_CONNS"`
	DatabaseMaxIdleConns    *int           `env:"DATABASE_MAX_IDLE_CONNS"`
	DatabaseConnMaxLifetime *time.Duration `env:"DATABASE_CONN_MAX_LIFETIME"`
	RunMigrations           *bool          `env:"RUN_MIGRATIONS"`
	SecretKey               *string        `env:"JWT_SECRET"`
	TokenValidityDuration   *time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	BcryptCost              *int           `env:"BCRYPT_COST"`
	LogLevel                *string        `env:"LOG_LEVEL"`
	ShutdownTimeout         *time.Duration `env:"SHUTDOWN_TIMEOUT"`
	S3RootUser              *string        `env:"S3_ROOT_USER"`
	S3RootPassword          *string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket                *string        `env:"S3_BUCKET"`
	S3Region                *string        `env:"S3_REGION"`
	S3BaseEndpoint          *string        `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays environment variables onto config. PORT is honoured as
// ":<port>" unless HTTP_ADDRESS is also set. Unparsable values panic.
func parseEnv(config *Config) {
	_ = godotenv.Load(dotenvFiles...)

	c := &EnvConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *EnvConfig) apply(config *Config) {
	if c.Port != nil && *c.Port != "" {
		config.EndpointAddrHTTP = ":" + *c.Port
	}
	overlay(&config.EndpointAddrHTTP, c.HTTPAddress)
	overlay(&config.DatabaseDriver, c.DatabaseDriver)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.DatabaseMaxOpenConns, c.DatabaseMaxOpenConns)
	overlay(&config.DatabaseMaxIdleConns, c.DatabaseMaxIdleConns)
	overlay(&config.DatabaseConnMaxLifetime, c.DatabaseConnMaxLifetime)
	overlay(&config.RunMigrations, c.RunMigrations)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.TokenValidityDuration, c.TokenValidityDuration)
	overlay(&config.BcryptCost, c.BcryptCost)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.ShutdownTimeout, c.ShutdownTimeout)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
