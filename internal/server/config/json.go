package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogql/internal/flagx"
	"github.com/dmitrijs2005/blogql/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// both "1h"-style strings and integer nanoseconds. Absent keys leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	DatabaseDriver          string         `json:"database_driver"`
	DatabaseDSN             string         `json:"database_dsn"`
	DatabaseMaxOpenConns    int            `json:"database_max_open_conns"`
	DatabaseMaxIdleConns    int            `json:"database_max_idle_conns"`
	DatabaseConnMaxLifetime timex.Duration `json:"database_conn_max_lifetime"`
	RunMigrations           *bool          `json:"run_migrations"`
	SecretKey               string         `json:"secret_key"`
	TokenValidityDuration   timex.Duration `json:"token_validity_duration"`
	BcryptCost              int            `json:"bcrypt_cost"`
	LogLevel                string         `json:"log_level"`
	ShutdownTimeout         timex.Duration `json:"shutdown_timeout"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// A missing or malformed file panics: the server must not start on a
// configuration the operator did not intend.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setInt(&config.DatabaseMaxOpenConns, c.DatabaseMaxOpenConns)
	setInt(&config.DatabaseMaxIdleConns, c.DatabaseMaxIdleConns)
	if c.DatabaseConnMaxLifetime.Duration != 0 {
		config.DatabaseConnMaxLifetime = c.DatabaseConnMaxLifetime.Duration
	}
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setInt(&config.BcryptCost, c.BcryptCost)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
