package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Session  SessionConfig  `mapstructure:"session"`
	Admin    AdminConfig    `mapstructure:"admin"`
	S3       S3Config       `mapstructure:"s3"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// MaxUploadSize caps the request body in bytes. Uploads past this limit
	// are rejected at the HTTP boundary before any workflow code runs.
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
}

// SessionConfig defines the admin session cookie parameters.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// AdminConfig holds the shared admin password. It may be a plain string or a
// bcrypt hash ($2a$/$2b$/$2y$ prefix).
type AdminConfig struct {
	Password string `mapstructure:"password"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	// PublicBaseURL is the public prefix for stored objects. Without it the
	// listing still renders but video links degrade to placeholders.
	PublicBaseURL string `mapstructure:"public_base_url"`
	UseSSL        bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether enough S3 configuration is present to talk to the
// object store. Missing credentials disable uploads but not the rest of the app.
func (c S3Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type DatabaseConfig struct {
	// DSN selects Postgres when set. Empty falls back to a local SQLite file.
	DSN        string `mapstructure:"dsn"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. server.address -> SERVER_ADDRESS
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.max_upload_size", int64(500*1024*1024))
	viper.SetDefault("session.secret", "default_secret_key_please_change")
	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("admin.password", "8888")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("database.sqlite_path", "videos.db")

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults carry the app.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
