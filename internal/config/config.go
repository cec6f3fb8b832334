// Package config loads and validates application configuration from environment variables.
//
// A `.env` file in the working directory, if present, is loaded into the
// process environment before anything is read (godotenv autoload).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // loads .env into the environment on import
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5000".
	Port string `validate:"required,numeric"`

	// DatabaseURL is a SQLite file path or a postgres:// URL.
	// Defaults to "rec.db" in the working directory.
	DatabaseURL string `validate:"required"`

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string `validate:"oneof=debug info warn error"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (React dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `validate:"dive,url"`

	// UploadDir is where uploaded images are written when no S3 endpoint
	// is configured. Defaults to "uploads".
	UploadDir string `validate:"required"`

	// MaxBodyBytes caps every request body. Defaults to 10 MiB.
	MaxBodyBytes int64 `validate:"gt=0"`

	// S3 is the optional object store for uploaded images.
	S3 S3Config
}

// S3Config configures an S3-compatible image store (MinIO, AWS S3).
// Leaving Endpoint empty keeps images on local disk; once it is set the
// remaining fields are required.
type S3Config struct {
	Endpoint  string
	AccessKey string `validate:"required_with=Endpoint"`
	SecretKey string `validate:"required_with=Endpoint"`
	Bucket    string `validate:"required_with=Endpoint"`
}

// Enabled reports whether an S3 endpoint was configured.
func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

const defaultMaxBodyBytes = 10 << 20

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable whose value is invalid.
func Load() (Config, error) {
	k := koanf.New(".")

	// Every variable is read; keys are lowercased (PORT -> "port").
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{
		Port:         getString(k, "port", "5000"),
		DatabaseURL:  getString(k, "database_url", "rec.db"),
		LogLevel:     strings.ToLower(getString(k, "log_level", "info")),
		CORSOrigins:  splitCSV(getString(k, "cors_origins", "http://localhost:3000")),
		UploadDir:    getString(k, "upload_dir", "uploads"),
		MaxBodyBytes: defaultMaxBodyBytes,
		S3: S3Config{
			Endpoint:  k.String("s3_endpoint"),
			AccessKey: k.String("s3_access_key"),
			SecretKey: k.String("s3_secret_key"),
			Bucket:    k.String("s3_bucket"),
		},
	}
	if k.Exists("max_body_bytes") && k.String("max_body_bytes") != "" {
		cfg.MaxBodyBytes = k.Int64("max_body_bytes")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %s", describe(err))
	}

	return cfg, nil
}

// envNames maps Config field names to the variables that set them, so
// validation errors point at something the operator can change.
var envNames = map[string]string{
	"Port":         "PORT",
	"DatabaseURL":  "DATABASE_URL",
	"LogLevel":     "LOG_LEVEL",
	"CORSOrigins":  "CORS_ORIGINS",
	"UploadDir":    "UPLOAD_DIR",
	"MaxBodyBytes": "MAX_BODY_BYTES",
	"AccessKey":    "S3_ACCESS_KEY",
	"SecretKey":    "S3_SECRET_KEY",
	"Bucket":       "S3_BUCKET",
}

// describe turns validator errors into a comma-separated list of variables.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	var names []string
	for _, fe := range verrs {
		field := fe.StructField()
		if strings.HasPrefix(field, "CORSOrigins[") {
			field = "CORSOrigins"
		}
		if name, ok := envNames[field]; ok {
			names = append(names, name)
		} else {
			names = append(names, fe.Namespace())
		}
	}
	return strings.Join(names, ", ")
}

// getString returns the value stored under key, or fallback if the variable
// is not set or is empty.
func getString(k *koanf.Koanf, key, fallback string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
