package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseConfig holds relational store connection settings.
type DatabaseConfig struct {
	Driver             string `env:"DB_DRIVER" envDefault:"postgres"`
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME" envDefault:"employees"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	Path               string `env:"DB_PATH" envDefault:"employees.db"`
	Table              string `env:"DB_TABLE" envDefault:"employee"`
	BootstrapSchema    bool   `env:"DB_BOOTSTRAP_SCHEMA" envDefault:"false"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"1"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"1"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"0"`
}

// ObjectStoreConfig holds settings for the S3-compatible store that hosts the
// background image.
type ObjectStoreConfig struct {
	Endpoint     string        `env:"S3_ENDPOINT" envDefault:"s3.amazonaws.com"`
	Region       string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKey    string        `env:"AWS_ACCESS_KEY_ID"`
	SecretKey    string        `env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken string        `env:"AWS_SESSION_TOKEN"`
	UseSSL       bool          `env:"S3_USE_SSL" envDefault:"true"`
	Bucket       string        `env:"BG_S3_BUCKET"`
	Key          string        `env:"BG_S3_KEY"`
	AssetDir     string        `env:"ASSET_DIR" envDefault:"static"`
	FetchTimeout time.Duration `env:"BG_FETCH_TIMEOUT" envDefault:"30s"`
}

// Configured reports whether a background object was named.
func (c ObjectStoreConfig) Configured() bool {
	return c.Bucket != "" && c.Key != ""
}

// DisplayConfig holds the raw display settings before color resolution.
type DisplayConfig struct {
	Group  string `env:"GROUP_NAME" envDefault:"Rajan Patel"`
	Slogan string `env:"GROUP_SLOGAN" envDefault:"Never Give Up!!"`
	Color  string `env:"APP_COLOR"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string `env:"PORT" envDefault:"81"`
	LogTimezone string `env:"LOG_TIMEZONE" envDefault:"UTC"`

	Database    DatabaseConfig
	ObjectStore ObjectStoreConfig
	Display     DisplayConfig

	// ColorFlag is the --color command-line value; it wins over APP_COLOR.
	ColorFlag string
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// LoadWithArgs loads the environment and then applies command-line flags.
func LoadWithArgs(fs *flag.FlagSet, args []string) (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	fs.StringVar(&cfg.ColorFlag, "color", "", "accent color (overrides APP_COLOR)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// Location returns the time zone used for log timestamps.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
