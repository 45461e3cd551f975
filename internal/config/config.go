package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Optional TLS pair — when both are set the server listens over HTTPS.
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	// Database
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Artifact stores
	UploadDir  string `mapstructure:"UPLOAD_DIR"`
	BarcodeDir string `mapstructure:"BARCODE_DIR"`

	// Uploads
	MaxUploadMB int64 `mapstructure:"MAX_UPLOAD_MB"`
}

// MaxUploadBytes returns the request body cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "inventory.db")
	viper.SetDefault("UPLOAD_DIR", "static/uploads")
	viper.SetDefault("BARCODE_DIR", "static/barcodes")
	viper.SetDefault("MAX_UPLOAD_MB", 16)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
