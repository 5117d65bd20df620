package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	// Driver selects the record-store backend: "file" or "postgres".
	Driver string
	// Path is the data directory for the file driver.
	Path string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AdminConfig holds the reserved admin identity. The admin account is
// synthesized at login and never lives in the Users table.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type SessionConfig struct {
	ExpiryHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "page-builder")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_DRIVER", "file")
	viper.SetDefault("STORE_PATH", "data/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ADMIN_EMAIL", "admin@sistema.com")
	viper.SetDefault("ADMIN_PASSWORD", "Admin@123")
	viper.SetDefault("ADMIN_NAME", "Administrador")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, defaults + environment cover everything.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
			Path:   viper.GetString("STORE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
	}

	return config, nil
}
