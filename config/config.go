package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config is loaded once at startup from an optional .env file plus the
 * process environment. The environment wins, so deployments never need the
 * file.
 */

type Config struct {
	Port string `mapstructure:"PORT"`

	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`

	PostgresMaxOpenConns       int `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns       int `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMinutes int `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`

	UploadDir string `mapstructure:"UPLOAD_DIR"`
}

func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults also register the keys so environment-only values are
	// picked up by Unmarshal
	viper.SetDefault("PORT", "8800")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "")
	viper.SetDefault("POSTGRES_PASSWORD", "")
	viper.SetDefault("POSTGRES_DB", "")
	viper.SetDefault("POSTGRES_MAX_OPEN_CONNS", 0)
	viper.SetDefault("POSTGRES_MAX_IDLE_CONNS", 0)
	viper.SetDefault("POSTGRES_CONN_MAX_LIFE_MINUTES", 0)
	viper.SetDefault("UPLOAD_DIR", "uploads")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// no .env file: environment variables only
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// ValidatePostgres checks that the required connection settings are present
func (c *Config) ValidatePostgres() error {
	if c.PostgresUser == "" {
		return fmt.Errorf("POSTGRES_USER is required")
	}
	if c.PostgresPassword == "" {
		return fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if c.PostgresDB == "" {
		return fmt.Errorf("POSTGRES_DB is required")
	}
	return nil
}

// PostgresConnectionString builds the DSN for database/sql
func (c *Config) PostgresConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
	)
}

// GetPostgresMaxOpenConns returns the configured pool size or the default (25)
func (c *Config) GetPostgresMaxOpenConns() int {
	if c.PostgresMaxOpenConns > 0 {
		return c.PostgresMaxOpenConns
	}
	return 25
}

// GetPostgresMaxIdleConns returns the configured idle pool size or the default (5)
func (c *Config) GetPostgresMaxIdleConns() int {
	if c.PostgresMaxIdleConns > 0 {
		return c.PostgresMaxIdleConns
	}
	return 5
}

// GetPostgresConnMaxLifeMinutes returns the connection lifetime or the default (5)
func (c *Config) GetPostgresConnMaxLifeMinutes() int {
	if c.PostgresConnMaxLifeMinutes > 0 {
		return c.PostgresConnMaxLifeMinutes
	}
	return 5
}
