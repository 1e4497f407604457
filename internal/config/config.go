package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Catet"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Discord struct {
		Token   string `envconfig:"DISCORD_TOKEN" required:"true"`
		AppID   string `envconfig:"DISCORD_APP_ID" required:"true"`
		GuildID string `envconfig:"DISCORD_GUILD_ID" required:"true"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"catet"`
	}

	Pagination struct {
		Timeout time.Duration `envconfig:"PAGINATION_TIMEOUT" default:"60s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
