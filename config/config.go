package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/articles/internal/pager"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		Migrate    bool
		LogQueries bool
		SlowQuery  time.Duration
	}
	Paging pager.Config
}

// Load decodes the TOML file at path and fills paging defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 3000
	}

	cfg.Paging = cfg.Paging.WithDefaults()
	if err := cfg.Paging.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid paging config: %w", err)
	}

	return cfg, nil
}

// SetDatabaseURL replaces the connection settings with the ones from a postgres URL.
func (c *Config) SetDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}
