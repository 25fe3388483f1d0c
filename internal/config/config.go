package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type TMDBConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
}

type Config struct {
	EPGURL    string      `yaml:"epg_url"`
	StartHour int         `yaml:"start_hour"`
	MinRating float64     `yaml:"min_rating"`
	TMDB      *TMDBConfig `yaml:"tmdb,omitempty"`
}

// TMDBKey returns the resolved API key (config or TMDB_API_KEY env var).
func (c *Config) TMDBKey() string {
	if c.TMDB != nil && c.TMDB.APIKey != "" {
		return c.TMDB.APIKey
	}
	return os.Getenv("TMDB_API_KEY")
}

// Language returns the TMDB search locale, defaulting to pl-PL.
func (c *Config) Language() string {
	if c.TMDB != nil && c.TMDB.Language != "" {
		return c.TMDB.Language
	}
	return "pl-PL"
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tvguide", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "tvguide", "movies.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.EPGURL == "" {
		return fmt.Errorf("epg_url is required")
	}
	u, err := url.Parse(cfg.EPGURL)
	if err != nil {
		return fmt.Errorf("invalid epg_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("epg_url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.StartHour < 0 || cfg.StartHour > 23 {
		return fmt.Errorf("start_hour must be between 0 and 23, got %d", cfg.StartHour)
	}
	if cfg.MinRating < 0 || cfg.MinRating > 10 {
		return fmt.Errorf("min_rating must be between 0 and 10, got %g", cfg.MinRating)
	}
	return nil
}
