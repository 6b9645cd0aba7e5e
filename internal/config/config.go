// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type ThemeConfig struct {
	// ResolverCacheTTL bounds how stale a cached resolution may be served.
	ResolverCacheTTL time.Duration `yaml:"resolver_cache_ttl"`
	// SweepInterval is how often expired resolver cache entries are pruned.
	SweepInterval time.Duration `yaml:"sweep_interval"`
	// AllowCustomScript enables tenant-authored script injection. This is a
	// trust boundary: the applier does not sanitize the content, so only
	// enable it on deployments where theme authors are trusted admins.
	AllowCustomScript bool `yaml:"allow_custom_script"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseDomain  string `yaml:"base_domain"`
		SecretKey   string `yaml:"-"` // Loaded from environment
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Theme ThemeConfig `yaml:"theme"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.SecretKey = os.Getenv("APP_SECRET_KEY")

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Theme.ResolverCacheTTL == 0 {
		c.Theme.ResolverCacheTTL = 30 * time.Second
	}
	if c.Theme.SweepInterval == 0 {
		c.Theme.SweepInterval = time.Minute
	}
	if c.App.BaseDomain == "" {
		c.App.BaseDomain = "localhost"
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Theme.ResolverCacheTTL < 0 {
		return fmt.Errorf("resolver cache TTL must not be negative")
	}

	return nil
}
