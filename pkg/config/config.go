package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ChainLens/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Analysis struct {
		Window            int     `yaml:"window"`
		Epsilon           float64 `yaml:"epsilon"`
		TrendLookback     int     `yaml:"trend_lookback"`
		AnnualizationDays float64 `yaml:"annualization_days"`
		HiddenSize        int     `yaml:"hidden_size"`
		Seed              int64   `yaml:"seed"`
		MaxMove           float64 `yaml:"max_move"`
	} `yaml:"analysis"`
	Chains struct {
		Solana   ChainEndpoint `yaml:"solana"`
		Ethereum ChainEndpoint `yaml:"ethereum"`
		Cosmos   ChainEndpoint `yaml:"cosmos"`
	} `yaml:"chains"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
}

// ChainEndpoint configures one per-chain data provider.
type ChainEndpoint struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	BreakerName string        `yaml:"breaker_name"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SOLANA_DATA_URL"); v != "" {
		c.Chains.Solana.BaseURL = v
	}
	if v := os.Getenv("ETHEREUM_DATA_URL"); v != "" {
		c.Chains.Ethereum.BaseURL = v
	}
	if v := os.Getenv("COSMOS_DATA_URL"); v != "" {
		c.Chains.Cosmos.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Analysis.Window == 0 {
		c.Analysis.Window = 10
	}
	if c.Analysis.Epsilon == 0 {
		c.Analysis.Epsilon = 1e-8
	}
	if c.Analysis.TrendLookback == 0 {
		c.Analysis.TrendLookback = 5
	}
	if c.Analysis.AnnualizationDays == 0 {
		c.Analysis.AnnualizationDays = 365
	}
	if c.Analysis.HiddenSize == 0 {
		c.Analysis.HiddenSize = 16
	}
	if c.Analysis.Seed == 0 {
		c.Analysis.Seed = 1
	}
	if c.Analysis.MaxMove == 0 {
		c.Analysis.MaxMove = 0.1
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Analysis.Window < 1 {
		return fmt.Errorf("analysis.window must be positive")
	}
	if c.Analysis.Epsilon <= 0 {
		return fmt.Errorf("analysis.epsilon must be positive")
	}
	for name, ep := range map[string]ChainEndpoint{
		"solana":   c.Chains.Solana,
		"ethereum": c.Chains.Ethereum,
		"cosmos":   c.Chains.Cosmos,
	} {
		if ep.BaseURL == "" {
			return fmt.Errorf("chains.%s.base_url is required", name)
		}
	}
	return nil
}
