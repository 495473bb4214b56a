package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"stock-news-alert/internal/types"
)

type Config struct {
	Mode         string  `yaml:"mode"`
	Timezone     string  `yaml:"timezone"`
	ThresholdPct float64 `yaml:"threshold_pct"`
	Stock        struct {
		Symbol      string `yaml:"symbol"`
		CompanyName string `yaml:"company_name"`
	} `yaml:"stock"`
	Market struct {
		BaseURL        string `yaml:"base_url"`
		APIKeyEnv      string `yaml:"api_key_env"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"market"`
	News struct {
		BaseURL        string `yaml:"base_url"`
		APIKeyEnv      string `yaml:"api_key_env"`
		Language       string `yaml:"language"`
		MaxArticles    *int   `yaml:"max_articles"`
		FallbackScrape bool   `yaml:"fallback_scrape"`
		FallbackURL    string `yaml:"fallback_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"news"`
	Notify struct {
		CredentialsPath string `yaml:"credentials_path"`
		DisablePrompt   bool   `yaml:"disable_prompt"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
	} `yaml:"notify"`
	AlertLog struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"alert_log"`

	// Secrets come from the environment, never from the YAML file.
	StocksAPIKey string `yaml:"-"`
	NewsAPIKey   string `yaml:"-"`
}

// Default returns the configuration used when no file is present: a single
// TSLA watch with a 5% threshold.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

func applyDefaults(c *Config) {
	if c.Mode == "" {
		c.Mode = "LIVE"
	}
	if c.Timezone == "" {
		c.Timezone = "America/New_York"
	}
	if c.ThresholdPct == 0 {
		c.ThresholdPct = 5
	}
	if c.Stock.Symbol == "" {
		c.Stock.Symbol = "TSLA"
	}
	if c.Stock.CompanyName == "" {
		c.Stock.CompanyName = "Tesla Inc"
	}
	if c.Market.BaseURL == "" {
		c.Market.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.Market.APIKeyEnv == "" {
		c.Market.APIKeyEnv = "STOCKS_API_KEY"
	}
	if c.Market.TimeoutSeconds == 0 {
		c.Market.TimeoutSeconds = 10
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://newsapi.org/v2/everything"
	}
	if c.News.APIKeyEnv == "" {
		c.News.APIKeyEnv = "NEWS_API_KEY"
	}
	if c.News.Language == "" {
		c.News.Language = "en"
	}
	if c.News.MaxArticles == nil {
		n := 3
		c.News.MaxArticles = &n
	}
	if c.News.FallbackURL == "" {
		c.News.FallbackURL = "https://news.google.com/rss/search"
	}
	if c.News.TimeoutSeconds == 0 {
		c.News.TimeoutSeconds = 10
	}
	if c.Notify.CredentialsPath == "" {
		c.Notify.CredentialsPath = "twilio_credentials.yaml"
	}
	if c.Notify.TimeoutSeconds == 0 {
		c.Notify.TimeoutSeconds = 10
	}
	if c.AlertLog.Dir == "" {
		c.AlertLog.Dir = "logs"
	}
}

func (c *Config) Validate() error {
	if c.Mode != "DRY_RUN" && c.Mode != "LIVE" {
		return fmt.Errorf("invalid mode '%s': must be 'DRY_RUN' or 'LIVE'", c.Mode)
	}
	if strings.TrimSpace(c.Stock.Symbol) == "" {
		return errors.New("stock.symbol cannot be empty")
	}
	if strings.TrimSpace(c.Stock.CompanyName) == "" {
		return errors.New("stock.company_name cannot be empty")
	}
	if c.ThresholdPct <= 0 || c.ThresholdPct > 100 {
		return fmt.Errorf("threshold_pct must be between 0-100, got %.2f", c.ThresholdPct)
	}
	if c.ArticleLimit() < 0 {
		return fmt.Errorf("news.max_articles cannot be negative, got %d", c.ArticleLimit())
	}
	if c.Market.TimeoutSeconds < 0 || c.News.TimeoutSeconds < 0 || c.Notify.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds cannot be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", c.Timezone, err)
	}
	return nil
}

// LoadConfig reads the YAML file at path. A missing file yields the defaults.
// API keys are read from the environment afterwards; a missing key is a
// ConfigurationError.
func LoadConfig(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, &types.ConfigurationError{Msg: "read " + path, Err: err}
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, &types.ConfigurationError{Msg: "parse " + path, Err: err}
		}
	}

	applyDefaults(&c)
	c.Mode = strings.ToUpper(c.Mode)
	c.Stock.Symbol = strings.ToUpper(strings.TrimSpace(c.Stock.Symbol))

	if err := c.Validate(); err != nil {
		return nil, &types.ConfigurationError{Msg: "config validation failed", Err: err}
	}

	if c.StocksAPIKey, err = requireEnv(c.Market.APIKeyEnv); err != nil {
		return nil, err
	}
	if c.NewsAPIKey, err = requireEnv(c.News.APIKeyEnv); err != nil {
		return nil, err
	}
	return &c, nil
}

// Location returns the configured time zone; Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ArticleLimit is the number of headlines put into an alert; 0 means all.
func (c *Config) ArticleLimit() int {
	if c.News.MaxArticles == nil {
		return 0
	}
	return *c.News.MaxArticles
}

func (c *Config) Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

func requireEnv(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", &types.ConfigurationError{Msg: key + " is not set"}
	}
	return v, nil
}
