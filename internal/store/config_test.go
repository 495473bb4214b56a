package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-news-alert/internal/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func setKeys(t *testing.T) {
	t.Setenv("STOCKS_API_KEY", "stocks-key")
	t.Setenv("NEWS_API_KEY", "news-key")
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	setKeys(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "TSLA", cfg.Stock.Symbol)
	assert.Equal(t, "Tesla Inc", cfg.Stock.CompanyName)
	assert.Equal(t, 5.0, cfg.ThresholdPct)
	assert.Equal(t, "LIVE", cfg.Mode)
	assert.Equal(t, 3, cfg.ArticleLimit())
	assert.Equal(t, "stocks-key", cfg.StocksAPIKey)
	assert.Equal(t, "news-key", cfg.NewsAPIKey)
	assert.Equal(t, "twilio_credentials.yaml", cfg.Notify.CredentialsPath)
}

func TestLoadConfigFromFile(t *testing.T) {
	setKeys(t)
	p := writeConfig(t, `
mode: dry_run
threshold_pct: 2.5
stock:
  symbol: ibm
  company_name: International Business Machines
news:
  max_articles: 0
  fallback_scrape: true
notify:
  credentials_path: /tmp/creds.yaml
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "DRY_RUN", cfg.Mode)
	assert.Equal(t, "IBM", cfg.Stock.Symbol)
	assert.Equal(t, 2.5, cfg.ThresholdPct)
	assert.Equal(t, 0, cfg.ArticleLimit())
	assert.True(t, cfg.News.FallbackScrape)
	assert.Equal(t, "/tmp/creds.yaml", cfg.Notify.CredentialsPath)
	assert.Equal(t, "https://www.alphavantage.co/query", cfg.Market.BaseURL)
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("STOCKS_API_KEY", "")
	t.Setenv("NEWS_API_KEY", "news-key")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, types.IsConfiguration(err))
	assert.Contains(t, err.Error(), "STOCKS_API_KEY")

	t.Setenv("STOCKS_API_KEY", "stocks-key")
	t.Setenv("NEWS_API_KEY", "")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, types.IsConfiguration(err))
	assert.Contains(t, err.Error(), "NEWS_API_KEY")
}

func TestLoadConfigInvalid(t *testing.T) {
	setKeys(t)

	cases := map[string]string{
		"bad mode":      "mode: PAPER\n",
		"bad threshold": "threshold_pct: -1\n",
		"bad articles":  "news:\n  max_articles: -2\n",
		"bad timezone":  "timezone: Mars/Olympus\n",
		"not yaml":      "stock: [unclosed\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
			assert.True(t, types.IsConfiguration(err))
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
