package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"stock-news-alert/internal/alertlog"
	"stock-news-alert/internal/api"
	"stock-news-alert/internal/credentials"
	"stock-news-alert/internal/engine"
	"stock-news-alert/internal/engine/engineobs"
	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/market/alphavantage"
	"stock-news-alert/internal/market/marketobs"
	"stock-news-alert/internal/news"
	"stock-news-alert/internal/news/newsobs"
	"stock-news-alert/internal/notify"
	"stock-news-alert/internal/notify/notifyobs"
	"stock-news-alert/internal/report"
	"stock-news-alert/internal/store"
	"stock-news-alert/internal/trace"
)

// initializeSystem loads .env and initializes logger and tracer
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// loadConfig loads the configuration from ALERT_CONFIG (default config.yaml)
func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("ALERT_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		return nil, err
	}
	logger.Debug(ctx, "Config loaded", "path", path, "mode", cfg.Mode, "symbol", cfg.Stock.Symbol, "threshold", cfg.ThresholdPct)
	return cfg, nil
}

// initializeRunLog opens the alert run log and compresses old day files
func initializeRunLog(ctx context.Context, cfg *store.Config) *alertlog.Log {
	runs := alertlog.New(cfg.AlertLog.Dir, cfg.Location())

	retention := cfg.AlertLog.RetentionDays
	if v := os.Getenv("ALERT_LOG_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn(ctx, "Ignoring invalid ALERT_LOG_RETENTION_DAYS", "value", v)
		} else {
			retention = n
		}
	}
	if n, err := runs.CompressOlder(retention); err != nil {
		logger.Warn(ctx, "Failed to compress old logs", "error", err.Error())
	} else if n > 0 {
		logger.Info(ctx, "Compressed old alert logs", "files", n, "retention_days", retention)
	}
	return runs
}

func engineDeps(ctx context.Context, cfg *store.Config, runs *alertlog.Log) engine.Deps {
	return engine.Deps{
		Quotes:   initializeQuotes(cfg),
		News:     initializeNews(ctx, cfg),
		Notifier: initializeNotifier(ctx, cfg),
		Reporter: report.NewConsole(os.Stdout),
		RunLog:   runs,
	}
}

// initializeQuotes returns the Alpha Vantage client with observability
func initializeQuotes(cfg *store.Config) interfaces.QuoteSource {
	av := alphavantage.New(cfg.Market.BaseURL, cfg.StocksAPIKey,
		api.WithTimeout(cfg.Timeout(cfg.Market.TimeoutSeconds)),
		api.WithLogging(logger.IsDebugEnabled()),
	)
	return marketobs.Wrap(av)
}

// initializeNews returns the news service, with the RSS fallback when enabled
func initializeNews(ctx context.Context, cfg *store.Config) interfaces.NewsSource {
	timeout := cfg.Timeout(cfg.News.TimeoutSeconds)
	primary := news.NewNewsAPI(cfg.News.BaseURL, cfg.NewsAPIKey, cfg.News.Language,
		api.WithTimeout(timeout),
		api.WithLogging(logger.IsDebugEnabled()),
	)

	var fallback interfaces.NewsSource
	if cfg.News.FallbackScrape {
		logger.Info(ctx, "RSS news fallback enabled", "url", cfg.News.FallbackURL)
		fallback = news.NewScraper(cfg.News.FallbackURL, timeout)
	}
	return newsobs.Wrap(news.NewService(primary, fallback))
}

// initializeNotifier returns the SMS notifier, or the console one in DRY_RUN
func initializeNotifier(ctx context.Context, cfg *store.Config) interfaces.Notifier {
	if cfg.Mode == "DRY_RUN" {
		logger.Warn(ctx, "Running in DRY_RUN mode - messages will be printed, not sent")
		return notifyobs.Wrap(notify.NewConsole(os.Stdout))
	}

	file := credentials.NewFileProvider(cfg.Notify.CredentialsPath)
	var entry interfaces.CredentialEntry
	if !cfg.Notify.DisablePrompt {
		entry = credentials.NewPromptEntry(file, os.Stdin, os.Stderr)
	}
	creds := credentials.WithEntryFallback(file, entry)

	return notifyobs.Wrap(notify.NewTwilio(creds, notify.WithTimeout(cfg.Timeout(cfg.Notify.TimeoutSeconds))))
}

// initializeEngine initializes and returns the alert engine with observability
func initializeEngine(cfg *store.Config, deps engine.Deps) interfaces.Engine {
	return engineobs.Wrap(engine.New(cfg, deps))
}
