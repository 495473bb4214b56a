package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/trace"
)

// now is the run clock; tests pin it.
var now = time.Now

func main() {
	os.Exit(run())
}

func run() int {
	if err := initializeSystem(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = trace.Shutdown(shutdownCtx)
		logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return 1
	}

	runs := initializeRunLog(ctx, cfg)
	eng := initializeEngine(cfg, engineDeps(ctx, cfg, runs))

	today := now().In(cfg.Location())
	if _, err := eng.Step(ctx, today); err != nil {
		logger.ErrorWithErr(ctx, "Alert run failed", err, "symbol", cfg.Stock.Symbol)
		return 1
	}
	return 0
}
