package engine

import (
	"context"
	"fmt"
	"time"

	"stock-news-alert/internal/alertlog"
	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/message"
	"stock-news-alert/internal/store"
	"stock-news-alert/internal/ta"
	"stock-news-alert/internal/tradingday"
	"stock-news-alert/internal/types"
)

type Engine struct {
	cfg      *store.Config
	quotes   interfaces.QuoteSource
	news     interfaces.NewsSource
	notifier interfaces.Notifier
	reporter interfaces.Reporter
	runs     *alertlog.Log
	now      func() time.Time
}

func newEngine(cfg *store.Config, d Deps) *Engine {
	return &Engine{
		cfg:      cfg,
		quotes:   d.Quotes,
		news:     d.News,
		notifier: d.Notifier,
		reporter: d.Reporter,
		runs:     d.RunLog,
		now:      time.Now,
	}
}

// Step measures the move of the configured symbol for today and either
// reports it quietly or sends a news alert.
func (e *Engine) Step(ctx context.Context, today time.Time) (*types.StepResult, error) {
	symbol := e.cfg.Stock.Symbol
	threshold := e.cfg.ThresholdPct
	logger.Debug(ctx, "Starting alert step", "symbol", symbol, "today", tradingday.Key(today))

	res := &types.StepResult{Symbol: symbol, Time: e.now().Unix()}

	series, err := e.quotes.DailySeries(ctx, symbol)
	if err != nil {
		return nil, e.fail(ctx, res, fmt.Errorf("fetch daily series: %w", err))
	}

	change, err := ta.PercentChange(series, symbol, today)
	if err != nil {
		return nil, e.fail(ctx, res, err)
	}
	res.Change = change
	res.Alerted = ta.ShouldAlert(change.Percent, threshold)

	logger.Move(ctx, symbol, change.Percent, threshold, res.Alerted,
		"recent_date", change.RecentDate,
		"prior_date", change.PriorDate,
		"recent_close", change.RecentClose.String(),
		"prior_close", change.PriorClose.String(),
	)

	if !res.Alerted {
		e.reporter.Quiet(ctx, symbol, change.Percent)
		e.record(ctx, res, nil)
		return res, nil
	}

	from := tradingday.NewsFrom(today)
	articles, err := e.news.Headlines(ctx, e.cfg.Stock.CompanyName, from)
	if err != nil {
		return nil, e.fail(ctx, res, fmt.Errorf("fetch headlines: %w", err))
	}
	if limit := e.cfg.ArticleLimit(); limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	res.Articles = len(articles)

	body := message.Compose(symbol, change.Percent, threshold, articles)
	d, err := e.notifier.Send(ctx, body)
	if err != nil {
		return nil, e.fail(ctx, res, fmt.Errorf("send alert: %w", err))
	}
	res.Delivery = &d

	logger.Alert(ctx, symbol, d.SID, d.Status, "articles", res.Articles)
	e.reporter.Delivered(ctx, symbol, d)
	e.record(ctx, res, nil)
	return res, nil
}

func (e *Engine) fail(ctx context.Context, res *types.StepResult, err error) error {
	e.record(ctx, res, err)
	return err
}

// record appends the run to the alert log; failures are logged only.
func (e *Engine) record(ctx context.Context, res *types.StepResult, runErr error) {
	if e.runs == nil {
		return
	}
	entry := alertlog.Entry{
		Symbol:     res.Symbol,
		RecentDate: res.Change.RecentDate,
		PriorDate:  res.Change.PriorDate,
		Percent:    res.Change.Percent,
		Threshold:  e.cfg.ThresholdPct,
		Alerted:    res.Alerted,
		Articles:   res.Articles,
	}
	if res.Delivery != nil {
		entry.SID = res.Delivery.SID
		entry.Status = res.Delivery.Status
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if err := e.runs.Append(entry); err != nil {
		logger.Warn(ctx, "Failed to append alert log", "error", err.Error(), "dir", e.runs.Dir())
	}
}
