package marketobs

import (
	"context"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/trace"
	"stock-news-alert/internal/types"
)

// observableQuoteSource wraps a QuoteSource with observability (logging & tracing)
type observableQuoteSource struct {
	source interfaces.QuoteSource
}

// Compile-time interface check
var _ interfaces.QuoteSource = (*observableQuoteSource)(nil)

// Wrap wraps a quote source with observability middleware
func Wrap(source interfaces.QuoteSource) interfaces.QuoteSource {
	return &observableQuoteSource{source: source}
}

// DailySeries fetches the daily series with observability
func (o *observableQuoteSource) DailySeries(ctx context.Context, symbol string) (types.QuoteSeries, error) {
	ctx, span := trace.StartSpan(ctx, "market.DailySeries")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching daily series", "symbol", symbol)

	series, err := o.source.DailySeries(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch daily series", err, "symbol", symbol)
		return nil, err
	}

	logger.DebugSkip(ctx, 1, "Daily series fetched", "symbol", symbol, "days", len(series))
	return series, nil
}
