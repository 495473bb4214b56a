package interfaces

import (
	"context"

	"stock-news-alert/internal/types"
)

type QuoteSource interface {
	// DailySeries returns daily quotes keyed by YYYY-MM-DD.
	DailySeries(ctx context.Context, symbol string) (types.QuoteSeries, error)
}
