package interfaces

import (
	"context"

	"stock-news-alert/internal/types"
)

type Reporter interface {
	Quiet(ctx context.Context, symbol string, pct float64)
	Delivered(ctx context.Context, symbol string, d types.Delivery)
}
