package interfaces

import (
	"context"
	"time"

	"stock-news-alert/internal/types"
)

type NewsSource interface {
	// Headlines returns articles matching query published on or after from,
	// newest first.
	Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error)
}
