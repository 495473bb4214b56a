package newsobs

import (
	"context"
	"time"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/trace"
	"stock-news-alert/internal/types"
)

// observableNewsSource wraps a NewsSource with observability (logging & tracing)
type observableNewsSource struct {
	source interfaces.NewsSource
}

// Compile-time interface check
var _ interfaces.NewsSource = (*observableNewsSource)(nil)

// Wrap wraps a news source with observability middleware
func Wrap(source interfaces.NewsSource) interfaces.NewsSource {
	return &observableNewsSource{source: source}
}

// Headlines fetches articles with observability
func (o *observableNewsSource) Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error) {
	ctx, span := trace.StartSpan(ctx, "news.Headlines")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching headlines", "query", query, "from", from.Format(types.DateLayout))

	articles, err := o.source.Headlines(ctx, query, from)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch headlines", err, "query", query)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Headlines fetched", "query", query, "articles", len(articles))
	return articles, nil
}
