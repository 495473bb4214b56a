package news

import (
	"context"
	"time"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

// Service fetches headlines from a primary provider, optionally falling back
// to a second source when the primary has nothing.
type Service struct {
	primary  interfaces.NewsSource
	fallback interfaces.NewsSource
}

// Compile-time interface check
var _ interfaces.NewsSource = (*Service)(nil)

// NewService creates a news service; fallback may be nil
func NewService(primary, fallback interfaces.NewsSource) *Service {
	return &Service{primary: primary, fallback: fallback}
}

// Headlines returns the primary provider's articles. Primary errors are
// returned as is; the fallback is consulted only for an empty result and its
// failures are logged, not returned.
func (s *Service) Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error) {
	articles, err := s.primary.Headlines(ctx, query, from)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 || s.fallback == nil {
		return articles, nil
	}

	logger.Info(ctx, "No articles from primary source, trying fallback", "query", query)
	fallback, err := s.fallback.Headlines(ctx, query, from)
	if err != nil {
		logger.ErrorWithErr(ctx, "News fallback failed", err, "query", query)
		return articles, nil
	}
	return fallback, nil
}
