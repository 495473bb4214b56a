package engineobs

import (
	"context"
	"time"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/trace"
	"stock-news-alert/internal/types"
)

type observableEngine struct {
	engine interfaces.Engine
}

var _ interfaces.Engine = (*observableEngine)(nil)

func Wrap(eng interfaces.Engine) interfaces.Engine {
	return &observableEngine{
		engine: eng,
	}
}

func (oe *observableEngine) Step(ctx context.Context, today time.Time) (*types.StepResult, error) {
	ctx, span := trace.StartSpan(ctx, "engine.Step")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting alert check",
		"today", today.Format(types.DateLayout),
	)

	result, err := oe.engine.Step(ctx, today)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Alert check failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Alert check completed",
		"symbol", result.Symbol,
		"percent", result.Change.Percent,
		"alerted", result.Alerted,
		"articles", result.Articles,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
