package interfaces

import (
	"context"
	"time"

	"stock-news-alert/internal/types"
)

// Engine runs one check of the watched symbol for the given local day.
type Engine interface {
	Step(ctx context.Context, today time.Time) (*types.StepResult, error)
}
