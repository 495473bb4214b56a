package notifyobs

import (
	"context"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/trace"
	"stock-news-alert/internal/types"
)

// observableNotifier wraps a Notifier with observability (logging & tracing)
type observableNotifier struct {
	notifier interfaces.Notifier
}

// Compile-time interface check
var _ interfaces.Notifier = (*observableNotifier)(nil)

// Wrap wraps a notifier with observability middleware
func Wrap(notifier interfaces.Notifier) interfaces.Notifier {
	return &observableNotifier{notifier: notifier}
}

// Send delivers a message with observability
func (o *observableNotifier) Send(ctx context.Context, body string) (types.Delivery, error) {
	ctx, span := trace.StartSpan(ctx, "notify.Send")
	defer span.End()

	logger.InfoSkip(ctx, 1, "Sending alert message", "bytes", len(body))

	d, err := o.notifier.Send(ctx, body)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to send alert message", err)
		return types.Delivery{}, err
	}

	logger.InfoSkip(ctx, 1, "Alert message sent", "sid", d.SID, "status", d.Status)
	return d, nil
}
