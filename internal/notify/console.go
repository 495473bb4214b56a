package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

// Console prints the alert instead of sending it (DRY_RUN mode).
type Console struct {
	out io.Writer
}

var _ interfaces.Notifier = (*Console)(nil)

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Send(ctx context.Context, body string) (types.Delivery, error) {
	d := types.Delivery{SID: fmt.Sprintf("SIM-%d", time.Now().UnixNano()), Status: "SIMULATED"}
	if _, err := fmt.Fprintf(c.out, "----- dry-run message -----\n%s---------------------------\n", body); err != nil {
		return types.Delivery{}, err
	}
	logger.Info(ctx, "Simulated message sent", "sid", d.SID, "bytes", len(body))
	return d, nil
}
