package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/types"
)

// Console writes run outcomes for the operator: the unrounded move when
// nothing was sent, a confirmation line when a message went out.
type Console struct {
	out io.Writer
}

var _ interfaces.Reporter = (*Console)(nil)

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Quiet(ctx context.Context, symbol string, pct float64) {
	fmt.Fprintln(c.out, strconv.FormatFloat(pct, 'f', -1, 64))
}

func (c *Console) Delivered(ctx context.Context, symbol string, d types.Delivery) {
	fmt.Fprintf(c.out, "Message sent: %s\n", d.Status)
}
