package message

import (
	"fmt"
	"math"
	"strings"

	"stock-news-alert/internal/types"
)

const (
	Up   = "🔺"
	Down = "🔻"
)

// Compose builds the alert body: a header line with the symbol, direction
// and absolute move, then one Headline/Brief block per article in order.
// A move is shown as up when pct >= threshold.
func Compose(symbol string, pct, threshold float64, articles []types.Article) string {
	var b strings.Builder

	arrow := Down
	if pct >= threshold {
		arrow = Up
	}
	fmt.Fprintf(&b, "%s: %s%.2f%%\n", symbol, arrow, math.Abs(pct))

	for _, a := range articles {
		fmt.Fprintf(&b, "Headline: %s\n", a.Title)
		fmt.Fprintf(&b, "Brief: %s\n\n", a.Description)
	}
	return b.String()
}
