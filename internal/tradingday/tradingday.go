package tradingday

import (
	"time"

	"stock-news-alert/internal/types"
)

// Date truncates t to its calendar day in t's own location and returns it as
// a UTC midnight, so day arithmetic never crosses a DST edge.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Key formats t as a quote series key.
func Key(t time.Time) string {
	return Date(t).Format(types.DateLayout)
}

// Quotes returns the two dates whose closes are compared for today.
//
// Markets do not record weekends, so the first days of a month look further
// back: on the 1st the pair is today-3/today-4, on the 2nd today-1/today-4,
// otherwise today-1/today-2. This is a fixed heuristic, not an exchange
// calendar.
func Quotes(today time.Time) (recent, prior time.Time) {
	d := Date(today)
	switch d.Day() {
	case 1:
		return d.AddDate(0, 0, -3), d.AddDate(0, 0, -4)
	case 2:
		return d.AddDate(0, 0, -1), d.AddDate(0, 0, -4)
	default:
		return d.AddDate(0, 0, -1), d.AddDate(0, 0, -2)
	}
}

// NewsFrom returns the lower bound of the news query window for today.
func NewsFrom(today time.Time) time.Time {
	d := Date(today)
	if d.Day() <= 2 {
		return d.AddDate(0, 0, -4)
	}
	return d.AddDate(0, 0, -2)
}
