package ta

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-news-alert/internal/types"
)

func series(closes map[string]string) types.QuoteSeries {
	s := types.QuoteSeries{}
	for date, c := range closes {
		s[date] = types.DailyQuote{Close: decimal.RequireFromString(c)}
	}
	return s
}

func TestPercentBetween(t *testing.T) {
	s := series(map[string]string{"2024-06-10": "105.0", "2024-06-11": "110.0"})

	ch, err := PercentBetween(s, "TSLA", "2024-06-11", "2024-06-10")
	require.NoError(t, err)
	assert.InDelta(t, (110.0-105.0)/105.0*100, ch.Percent, 1e-9)
	assert.Equal(t, "2024-06-11", ch.RecentDate)
	assert.Equal(t, "2024-06-10", ch.PriorDate)
	assert.True(t, ch.RecentClose.Equal(decimal.NewFromInt(110)))
}

func TestPercentBetweenNegative(t *testing.T) {
	s := series(map[string]string{"2024-06-10": "200", "2024-06-11": "188"})

	ch, err := PercentBetween(s, "TSLA", "2024-06-11", "2024-06-10")
	require.NoError(t, err)
	assert.InDelta(t, -6.0, ch.Percent, 1e-12)
}

func TestPercentChangeUsesTradingDayWindow(t *testing.T) {
	s := series(map[string]string{"2024-06-10": "105.0", "2024-06-11": "110.0"})
	today := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

	ch, err := PercentChange(s, "TSLA", today)
	require.NoError(t, err)
	assert.InDelta(t, 4.7619047619, ch.Percent, 1e-9)
}

func TestPercentBetweenKeepsFullFloatPrecision(t *testing.T) {
	s := series(map[string]string{"2024-01-04": "210", "2024-01-05": "220"})

	ch, err := PercentBetween(s, "TSLA", "2024-01-05", "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, 4.761904761904762, ch.Percent)
	assert.Equal(t, 100.0/21.0, ch.Percent)
}

func TestPercentChangeMissingQuote(t *testing.T) {
	today := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

	_, err := PercentChange(series(map[string]string{"2024-06-10": "105"}), "TSLA", today)
	require.Error(t, err)
	var missing *types.MissingQuoteError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "2024-06-11", missing.Date)

	_, err = PercentChange(series(map[string]string{"2024-06-11": "110"}), "TSLA", today)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "2024-06-10", missing.Date)

	_, err = PercentChange(types.QuoteSeries{}, "TSLA", today)
	assert.True(t, types.IsMissingQuote(err))
}

func TestPercentBetweenRejectsBadOrdering(t *testing.T) {
	s := series(map[string]string{"2024-06-10": "105", "2024-06-11": "110"})

	_, err := PercentBetween(s, "TSLA", "2024-06-10", "2024-06-11")
	assert.True(t, types.IsDataFormat(err))

	_, err = PercentBetween(s, "TSLA", "2024-06-10", "2024-06-10")
	assert.True(t, types.IsDataFormat(err))
}

func TestPercentBetweenZeroPrior(t *testing.T) {
	s := series(map[string]string{"2024-06-10": "0", "2024-06-11": "110"})

	_, err := PercentBetween(s, "TSLA", "2024-06-11", "2024-06-10")
	assert.True(t, types.IsDataFormat(err))
}

func TestShouldAlert(t *testing.T) {
	cases := []struct {
		pct  float64
		want bool
	}{
		{5.0, true},
		{4.999, false},
		{-5.0, true},
		{-4.999, false},
		{0, false},
		{12.3, true},
		{-40, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShouldAlert(tc.pct, 5), "pct %v", tc.pct)
	}
}
