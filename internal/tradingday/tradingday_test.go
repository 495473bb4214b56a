package tradingday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuotes(t *testing.T) {
	cases := []struct {
		name          string
		today         string
		recent, prior string
	}{
		{"first of month", "2024-07-01", "2024-06-28", "2024-06-27"},
		{"second of month", "2024-07-02", "2024-07-01", "2024-06-28"},
		{"mid month", "2024-06-12", "2024-06-11", "2024-06-10"},
		{"third of month", "2024-03-03", "2024-03-02", "2024-03-01"},
		{"first of march in leap year", "2024-03-01", "2024-02-27", "2024-02-26"},
		{"new year", "2025-01-01", "2024-12-29", "2024-12-28"},
		{"end of month", "2024-06-30", "2024-06-29", "2024-06-28"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recent, prior := Quotes(day(tc.today))
			assert.Equal(t, tc.recent, Key(recent))
			assert.Equal(t, tc.prior, Key(prior))
			assert.True(t, recent.After(prior))
		})
	}
}

func TestQuotesOffsets(t *testing.T) {
	for d := 1; d <= 28; d++ {
		today := time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC)
		recent, prior := Quotes(today)
		gotRecent := int(today.Sub(recent).Hours() / 24)
		gotPrior := int(today.Sub(prior).Hours() / 24)

		wantRecent, wantPrior := 1, 2
		switch d {
		case 1:
			wantRecent, wantPrior = 3, 4
		case 2:
			wantRecent, wantPrior = 1, 4
		}
		assert.Equal(t, wantRecent, gotRecent, "day %d recent offset", d)
		assert.Equal(t, wantPrior, gotPrior, "day %d prior offset", d)
	}
}

func TestNewsFrom(t *testing.T) {
	assert.Equal(t, "2024-06-27", Key(NewsFrom(day("2024-07-01"))))
	assert.Equal(t, "2024-06-28", Key(NewsFrom(day("2024-07-02"))))
	assert.Equal(t, "2024-06-10", Key(NewsFrom(day("2024-06-12"))))
}

func TestDateUsesLocalCalendarDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 in New York on the 1st is already the 2nd in UTC.
	late := time.Date(2024, time.July, 1, 23, 30, 0, 0, ny)
	assert.Equal(t, "2024-07-01", Key(late))

	recent, _ := Quotes(late)
	assert.Equal(t, "2024-06-28", Key(recent))
}
