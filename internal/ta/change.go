package ta

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stock-news-alert/internal/tradingday"
	"stock-news-alert/internal/types"
)

var hundred = decimal.NewFromInt(100)

// percentPrecision is the number of decimal places kept by the division,
// well past what float64 can hold.
const percentPrecision = 32

// PercentChange compares the closes of the two trading days that precede
// today according to tradingday.Quotes.
func PercentChange(series types.QuoteSeries, symbol string, today time.Time) (types.Change, error) {
	recent, prior := tradingday.Quotes(today)
	return PercentBetween(series, symbol, tradingday.Key(recent), tradingday.Key(prior))
}

// PercentBetween returns (recent - prior) / prior * 100 for two dated closes.
// Either date missing from the series is a MissingQuoteError.
func PercentBetween(series types.QuoteSeries, symbol, recentKey, priorKey string) (types.Change, error) {
	rd, err := time.Parse(types.DateLayout, recentKey)
	if err != nil {
		return types.Change{}, &types.DataFormatError{Service: "ta", Msg: "bad recent date " + recentKey, Err: err}
	}
	pd, err := time.Parse(types.DateLayout, priorKey)
	if err != nil {
		return types.Change{}, &types.DataFormatError{Service: "ta", Msg: "bad prior date " + priorKey, Err: err}
	}
	if !rd.After(pd) {
		return types.Change{}, &types.DataFormatError{
			Service: "ta",
			Msg:     fmt.Sprintf("recent date %s is not after prior date %s", recentKey, priorKey),
		}
	}

	recentQuote, ok := series[recentKey]
	if !ok {
		return types.Change{}, &types.MissingQuoteError{Symbol: symbol, Date: recentKey}
	}
	priorQuote, ok := series[priorKey]
	if !ok {
		return types.Change{}, &types.MissingQuoteError{Symbol: symbol, Date: priorKey}
	}
	if priorQuote.Close.IsZero() {
		return types.Change{}, &types.DataFormatError{Service: "ta", Msg: "zero close on " + priorKey}
	}

	pct := recentQuote.Close.Sub(priorQuote.Close).Mul(hundred).DivRound(priorQuote.Close, percentPrecision)

	return types.Change{
		Symbol:      symbol,
		RecentDate:  recentKey,
		PriorDate:   priorKey,
		RecentClose: recentQuote.Close,
		PriorClose:  priorQuote.Close,
		Percent:     pct.InexactFloat64(),
	}, nil
}

// ShouldAlert reports whether a move of pct percent crosses threshold in
// either direction.
func ShouldAlert(pct, threshold float64) bool {
	return pct <= -threshold || pct >= threshold
}
