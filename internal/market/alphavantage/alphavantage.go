package alphavantage

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"stock-news-alert/internal/api"
	"stock-news-alert/internal/types"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co/query"
	serviceName    = "alphavantage"
	seriesKey      = "Time Series (Daily)"
)

// Keys Alpha Vantage uses to reject a request with HTTP 200.
var rejectionKeys = []string{"Error Message", "Note", "Information"}

// Client reads daily quotes from the Alpha Vantage TIME_SERIES_DAILY endpoint.
type Client struct {
	http    *api.Client
	baseURL string
	apiKey  string
}

func New(baseURL, apiKey string, opts ...api.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    api.NewClient(serviceName, opts...),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// DailySeries fetches the compact daily series for symbol.
func (c *Client) DailySeries(ctx context.Context, symbol string) (types.QuoteSeries, error) {
	if c.apiKey == "" {
		return nil, &types.ConfigurationError{Msg: "alphavantage api key is empty"}
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	resp, err := c.http.GET(ctx, c.baseURL, q)
	if err != nil {
		return nil, err
	}

	var body map[string]json.RawMessage
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}

	raw, ok := body[seriesKey]
	if !ok {
		for _, k := range rejectionKeys {
			if msg, found := body[k]; found {
				return nil, &types.RemoteServiceError{Service: serviceName, StatusCode: resp.StatusCode, Msg: rejectionText(msg)}
			}
		}
		return nil, &types.DataFormatError{Service: serviceName, Msg: "response has no \"" + seriesKey + "\""}
	}

	var bars map[string]dailyBar
	if err := json.Unmarshal(raw, &bars); err != nil {
		return nil, &types.DataFormatError{Service: serviceName, Msg: "malformed daily series", Err: err}
	}
	return toSeries(bars)
}

func toSeries(bars map[string]dailyBar) (types.QuoteSeries, error) {
	series := make(types.QuoteSeries, len(bars))
	for date, bar := range bars {
		q, err := bar.quote()
		if err != nil {
			return nil, &types.DataFormatError{Service: serviceName, Msg: "bad quote on " + date, Err: err}
		}
		series[date] = q
	}
	return series, nil
}

func (b dailyBar) quote() (types.DailyQuote, error) {
	var q types.DailyQuote
	var err error
	if q.Close, err = decimal.NewFromString(strings.TrimSpace(b.Close)); err != nil {
		return q, err
	}
	// open/high/low/volume are informational; only a present but broken
	// value is an error
	for _, f := range []struct {
		dst *decimal.Decimal
		raw string
	}{{&q.Open, b.Open}, {&q.High, b.High}, {&q.Low, b.Low}} {
		if f.raw == "" {
			continue
		}
		if *f.dst, err = decimal.NewFromString(strings.TrimSpace(f.raw)); err != nil {
			return q, err
		}
	}
	if b.Volume != "" {
		if q.Volume, err = strconv.ParseInt(strings.TrimSpace(b.Volume), 10, 64); err != nil {
			return q, err
		}
	}
	return q, nil
}

func rejectionText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
