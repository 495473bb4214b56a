package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO date format used as the quote series key.
const DateLayout = "2006-01-02"

type DailyQuote struct {
	Open, High, Low, Close decimal.Decimal
	Volume                 int64
}

// QuoteSeries maps an ISO date (YYYY-MM-DD) to that day's quote.
type QuoteSeries map[string]DailyQuote

type Change struct {
	Symbol      string          `json:"symbol"`
	RecentDate  string          `json:"recent_date"`
	PriorDate   string          `json:"prior_date"`
	RecentClose decimal.Decimal `json:"recent_close"`
	PriorClose  decimal.Decimal `json:"prior_close"`
	Percent     float64         `json:"percent"`
}

type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Credentials authenticate against the messaging provider.
type Credentials struct {
	AccountSID string `yaml:"account_sid" json:"account_sid"`
	AuthToken  string `yaml:"auth_token" json:"auth_token"`
	From       string `yaml:"from" json:"from"`
	To         string `yaml:"to" json:"to"`
}

type Delivery struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type StepResult struct {
	Symbol   string    `json:"symbol"`
	Change   Change    `json:"change"`
	Alerted  bool      `json:"alerted"`
	Articles int       `json:"articles"`
	Delivery *Delivery `json:"delivery,omitempty"`
	Time     int64     `json:"time"`
}
