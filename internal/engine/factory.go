package engine

import (
	"stock-news-alert/internal/alertlog"
	"stock-news-alert/internal/interfaces"
	"stock-news-alert/internal/store"
)

// Deps are the collaborators of one alert step. RunLog may be nil.
type Deps struct {
	Quotes   interfaces.QuoteSource
	News     interfaces.NewsSource
	Notifier interfaces.Notifier
	Reporter interfaces.Reporter
	RunLog   *alertlog.Log
}

func New(cfg *store.Config, d Deps) interfaces.Engine {
	return newEngine(cfg, d)
}
