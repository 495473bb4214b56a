package news

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

const (
	DefaultRSSURL = "https://news.google.com/rss/search"
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// RSS item date layouts seen in the wild
var pubDateLayouts = []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 MST"}

// Scraper reads headlines from a Google News style RSS search feed.
type Scraper struct {
	searchURL string
	timeout   time.Duration
}

// NewScraper creates a feed scraper for searchURL
func NewScraper(searchURL string, timeout time.Duration) *Scraper {
	if searchURL == "" {
		searchURL = DefaultRSSURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Scraper{searchURL: searchURL, timeout: timeout}
}

// Headlines returns feed items for query published on or after from, in feed order
func (s *Scraper) Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error) {
	articles := []types.Article{}

	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.searchURL)),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnXML("//item", func(e *colly.XMLElement) {
		title := strings.TrimSpace(e.ChildText("title"))
		if title == "" {
			return
		}
		published, dated := parsePubDate(e.ChildText("pubDate"))
		if dated && published.Before(from) {
			return
		}
		articles = append(articles, types.Article{
			Title:       title,
			Description: flattenHTML(e.ChildText("description")),
			URL:         strings.TrimSpace(e.ChildText("link")),
			Source:      strings.TrimSpace(e.ChildText("source")),
			PublishedAt: published,
		})
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = &types.RemoteServiceError{Service: "rss", StatusCode: r.StatusCode, Msg: "feed request failed", Err: err}
	})

	u, err := url.Parse(s.searchURL)
	if err != nil {
		return nil, &types.ConfigurationError{Msg: "rss search url", Err: err}
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")
	u.RawQuery = q.Encode()

	if err := c.Visit(u.String()); err != nil && scrapeErr == nil {
		scrapeErr = &types.RemoteServiceError{Service: "rss", Msg: "feed request failed", Err: err}
	}
	c.Wait()
	if scrapeErr != nil {
		return nil, scrapeErr
	}

	logger.Debug(ctx, "RSS scraping completed", "query", query, "articles", len(articles))
	return articles, nil
}

// flattenHTML turns an item description (usually an HTML fragment) into plain text
func flattenHTML(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func parsePubDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// getDomain extracts domain from URL
func getDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
