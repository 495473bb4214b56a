package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-news-alert/internal/types"
)

const feed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>"Tesla Inc" - Google News</title>
<item>
  <title>Tesla stock rallies on delivery beat</title>
  <link>https://news.example.com/1</link>
  <pubDate>Fri, 05 Jan 2024 15:04:05 GMT</pubDate>
  <description>&lt;a href="https://news.example.com/1"&gt;Tesla stock rallies&lt;/a&gt;&amp;nbsp;&amp;nbsp;&lt;font color="#6f6f6f"&gt;Reuters&lt;/font&gt;</description>
  <source url="https://www.reuters.com">Reuters</source>
</item>
<item>
  <title>Old story</title>
  <link>https://news.example.com/2</link>
  <pubDate>Mon, 01 Jan 2024 09:00:00 GMT</pubDate>
  <description>stale</description>
</item>
<item>
  <title></title>
  <link>https://news.example.com/3</link>
</item>
</channel></rss>`

func TestScraperHeadlines(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	from := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	articles, err := NewScraper(srv.URL+"/rss/search", time.Second).Headlines(context.Background(), "Tesla Inc", from)
	require.NoError(t, err)

	assert.Equal(t, "Tesla Inc", gotQuery)
	require.Len(t, articles, 1)
	assert.Equal(t, "Tesla stock rallies on delivery beat", articles[0].Title)
	assert.Equal(t, "Tesla stock rallies Reuters", articles[0].Description)
	assert.Equal(t, "https://news.example.com/1", articles[0].URL)
	assert.Equal(t, "Reuters", articles[0].Source)
	assert.Equal(t, 2024, articles[0].PublishedAt.Year())
}

func TestScraperHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewScraper(srv.URL, time.Second).Headlines(context.Background(), "Tesla Inc", time.Time{})
	require.Error(t, err)
	assert.True(t, types.IsRemoteService(err))
}

func TestFlattenHTML(t *testing.T) {
	assert.Equal(t, "", flattenHTML("  "))
	assert.Equal(t, "plain text", flattenHTML("plain text"))
	assert.Equal(t, "Bold and link", flattenHTML("<b>Bold</b> and <a href='x'>link</a>"))
}
