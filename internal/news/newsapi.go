package news

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"stock-news-alert/internal/api"
	"stock-news-alert/internal/types"
)

const (
	DefaultNewsAPIURL = "https://newsapi.org/v2/everything"
	newsAPIService    = "newsapi"
)

// NewsAPI queries the newsapi.org "everything" endpoint.
type NewsAPI struct {
	http     *api.Client
	baseURL  string
	apiKey   string
	language string
}

func NewNewsAPI(baseURL, apiKey, language string, opts ...api.ClientOption) *NewsAPI {
	if baseURL == "" {
		baseURL = DefaultNewsAPIURL
	}
	if language == "" {
		language = "en"
	}
	return &NewsAPI{
		http:     api.NewClient(newsAPIService, opts...),
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
	}
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
		URL         string  `json:"url"`
		PublishedAt string  `json:"publishedAt"`
	} `json:"articles"`
}

// Headlines returns every article the provider reports for query since from,
// in provider order.
func (n *NewsAPI) Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error) {
	if n.apiKey == "" {
		return nil, &types.ConfigurationError{Msg: "newsapi api key is empty"}
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("from", from.Format(types.DateLayout))
	q.Set("language", n.language)
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", n.apiKey)

	resp, err := n.http.GET(ctx, n.baseURL, q)
	if err != nil {
		return nil, providerError(resp, err)
	}

	var body newsAPIResponse
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, &types.RemoteServiceError{
			Service:    newsAPIService,
			StatusCode: resp.StatusCode,
			Msg:        body.Code + ": " + body.Message,
		}
	}
	if body.Status != "ok" {
		return nil, &types.DataFormatError{Service: newsAPIService, Msg: "unexpected status \"" + body.Status + "\""}
	}

	articles := make([]types.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		art := types.Article{
			Title:  strings.TrimSpace(a.Title),
			URL:    a.URL,
			Source: a.Source.Name,
		}
		if a.Description != nil {
			art.Description = strings.TrimSpace(*a.Description)
		}
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			art.PublishedAt = t
		}
		articles = append(articles, art)
	}
	return articles, nil
}

// providerError replaces the raw body in a non-2xx error with the provider's
// own code and message when the body carries them.
func providerError(resp *api.Response, err error) error {
	if resp == nil {
		return err
	}
	var body newsAPIResponse
	if json.Unmarshal(resp.Body, &body) != nil || body.Status != "error" {
		return err
	}
	return &types.RemoteServiceError{
		Service:    newsAPIService,
		StatusCode: resp.StatusCode,
		Msg:        body.Code + ": " + body.Message,
	}
}
