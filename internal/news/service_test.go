package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-news-alert/internal/types"
)

type fakeSource struct {
	articles []types.Article
	err      error
	calls    int
}

func (f *fakeSource) Headlines(ctx context.Context, query string, from time.Time) ([]types.Article, error) {
	f.calls++
	return f.articles, f.err
}

func TestServiceUsesPrimary(t *testing.T) {
	primary := &fakeSource{articles: []types.Article{{Title: "a"}}}
	fallback := &fakeSource{articles: []types.Article{{Title: "b"}}}

	got, err := NewService(primary, fallback).Headlines(context.Background(), "Tesla Inc", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, 0, fallback.calls)
}

func TestServiceFallsBackOnEmpty(t *testing.T) {
	primary := &fakeSource{}
	fallback := &fakeSource{articles: []types.Article{{Title: "b"}}}

	got, err := NewService(primary, fallback).Headlines(context.Background(), "Tesla Inc", time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Title)
}

func TestServiceFallbackFailureIsNotFatal(t *testing.T) {
	primary := &fakeSource{}
	fallback := &fakeSource{err: errors.New("feed down")}

	got, err := NewService(primary, fallback).Headlines(context.Background(), "Tesla Inc", time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestServicePrimaryErrorPropagates(t *testing.T) {
	perr := &types.RemoteServiceError{Service: "newsapi", StatusCode: 500}
	primary := &fakeSource{err: perr}
	fallback := &fakeSource{articles: []types.Article{{Title: "b"}}}

	_, err := NewService(primary, fallback).Headlines(context.Background(), "Tesla Inc", time.Now())
	assert.ErrorIs(t, err, perr)
	assert.Equal(t, 0, fallback.calls)
}

func TestServiceWithoutFallback(t *testing.T) {
	got, err := NewService(&fakeSource{}, nil).Headlines(context.Background(), "Tesla Inc", time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
