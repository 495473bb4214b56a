package types

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	cfgErr := fmt.Errorf("load: %w", &ConfigurationError{Msg: "STOCKS_API_KEY is not set"})
	assert.True(t, IsConfiguration(cfgErr))
	assert.False(t, IsRemoteService(cfgErr))

	remote := fmt.Errorf("fetch: %w", &RemoteServiceError{Service: "newsapi", StatusCode: 429, Msg: "rateLimited"})
	assert.True(t, IsRemoteService(remote))
	assert.Contains(t, remote.Error(), "HTTP 429")
	assert.Contains(t, remote.Error(), "rateLimited")

	format := &DataFormatError{Service: "alphavantage", Msg: "missing series"}
	assert.True(t, IsDataFormat(format))

	missing := fmt.Errorf("change: %w", &MissingQuoteError{Symbol: "TSLA", Date: "2024-06-11"})
	assert.True(t, IsMissingQuote(missing))
	assert.Equal(t, "change: no quote for TSLA on 2024-06-11", missing.Error())
}

func TestRemoteServiceErrorUnwrapsCause(t *testing.T) {
	err := &RemoteServiceError{Service: "twilio", Err: context.DeadlineExceeded}
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "twilio: remote service error: context deadline exceeded", err.Error())
}
