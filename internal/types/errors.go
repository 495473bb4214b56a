package types

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing environment variable, a bad config
// value or a malformed credentials file.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Msg, e.Err)
	}
	return "configuration error: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RemoteServiceError reports a failed call to one of the external providers:
// transport failure, timeout, non-success status or a provider-side rejection.
type RemoteServiceError struct {
	Service    string
	StatusCode int
	Msg        string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	s := e.Service + ": remote service error"
	if e.StatusCode != 0 {
		s += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// DataFormatError reports a response body that lacks the expected structure.
type DataFormatError struct {
	Service string
	Msg     string
	Err     error
}

func (e *DataFormatError) Error() string {
	s := e.Service + ": unexpected data format: " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DataFormatError) Unwrap() error { return e.Err }

// MissingQuoteError reports a date key absent from a quote series.
type MissingQuoteError struct {
	Symbol string
	Date   string
}

func (e *MissingQuoteError) Error() string {
	return fmt.Sprintf("no quote for %s on %s", e.Symbol, e.Date)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func IsRemoteService(err error) bool {
	var target *RemoteServiceError
	return errors.As(err, &target)
}

func IsDataFormat(err error) bool {
	var target *DataFormatError
	return errors.As(err, &target)
}

func IsMissingQuote(err error) bool {
	var target *MissingQuoteError
	return errors.As(err, &target)
}
