package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NetworkError is a transport failure: DNS, connect, timeout or body read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError means the provider body does not have the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ProviderError is a non-success HTTP status returned by the provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the provider did not recognize the city.
func (e *ProviderError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// OpenWeatherMap error bodies look like {"cod":"404","message":"city not found"}.
func newProviderError(code int, body []byte) *ProviderError {
	var payload struct {
		Message string `json:"message"`
	}

	msg := http.StatusText(code)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = "unexpected status"
	}

	return &ProviderError{StatusCode: code, Message: msg}
}
