package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ModelError is a non-2xx reply from a model service.
type ModelError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// NewModelError builds a ModelError from a failed reply. Message is the
// service's error.message when the body carries one, else "HTTP <status>".
func NewModelError(provider string, status int, body []byte) *ModelError {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := fmt.Sprintf("HTTP %d", status)
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	}
	return &ModelError{Provider: provider, StatusCode: status, Message: msg}
}

// CheckResponse returns nil for a 2xx reply. Otherwise it returns a
// *ModelError, wrapped in a *RateLimitError for HTTP 429.
func CheckResponse(provider string, resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	mErr := NewModelError(provider, resp.StatusCode, body)
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(provider, mErr, ParseRetryAfterHeader(resp.Header.Get("Retry-After")))
	}
	return mErr
}

// RateLimitError indicates a model provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// Truncate shortens s for log and error output.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
