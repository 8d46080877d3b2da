package cohere

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyResponse is returned when a chat response carries no text content.
var ErrEmptyResponse = errors.New("empty response from API")

// Error implements the error interface for the API error schema.
func (e *Error) Error() string {
	return e.Message
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	// ID is the server-side error or request identifier, when present.
	ID string
	// Body is the raw response body.
	Body []byte
	// RetryAfter is parsed from the Retry-After header; zero when absent.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("cohere: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.ID != "" {
		msg += " (id " + e.ID + ")"
	}
	return msg
}

// IsThrottled reports whether the request was rate limited.
func (e *APIError) IsThrottled() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether repeating the request may succeed.
func (e *APIError) IsRetryable() bool {
	if e.IsThrottled() {
		return true
	}
	return e.StatusCode >= 500 && e.StatusCode != http.StatusNotImplemented
}

// IsThrottled reports whether err wraps a 429 APIError.
func IsThrottled(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsThrottled()
}

// newAPIError builds an APIError from a response whose typed decoding found
// no success payload. The first non-nil typed error body wins.
func newAPIError(rsp *http.Response, body []byte, typed ...*Error) *APIError {
	apiErr := &APIError{Body: body}
	if rsp != nil {
		apiErr.StatusCode = rsp.StatusCode
		apiErr.RetryAfter = parseRetryAfter(rsp.Header.Get("Retry-After"), time.Now())
	}

	var decoded *Error
	for _, e := range typed {
		if e != nil {
			decoded = e
			break
		}
	}
	if decoded == nil {
		var e Error
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			decoded = &e
		}
	}

	switch {
	case decoded != nil:
		apiErr.Message = decoded.Message
		if decoded.Id != nil {
			apiErr.ID = *decoded.Id
		}
	case apiErr.StatusCode >= 200 && apiErr.StatusCode < 300:
		apiErr.Message = "unexpected response content type " + strconv.Quote(contentType(rsp))
	default:
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func contentType(rsp *http.Response) string {
	if rsp == nil {
		return ""
	}
	return rsp.Header.Get("Content-Type")
}

// parseRetryAfter accepts delay-seconds or an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
