package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWebsiteURL = errors.New("website url is empty")
	ErrSendInFlight    = errors.New("a chat exchange is already in flight")
	ErrCreateInFlight  = errors.New("a bot creation is already in flight")
	ErrNotConfirmed    = errors.New("deletion not confirmed")
	ErrSessionClosed   = errors.New("session is closed")

	ErrTranscriptNotFound = errors.New("transcript not found")
)

// RateLimitMessage is the fixed user-facing string for 429 responses. The
// raw server detail is deliberately never shown for rate limits.
const RateLimitMessage = "AI is temporarily unavailable. Please wait and try again."

type ErrorKind int

const (
	// ErrorKindNetwork: no response reached the client at all.
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindAuth: 401/403, credential invalid or insufficient.
	ErrorKindAuth
	// ErrorKindRateLimit: 429, transient backend overload.
	ErrorKindRateLimit
	// ErrorKindValidation: any other 4xx.
	ErrorKindValidation
	// ErrorKindServer: 5xx.
	ErrorKindServer
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNetwork:
		return "network"
	case ErrorKindAuth:
		return "auth"
	case ErrorKindRateLimit:
		return "rate_limit"
	case ErrorKindValidation:
		return "validation"
	case ErrorKindServer:
		return "server"
	default:
		return "unknown"
	}
}

// APIError is the closed classification of every non-success backend
// response. Status is zero when no response was received. None of these are
// fatal; callers turn them into view-local messages and stay usable.
type APIError struct {
	Kind   ErrorKind
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api request failed (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("api request failed (%s, status %d): %s", e.Kind, e.Status, e.Detail)
}

// DisplayMessage is the human-readable string a view should render for this
// error. Rate limits always get the fixed message, never the server detail.
func (e *APIError) DisplayMessage() string {
	switch e.Kind {
	case ErrorKindRateLimit:
		return RateLimitMessage
	case ErrorKindAuth:
		return "Session expired or unauthorized. Please log in again."
	case ErrorKindNetwork:
		return "Something went wrong"
	case ErrorKindServer:
		return "Something went wrong"
	default:
		if e.Detail != "" {
			return e.Detail
		}
		return "Request failed"
	}
}

// AsAPIError unwraps err into an *APIError when the chain contains one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
