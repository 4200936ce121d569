package weather

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey is returned before any I/O when no provider key is configured.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrDaySpan rejects forecast spans outside MinDaySpan..MaxDaySpan.
	ErrDaySpan = NewInputError("Days must be between 1 and 15")
)

// InputError is a bad caller-supplied parameter. It always maps to a 400 and
// is never logged as a server fault.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NewInputError formats an InputError.
func NewInputError(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is or wraps an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// StatusCoder is implemented by errors that carry an upstream HTTP status.
type StatusCoder interface {
	HTTPStatusCode() int
}

// UpstreamError is a non-2xx response from the weather provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("weather provider returned %d", e.StatusCode)
	}
	return fmt.Sprintf("weather provider returned %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) HTTPStatusCode() int {
	return e.StatusCode
}

// ErrorKind is the advisory classification of an upstream failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// Classify maps err onto an ErrorKind using only the HTTP status embedded in
// it: 404, 401 and 429 are recognised, anything else is KindUnknown.
func Classify(err error) ErrorKind {
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return KindUnknown
	}
	switch sc.HTTPStatusCode() {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindUnknown
	}
}

// HTTPStatus is the status a proxy should answer with for this kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text for this kind; fallback is used for
// KindUnknown.
func (k ErrorKind) Message(fallback string) string {
	switch k {
	case KindNotFound:
		return "Location not found"
	case KindUnauthorized:
		return "Invalid API key"
	case KindRateLimited:
		return "Rate limit exceeded"
	default:
		return fallback
	}
}
