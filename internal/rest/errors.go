package rest

import (
	"errors"
	"net/http"
	"strings"
)

// Kind is the closed set of recoverable API failure categories. The
// backend signals sub-conditions through human-readable message text;
// classification happens once here so callers switch on Kind instead
// of re-matching substrings at every call site.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindEmailUnverified
	KindAlreadyExists
	KindNotFound
	KindValidation
)

// String returns a short label for logging.
func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindEmailUnverified:
		return "email_unverified"
	case KindAlreadyExists:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// APIError carries a non-2xx response. Message is the server-provided
// body text, preserved verbatim; Kind is derived from status and
// message once, centrally.
type APIError struct {
	Status  int
	Message string
	Kind    Kind
}

// Error returns the server message so callers and logs surface the
// backend's own wording.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError classifies a response status and body message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{
		Status:  status,
		Message: message,
		Kind:    classify(status, message),
	}
}

func classify(status int, message string) Kind {
	lower := strings.ToLower(message)

	// Message cues win over raw status: an unverified email frequently
	// surfaces as 401/403 but needs distinct user-facing copy.
	switch {
	case strings.Contains(lower, "verify your email"),
		strings.Contains(lower, "not verified"):
		return KindEmailUnverified
	case strings.Contains(lower, "already"):
		return KindAlreadyExists
	case strings.Contains(lower, "not found"):
		return KindNotFound
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthenticated
	case http.StatusConflict:
		return KindAlreadyExists
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindUnknown
	}
}

// KindOf extracts the classified kind from any error in the chain.
// Plain transport errors report KindUnknown.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
