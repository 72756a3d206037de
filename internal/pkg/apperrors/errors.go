package apperrors

import "errors"

// Remote operation errors. Every failure coming back from the membership
// API is normalized onto exactly one of these before it leaves the
// upstream client; the raw transport error never escapes.
var (
	// ErrRequestFailed means the server responded 4xx/5xx; the message from
	// its error body is shown to the user verbatim.
	ErrRequestFailed = errors.New("request failed")

	// ErrNetwork means the request was sent but no response arrived.
	ErrNetwork = errors.New("network error - no response received")

	// ErrTimeout means the bounded request deadline elapsed.
	ErrTimeout = errors.New("request timed out")

	// ErrSetup means the request could not even be constructed.
	ErrSetup = errors.New("request setup error")
)

// Session and authorization errors
var (
	// ErrAuthDenied means the session check came back negative. Guards
	// redirect on it; the explicit "not authorized" variant is surfaced as
	// a dialog before the redirect.
	ErrAuthDenied = errors.New("not authorized")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Validation errors (client-side; these never reach the API)
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidStudentID = errors.New("invalid student ID format")
	ErrUnknownField     = errors.New("unknown form field")
)

// Store errors
var (
	ErrAdminProtected = errors.New("super-admin accounts cannot be deleted")
)

// RemoteError carries the human-readable message extracted from a failed
// API call alongside the taxonomy sentinel it maps to.
type RemoteError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap so errors.Is sees the sentinel.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError wraps a taxonomy sentinel with a display message.
func NewRemoteError(err error, message string) *RemoteError {
	return &RemoteError{Err: err, Message: message}
}

// MessageOf extracts the display message from any error produced by this
// package, falling back to Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Error()
	}
	return err.Error()
}
