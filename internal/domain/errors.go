package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the search pipeline.
var (
	// ErrInvalidRequest is the umbrella for every search criteria violation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingField indicates a required search criterion is empty.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidAirportCode indicates an origin or destination that is not
	// exactly three letters after upper-casing.
	ErrInvalidAirportCode = errors.New("invalid airport code")

	// ErrInvalidPassengerCount indicates a non-numeric or out of range
	// passenger count.
	ErrInvalidPassengerCount = errors.New("invalid passenger count")

	// ErrInvalidDate indicates an unparseable date or a return date that
	// precedes the departure date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUpstreamFailure indicates the flight search service call failed or
	// timed out.
	ErrUpstreamFailure = errors.New("upstream failure")
)

// FieldError is a single validation failure tied to a search criterion.
type FieldError struct {
	// Field is the criterion name as the client sent it (e.g. "departureDate").
	Field string

	// Kind is one of the sentinel errors above.
	Kind error

	// Message is a human-readable explanation.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and ErrInvalidRequest to errors.Is.
func (e *FieldError) Unwrap() []error {
	return []error{e.Kind, ErrInvalidRequest}
}

// NewFieldError builds a FieldError with a formatted message.
func NewFieldError(field string, kind error, format string, args ...any) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationErrors holds every violation found while normalizing criteria.
type ValidationErrors struct {
	Errors []*FieldError
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is and errors.As reach each FieldError.
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v.Errors))
	for _, e := range v.Errors {
		errs = append(errs, e)
	}
	return errs
}

// Add records a violation.
func (v *ValidationErrors) Add(e *FieldError) {
	v.Errors = append(v.Errors, e)
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field → message map for API responses.
// The first message per field wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// UpstreamError describes a failed call to the flight search service.
type UpstreamError struct {
	// Operation is "search_flights" or "price_trends".
	Operation string

	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int

	// Retryable marks transient failures (429, 5xx, network).
	Retryable bool

	Err error
}

// NewUpstreamError wraps err as a non-retryable upstream failure.
func NewUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// NewRetryableUpstreamError wraps err as a transient upstream failure.
func NewRetryableUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	e := NewUpstreamError(operation, statusCode, err)
	e.Retryable = true
	return e
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s failed: %v", e.Operation, e.Err)
}

// Unwrap exposes the cause and ErrUpstreamFailure to errors.Is.
func (e *UpstreamError) Unwrap() []error {
	return []error{e.Err, ErrUpstreamFailure}
}

// IsRetryable reports whether err is a transient upstream failure.
func IsRetryable(err error) bool {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Retryable
	}
	return false
}

// Warning codes attached to offers with questionable data.
const (
	WarnScoreOutOfRange     = "score_out_of_range"
	WarnScoreMalformed      = "score_malformed"
	WarnTimestampUnparsable = "timestamp_unparseable"
	WarnDurationInvalid     = "duration_invalid"
	WarnStopsInvalid        = "stops_invalid"
	WarnPriceInvalid        = "price_invalid"
)

// DataQualityWarning is a non-fatal note about an offer field that was
// rendered with a fallback. It is reported alongside results, never returned
// as an error.
type DataQualityWarning struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
