package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when no Places API key is configured.
var ErrMissingAPIKey = errors.New("missing API key: set GOOGLE_PLACES_API_KEY or use --api-key")

// ValidationError reports a bad request field, detected before any network
// activity. Validation failures are always fatal to the call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ProviderError reports a failure from an upstream API: a non-2xx status,
// an unparseable or oversized body, or a well-formed response with no
// usable content. Status is 0 when no HTTP status applies.
type ProviderError struct {
	Status  int
	Message string
	Err     error // underlying transport error, if any
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("API error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a validation-class failure, which
// the CLI maps to exit code 2.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrMissingAPIKey)
}
