package errors

import (
	"errors"
	"fmt"
)

var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownDriver    = errors.New("unknown storage driver")
)

// ValidationError reports a missing or unusable request field. Message is
// safe to return to the caller as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

type ArtifactError struct {
	Name string
	Op   string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact %s: %s failed: %v", e.Name, e.Op, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

func NewArtifactError(name, op string, err error) *ArtifactError {
	return &ArtifactError{
		Name: name,
		Op:   op,
		Err:  err,
	}
}

type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value: %v): %s", e.Field, e.Value, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func NewConfigError(field string, value interface{}, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsValidation reports whether err carries a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
