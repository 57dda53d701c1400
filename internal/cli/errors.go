// Package cli provides shared configuration and utilities for the modulegen CLI.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/syssam/modulegen/compiler/gen"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitConfig  = 2
	ExitSchema  = 3
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code returns the exit code for err.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// ExitWithError prints the error and exits with the appropriate code.
func ExitWithError(err error) {
	fmt.Fprintln(os.Stderr, NewPrinter(os.Stderr).Error(err.Error()))
	os.Exit(Code(err))
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// SchemaError creates an ExitError with ExitSchema code.
func SchemaError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSchema, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// Classify wraps an error returned by the generator with the exit code of
// its kind: schema problems exit with ExitSchema, configuration problems
// with ExitConfig.
func Classify(msg string, err error) *ExitError {
	switch {
	case errors.Is(err, gen.ErrValidationFailed), errors.Is(err, gen.ErrInvalidSchema), errors.Is(err, gen.ErrInvalidRelationship):
		return SchemaError(msg, err)
	case errors.Is(err, gen.ErrMissingConfig):
		return ConfigError(msg, err)
	default:
		return GeneralError(msg, err)
	}
}
