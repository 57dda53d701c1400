package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/modulegen/compiler/load"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a schema definition error.
	ErrInvalidSchema = errors.New("modulegen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("modulegen: missing configuration")
	// ErrInvalidRelationship indicates a relationship definition error.
	ErrInvalidRelationship = errors.New("modulegen: invalid relationship definition")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("modulegen: code generation failed")
	// ErrValidationFailed indicates a schema validation failure.
	ErrValidationFailed = errors.New("modulegen: validation failed")
	// ErrRegistrationFailed indicates the module could not be registered in its aggregator.
	ErrRegistrationFailed = errors.New("modulegen: module registration failed")
	// ErrLocked indicates another generator run holds the workspace lock.
	ErrLocked = errors.New("modulegen: another generator run is in progress")
)

// SchemaError represents a schema definition error.
type SchemaError struct {
	Module  string // Module name
	Field   string // Field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("modulegen: schema error")
	if e.Module != "" {
		b.WriteString(" on module ")
		b.WriteString(e.Module)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(module, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Module:  module,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// FieldTypeError is returned when a field type does not normalize to a
// known type. It is the most common operator mistake, so the message lists
// every valid type.
type FieldTypeError struct {
	Field string
	Type  string
	Valid []string
}

// Error implements the error interface.
func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("modulegen: field %q has unknown type %q (valid types: %s)", e.Field, e.Type, strings.Join(e.Valid, ", "))
}

// Is reports whether the target matches the sentinel error for FieldTypeError.
func (e *FieldTypeError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("modulegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("modulegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// RelationshipError represents a relationship resolution error.
type RelationshipError struct {
	From         string
	To           string
	Relationship string
	Message      string
	Cause        error
}

// Error implements the error interface.
func (e *RelationshipError) Error() string {
	var b strings.Builder
	b.WriteString("modulegen: relationship error")
	if e.Relationship != "" {
		b.WriteString(" on relationship ")
		b.WriteString(e.Relationship)
	}
	if e.From != "" && e.To != "" {
		fmt.Fprintf(&b, " (%s -> %s)", e.From, e.To)
	} else if e.From != "" {
		b.WriteString(" from ")
		b.WriteString(e.From)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RelationshipError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RelationshipError.
func (e *RelationshipError) Is(target error) bool {
	return target == ErrInvalidRelationship
}

// NewRelationshipError creates a new RelationshipError.
func NewRelationshipError(from, to, name, message string, cause error) *RelationshipError {
	return &RelationshipError{
		From:         from,
		To:           to,
		Relationship: name,
		Message:      message,
		Cause:        cause,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("modulegen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError carries the issues of a schema that failed validation.
type ValidationError struct {
	Issues load.ValidationErrors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	errs := e.Issues.Errors()
	var b strings.Builder
	fmt.Fprintf(&b, "modulegen: validation failed with %d error(s)", len(errs))
	for _, issue := range errs {
		b.WriteString("\n  ")
		b.WriteString(issue.Error())
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new ValidationError.
func NewValidationError(issues load.ValidationErrors) *ValidationError {
	return &ValidationError{Issues: issues}
}

// RegistrationError represents a failure to splice the module into its aggregator.
type RegistrationError struct {
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	var b strings.Builder
	b.WriteString("modulegen: registration error")
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RegistrationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RegistrationError.
func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistrationFailed
}

// NewRegistrationError creates a new RegistrationError.
func NewRegistrationError(file, message string, cause error) *RegistrationError {
	return &RegistrationError{
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
