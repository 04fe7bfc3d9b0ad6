// Package errors provides custom error types for the modelpresets system.
// These errors enable programmatic error checking and carry the offending
// key or field so a malformed catalog fails fast with a precise report.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the modelpresets system
var (
	// ErrNotFound indicates that a requested preset or template was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates that two top-level catalog entries share a name
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownBase indicates a base reference to a nonexistent entry
	ErrUnknownBase = errors.New("unknown base reference")

	// ErrMalformedEntry indicates a field value with the wrong primitive type
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when a preset or template is not found
type NotFoundError struct {
	Resource string
	Name     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// DuplicateKeyError represents two top-level entries sharing the same name
type DuplicateKeyError struct {
	Key string
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate catalog key %s", e.Key)
}

// Is implements errors.Is support
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(key string) *DuplicateKeyError {
	return &DuplicateKeyError{Key: key}
}

// UnknownBaseError represents a base reference that names a nonexistent entry
type UnknownBaseError struct {
	Preset string
	Base   string
}

// Error implements the error interface
func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("preset %s references unknown base %s", e.Preset, e.Base)
}

// Is implements errors.Is support
func (e *UnknownBaseError) Is(target error) bool {
	return target == ErrUnknownBase
}

// NewUnknownBaseError creates a new UnknownBaseError
func NewUnknownBaseError(preset, base string) *UnknownBaseError {
	return &UnknownBaseError{Preset: preset, Base: base}
}

// MalformedEntryError represents a field value with the wrong primitive type
type MalformedEntryError struct {
	Preset string
	Field  string
	Reason string
}

// Error implements the error interface
func (e *MalformedEntryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed entry %s: field %s: %s", e.Preset, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed entry %s: %s", e.Preset, e.Reason)
}

// Is implements errors.Is support
func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// NewMalformedEntryError creates a new MalformedEntryError
func NewMalformedEntryError(preset, field, reason string) *MalformedEntryError {
	return &MalformedEntryError{Preset: preset, Field: field, Reason: reason}
}

// ValidationError represents a schema validation failure
type ValidationError struct {
	Preset  string
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("preset %s: validation failed for field %s: %s", e.Preset, e.Field, e.Message)
	}
	return fmt.Sprintf("preset %s: validation failed: %s", e.Preset, e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(preset, field, message string) *ValidationError {
	return &ValidationError{Preset: preset, Field: field, Message: message}
}

// ParseError represents an error when parsing catalog text
type ParseError struct {
	Format  string // "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "stat", "walk"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during catalog operations
type ResourceError struct {
	Operation string // "load", "resolve", "validate", "reload"
	Resource  string // "catalog", "preset", "template"
	Name      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.Name, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, name string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		Name:      name,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsUnknownBase checks if an error is an unknown base reference error
func IsUnknownBase(err error) bool {
	return errors.Is(err, ErrUnknownBase)
}

// IsMalformedEntry checks if an error is a malformed entry error
func IsMalformedEntry(err error) bool {
	return errors.Is(err, ErrMalformedEntry)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, name string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, name, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
