// Package errors provides standardized error types and helpers for mathlog.
//
// Translation failures form a closed taxonomy: every error the translator
// returns is one of UnexpectedNodeError, UnsupportedNodeError,
// UnsupportedCallError, UnsupportedIdentError, UnsupportedModuleError,
// EnvContextError or NotImplementedError. All of them are fatal.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates a construct with no defined translation
	ErrUnsupported = errors.New("unsupported")
	// ErrNotImplemented indicates a recognized construct that is not handled yet
	ErrNotImplemented = errors.New("not yet implemented")
	// ErrUnexpected indicates a node in a position that cannot accept it
	ErrUnexpected = errors.New("unexpected node")
)

// joinPath renders an identifier path the way it appears in source.
func joinPath(path []string) string {
	return strings.Join(path, ".")
}

// UnexpectedNodeError reports a node in a grammatical position that cannot
// structurally accept it. Well-formed parser output never produces it.
type UnexpectedNodeError struct {
	Node    string // Kind name of the node
	Context string // Where it was found (e.g., "math", "inline")
}

func (e *UnexpectedNodeError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("unexpected %s node in %s context", e.Node, e.Context)
	}
	return fmt.Sprintf("unexpected %s node", e.Node)
}

func (e *UnexpectedNodeError) Unwrap() error {
	return ErrUnexpected
}

// UnsupportedNodeError reports a valid construct with no defined translation.
type UnsupportedNodeError struct {
	Node string // Kind name of the node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node: %s", e.Node)
}

func (e *UnsupportedNodeError) Unwrap() error {
	return ErrUnsupported
}

// UnsupportedCallError reports a function call whose callee has no translation.
type UnsupportedCallError struct {
	Path   []string // Dotted callee path
	Reason string   // Optional detail about the call shape
}

func (e *UnsupportedCallError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported function call %s: %s", joinPath(e.Path), e.Reason)
	}
	return fmt.Sprintf("unsupported function call: %s", joinPath(e.Path))
}

func (e *UnsupportedCallError) Unwrap() error {
	return ErrUnsupported
}

// UnsupportedIdentError reports an identifier that is absent from the dictionary.
type UnsupportedIdentError struct {
	Path []string // Full attempted path
}

func (e *UnsupportedIdentError) Error() string {
	return fmt.Sprintf("unsupported identifier: %s", joinPath(e.Path))
}

func (e *UnsupportedIdentError) Unwrap() error {
	return ErrUnsupported
}

// UnsupportedModuleError reports a module segment that is absent from the dictionary.
type UnsupportedModuleError struct {
	Path []string // Full attempted path, not just the missing module
}

func (e *UnsupportedModuleError) Error() string {
	return fmt.Sprintf("unsupported module in identifier: %s", joinPath(e.Path))
}

func (e *UnsupportedModuleError) Unwrap() error {
	return ErrUnsupported
}

// EnvContextError reports a block environment found where only inline
// content is allowed.
type EnvContextError struct {
	Env     string // Environment name as written in source
	Context string // Where it was found
}

func (e *EnvContextError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("environment %q cannot appear in %s context", e.Env, e.Context)
	}
	return fmt.Sprintf("environment %q cannot appear in inline context", e.Env)
}

func (e *EnvContextError) Unwrap() error {
	return ErrUnsupported
}

// NotImplementedError reports a recognized construct that is deliberately
// not handled yet (links, labels, references, term items).
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Feature, ErrNotImplemented)
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "dictionary", "config")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "markup", "dictionary")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or shape
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// clonePath copies a path so the error never aliases the caller's slice.
func clonePath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}

// NewUnexpectedNode creates an UnexpectedNodeError
func NewUnexpectedNode(node, context string) *UnexpectedNodeError {
	return &UnexpectedNodeError{Node: node, Context: context}
}

// NewUnsupportedNode creates an UnsupportedNodeError
func NewUnsupportedNode(node string) *UnsupportedNodeError {
	return &UnsupportedNodeError{Node: node}
}

// NewUnsupportedCall creates an UnsupportedCallError
func NewUnsupportedCall(path []string, reason string) *UnsupportedCallError {
	return &UnsupportedCallError{Path: clonePath(path), Reason: reason}
}

// NewUnsupportedIdent creates an UnsupportedIdentError
func NewUnsupportedIdent(path []string) *UnsupportedIdentError {
	return &UnsupportedIdentError{Path: clonePath(path)}
}

// NewUnsupportedModule creates an UnsupportedModuleError
func NewUnsupportedModule(path []string) *UnsupportedModuleError {
	return &UnsupportedModuleError{Path: clonePath(path)}
}

// NewEnvContext creates an EnvContextError
func NewEnvContext(env, context string) *EnvContextError {
	return &EnvContextError{Env: env, Context: context}
}

// NewNotImplemented creates a NotImplementedError
func NewNotImplemented(feature string) *NotImplementedError {
	return &NotImplementedError{Feature: feature}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
