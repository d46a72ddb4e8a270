package model

import (
	"fmt"
	"strings"
)

// DecryptionError reports an unreadable ciphertext or a wrong key.
// Load and import paths return it instead of crashing and leave the
// in-memory state untouched.
type DecryptionError struct {
	Message string
	Cause   error
}

func (e *DecryptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decryption failed: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("decryption failed: %s", e.Message)
}

func (e *DecryptionError) Unwrap() error {
	return e.Cause
}

// NewDecryptionError creates a new decryption error
func NewDecryptionError(message string, cause error) *DecryptionError {
	return &DecryptionError{Message: message, Cause: cause}
}

// ParseError reports malformed input on import
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, Cause: cause}
}

// ValidationErrors accumulates structural problems found in an imported
// bundle. It is reported as a list, never thrown mid-validation, so the
// caller sees every problem at once.
type ValidationErrors struct {
	Problems []string
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Problems, "; "))
}

// Add records one human-readable problem.
func (e *ValidationErrors) Add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// HasProblems reports whether any problem was recorded.
func (e *ValidationErrors) HasProblems() bool {
	return len(e.Problems) > 0
}

// StorageError reports a durable read/write failure. It is surfaced via
// the store's error field and never blocks continued in-memory use.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage %s failed", e.Op)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new storage error
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}
