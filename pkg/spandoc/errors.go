// Package spandoc provides custom error types for better error handling and reporting.
package spandoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInputTooLarge is returned when the input exceeds Config.MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds maximum size")

	// ErrNotDocx is returned for a ZIP archive without word/document.xml.
	ErrNotDocx = errors.New("not a valid DOCX file: missing word/document.xml")
)

// ParseError is fatal for the whole import: the markup could not be turned
// into a tree, or a run property was malformed while strict attribute
// handling was enabled. No buffer is produced alongside it.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) error {
	return &ParseError{
		Message: message,
		Cause:   cause,
	}
}

// AttributeError describes a run property whose value could not be used,
// such as <w:sz w:val="big"/> or <w:color w:val="12"/>.
type AttributeError struct {
	Element string
	Attr    string
	Value   string
	Cause   error
}

func (e *AttributeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s %s=%q: %v", e.Element, e.Attr, e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid %s %s=%q", e.Element, e.Attr, e.Value)
}

func (e *AttributeError) Unwrap() error {
	return e.Cause
}

// NewAttributeError creates a new attribute error
func NewAttributeError(element, attr, value string, cause error) error {
	return &AttributeError{
		Element: element,
		Attr:    attr,
		Value:   value,
		Cause:   cause,
	}
}

// DocumentError represents an error while reading the input artifact
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsParseError checks if err is or wraps a parse error
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsAttributeError checks if err is or wraps an attribute error
func IsAttributeError(err error) bool {
	var ae *AttributeError
	return errors.As(err, &ae)
}

// IsDocumentError checks if err is or wraps a document error
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}
