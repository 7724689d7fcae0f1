package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCollection        = errors.New("invalid package collection")
	ErrUnsupportedFormatVersion = errors.New("unsupported format version")
)

// DecodeError is returned when a package collection document cannot be decoded.
// Path is a JSON pointer to the offending value, empty for the document root.
type DecodeError struct {
	Path    string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return strings.TrimSpace(fmt.Sprintf("%v at '%s': %s", ErrInvalidCollection, path, e.Message))
}

// Unwrap allows matching both ErrInvalidCollection and the underlying cause with errors.Is/As
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidCollection}
	}
	return []error{ErrInvalidCollection, e.Err}
}

func NewDecodeError(path, message string, cause error) *DecodeError {
	return &DecodeError{Path: path, Message: message, Err: cause}
}
