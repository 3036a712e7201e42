// Package errors provides standardized error types and helpers for the gwyfile codebase.
//
// Every fallible operation in the codec reports one of four domains: system
// errors carry the underlying OS error, data errors describe a format or
// structural violation, and validity/warning findings are collected by the
// checker rather than aborting traversal.
package errors

import (
	"errors"
	"fmt"
)

// Domain classifies an error by the subsystem that produced it.
type Domain int

const (
	// DomainSystem is an I/O or OS-level failure.
	DomainSystem Domain = iota
	// DomainData is a format or structural violation.
	DomainData
	// DomainValidity is a format-breaking problem found by the checker.
	DomainValidity
	// DomainWarning is a discouraged-but-legal problem found by the checker.
	DomainWarning
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case DomainSystem:
		return "system"
	case DomainData:
		return "data"
	case DomainValidity:
		return "validity"
	case DomainWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// DataCode identifies a specific data-domain failure.
type DataCode int

const (
	// CodeMagic indicates a missing or wrong magic header.
	CodeMagic DataCode = iota
	// CodeItemType indicates an unknown item type tag.
	CodeItemType
	// CodeConfinement indicates a read past the enclosing declared size or end of stream.
	CodeConfinement
	// CodeArraySize indicates a zero-length array on the wire.
	CodeArraySize
	// CodeDuplicateName indicates two items of the same name in one object.
	CodeDuplicateName
	// CodeLongString indicates an unterminated string running past its confinement.
	CodeLongString
	// CodeObjectSize indicates an object too large for the 32-bit size field.
	CodeObjectSize
	// CodeObjectName indicates an object whose name does not match the expected type.
	CodeObjectName
	// CodeMissingItem indicates a mandatory item absent from an object.
	CodeMissingItem
	// CodeTooDeepNesting indicates object nesting beyond the decoder's depth ceiling.
	CodeTooDeepNesting
)

// Sentinel errors for data-domain codes, usable with errors.Is.
var (
	ErrMagic          = errors.New("wrong magic header")
	ErrItemType       = errors.New("unknown item type")
	ErrConfinement    = errors.New("data confinement violated")
	ErrArraySize      = errors.New("zero-length array")
	ErrDuplicateName  = errors.New("duplicate item name")
	ErrLongString     = errors.New("unterminated string")
	ErrObjectSize     = errors.New("object size exceeds 32 bits")
	ErrObjectName     = errors.New("unexpected object name")
	ErrMissingItem    = errors.New("mandatory item missing")
	ErrTooDeepNesting = errors.New("too deep object nesting")
)

// sentinel maps a data code to its sentinel error.
func sentinel(code DataCode) error {
	switch code {
	case CodeMagic:
		return ErrMagic
	case CodeItemType:
		return ErrItemType
	case CodeConfinement:
		return ErrConfinement
	case CodeArraySize:
		return ErrArraySize
	case CodeDuplicateName:
		return ErrDuplicateName
	case CodeLongString:
		return ErrLongString
	case CodeObjectSize:
		return ErrObjectSize
	case CodeObjectName:
		return ErrObjectName
	case CodeMissingItem:
		return ErrMissingItem
	case CodeTooDeepNesting:
		return ErrTooDeepNesting
	default:
		return nil
	}
}

// DataError represents a format or structural violation with context.
type DataError struct {
	Code    DataCode // Specific failure code
	Path    string   // Escaped tree path of the offending node, if known
	Message string   // Human-readable error message
	Err     error    // Underlying error, if any
}

func (e *DataError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *DataError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return sentinel(e.Code)
}

// Is reports whether target is the sentinel for this error's code, so
// errors.Is matches the code even when an underlying error is wrapped.
func (e *DataError) Is(target error) bool {
	return target == sentinel(e.Code)
}

// Domain returns DomainData.
func (e *DataError) Domain() Domain { return DomainData }

// SystemError represents an I/O operation error with context.
type SystemError struct {
	Op   string // Operation being performed (e.g., "read", "write", "open")
	Path string // File path involved, if any
	Err  error  // Underlying error
}

func (e *SystemError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// Domain returns DomainSystem.
func (e *SystemError) Domain() Domain { return DomainSystem }

// InvalidCode identifies a validity finding.
type InvalidCode int

const (
	// InvalidUTF8Name is an item or object name that is not valid UTF-8.
	InvalidUTF8Name InvalidCode = iota
	// InvalidUTF8Type is an object type name that is not valid UTF-8.
	InvalidUTF8Type
	// InvalidUTF8String is a string value that is not valid UTF-8.
	InvalidUTF8String
	// InvalidDouble is a NaN or infinite double value.
	InvalidDouble
)

// WarningCode identifies a warning finding.
type WarningCode int

const (
	// WarningTypeIdentifier is an object type name that is not a bare identifier.
	WarningTypeIdentifier WarningCode = iota
	// WarningEmptyName is an empty item name.
	WarningEmptyName
)

// Finding is a single checker result: a validity or warning problem located
// by its escaped tree path. Findings never abort traversal.
type Finding struct {
	Domain  Domain // DomainValidity or DomainWarning
	Code    int    // InvalidCode or WarningCode depending on Domain
	Path    string // Escaped tree path of the offending node
	Message string // Human-readable description
}

func (f *Finding) Error() string {
	return fmt.Sprintf("%s: %s: %s", f.Domain, f.Path, f.Message)
}

// List accumulates checker findings across a whole traversal.
type List struct {
	Findings []*Finding
}

// Append adds a finding to the list.
func (l *List) Append(f *Finding) {
	l.Findings = append(l.Findings, f)
}

// Len returns the number of accumulated findings.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Findings)
}

// Clear drops all accumulated findings.
func (l *List) Clear() {
	l.Findings = nil
}

// Helper functions for creating common errors

// NewData creates a DataError.
func NewData(code DataCode, path, message string) *DataError {
	return &DataError{
		Code:    code,
		Path:    path,
		Message: message,
	}
}

// NewDataf creates a DataError with a formatted message.
func NewDataf(code DataCode, path, format string, args ...interface{}) *DataError {
	return &DataError{
		Code:    code,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewSystem creates a SystemError.
func NewSystem(op, path string, err error) *SystemError {
	return &SystemError{
		Op:   op,
		Path: path,
		Err:  err,
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
