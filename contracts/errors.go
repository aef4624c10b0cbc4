package contracts

import (
	"errors"
	"fmt"
)

// Validation error messages
const (
	ErrorInvalidArguments = "invalid or missing argument(s)!"
	ErrorInvalidHandler   = "invalid or missing handler!"
	ErrorInternalID       = "internal method names are not allowed!"
	ErrorInvalidIDLength  = "invalid id length!"
)

var (
	ErrInvalidArguments = errors.New(ErrorInvalidArguments)
	ErrInvalidHandler   = errors.New(ErrorInvalidHandler)
	ErrInternalID       = errors.New(ErrorInternalID)
	ErrInvalidIDLength  = errors.New(ErrorInvalidIDLength)
)

// ErrorKind classifies a validation failure
type ErrorKind int

const (
	KindInvalidArguments ErrorKind = iota + 1
	KindInvalidIDLength
	KindInternalID
	KindInvalidHandler
)

// String returns the kebab-case name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArguments:
		return "invalid-arguments"
	case KindInvalidIDLength:
		return "invalid-id-length"
	case KindInternalID:
		return "internal-id"
	case KindInvalidHandler:
		return "invalid-handler"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Err returns the sentinel error for the kind
func (k ErrorKind) Err() error {
	switch k {
	case KindInvalidArguments:
		return ErrInvalidArguments
	case KindInvalidIDLength:
		return ErrInvalidIDLength
	case KindInternalID:
		return ErrInternalID
	case KindInvalidHandler:
		return ErrInvalidHandler
	default:
		return nil
	}
}

// ValidationError represents a failed validation check of a registration operation
type ValidationError struct {
	Op   string
	Kind ErrorKind
}

// NewValidationError creates a validation error for an operation
func NewValidationError(op string, kind ErrorKind) *ValidationError {
	return &ValidationError{Op: op, Kind: kind}
}

// Error returns the fixed message text of the kind
func (e *ValidationError) Error() string {
	if err := e.Kind.Err(); err != nil {
		return err.Error()
	}
	return e.Kind.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.Err()
}
