// Package common defines sentinel errors shared by the storage, service and
// UI layers of the attendance ledger. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the parent of every input validation failure.
	ErrValidation = errors.New("validation error")

	ErrInvalidInput      = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrNoFieldsProvided  = fmt.Errorf("%w: no fields to update", ErrValidation)
	ErrInvalidRecordType = fmt.Errorf("%w: record type must be entry or exit", ErrValidation)

	// Repository-level errors.
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")

	ErrConfigMissing = errors.New("config entry missing")

	// ErrStorage matches any *StorageError.
	ErrStorage = errors.New("storage error")
)

// StorageError wraps a failure of the underlying database: connection
// problems, malformed queries, constraint violations that have no domain
// meaning.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage as a match so callers do not need errors.As.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Storage wraps err into a *StorageError unless it is nil or already carries
// a domain meaning (validation, not found, duplicate, missing config).
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomain reports whether err belongs to the domain taxonomy rather than
// being a raw storage failure.
func IsDomain(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrConfigMissing) ||
		errors.Is(err, ErrStorage)
}

// Message returns the text shown to an operator for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFieldsProvided):
		return "Nothing to update: no fields were provided"
	case errors.Is(err, ErrInvalidRecordType):
		return "Record type must be either entry or exit"
	case errors.Is(err, ErrValidation):
		return "Invalid input: " + err.Error()
	case err == ErrNotFound:
		return "Not found"
	case errors.Is(err, ErrNotFound):
		return "Not found: " + strings.TrimSuffix(err.Error(), ": "+ErrNotFound.Error())
	case errors.Is(err, ErrDuplicateID):
		return "An employee with that ID already exists"
	case errors.Is(err, ErrConfigMissing):
		return "Administrative configuration is missing"
	case errors.Is(err, ErrStorage):
		return "Storage failure: " + err.Error()
	default:
		return err.Error()
	}
}
