package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all aggregates.
var (
	// ErrNotFound is returned when a referenced entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrCandidateNotFound, ErrInterviewNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrConflict is returned when an entity is unique but clashes with
	// another one, such as two overlapping interview windows.
	ErrConflict = errors.New("entity conflicts with an existing entity")

	// Collection-level errors raised by UniqueList

	// ErrDuplicateItem indicates an item is the same as one already in the list.
	ErrDuplicateItem = fmt.Errorf("%w: item", ErrDuplicate)

	// ErrDuplicateItems indicates a bulk replacement contained two items that
	// are the same as each other.
	ErrDuplicateItems = fmt.Errorf("%w: items", ErrDuplicate)

	// ErrItemNotFound indicates no item in the list is the same as the one given.
	ErrItemNotFound = fmt.Errorf("%w: item", ErrNotFound)

	// Entity-specific errors

	// ErrCandidateNotFound indicates that the referenced candidate is not in the address book.
	ErrCandidateNotFound = fmt.Errorf("%w: candidate", ErrNotFound)

	// ErrInterviewNotFound indicates that the referenced interview is not in the schedule.
	ErrInterviewNotFound = fmt.Errorf("%w: interview", ErrNotFound)

	// ErrDuplicateCandidate indicates that a candidate with the same identity already exists.
	ErrDuplicateCandidate = fmt.Errorf("%w: candidate", ErrDuplicate)

	// ErrDuplicateCandidateInterview indicates that the candidate already has an interview booked.
	ErrDuplicateCandidateInterview = fmt.Errorf("%w: candidate interview", ErrDuplicate)

	// ErrConflictingInterview indicates that the interview window overlaps an existing booking.
	ErrConflictingInterview = fmt.Errorf("%w: interview", ErrConflict)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConflictError checks if the error is an overlapping-window error.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// wrap joins an entity-specific sentinel with the collection-level error it
// was derived from so callers can match either one.
func wrap(entityErr, cause error) error {
	return fmt.Errorf("%w (%w)", entityErr, cause)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "candidate", "interview")
	Operation string // The operation that failed (e.g., "set all", "reset")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
