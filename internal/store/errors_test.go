package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
		conflict  bool
	}{
		{name: "nil error"},
		{name: "generic error", err: errors.New("some error")},
		{name: "item not found", err: ErrItemNotFound, notFound: true},
		{name: "candidate not found", err: wrap(ErrCandidateNotFound, ErrItemNotFound), notFound: true},
		{name: "wrapped interview not found", err: fmt.Errorf("delete: %w", ErrInterviewNotFound), notFound: true},
		{name: "duplicate candidate", err: wrap(ErrDuplicateCandidate, ErrDuplicateItem), duplicate: true},
		{name: "duplicate interview", err: ErrDuplicateCandidateInterview, duplicate: true},
		{name: "duplicate items", err: ErrDuplicateItems, duplicate: true},
		{name: "conflicting interview", err: ErrConflictingInterview, conflict: true},
		{
			name:     "store error",
			err:      NewStoreError("interview", "set all", "rejected", ErrConflictingInterview),
			conflict: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err))
			assert.Equal(t, tt.conflict, IsConflictError(tt.err))
		})
	}
}

func TestWrapMatchesBothSentinels(t *testing.T) {
	t.Parallel()

	err := wrap(ErrDuplicateCandidate, ErrDuplicateItem)

	assert.ErrorIs(t, err, ErrDuplicateCandidate)
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrDuplicateCandidateInterview)
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("with wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("candidate", "set all", "duplicate entries", ErrDuplicateItems)

		assert.Equal(t, "set all operation on candidate failed: duplicate entries: entity already exists: items", err.Error())
		assert.ErrorIs(t, err, ErrDuplicateItems)

		var storeErr *StoreError
		assert.ErrorAs(t, fmt.Errorf("outer: %w", err), &storeErr)
		assert.Equal(t, "candidate", storeErr.Entity)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("interview", "reset", "source is nil", nil)

		assert.Equal(t, "reset operation on interview failed: source is nil", err.Error())
		assert.NoError(t, err.Unwrap())
	})
}
