package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/phrazzld/recruit-api/internal/domain"
)

// ReadOnlyAddressBook is the unmodifiable view of an address book handed to
// presentation and export code.
type ReadOnlyAddressBook interface {
	// Candidates returns the candidates in roster order. The slice is a copy.
	Candidates() []domain.Candidate
}

// AddressBook is the candidate roster. No two candidates in it are the same
// under domain.Candidate.IsSameCandidate.
type AddressBook struct {
	candidates *UniqueList[domain.Candidate]
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		candidates: NewUniqueList[domain.Candidate](domain.Candidate.IsSameCandidate),
	}
}

// NewAddressBookFrom creates an AddressBook holding a copy of src's candidates.
func NewAddressBookFrom(src ReadOnlyAddressBook) (*AddressBook, error) {
	ab := NewAddressBook()
	if err := ab.ResetData(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// SetCandidates replaces the roster with candidates.
// Returns ErrDuplicateCandidate, without modifying the roster, if candidates
// contains two entries for the same person.
func (ab *AddressBook) SetCandidates(candidates []domain.Candidate) error {
	if err := ab.candidates.SetAll(candidates); err != nil {
		return NewStoreError("candidate", "set all", "candidate list contains duplicates", wrap(ErrDuplicateCandidate, err))
	}
	return nil
}

// SortCandidates reorders the roster using cmp. The sort is stable and
// works on a copy, so a failure leaves the roster as it was.
func (ab *AddressBook) SortCandidates(cmp domain.CandidateComparator) error {
	if cmp == nil {
		return fmt.Errorf("sort candidates: %w", domain.ErrUnknownSortKey)
	}
	sorted := ab.candidates.Items()
	slices.SortStableFunc(sorted, cmp)
	return ab.SetCandidates(sorted)
}

// ResetData replaces the roster with the contents of newData.
func (ab *AddressBook) ResetData(newData ReadOnlyAddressBook) error {
	if newData == nil {
		return NewStoreError("candidate", "reset", "source address book is nil", ErrNotFound)
	}
	return ab.SetCandidates(newData.Candidates())
}

// HasCandidate reports whether a candidate with the same identity exists.
func (ab *AddressBook) HasCandidate(c domain.Candidate) bool {
	return ab.candidates.Contains(c)
}

// AddCandidate appends c to the roster.
// Returns ErrDuplicateCandidate if the same candidate already exists.
func (ab *AddressBook) AddCandidate(c domain.Candidate) error {
	if err := ab.candidates.Add(c); err != nil {
		return wrap(ErrDuplicateCandidate, err)
	}
	return nil
}

// SetCandidate replaces target with edited at the same roster position.
// Returns ErrCandidateNotFound if target is absent, or ErrDuplicateCandidate
// if edited has the identity of another candidate in the roster.
func (ab *AddressBook) SetCandidate(target, edited domain.Candidate) error {
	return setCandidateErr(ab.candidates.Set(target, edited))
}

// CanSetCandidate returns the error SetCandidate would return for the same
// arguments, leaving the roster unchanged.
func (ab *AddressBook) CanSetCandidate(target, edited domain.Candidate) error {
	return setCandidateErr(ab.candidates.CanSet(target, edited))
}

func setCandidateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrItemNotFound):
		return wrap(ErrCandidateNotFound, err)
	default:
		return wrap(ErrDuplicateCandidate, err)
	}
}

// RemoveCandidate deletes c from the roster.
// Returns ErrCandidateNotFound if c is absent.
func (ab *AddressBook) RemoveCandidate(c domain.Candidate) error {
	if err := ab.candidates.Remove(c); err != nil {
		return wrap(ErrCandidateNotFound, err)
	}
	return nil
}

// Candidates returns a copy of the roster in order.
func (ab *AddressBook) Candidates() []domain.Candidate {
	return ab.candidates.Items()
}

// Len returns the number of candidates.
func (ab *AddressBook) Len() int {
	return ab.candidates.Len()
}

// Equal reports whether both address books hold fully equal candidates in
// the same order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(ab.Candidates(), other.Candidates(), domain.Candidate.Equal)
}

func (ab *AddressBook) String() string {
	return fmt.Sprintf("%d candidates", ab.candidates.Len())
}

// CandidateSlice adapts a plain slice to ReadOnlyAddressBook.
type CandidateSlice []domain.Candidate

// Candidates returns a copy of the slice.
func (s CandidateSlice) Candidates() []domain.Candidate {
	return slices.Clone(s)
}
