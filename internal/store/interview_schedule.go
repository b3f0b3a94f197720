package store

import (
	"fmt"
	"slices"

	"github.com/phrazzld/recruit-api/internal/domain"
)

// ReadOnlyInterviewSchedule is the unmodifiable view of an interview schedule.
type ReadOnlyInterviewSchedule interface {
	// Interviews returns the bookings in insertion order. The slice is a copy.
	Interviews() []domain.Interview
}

// InterviewSchedule holds interview bookings.
//
// Invariants:
//   - no two bookings are for the same candidate
//   - no two booking windows overlap
type InterviewSchedule struct {
	interviews *UniqueList[domain.Interview]
}

// NewInterviewSchedule creates an empty InterviewSchedule.
func NewInterviewSchedule() *InterviewSchedule {
	return &InterviewSchedule{
		interviews: NewUniqueList[domain.Interview](domain.Interview.IsSameInterviewCandidate),
	}
}

// NewInterviewScheduleFrom creates a schedule holding a copy of src's bookings.
func NewInterviewScheduleFrom(src ReadOnlyInterviewSchedule) (*InterviewSchedule, error) {
	s := NewInterviewSchedule()
	if err := s.ResetData(src); err != nil {
		return nil, err
	}
	return s, nil
}

// AddInterview books iv.
// The candidate check runs before the window check, so re-booking a
// candidate into their own slot reports ErrDuplicateCandidateInterview.
func (s *InterviewSchedule) AddInterview(iv domain.Interview) error {
	if s.HasInterview(iv) {
		return ErrDuplicateCandidateInterview
	}
	if s.HasConflict(iv) {
		return ErrConflictingInterview
	}
	if err := s.interviews.Add(iv); err != nil {
		return wrap(ErrDuplicateCandidateInterview, err)
	}
	return nil
}

// RemoveInterview deletes the booking fully equal to iv.
// Returns ErrInterviewNotFound if no such booking exists.
func (s *InterviewSchedule) RemoveInterview(iv domain.Interview) error {
	err := s.interviews.RemoveFunc(func(existing domain.Interview) bool {
		return existing.Equal(iv)
	})
	if err != nil {
		return wrap(ErrInterviewNotFound, err)
	}
	return nil
}

// SetInterviews replaces every booking with interviews, all or nothing.
// Both invariants are checked across the incoming list.
func (s *InterviewSchedule) SetInterviews(interviews []domain.Interview) error {
	staged := NewInterviewSchedule()
	for _, iv := range interviews {
		if err := staged.AddInterview(iv); err != nil {
			return NewStoreError("interview", "set all", fmt.Sprintf("cannot book %s", iv), err)
		}
	}
	s.interviews = staged.interviews
	return nil
}

// ResetData replaces the schedule with the contents of newData.
func (s *InterviewSchedule) ResetData(newData ReadOnlyInterviewSchedule) error {
	if newData == nil {
		return NewStoreError("interview", "reset", "source schedule is nil", ErrNotFound)
	}
	return s.SetInterviews(newData.Interviews())
}

// HasInterview reports whether the candidate of iv already has a booking.
func (s *InterviewSchedule) HasInterview(iv domain.Interview) bool {
	return s.interviews.Contains(iv)
}

// HasConflict reports whether iv overlaps any existing booking.
func (s *InterviewSchedule) HasConflict(iv domain.Interview) bool {
	for _, existing := range s.interviews.items {
		if existing.IsConflictingInterview(iv) {
			return true
		}
	}
	return false
}

// InterviewFor returns the booking for candidate c, if any.
func (s *InterviewSchedule) InterviewFor(c domain.Candidate) (domain.Interview, bool) {
	for _, existing := range s.interviews.items {
		if existing.Candidate().IsSameCandidate(c) {
			return existing, true
		}
	}
	return domain.Interview{}, false
}

// Interviews returns a copy of the bookings in insertion order.
func (s *InterviewSchedule) Interviews() []domain.Interview {
	return s.interviews.Items()
}

// Len returns the number of bookings.
func (s *InterviewSchedule) Len() int {
	return s.interviews.Len()
}

// Equal reports whether both schedules hold fully equal bookings in the
// same order.
func (s *InterviewSchedule) Equal(other *InterviewSchedule) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(s.Interviews(), other.Interviews(), domain.Interview.Equal)
}

func (s *InterviewSchedule) String() string {
	return fmt.Sprintf("%d interviews", s.interviews.Len())
}

// InterviewSlice adapts a plain slice to ReadOnlyInterviewSchedule.
type InterviewSlice []domain.Interview

// Interviews returns a copy of the slice.
func (s InterviewSlice) Interviews() []domain.Interview {
	return slices.Clone(s)
}
