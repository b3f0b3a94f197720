package domain

import (
	"errors"
	"time"
)

// InterviewDuration is the fixed length of every interview slot.
const InterviewDuration = 30 * time.Minute

// Interview-specific validation errors
var (
	// ErrZeroStartTime is returned when an interview is built without a start time.
	ErrZeroStartTime = errors.New("interview start time cannot be empty")

	// ErrMissingCandidate is returned when an interview is built without a candidate.
	ErrMissingCandidate = errors.New("interview candidate cannot be empty")
)

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether w and other share any instant. Windows that only
// touch (one ends exactly when the other starts) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Interview is an immutable booking of a candidate into a fixed-length slot.
// End is derived from Start at construction and never set independently.
type Interview struct {
	candidate Candidate
	start     time.Time
	end       time.Time
}

// NewInterview creates an Interview for candidate starting at start.
// Whether start lies in the future is not checked here; see ValidateStart.
func NewInterview(candidate Candidate, start time.Time) (Interview, error) {
	if candidate.IsZero() {
		return Interview{}, ErrMissingCandidate
	}
	if err := candidate.Validate(); err != nil {
		return Interview{}, err
	}
	if start.IsZero() {
		return Interview{}, ErrZeroStartTime
	}

	return Interview{
		candidate: candidate,
		start:     start,
		end:       start.Add(InterviewDuration),
	}, nil
}

// Candidate returns the candidate being interviewed.
func (iv Interview) Candidate() Candidate { return iv.candidate }

// Start returns the interview start date-time.
func (iv Interview) Start() time.Time { return iv.start }

// End returns the interview end date-time.
func (iv Interview) End() time.Time { return iv.end }

// Window returns the half-open interval occupied by the interview.
func (iv Interview) Window() Window {
	return Window{Start: iv.start, End: iv.end}
}

// Date returns the interview date formatted as YYYY-MM-DD.
func (iv Interview) Date() string {
	return iv.start.Format(time.DateOnly)
}

// StartClock returns the interview start time formatted as HH:MM.
func (iv Interview) StartClock() string {
	return iv.start.Format("15:04")
}

// ValidateStart returns ErrInvalidDateTime unless the interview starts
// strictly after now.
func (iv Interview) ValidateStart(now time.Time) error {
	if !now.Before(iv.start) {
		return ErrInvalidDateTime
	}
	return nil
}

// IsSameInterviewCandidate reports whether both interviews are for the same
// candidate, regardless of their time windows.
func (iv Interview) IsSameInterviewCandidate(other Interview) bool {
	return iv.candidate.IsSameCandidate(other.candidate)
}

// IsConflictingInterview reports whether the two interview windows overlap.
func (iv Interview) IsConflictingInterview(other Interview) bool {
	return iv.Window().Overlaps(other.Window())
}

// Equal reports whether both interviews book the same candidate (by full
// equality) at the same start time.
func (iv Interview) Equal(other Interview) bool {
	return iv.candidate.Equal(other.candidate) && iv.start.Equal(other.start)
}

// String renders the interview as "<name> <student id> <date> <time>".
func (iv Interview) String() string {
	return iv.candidate.Name() + " " + iv.candidate.StudentID() + " " + iv.Date() + " " + iv.StartClock()
}
