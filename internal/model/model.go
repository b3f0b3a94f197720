package model

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/store"
)

// ListState describes what the filtered candidate list is currently showing.
type ListState string

// Possible list states
const (
	// ListStateEmptyRoster means no candidates are stored at all.
	ListStateEmptyRoster ListState = "empty_roster"

	// ListStateNoMatches means candidates exist but the active filter selects none.
	ListStateNoMatches ListState = "no_matches"

	// ListStateShowing means at least one candidate is visible.
	ListStateShowing ListState = "showing"
)

// CandidateView is a consistent snapshot of the filtered candidate list.
type CandidateView struct {
	Candidates []domain.Candidate
	State      ListState
}

// Model is the API of the in-memory session used by the command layer.
type Model interface {
	// HasCandidate reports whether a candidate with the same identity exists.
	HasCandidate(c domain.Candidate) bool

	// AddCandidate adds c and resets the candidate filter to show all.
	AddCandidate(c domain.Candidate) error

	// SetCandidate replaces target with edited, re-booking target's interview
	// for edited at the same time.
	SetCandidate(target, edited domain.Candidate) error

	// DeleteCandidate removes c together with its interview, if any.
	DeleteCandidate(c domain.Candidate) error

	// SetCandidates replaces the roster, all or nothing.
	SetCandidates(candidates []domain.Candidate) error

	// SortCandidates reorders the roster using cmp.
	SortCandidates(cmp domain.CandidateComparator) error

	// HasInterview reports whether the candidate of iv already has a booking.
	HasInterview(iv domain.Interview) bool

	// AddInterview books iv without checking it against the clock.
	AddInterview(iv domain.Interview) error

	// ScheduleInterview books c at start, which must be in the future.
	ScheduleInterview(c domain.Candidate, start time.Time) (domain.Interview, error)

	// DeleteInterview removes the booking equal to iv.
	DeleteInterview(iv domain.Interview) error

	// FilteredCandidates returns the visible candidates.
	FilteredCandidates() []domain.Candidate

	// FilteredInterviews returns the visible interviews.
	FilteredInterviews() []domain.Interview

	// UpdateFilteredCandidateList replaces the active candidate predicate.
	UpdateFilteredCandidateList(p CandidatePredicate)

	// UpdateFilteredInterviewList replaces the active interview predicate.
	UpdateFilteredInterviewList(p InterviewPredicate)

	// CandidateListState reports what the filtered candidate list shows.
	CandidateListState() ListState

	// CandidateView returns the filtered candidates and their list state,
	// read together.
	CandidateView() CandidateView

	// AddressBook returns a read-only snapshot of the roster.
	AddressBook() store.ReadOnlyAddressBook

	// InterviewSchedule returns a read-only snapshot of the schedule.
	InterviewSchedule() store.ReadOnlyInterviewSchedule
}

// Option configures a ModelManager.
type Option func(*ModelManager)

// WithClock sets the source of the current time used by ScheduleInterview.
func WithClock(now func() time.Time) Option {
	return func(m *ModelManager) {
		m.now = now
	}
}

// ModelManager owns the session's address book and interview schedule and
// keeps a filtered projection of each.
//
// Invariants:
//   - filteredCandidates is exactly the roster entries satisfying candidatePredicate
//   - filteredInterviews is exactly the bookings satisfying interviewPredicate
//   - both projections are recomputed inside the same critical section as the
//     mutation or predicate change that affects them
//
// All methods are safe for concurrent use.
type ModelManager struct {
	mu sync.RWMutex

	addressBook *store.AddressBook
	schedule    *store.InterviewSchedule
	now         func() time.Time

	candidatePredicate CandidatePredicate
	interviewPredicate InterviewPredicate
	filteredCandidates []domain.Candidate
	filteredInterviews []domain.Interview
}

var _ Model = (*ModelManager)(nil)

// NewModelManager creates a ModelManager holding copies of book and schedule.
// Both filters start out showing everything.
func NewModelManager(
	book store.ReadOnlyAddressBook,
	schedule store.ReadOnlyInterviewSchedule,
	opts ...Option,
) (*ModelManager, error) {
	addressBook, err := store.NewAddressBookFrom(book)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	interviewSchedule, err := store.NewInterviewScheduleFrom(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to load interview schedule: %w", err)
	}

	m := &ModelManager{
		addressBook:        addressBook,
		schedule:           interviewSchedule,
		now:                time.Now,
		candidatePredicate: PredicateShowAllCandidates,
		interviewPredicate: PredicateShowAllInterviews,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.refreshCandidates()
	m.refreshInterviews()
	return m, nil
}

// NewEmptyModelManager creates a ModelManager with no data.
func NewEmptyModelManager(opts ...Option) *ModelManager {
	m, err := NewModelManager(store.CandidateSlice(nil), store.InterviewSlice(nil), opts...)
	if err != nil {
		// ALLOW-PANIC: empty sources cannot violate any invariant
		panic(err)
	}
	return m
}

// HasCandidate reports whether a candidate with the same identity exists.
func (m *ModelManager) HasCandidate(c domain.Candidate) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.addressBook.HasCandidate(c)
}

// AddCandidate adds c and resets the candidate filter to show all.
func (m *ModelManager) AddCandidate(c domain.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.addressBook.AddCandidate(c); err != nil {
		return err
	}
	m.candidatePredicate = PredicateShowAllCandidates
	m.refreshCandidates()
	return nil
}

// SetCandidate replaces target with edited. If target has an interview it is
// re-booked for edited at the same start time. Nothing changes unless both
// the roster and the schedule accept the edit.
//
// Roster errors take precedence: store.ErrCandidateNotFound or
// store.ErrDuplicateCandidate is returned before the schedule is consulted.
func (m *ModelManager) SetCandidate(target, edited domain.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.addressBook.CanSetCandidate(target, edited); err != nil {
		return err
	}

	rebooked, err := m.rebookedInterviews(target, edited)
	if err != nil {
		return err
	}

	if err := m.addressBook.SetCandidate(target, edited); err != nil {
		return err
	}

	if rebooked != nil {
		if err := m.schedule.SetInterviews(rebooked); err != nil {
			return fmt.Errorf("failed to re-book interview: %w", err)
		}
		m.refreshInterviews()
	}
	m.refreshCandidates()
	return nil
}

// rebookedInterviews returns the schedule contents with target's booking
// moved to edited, or nil if target has no booking. The result is checked
// against both schedule invariants.
func (m *ModelManager) rebookedInterviews(target, edited domain.Candidate) ([]domain.Interview, error) {
	existing, ok := m.schedule.InterviewFor(target)
	if !ok {
		return nil, nil
	}

	replacement, err := domain.NewInterview(edited, existing.Start())
	if err != nil {
		return nil, err
	}

	interviews := m.schedule.Interviews()
	for i, iv := range interviews {
		if iv.Equal(existing) {
			interviews[i] = replacement
		}
	}

	if err := store.NewInterviewSchedule().SetInterviews(interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// DeleteCandidate removes c and any interview booked for c.
func (m *ModelManager) DeleteCandidate(c domain.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.addressBook.RemoveCandidate(c); err != nil {
		return err
	}

	if iv, ok := m.schedule.InterviewFor(c); ok {
		if err := m.schedule.RemoveInterview(iv); err != nil {
			return fmt.Errorf("failed to cancel interview: %w", err)
		}
		m.refreshInterviews()
	}
	m.refreshCandidates()
	return nil
}

// SetCandidates replaces the roster, all or nothing.
func (m *ModelManager) SetCandidates(candidates []domain.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.addressBook.SetCandidates(candidates); err != nil {
		return err
	}
	m.refreshCandidates()
	return nil
}

// SortCandidates reorders the roster using cmp.
func (m *ModelManager) SortCandidates(cmp domain.CandidateComparator) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.addressBook.SortCandidates(cmp); err != nil {
		return err
	}
	m.refreshCandidates()
	return nil
}

// HasInterview reports whether the candidate of iv already has a booking.
func (m *ModelManager) HasInterview(iv domain.Interview) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.schedule.HasInterview(iv)
}

// AddInterview books iv without checking it against the clock.
func (m *ModelManager) AddInterview(iv domain.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addInterviewLocked(iv)
}

func (m *ModelManager) addInterviewLocked(iv domain.Interview) error {
	if err := m.schedule.AddInterview(iv); err != nil {
		return err
	}
	m.interviewPredicate = PredicateShowAllInterviews
	m.refreshInterviews()
	return nil
}

// ScheduleInterview books candidate c, who must be in the roster, at start.
// Returns domain.ErrInvalidDateTime unless start is after the clock's now.
func (m *ModelManager) ScheduleInterview(c domain.Candidate, start time.Time) (domain.Interview, error) {
	iv, err := domain.NewInterview(c, start)
	if err != nil {
		return domain.Interview{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := iv.ValidateStart(m.now()); err != nil {
		return domain.Interview{}, err
	}
	if !m.addressBook.HasCandidate(c) {
		return domain.Interview{}, store.ErrCandidateNotFound
	}
	if err := m.addInterviewLocked(iv); err != nil {
		return domain.Interview{}, err
	}
	return iv, nil
}

// DeleteInterview removes the booking equal to iv.
func (m *ModelManager) DeleteInterview(iv domain.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.schedule.RemoveInterview(iv); err != nil {
		return err
	}
	m.refreshInterviews()
	return nil
}

// FilteredCandidates returns a copy of the visible candidates.
func (m *ModelManager) FilteredCandidates() []domain.Candidate {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.filteredCandidates)
}

// FilteredInterviews returns a copy of the visible interviews.
func (m *ModelManager) FilteredInterviews() []domain.Interview {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.filteredInterviews)
}

// UpdateFilteredCandidateList replaces the active candidate predicate. A nil
// predicate shows every candidate.
func (m *ModelManager) UpdateFilteredCandidateList(p CandidatePredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p == nil {
		p = PredicateShowAllCandidates
	}
	m.candidatePredicate = p
	m.refreshCandidates()
}

// UpdateFilteredInterviewList replaces the active interview predicate. A nil
// predicate shows every interview.
func (m *ModelManager) UpdateFilteredInterviewList(p InterviewPredicate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p == nil {
		p = PredicateShowAllInterviews
	}
	m.interviewPredicate = p
	m.refreshInterviews()
}

// CandidateListState reports what the filtered candidate list shows.
func (m *ModelManager) CandidateListState() ListState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listStateLocked()
}

// CandidateView returns the filtered candidates and their list state, read
// under one lock.
func (m *ModelManager) CandidateView() CandidateView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return CandidateView{
		Candidates: slices.Clone(m.filteredCandidates),
		State:      m.listStateLocked(),
	}
}

func (m *ModelManager) listStateLocked() ListState {
	switch {
	case m.addressBook.Len() == 0:
		return ListStateEmptyRoster
	case len(m.filteredCandidates) == 0:
		return ListStateNoMatches
	default:
		return ListStateShowing
	}
}

// AddressBook returns a read-only snapshot of the roster.
func (m *ModelManager) AddressBook() store.ReadOnlyAddressBook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return store.CandidateSlice(m.addressBook.Candidates())
}

// InterviewSchedule returns a read-only snapshot of the schedule.
func (m *ModelManager) InterviewSchedule() store.ReadOnlyInterviewSchedule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return store.InterviewSlice(m.schedule.Interviews())
}

// refreshCandidates recomputes the candidate projection. Callers hold mu.
func (m *ModelManager) refreshCandidates() {
	all := m.addressBook.Candidates()
	visible := make([]domain.Candidate, 0, len(all))
	for _, c := range all {
		if m.candidatePredicate(c) {
			visible = append(visible, c)
		}
	}
	m.filteredCandidates = visible
}

// refreshInterviews recomputes the interview projection. Callers hold mu.
func (m *ModelManager) refreshInterviews() {
	all := m.schedule.Interviews()
	visible := make([]domain.Interview, 0, len(all))
	for _, iv := range all {
		if m.interviewPredicate(iv) {
			visible = append(visible, iv)
		}
	}
	m.filteredInterviews = visible
}
