package testutils

import (
	"testing"
	"time"

	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// CandidateOption customises the fields used by MustCreateCandidateForTest.
type CandidateOption func(*domain.CandidateFields)

// WithCandidateName sets the candidate name.
func WithCandidateName(name string) CandidateOption {
	return func(f *domain.CandidateFields) { f.Name = name }
}

// WithCandidateStudentID sets the candidate student ID.
func WithCandidateStudentID(id string) CandidateOption {
	return func(f *domain.CandidateFields) { f.StudentID = id }
}

// WithCandidatePhone sets the candidate phone number.
func WithCandidatePhone(phone string) CandidateOption {
	return func(f *domain.CandidateFields) { f.Phone = phone }
}

// WithCandidateEmail sets the candidate email address.
func WithCandidateEmail(email string) CandidateOption {
	return func(f *domain.CandidateFields) { f.Email = email }
}

// WithCandidateCourse sets the candidate course.
func WithCandidateCourse(course string) CandidateOption {
	return func(f *domain.CandidateFields) { f.Course = course }
}

// WithCandidateApplicationStatus sets the candidate application status.
func WithCandidateApplicationStatus(s domain.ApplicationStatus) CandidateOption {
	return func(f *domain.CandidateFields) { f.ApplicationStatus = s }
}

// WithCandidateTags sets the candidate tags.
func WithCandidateTags(tags ...domain.Tag) CandidateOption {
	return func(f *domain.CandidateFields) { f.Tags = tags }
}

// DefaultCandidateFields returns the fields used when no options are given.
func DefaultCandidateFields() domain.CandidateFields {
	return domain.CandidateFields{
		Name:      "Amy Bee",
		StudentID: "A0123456B",
		Phone:     "85355255",
		Email:     "amy@example.com",
		Course:    "Computer Science",
	}
}

// MustCreateCandidateForTest builds a valid candidate for testing.
//
//	c := testutils.MustCreateCandidateForTest(t,
//	    testutils.WithCandidateName("Bob Choo"),
//	    testutils.WithCandidateStudentID("A7654321C"),
//	)
func MustCreateCandidateForTest(t *testing.T, opts ...CandidateOption) domain.Candidate {
	t.Helper()

	f := DefaultCandidateFields()
	for _, opt := range opts {
		opt(&f)
	}

	c, err := domain.NewCandidate(f)
	require.NoError(t, err, "Failed to create test candidate")
	return c
}

// MustCreateInterviewForTest books candidate c at start, failing the test
// on error.
func MustCreateInterviewForTest(t *testing.T, c domain.Candidate, start time.Time) domain.Interview {
	t.Helper()

	iv, err := domain.NewInterview(c, start)
	require.NoError(t, err, "Failed to create test interview")
	return iv
}
