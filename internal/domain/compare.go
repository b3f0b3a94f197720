package domain

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CandidateComparator orders two candidates the way slices.SortFunc expects.
type CandidateComparator func(a, b Candidate) int

// Sort keys accepted by ComparatorFor.
const (
	SortKeyName              = "name"
	SortKeyStudentID         = "student_id"
	SortKeyApplicationStatus = "application_status"
	SortKeyInterviewStatus   = "interview_status"
)

var applicationStatusRank = map[ApplicationStatus]int{
	ApplicationStatusPending:  0,
	ApplicationStatusAccepted: 1,
	ApplicationStatusRejected: 2,
}

var interviewStatusRank = map[InterviewStatus]int{
	InterviewStatusNotScheduled: 0,
	InterviewStatusScheduled:    1,
	InterviewStatusCompleted:    2,
}

// CompareByName orders candidates by name using English collation, ignoring
// case. The returned comparator owns its collator and is not safe for
// concurrent use.
func CompareByName() CandidateComparator {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(a, b Candidate) int {
		return c.CompareString(a.Name(), b.Name())
	}
}

// CompareByStudentID orders candidates by student ID, ignoring case.
func CompareByStudentID() CandidateComparator {
	return func(a, b Candidate) int {
		return cmp.Compare(strings.ToUpper(a.StudentID()), strings.ToUpper(b.StudentID()))
	}
}

// CompareByApplicationStatus orders pending, accepted, then rejected.
func CompareByApplicationStatus() CandidateComparator {
	return func(a, b Candidate) int {
		return cmp.Compare(applicationStatusRank[a.ApplicationStatus()], applicationStatusRank[b.ApplicationStatus()])
	}
}

// CompareByInterviewStatus orders not_scheduled, scheduled, then completed.
func CompareByInterviewStatus() CandidateComparator {
	return func(a, b Candidate) int {
		return cmp.Compare(interviewStatusRank[a.InterviewStatus()], interviewStatusRank[b.InterviewStatus()])
	}
}

// ComparatorFor returns the comparator registered for key.
func ComparatorFor(key string) (CandidateComparator, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortKeyName:
		return CompareByName(), nil
	case SortKeyStudentID:
		return CompareByStudentID(), nil
	case SortKeyApplicationStatus:
		return CompareByApplicationStatus(), nil
	case SortKeyInterviewStatus:
		return CompareByInterviewStatus(), nil
	default:
		return nil, NewValidationError("sort key", "must be one of name, student_id, application_status, interview_status", ErrUnknownSortKey)
	}
}
