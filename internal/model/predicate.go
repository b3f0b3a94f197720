package model

import (
	"strings"
	"time"

	"github.com/phrazzld/recruit-api/internal/domain"
)

// CandidatePredicate selects candidates for the filtered candidate list.
type CandidatePredicate func(domain.Candidate) bool

// InterviewPredicate selects interviews for the filtered interview list.
type InterviewPredicate func(domain.Interview) bool

var (
	// PredicateShowAllCandidates selects every candidate.
	PredicateShowAllCandidates CandidatePredicate = func(domain.Candidate) bool { return true }

	// PredicateShowNoCandidates selects nothing. Prefer CandidateListState
	// for telling an empty roster apart from a filter with no matches.
	PredicateShowNoCandidates CandidatePredicate = func(domain.Candidate) bool { return false }

	// PredicateShowAllInterviews selects every interview.
	PredicateShowAllInterviews InterviewPredicate = func(domain.Interview) bool { return true }

	// PredicateShowNoInterviews selects nothing.
	PredicateShowNoInterviews InterviewPredicate = func(domain.Interview) bool { return false }
)

// NameContainsKeywords selects candidates whose name contains any of the
// keywords as a whole word, ignoring case.
func NameContainsKeywords(keywords []string) CandidatePredicate {
	return func(c domain.Candidate) bool {
		words := strings.Fields(c.Name())
		for _, keyword := range keywords {
			for _, word := range words {
				if strings.EqualFold(word, keyword) {
					return true
				}
			}
		}
		return false
	}
}

// HasTag selects candidates carrying tag.
func HasTag(tag domain.Tag) CandidatePredicate {
	return func(c domain.Candidate) bool {
		return c.HasTag(tag)
	}
}

// ApplicationStatusIs selects candidates with the given application status.
func ApplicationStatusIs(s domain.ApplicationStatus) CandidatePredicate {
	return func(c domain.Candidate) bool {
		return c.ApplicationStatus() == s
	}
}

// InterviewOn selects interviews starting on the same calendar day as day,
// in day's location.
func InterviewOn(day time.Time) InterviewPredicate {
	y, m, d := day.Date()
	return func(iv domain.Interview) bool {
		iy, im, id := iv.Start().In(day.Location()).Date()
		return iy == y && im == m && id == d
	}
}

// InterviewCandidateMatches selects interviews whose candidate satisfies p.
func InterviewCandidateMatches(p CandidatePredicate) InterviewPredicate {
	return func(iv domain.Interview) bool {
		return p(iv.Candidate())
	}
}

// AllOf selects candidates satisfying every one of preds. With no
// predicates it selects everything.
func AllOf(preds ...CandidatePredicate) CandidatePredicate {
	return func(c domain.Candidate) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}
