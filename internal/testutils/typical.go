package testutils

import (
	"time"

	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/store"
)

// TypicalInterviewDateTime is the shared slot used by interview fixtures.
var TypicalInterviewDateTime = time.Date(2022, time.December, 23, 10, 0, 0, 0, time.UTC)

// Typical candidates. Candidates are immutable, so sharing them between
// tests is safe.
var (
	Alice  = mustCandidate("Alice Pauline", "A0000001B", "94351253", "alice@example.com", "Computer Science", "friends")
	Benson = mustCandidate("Benson Meier", "A0000002C", "98765432", "johnd@example.com", "Business Analytics", "owesMoney", "friends")
	Carl   = mustCandidate("Carl Kurz", "A0000003D", "95352563", "heinz@example.com", "Information Systems")
	Daniel = mustCandidate("Daniel Meier", "A0000004E", "87652533", "cornelia@example.com", "Computer Engineering", "friends")
	Elle   = mustCandidate("Elle Meyer", "A0000005F", "94822240", "werner@example.com", "Data Science")
	Fiona  = mustCandidate("Fiona Kunz", "A0000006G", "94824270", "lydia@example.com", "Computer Science")
	George = mustCandidate("George Best", "A0000007H", "94824420", "anna@example.com", "Mathematics")

	// Amy and Bob are not part of the typical address book.
	Amy = mustCandidate("Amy Bee", "A0123456B", "11111111", "amy@example.com", "Computer Science", "friend")
	Bob = mustCandidate("Bob Choo", "A7654321C", "22222222", "bob@example.com", "Computer Science", "husband", "friend")
)

// Typical interviews.
var (
	InterviewAlice  = mustInterview(Alice, time.Date(2022, time.December, 20, 9, 0, 0, 0, time.UTC))
	InterviewBenson = mustInterview(Benson, time.Date(2022, time.December, 21, 14, 0, 0, 0, time.UTC))
	InterviewCarl   = mustInterview(Carl, time.Date(2022, time.December, 22, 16, 30, 0, 0, time.UTC))

	InterviewAmyTypical = mustInterview(Amy, TypicalInterviewDateTime)
	InterviewBobTypical = mustInterview(Bob, TypicalInterviewDateTime)
)

// TypicalCandidates returns the candidates of the typical address book in order.
func TypicalCandidates() []domain.Candidate {
	return []domain.Candidate{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalAddressBook returns a new address book holding TypicalCandidates.
func TypicalAddressBook() *store.AddressBook {
	ab := store.NewAddressBook()
	for _, c := range TypicalCandidates() {
		if err := ab.AddCandidate(c); err != nil {
			// ALLOW-PANIC: fixture data is static
			panic(err)
		}
	}
	return ab
}

// TypicalInterviews returns the bookings of the typical schedule in order.
func TypicalInterviews() []domain.Interview {
	return []domain.Interview{InterviewAlice, InterviewBenson, InterviewAmyTypical}
}

// TypicalInterviewSchedule returns a new schedule holding TypicalInterviews.
func TypicalInterviewSchedule() *store.InterviewSchedule {
	s := store.NewInterviewSchedule()
	for _, iv := range TypicalInterviews() {
		if err := s.AddInterview(iv); err != nil {
			// ALLOW-PANIC: fixture data is static
			panic(err)
		}
	}
	return s
}

func mustCandidate(name, id, phone, email, course string, tags ...domain.Tag) domain.Candidate {
	c, err := domain.NewCandidate(domain.CandidateFields{
		Name:      name,
		StudentID: id,
		Phone:     phone,
		Email:     email,
		Course:    course,
		Tags:      tags,
	})
	if err != nil {
		// ALLOW-PANIC: fixture data is static
		panic(err)
	}
	return c
}

func mustInterview(c domain.Candidate, start time.Time) domain.Interview {
	iv, err := domain.NewInterview(c, start)
	if err != nil {
		// ALLOW-PANIC: fixture data is static
		panic(err)
	}
	return iv
}
