package store

import (
	"fmt"
	"time"

	"github.com/phrazzld/recruit-api/internal/domain"
)

var sampleCandidates = []domain.CandidateFields{
	{Name: "Alex Yeoh", StudentID: "A0234567X", Phone: "87438807", Email: "alexyeoh@example.com", Course: "Computer Science", Tags: []domain.Tag{"friends"}},
	{Name: "Bernice Yu", StudentID: "A0345678Y", Phone: "99272758", Email: "berniceyu@example.com", Course: "Business Analytics", Tags: []domain.Tag{"colleagues", "friends"}},
	{Name: "Charlotte Oliveiro", StudentID: "A0456789Z", Phone: "93210283", Email: "charlotte@example.com", Course: "Information Security", Tags: []domain.Tag{"neighbours"}},
	{Name: "David Li", StudentID: "A0567890A", Phone: "91031282", Email: "lidavid@example.com", Course: "Computer Engineering", ApplicationStatus: domain.ApplicationStatusAccepted, Tags: []domain.Tag{"family"}},
	{Name: "Irfan Ibrahim", StudentID: "A0678901B", Phone: "92492021", Email: "irfan@example.com", Course: "Data Science", ApplicationStatus: domain.ApplicationStatusRejected, Tags: []domain.Tag{"classmates"}},
	{Name: "Roy Balakrishnan", StudentID: "A0789012C", Phone: "92624417", Email: "royb@example.com", Course: "Information Systems", Tags: []domain.Tag{"colleagues"}},
}

// SampleAddressBook returns an address book holding the sample roster.
func SampleAddressBook() (*AddressBook, error) {
	candidates := make([]domain.Candidate, 0, len(sampleCandidates))
	for _, f := range sampleCandidates {
		c, err := domain.NewCandidate(f)
		if err != nil {
			return nil, fmt.Errorf("sample candidate %q: %w", f.Name, err)
		}
		candidates = append(candidates, c)
	}

	ab := NewAddressBook()
	if err := ab.SetCandidates(candidates); err != nil {
		return nil, err
	}
	return ab, nil
}

// SampleInterviewSchedule books the first sample candidates back to back on
// the day after now, starting at 09:00 in now's location.
func SampleInterviewSchedule(book ReadOnlyAddressBook, now time.Time) (*InterviewSchedule, error) {
	y, m, d := now.AddDate(0, 0, 1).Date()
	start := time.Date(y, m, d, 9, 0, 0, 0, now.Location())

	s := NewInterviewSchedule()
	for i, c := range book.Candidates() {
		if i == 3 {
			break
		}
		iv, err := domain.NewInterview(c, start.Add(time.Duration(i)*domain.InterviewDuration))
		if err != nil {
			return nil, err
		}
		if err := s.AddInterview(iv); err != nil {
			return nil, fmt.Errorf("sample interview for %q: %w", c.Name(), err)
		}
	}
	return s, nil
}
