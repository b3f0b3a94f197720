package domain

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

// Candidate validation errors
var (
	// ErrEmptyName is returned when a candidate's name is blank.
	ErrEmptyName = errors.New("candidate name cannot be empty")

	// ErrEmptyStudentID is returned when a candidate's student ID is blank.
	ErrEmptyStudentID = errors.New("candidate student ID cannot be empty")

	// ErrInvalidTag is returned when a tag label is not alphanumeric.
	ErrInvalidTag = errors.New("tag names should be alphanumeric")

	// ErrInvalidApplicationStatus is returned for an unknown application status.
	ErrInvalidApplicationStatus = errors.New("invalid application status")

	// ErrInvalidInterviewStatus is returned for an unknown interview status.
	ErrInvalidInterviewStatus = errors.New("invalid interview status")
)

// ApplicationStatus tracks where a candidate is in the hiring decision.
type ApplicationStatus string

// Possible application status values
const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// InterviewStatus tracks where a candidate is in the interview process.
type InterviewStatus string

// Possible interview status values
const (
	InterviewStatusNotScheduled InterviewStatus = "not_scheduled"
	InterviewStatusScheduled    InterviewStatus = "scheduled"
	InterviewStatusCompleted    InterviewStatus = "completed"
)

// ParseApplicationStatus converts a raw value into an ApplicationStatus.
// An empty value yields the default pending status.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "" {
		return ApplicationStatusPending, nil
	}
	if !isValidApplicationStatus(status) {
		return "", ErrInvalidApplicationStatus
	}
	return status, nil
}

// ParseInterviewStatus converts a raw value into an InterviewStatus.
// An empty value yields the default not_scheduled status.
func ParseInterviewStatus(s string) (InterviewStatus, error) {
	status := InterviewStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "" {
		return InterviewStatusNotScheduled, nil
	}
	if !isValidInterviewStatus(status) {
		return "", ErrInvalidInterviewStatus
	}
	return status, nil
}

func isValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func isValidInterviewStatus(status InterviewStatus) bool {
	switch status {
	case InterviewStatusNotScheduled, InterviewStatusScheduled, InterviewStatusCompleted:
		return true
	default:
		return false
	}
}

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a label attached to a candidate. Tags are unique by label.
type Tag string

// NewTag validates and returns a Tag.
func NewTag(label string) (Tag, error) {
	if !tagPattern.MatchString(label) {
		return "", ErrInvalidTag
	}
	return Tag(label), nil
}

// String returns the tag label.
func (t Tag) String() string {
	return string(t)
}

// CandidateFields holds the raw attributes used to construct a Candidate.
type CandidateFields struct {
	Name              string
	StudentID         string
	Phone             string
	Email             string
	Course            string
	ApplicationStatus ApplicationStatus
	InterviewStatus   InterviewStatus
	Tags              []Tag
}

// Candidate is an immutable value representing a person applying for a role.
//
// Identity is the (student ID, name) pair, compared case-insensitively; see
// IsSameCandidate. Full equality over every attribute is Equal.
type Candidate struct {
	name              string
	studentID         string
	phone             string
	email             string
	course            string
	applicationStatus ApplicationStatus
	interviewStatus   InterviewStatus
	tags              []Tag
}

// NewCandidate creates a Candidate from the given fields.
// Empty statuses default to pending / not_scheduled.
// Returns an error if validation fails. Phone and email syntax are the
// caller's responsibility.
func NewCandidate(f CandidateFields) (Candidate, error) {
	c := Candidate{
		name:              strings.TrimSpace(f.Name),
		studentID:         strings.TrimSpace(f.StudentID),
		phone:             f.Phone,
		email:             f.Email,
		course:            f.Course,
		applicationStatus: f.ApplicationStatus,
		interviewStatus:   f.InterviewStatus,
		tags:              normalizeTags(f.Tags),
	}
	if c.applicationStatus == "" {
		c.applicationStatus = ApplicationStatusPending
	}
	if c.interviewStatus == "" {
		c.interviewStatus = InterviewStatusNotScheduled
	}

	if err := c.Validate(); err != nil {
		return Candidate{}, err
	}

	return c, nil
}

// Validate checks if the Candidate has valid data.
// Returns an error if any field fails validation.
func (c Candidate) Validate() error {
	if c.name == "" {
		return ErrEmptyName
	}

	if c.studentID == "" {
		return ErrEmptyStudentID
	}

	if !isValidApplicationStatus(c.applicationStatus) {
		return ErrInvalidApplicationStatus
	}

	if !isValidInterviewStatus(c.interviewStatus) {
		return ErrInvalidInterviewStatus
	}

	for _, t := range c.tags {
		if !tagPattern.MatchString(string(t)) {
			return ErrInvalidTag
		}
	}

	return nil
}

// IsZero reports whether c is the zero Candidate, i.e. was never constructed.
func (c Candidate) IsZero() bool {
	return c.name == "" && c.studentID == ""
}

func (c Candidate) Name() string                         { return c.name }
func (c Candidate) StudentID() string                    { return c.studentID }
func (c Candidate) Phone() string                        { return c.phone }
func (c Candidate) Email() string                        { return c.email }
func (c Candidate) Course() string                       { return c.course }
func (c Candidate) ApplicationStatus() ApplicationStatus { return c.applicationStatus }
func (c Candidate) InterviewStatus() InterviewStatus     { return c.interviewStatus }

// Tags returns a copy of the candidate's tags, sorted by label.
func (c Candidate) Tags() []Tag {
	return slices.Clone(c.tags)
}

// HasTag reports whether the candidate carries the given tag.
func (c Candidate) HasTag(t Tag) bool {
	_, found := slices.BinarySearch(c.tags, t)
	return found
}

// Fields returns the candidate's attributes, suitable for building an
// edited copy with NewCandidate.
func (c Candidate) Fields() CandidateFields {
	return CandidateFields{
		Name:              c.name,
		StudentID:         c.studentID,
		Phone:             c.phone,
		Email:             c.email,
		Course:            c.course,
		ApplicationStatus: c.applicationStatus,
		InterviewStatus:   c.interviewStatus,
		Tags:              c.Tags(),
	}
}

// WithName returns a copy of c with the given name.
func (c Candidate) WithName(name string) (Candidate, error) {
	f := c.Fields()
	f.Name = name
	return NewCandidate(f)
}

// WithStudentID returns a copy of c with the given student ID.
func (c Candidate) WithStudentID(id string) (Candidate, error) {
	f := c.Fields()
	f.StudentID = id
	return NewCandidate(f)
}

// WithPhone returns a copy of c with the given phone number.
func (c Candidate) WithPhone(phone string) Candidate {
	c.tags = slices.Clone(c.tags)
	c.phone = phone
	return c
}

// WithEmail returns a copy of c with the given email address.
func (c Candidate) WithEmail(email string) Candidate {
	c.tags = slices.Clone(c.tags)
	c.email = email
	return c
}

// WithCourse returns a copy of c with the given course.
func (c Candidate) WithCourse(course string) Candidate {
	c.tags = slices.Clone(c.tags)
	c.course = course
	return c
}

// WithApplicationStatus returns a copy of c with the given application status.
func (c Candidate) WithApplicationStatus(s ApplicationStatus) (Candidate, error) {
	f := c.Fields()
	f.ApplicationStatus = s
	return NewCandidate(f)
}

// WithInterviewStatus returns a copy of c with the given interview status.
func (c Candidate) WithInterviewStatus(s InterviewStatus) (Candidate, error) {
	f := c.Fields()
	f.InterviewStatus = s
	return NewCandidate(f)
}

// WithTags returns a copy of c carrying exactly the given tags.
func (c Candidate) WithTags(tags ...Tag) (Candidate, error) {
	f := c.Fields()
	f.Tags = tags
	return NewCandidate(f)
}

// IsSameCandidate reports whether both candidates represent the same person.
// This is a weaker notion than Equal: only the identity fields are compared.
func (c Candidate) IsSameCandidate(other Candidate) bool {
	return strings.EqualFold(c.studentID, other.studentID) &&
		strings.EqualFold(c.name, other.name)
}

// Equal reports whether both candidates have the same identity and data fields.
func (c Candidate) Equal(other Candidate) bool {
	return c.name == other.name &&
		c.studentID == other.studentID &&
		c.phone == other.phone &&
		c.email == other.email &&
		c.course == other.course &&
		c.applicationStatus == other.applicationStatus &&
		c.interviewStatus == other.interviewStatus &&
		slices.Equal(c.tags, other.tags)
}

// String renders the candidate for logs and debugging.
func (c Candidate) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteString("; Student ID: ")
	b.WriteString(c.studentID)
	b.WriteString("; Phone: ")
	b.WriteString(c.phone)
	b.WriteString("; Email: ")
	b.WriteString(c.email)
	b.WriteString("; Course: ")
	b.WriteString(c.course)
	b.WriteString("; Application Status: ")
	b.WriteString(string(c.applicationStatus))
	b.WriteString("; Interview Status: ")
	b.WriteString(string(c.interviewStatus))
	if len(c.tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range c.tags {
			b.WriteString("[")
			b.WriteString(string(t))
			b.WriteString("]")
		}
	}
	return b.String()
}

// normalizeTags deduplicates and sorts tags so that sets compare by value.
func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}
