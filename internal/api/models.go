package api

import (
	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/model"
)

// DateTimeLayout is the wire format of interview date-times.
const DateTimeLayout = "2006-01-02 15:04"

// CandidateRequest defines the payload for adding a candidate.
type CandidateRequest struct {
	Name              string   `json:"name"                         validate:"required,max=100"`
	StudentID         string   `json:"student_id"                   validate:"required,alphanum"`
	Phone             string   `json:"phone"                        validate:"required,numeric,min=3"`
	Email             string   `json:"email"                        validate:"required,email"`
	Course            string   `json:"course"                       validate:"required"`
	ApplicationStatus string   `json:"application_status,omitempty" validate:"omitempty,oneof=pending accepted rejected"`
	InterviewStatus   string   `json:"interview_status,omitempty"   validate:"omitempty,oneof=not_scheduled scheduled completed"`
	Tags              []string `json:"tags,omitempty"               validate:"dive,alphanum"`
}

// EditCandidateRequest defines the payload for editing a candidate. Omitted
// fields keep their current value; a present tags list replaces all tags.
type EditCandidateRequest struct {
	Name              *string   `json:"name,omitempty"               validate:"omitempty,min=1,max=100"`
	StudentID         *string   `json:"student_id,omitempty"         validate:"omitempty,alphanum"`
	Phone             *string   `json:"phone,omitempty"              validate:"omitempty,numeric,min=3"`
	Email             *string   `json:"email,omitempty"              validate:"omitempty,email"`
	Course            *string   `json:"course,omitempty"             validate:"omitempty,min=1"`
	ApplicationStatus *string   `json:"application_status,omitempty" validate:"omitempty,oneof=pending accepted rejected"`
	InterviewStatus   *string   `json:"interview_status,omitempty"   validate:"omitempty,oneof=not_scheduled scheduled completed"`
	Tags              *[]string `json:"tags,omitempty"               validate:"omitempty,dive,alphanum"`
}

func (r EditCandidateRequest) isEmpty() bool {
	return r.Name == nil && r.StudentID == nil && r.Phone == nil && r.Email == nil &&
		r.Course == nil && r.ApplicationStatus == nil && r.InterviewStatus == nil && r.Tags == nil
}

// FindCandidatesRequest narrows the candidate list. Given criteria must all
// hold; keywords match any whole word of the name.
type FindCandidatesRequest struct {
	Keywords          []string `json:"keywords,omitempty"           validate:"dive,required"`
	Tag               string   `json:"tag,omitempty"                validate:"omitempty,alphanum"`
	ApplicationStatus string   `json:"application_status,omitempty" validate:"omitempty,oneof=pending accepted rejected"`
}

func (r FindCandidatesRequest) isEmpty() bool {
	return len(r.Keywords) == 0 && r.Tag == "" && r.ApplicationStatus == ""
}

// SortCandidatesRequest defines the payload for sorting the roster.
type SortCandidatesRequest struct {
	Key string `json:"key" validate:"required,oneof=name student_id application_status interview_status"`
}

// ScheduleInterviewRequest books the candidate at CandidateIndex in the
// displayed candidate list.
type ScheduleInterviewRequest struct {
	CandidateIndex int    `json:"candidate_index" validate:"required,min=1"`
	DateTime       string `json:"date_time"       validate:"required"`
}

// FindInterviewsRequest narrows the interview list.
type FindInterviewsRequest struct {
	Date     string   `json:"date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	Keywords []string `json:"keywords,omitempty" validate:"dive,required"`
}

func (r FindInterviewsRequest) isEmpty() bool {
	return r.Date == "" && len(r.Keywords) == 0
}

// CandidateResponse represents a candidate. Index is the 1-based position in
// the displayed list, or zero when the candidate is not displayed.
type CandidateResponse struct {
	Index             int      `json:"index,omitempty"`
	Name              string   `json:"name"`
	StudentID         string   `json:"student_id"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Course            string   `json:"course"`
	ApplicationStatus string   `json:"application_status"`
	InterviewStatus   string   `json:"interview_status"`
	Tags              []string `json:"tags"`
}

// CandidateListResponse is the displayed candidate list.
type CandidateListResponse struct {
	State      model.ListState     `json:"state"`
	Candidates []CandidateResponse `json:"candidates"`
}

// InterviewResponse represents an interview booking.
type InterviewResponse struct {
	Index     int    `json:"index,omitempty"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// InterviewListResponse is the displayed interview list.
type InterviewListResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
}

func candidateToResponse(c domain.Candidate, index int) CandidateResponse {
	tags := make([]string, 0, len(c.Tags()))
	for _, t := range c.Tags() {
		tags = append(tags, t.String())
	}
	return CandidateResponse{
		Index:             index,
		Name:              c.Name(),
		StudentID:         c.StudentID(),
		Phone:             c.Phone(),
		Email:             c.Email(),
		Course:            c.Course(),
		ApplicationStatus: string(c.ApplicationStatus()),
		InterviewStatus:   string(c.InterviewStatus()),
		Tags:              tags,
	}
}

func interviewToResponse(iv domain.Interview, index int) InterviewResponse {
	return InterviewResponse{
		Index:     index,
		Name:      iv.Candidate().Name(),
		StudentID: iv.Candidate().StudentID(),
		Date:      iv.Date(),
		StartTime: iv.StartClock(),
		EndTime:   iv.End().Format("15:04"),
	}
}
