package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/events"
	"github.com/phrazzld/recruit-api/internal/model"
	"github.com/phrazzld/recruit-api/internal/platform/logger"
)

// InterviewHandler handles interview-related HTTP requests.
type InterviewHandler struct {
	model    model.Model
	notifier changeNotifier
	location *time.Location
	logger   *slog.Logger
}

// NewInterviewHandler creates a new InterviewHandler. Date-times in requests
// are read in loc; a nil loc means UTC. emitter may be nil.
func NewInterviewHandler(
	m model.Model,
	emitter events.EventEmitter,
	loc *time.Location,
	logger *slog.Logger,
) *InterviewHandler {
	if m == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("model cannot be nil for InterviewHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for InterviewHandler")
	}
	if loc == nil {
		loc = time.UTC
	}

	log := logger.With(slog.String("component", "interview_handler"))
	return &InterviewHandler{
		model:    m,
		notifier: changeNotifier{emitter: emitter, logger: log},
		location: loc,
		logger:   log,
	}
}

// ListInterviews handles GET /api/interviews requests.
func (h *InterviewHandler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.interviewList())
}

// ScheduleInterview handles POST /api/interviews requests.
func (h *InterviewHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ScheduleInterviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	start, err := parseDateTime(req.DateTime, h.location)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	candidate, err := pick(h.model.FilteredCandidates(), req.CandidateIndex)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	iv, err := h.model.ScheduleInterview(candidate, start)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to schedule interview")
		return
	}

	log.Debug("interview scheduled",
		slog.String("student_id", candidate.StudentID()),
		slog.Time("start", iv.Start()))
	response := interviewToResponse(iv, 0)
	h.notifier.notify(r.Context(), events.InterviewScheduled, response)
	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// DeleteInterview handles DELETE /api/interviews/{index} requests.
func (h *InterviewHandler) DeleteInterview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	iv, err := pick(h.model.FilteredInterviews(), index)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.model.DeleteInterview(iv); err != nil {
		HandleAPIError(w, r, err, "Failed to delete interview")
		return
	}

	log.Debug("interview deleted", slog.String("student_id", iv.Candidate().StudentID()))
	response := interviewToResponse(iv, 0)
	h.notifier.notify(r.Context(), events.InterviewDeleted, response)
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// FindInterviews handles POST /api/interviews/find requests.
func (h *InterviewHandler) FindInterviews(w http.ResponseWriter, r *http.Request) {
	var req FindInterviewsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if req.isEmpty() {
		HandleAPIError(w, r, domain.NewValidationError("search", "at least one of date or keywords must be provided", domain.ErrValidation), "")
		return
	}

	var preds []model.InterviewPredicate
	if req.Date != "" {
		day, err := time.ParseInLocation(time.DateOnly, req.Date, h.location)
		if err != nil {
			HandleAPIError(w, r, domain.NewValidationError("date", "must be in the format yyyy-MM-dd", domain.ErrValidation), "")
			return
		}
		preds = append(preds, model.InterviewOn(day))
	}
	if len(req.Keywords) > 0 {
		preds = append(preds, model.InterviewCandidateMatches(model.NameContainsKeywords(req.Keywords)))
	}

	h.model.UpdateFilteredInterviewList(func(iv domain.Interview) bool {
		for _, p := range preds {
			if !p(iv) {
				return false
			}
		}
		return true
	})
	shared.RespondWithJSON(w, r, http.StatusOK, h.interviewList())
}

// ListAllInterviews handles POST /api/interviews/list requests by clearing
// the interview filter.
func (h *InterviewHandler) ListAllInterviews(w http.ResponseWriter, r *http.Request) {
	h.model.UpdateFilteredInterviewList(model.PredicateShowAllInterviews)
	shared.RespondWithJSON(w, r, http.StatusOK, h.interviewList())
}

func (h *InterviewHandler) interviewList() InterviewListResponse {
	interviews := h.model.FilteredInterviews()
	out := InterviewListResponse{Interviews: make([]InterviewResponse, 0, len(interviews))}
	for i, iv := range interviews {
		out.Interviews = append(out.Interviews, interviewToResponse(iv, i+1))
	}
	return out
}
