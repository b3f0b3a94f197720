package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/events"
	"github.com/phrazzld/recruit-api/internal/model"
	"github.com/phrazzld/recruit-api/internal/platform/logger"
)

// CandidateHandler handles candidate-related HTTP requests. Indexes in paths
// refer to the candidate list as currently displayed, i.e. after filtering.
type CandidateHandler struct {
	model    model.Model
	notifier changeNotifier
	logger   *slog.Logger
}

// NewCandidateHandler creates a new CandidateHandler. emitter may be nil.
func NewCandidateHandler(m model.Model, emitter events.EventEmitter, logger *slog.Logger) *CandidateHandler {
	if m == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("model cannot be nil for CandidateHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CandidateHandler")
	}

	log := logger.With(slog.String("component", "candidate_handler"))
	return &CandidateHandler{
		model:    m,
		notifier: changeNotifier{emitter: emitter, logger: log},
		logger:   log,
	}
}

// ListCandidates handles GET /api/candidates requests.
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.candidateList())
}

// AddCandidate handles POST /api/candidates requests.
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CandidateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	candidate, err := candidateFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.model.AddCandidate(candidate); err != nil {
		HandleAPIError(w, r, err, "Failed to add candidate")
		return
	}

	log.Debug("candidate added", slog.String("student_id", candidate.StudentID()))
	response := candidateToResponse(candidate, 0)
	h.notifier.notify(r.Context(), events.CandidateAdded, response)
	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// EditCandidate handles PUT /api/candidates/{index} requests.
// If the candidate has an interview it is re-booked for the edited candidate.
func (h *CandidateHandler) EditCandidate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	target, ok := h.candidateAt(w, r)
	if !ok {
		return
	}

	var req EditCandidateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if req.isEmpty() {
		HandleAPIError(w, r, domain.NewValidationError("candidate", "at least one field to edit must be provided", domain.ErrValidation), "")
		return
	}

	edited, err := applyEdit(target, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.model.SetCandidate(target, edited); err != nil {
		HandleAPIError(w, r, err, "Failed to edit candidate")
		return
	}

	log.Debug("candidate edited", slog.String("student_id", edited.StudentID()))
	response := candidateToResponse(edited, 0)
	h.notifier.notify(r.Context(), events.CandidateEdited, response)
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// DeleteCandidate handles DELETE /api/candidates/{index} requests.
// The candidate's interview, if any, is cancelled too.
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	target, ok := h.candidateAt(w, r)
	if !ok {
		return
	}

	if err := h.model.DeleteCandidate(target); err != nil {
		HandleAPIError(w, r, err, "Failed to delete candidate")
		return
	}

	log.Debug("candidate deleted", slog.String("student_id", target.StudentID()))
	response := candidateToResponse(target, 0)
	h.notifier.notify(r.Context(), events.CandidateDeleted, response)
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// FindCandidates handles POST /api/candidates/find requests.
func (h *CandidateHandler) FindCandidates(w http.ResponseWriter, r *http.Request) {
	var req FindCandidatesRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if req.isEmpty() {
		HandleAPIError(w, r, domain.NewValidationError("search", "at least one of keywords, tag or application_status must be provided", domain.ErrValidation), "")
		return
	}

	predicate, err := candidatePredicateFor(req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.model.UpdateFilteredCandidateList(predicate)
	shared.RespondWithJSON(w, r, http.StatusOK, h.candidateList())
}

// ListAllCandidates handles POST /api/candidates/list requests by clearing
// the candidate filter.
func (h *CandidateHandler) ListAllCandidates(w http.ResponseWriter, r *http.Request) {
	h.model.UpdateFilteredCandidateList(model.PredicateShowAllCandidates)
	shared.RespondWithJSON(w, r, http.StatusOK, h.candidateList())
}

// SortCandidates handles POST /api/candidates/sort requests.
func (h *CandidateHandler) SortCandidates(w http.ResponseWriter, r *http.Request) {
	var req SortCandidatesRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cmp, err := domain.ComparatorFor(req.Key)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.model.SortCandidates(cmp); err != nil {
		HandleAPIError(w, r, err, "Failed to sort candidates")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.candidateList())
}

// candidateAt resolves the {index} path parameter against the displayed list.
// It writes an error response and returns false on failure.
func (h *CandidateHandler) candidateAt(w http.ResponseWriter, r *http.Request) (domain.Candidate, bool) {
	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return domain.Candidate{}, false
	}

	c, err := pick(h.model.FilteredCandidates(), index)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return domain.Candidate{}, false
	}
	return c, true
}

func (h *CandidateHandler) candidateList() CandidateListResponse {
	view := h.model.CandidateView()
	out := CandidateListResponse{
		State:      view.State,
		Candidates: make([]CandidateResponse, 0, len(view.Candidates)),
	}
	for i, c := range view.Candidates {
		out.Candidates = append(out.Candidates, candidateToResponse(c, i+1))
	}
	return out
}

func candidateFromRequest(req CandidateRequest) (domain.Candidate, error) {
	appStatus, err := domain.ParseApplicationStatus(req.ApplicationStatus)
	if err != nil {
		return domain.Candidate{}, err
	}
	ivStatus, err := domain.ParseInterviewStatus(req.InterviewStatus)
	if err != nil {
		return domain.Candidate{}, err
	}
	tags, err := parseTags(req.Tags)
	if err != nil {
		return domain.Candidate{}, err
	}

	return domain.NewCandidate(domain.CandidateFields{
		Name:              req.Name,
		StudentID:         req.StudentID,
		Phone:             req.Phone,
		Email:             req.Email,
		Course:            req.Course,
		ApplicationStatus: appStatus,
		InterviewStatus:   ivStatus,
		Tags:              tags,
	})
}

func applyEdit(target domain.Candidate, req EditCandidateRequest) (domain.Candidate, error) {
	f := target.Fields()
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.StudentID != nil {
		f.StudentID = *req.StudentID
	}
	if req.Phone != nil {
		f.Phone = *req.Phone
	}
	if req.Email != nil {
		f.Email = *req.Email
	}
	if req.Course != nil {
		f.Course = *req.Course
	}
	if req.ApplicationStatus != nil {
		s, err := domain.ParseApplicationStatus(*req.ApplicationStatus)
		if err != nil {
			return domain.Candidate{}, err
		}
		f.ApplicationStatus = s
	}
	if req.InterviewStatus != nil {
		s, err := domain.ParseInterviewStatus(*req.InterviewStatus)
		if err != nil {
			return domain.Candidate{}, err
		}
		f.InterviewStatus = s
	}
	if req.Tags != nil {
		tags, err := parseTags(*req.Tags)
		if err != nil {
			return domain.Candidate{}, err
		}
		f.Tags = tags
	}
	return domain.NewCandidate(f)
}

func candidatePredicateFor(req FindCandidatesRequest) (model.CandidatePredicate, error) {
	var preds []model.CandidatePredicate
	if len(req.Keywords) > 0 {
		preds = append(preds, model.NameContainsKeywords(req.Keywords))
	}
	if req.Tag != "" {
		tag, err := domain.NewTag(req.Tag)
		if err != nil {
			return nil, err
		}
		preds = append(preds, model.HasTag(tag))
	}
	if req.ApplicationStatus != "" {
		s, err := domain.ParseApplicationStatus(req.ApplicationStatus)
		if err != nil {
			return nil, err
		}
		preds = append(preds, model.ApplicationStatusIs(s))
	}

	return model.AllOf(preds...), nil
}
