package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/domain"
	"github.com/phrazzld/recruit-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"candidate not found", store.ErrCandidateNotFound, http.StatusNotFound},
		{"wrapped interview not found", fmt.Errorf("delete: %w", store.ErrInterviewNotFound), http.StatusNotFound},
		{"index out of range", fmt.Errorf("%w: 9 of 2", ErrIndexOutOfRange), http.StatusNotFound},
		{"duplicate candidate", store.ErrDuplicateCandidate, http.StatusConflict},
		{"duplicate interview", store.NewStoreError("interview", "add", "", store.ErrDuplicateCandidateInterview), http.StatusConflict},
		{"conflicting interview", store.ErrConflictingInterview, http.StatusConflict},
		{"invalid index", ErrInvalidIndex, http.StatusBadRequest},
		{"bad body", fmt.Errorf("%w: %w", ErrBadRequestBody, shared.ErrEmptyBody), http.StatusBadRequest},
		{"past date-time", domain.ErrInvalidDateTime, http.StatusBadRequest},
		{"unknown sort key", domain.ErrUnknownSortKey, http.StatusBadRequest},
		{"invalid tag", domain.ErrInvalidTag, http.StatusBadRequest},
		{"domain validation", domain.NewValidationError("search", "empty", domain.ErrValidation), http.StatusBadRequest},
		{"request validation", validationErr(CandidateRequest{}), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"candidate not found", store.ErrCandidateNotFound, "Candidate not found"},
		{"index out of range", ErrIndexOutOfRange, "The index provided is invalid"},
		{"duplicate interview before generic duplicate", store.ErrDuplicateCandidateInterview, "This candidate already has an interview scheduled"},
		{"conflicting interview", store.ErrConflictingInterview, "This interview clashes with an existing interview"},
		{"duplicate candidate", store.ErrDuplicateCandidate, "This candidate already exists in the address book"},
		{"invalid date-time", domain.ErrInvalidDateTime, "Interview date and time must be in the future, in the format yyyy-MM-dd HH:mm"},
		{"domain validation error", domain.NewValidationError("search", "at least one criterion is required", domain.ErrValidation), "Invalid search: at least one criterion is required"},
		{"request validation uses json names", validationErr(ScheduleInterviewRequest{DateTime: "2022-12-23 10:00"}), "Invalid candidate_index: required field"},
		{"internal details are hidden", errors.New("open /var/lib/recruit/db: permission denied"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIErrorFallback(t *testing.T) {
	t.Parallel()

	t.Run("fallback replaces the generic server message", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"), "Failed to add candidate")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to add candidate"}`, rec.Body.String())
	})

	t.Run("fallback is ignored for client errors", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		HandleAPIError(rec, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrCandidateNotFound, "Failed to add candidate")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Candidate not found"}`, rec.Body.String())
	})
}

// validationErr returns the validation error for req.
func validationErr(req interface{}) error {
	return shared.ValidateRequest(req)
}
