package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/recruit-api/internal/events"
	"github.com/phrazzld/recruit-api/internal/model"
	"github.com/phrazzld/recruit-api/internal/platform/logger"
	"github.com/phrazzld/recruit-api/internal/testutils"
)

func TestNewInterviewHandlerDefaultsToUTC(t *testing.T) {
	t.Parallel()

	l, _ := logger.NewTestLogger(t)
	h := NewInterviewHandler(model.NewEmptyModelManager(), nil, nil, l)
	assert.Equal(t, time.UTC, h.location)
	assert.Panics(t, func() { NewInterviewHandler(nil, nil, nil, l) })
}

func TestScheduleInterview(t *testing.T) {
	t.Parallel()

	// Typical schedule: Alice 2022-12-20 09:00, Benson 2022-12-21 14:00,
	// Amy 2022-12-23 10:00. Carl is the third candidate and unbooked.
	tests := []struct {
		name            string
		body            interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "free slot",
			body:           ScheduleInterviewRequest{CandidateIndex: 3, DateTime: "2022-12-23 10:30"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "candidate already booked",
			body:            ScheduleInterviewRequest{CandidateIndex: 1, DateTime: "2022-12-24 10:00"},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "This candidate already has an interview scheduled",
		},
		{
			name:            "overlaps another booking",
			body:            ScheduleInterviewRequest{CandidateIndex: 3, DateTime: "2022-12-23 09:45"},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "This interview clashes with an existing interview",
		},
		{
			name:            "in the past",
			body:            ScheduleInterviewRequest{CandidateIndex: 3, DateTime: "2022-11-30 10:00"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Interview date and time must be in the future, in the format yyyy-MM-dd HH:mm",
		},
		{
			name:            "at the current instant",
			body:            ScheduleInterviewRequest{CandidateIndex: 3, DateTime: "2022-12-01 08:00"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Interview date and time must be in the future, in the format yyyy-MM-dd HH:mm",
		},
		{
			name:            "malformed date-time",
			body:            ScheduleInterviewRequest{CandidateIndex: 3, DateTime: "2022-12-23T10:30"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Interview date and time must be in the future, in the format yyyy-MM-dd HH:mm",
		},
		{
			name:            "index beyond displayed list",
			body:            ScheduleInterviewRequest{CandidateIndex: 8, DateTime: "2022-12-23 12:00"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "The index provided is invalid",
		},
		{
			name:            "missing index",
			body:            ScheduleInterviewRequest{DateTime: "2022-12-23 12:00"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid candidate_index: required field",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			rec := env.serve(t, http.MethodPost, "/interviews", tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, errorMessage(t, rec))
				assert.Len(t, env.model.InterviewSchedule().Interviews(), len(testutils.TypicalInterviews()))
				return
			}

			resp := decodeBody[InterviewResponse](t, rec)
			assert.Equal(t, "Carl Kurz", resp.Name)
			assert.Equal(t, "2022-12-23", resp.Date)
			assert.Equal(t, "10:30", resp.StartTime)
			assert.Equal(t, "11:00", resp.EndTime)
			assert.Equal(t, []string{events.InterviewScheduled}, env.events.Types())
		})
	}
}

func TestScheduleInterviewUsesFilteredCandidates(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.model.UpdateFilteredCandidateList(model.NameContainsKeywords([]string{"George"}))

	rec := env.serve(t, http.MethodPost, "/interviews", ScheduleInterviewRequest{CandidateIndex: 1, DateTime: "2022-12-30 15:00"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "George Best", decodeBody[InterviewResponse](t, rec).Name)
}

func TestDeleteInterview(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodDelete, "/interviews/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Benson Meier", decodeBody[InterviewResponse](t, rec).Name)
	assert.False(t, env.model.HasInterview(testutils.InterviewBenson))
	assert.True(t, env.model.HasCandidate(testutils.Benson), "cancelling keeps the candidate")
	assert.Equal(t, []string{events.InterviewDeleted}, env.events.Types())

	rec = env.serve(t, http.MethodDelete, "/interviews/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.serve(t, http.MethodDelete, "/interviews/-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Index must be a positive integer", errorMessage(t, rec))
}

func TestFindInterviews(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedNames  []string
	}{
		{"by date", FindInterviewsRequest{Date: "2022-12-21"}, http.StatusOK, []string{"Benson Meier"}},
		{"by candidate name", FindInterviewsRequest{Keywords: []string{"amy"}}, http.StatusOK, []string{"Amy Bee"}},
		{"date and name must both match", FindInterviewsRequest{Date: "2022-12-21", Keywords: []string{"amy"}}, http.StatusOK, []string{}},
		{"bad date", FindInterviewsRequest{Date: "21/12/2022"}, http.StatusBadRequest, nil},
		{"no criteria", FindInterviewsRequest{}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			rec := env.serve(t, http.MethodPost, "/interviews/find", tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			names := []string{}
			for _, iv := range decodeBody[InterviewListResponse](t, rec).Interviews {
				names = append(names, iv.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestListAllInterviewsClearsFilter(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodPost, "/interviews/find", FindInterviewsRequest{Date: "2022-12-20"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[InterviewListResponse](t, rec).Interviews, 1)

	// Index 1 now addresses the filtered list, so Alice is deleted.
	rec = env.serve(t, http.MethodDelete, "/interviews/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice Pauline", decodeBody[InterviewResponse](t, rec).Name)

	rec = env.serve(t, http.MethodPost, "/interviews/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	interviews := decodeBody[InterviewListResponse](t, rec).Interviews
	require.Len(t, interviews, 2)
	for i, iv := range interviews {
		assert.Equal(t, i+1, iv.Index)
	}
}
