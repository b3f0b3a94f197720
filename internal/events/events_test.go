package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeEvent(t *testing.T) {
	type candidatePayload struct {
		Name      string `json:"name"`
		StudentID string `json:"student_id"`
	}

	payload := candidatePayload{Name: "Alice Pauline", StudentID: "A0000001B"}

	event, err := NewChangeEvent(CandidateAdded, payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, CandidateAdded, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded candidatePayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)

	other, err := NewChangeEvent(CandidateAdded, payload)
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID, "every event gets its own ID")
}

func TestNewChangeEventUnserializablePayload(t *testing.T) {
	_, err := NewChangeEvent(CandidateAdded, make(chan int))
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *ChangeEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandlerFunc(t *testing.T) {
	var got *ChangeEvent
	expectedErr := errors.New("handler error")
	handler := EventHandlerFunc(func(_ context.Context, event *ChangeEvent) error {
		got = event
		return expectedErr
	})

	event, err := NewChangeEvent(InterviewDeleted, map[string]string{"date": "2022-12-23"})
	require.NoError(t, err)

	assert.Equal(t, expectedErr, handler.HandleEvent(context.Background(), event))
	assert.Same(t, event, got)
}
