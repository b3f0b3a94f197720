package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		event, err := NewChangeEvent(CandidateAdded, map[string]string{"name": "Amy Bee"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event, err := NewChangeEvent(CandidateEdited, map[string]string{"name": "Amy Bee"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		successHandler := &MockEventHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		event, err := NewChangeEvent(CandidateDeleted, map[string]string{"name": "Amy Bee"})
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)

		assert.EqualError(t, err, "handler error")
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount, "later handlers still run")
		assert.Equal(t, CandidateDeleted, successHandler.LastEvent.Type)
	})
}

func TestAuditLogHandlerRedactsContactDetails(t *testing.T) {
	var buf bytes.Buffer
	handler := NewAuditLogHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	event, err := NewChangeEvent(CandidateAdded, map[string]string{
		"name":  "Amy Bee",
		"email": "amy@example.com",
		"phone": "11111111",
	})
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), event))

	out := buf.String()
	assert.Contains(t, out, `"component":"audit"`)
	assert.Contains(t, out, `"event_type":"candidate.added"`)
	assert.Contains(t, out, "Amy Bee")
	assert.NotContains(t, out, "amy@example.com")
	assert.NotContains(t, out, "11111111")
}
