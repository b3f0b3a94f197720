package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/recruit-api/internal/store"
)

func TestSampleData(t *testing.T) {
	t.Parallel()

	book, err := store.SampleAddressBook()
	require.NoError(t, err)
	assert.Equal(t, "6 candidates", book.String())

	now := time.Date(2024, time.March, 4, 17, 45, 0, 0, time.UTC)
	schedule, err := store.SampleInterviewSchedule(book, now)
	require.NoError(t, err)
	require.Equal(t, 3, schedule.Len())

	for _, iv := range schedule.Interviews() {
		assert.True(t, book.HasCandidate(iv.Candidate()))
		assert.NoError(t, iv.ValidateStart(now), "sample bookings are in the future")
	}
	assert.Equal(t, "2024-03-05", schedule.Interviews()[0].Date())
	assert.Equal(t, "10:00", schedule.Interviews()[2].StartClock())
}
