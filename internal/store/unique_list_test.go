package store_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/recruit-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	key   string
	value int
}

func sameKey(a, b entry) bool {
	return strings.EqualFold(a.key, b.key)
}

func newList(t *testing.T, entries ...entry) *store.UniqueList[entry] {
	t.Helper()
	l := store.NewUniqueList[entry](sameKey)
	for _, e := range entries {
		require.NoError(t, l.Add(e))
	}
	return l
}

func TestUniqueListAdd(t *testing.T) {
	t.Parallel()

	l := newList(t, entry{"a", 1})

	err := l.Add(entry{"A", 2})
	assert.ErrorIs(t, err, store.ErrDuplicateItem)
	assert.True(t, store.IsDuplicateError(err))
	assert.Equal(t, []entry{{"a", 1}}, l.Items(), "failed add must not change the list")

	require.NoError(t, l.Add(entry{"b", 2}))
	assert.Equal(t, []entry{{"a", 1}, {"b", 2}}, l.Items(), "add appends at the end")
}

func TestUniqueListAddTwiceIsIdempotentFailure(t *testing.T) {
	t.Parallel()

	l := newList(t)
	require.NoError(t, l.Add(entry{"x", 1}))
	after := l.Items()

	assert.ErrorIs(t, l.Add(entry{"x", 1}), store.ErrDuplicateItem)
	assert.Equal(t, after, l.Items())
}

func TestUniqueListContainsUsesIdentity(t *testing.T) {
	t.Parallel()

	l := newList(t, entry{"a", 1})

	assert.True(t, l.Contains(entry{"A", 99}), "identity match ignores non-identity fields")
	assert.False(t, l.Contains(entry{"b", 1}))
	assert.Equal(t, 0, l.IndexOf(entry{"a", 0}))
	assert.Equal(t, -1, l.IndexOf(entry{"z", 0}))
}

func TestUniqueListSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      entry
		replacement entry
		wantErr     error
		want        []entry
	}{
		{
			name:        "replaces in place",
			target:      entry{"b", 0},
			replacement: entry{"b", 20},
			want:        []entry{{"a", 1}, {"b", 20}, {"c", 3}},
		},
		{
			name:        "replacement with new identity keeps position",
			target:      entry{"b", 0},
			replacement: entry{"d", 4},
			want:        []entry{{"a", 1}, {"d", 4}, {"c", 3}},
		},
		{
			name:        "target missing",
			target:      entry{"z", 0},
			replacement: entry{"y", 0},
			wantErr:     store.ErrItemNotFound,
			want:        []entry{{"a", 1}, {"b", 2}, {"c", 3}},
		},
		{
			name:        "replacement duplicates another element",
			target:      entry{"b", 0},
			replacement: entry{"c", 30},
			wantErr:     store.ErrDuplicateItem,
			want:        []entry{{"a", 1}, {"b", 2}, {"c", 3}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newList(t, entry{"a", 1}, entry{"b", 2}, entry{"c", 3})

			checkErr := l.CanSet(tc.target, tc.replacement)
			assert.Equal(t, []entry{{"a", 1}, {"b", 2}, {"c", 3}}, l.Items(), "CanSet leaves the list alone")

			err := l.Set(tc.target, tc.replacement)
			assert.Equal(t, err, checkErr)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, l.Items())
		})
	}
}

func TestUniqueListRemove(t *testing.T) {
	t.Parallel()

	l := newList(t, entry{"a", 1}, entry{"b", 2}, entry{"c", 3})

	require.NoError(t, l.Remove(entry{"B", 0}))
	assert.Equal(t, []entry{{"a", 1}, {"c", 3}}, l.Items())

	err := l.Remove(entry{"b", 2})
	assert.ErrorIs(t, err, store.ErrItemNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUniqueListSetAll(t *testing.T) {
	t.Parallel()

	l := newList(t, entry{"a", 1})

	err := l.SetAll([]entry{{"x", 1}, {"y", 2}, {"X", 3}})
	assert.ErrorIs(t, err, store.ErrDuplicateItems)
	assert.Equal(t, []entry{{"a", 1}}, l.Items(), "rejected bulk replace must not mutate")

	input := []entry{{"x", 1}, {"y", 2}}
	require.NoError(t, l.SetAll(input))
	input[0] = entry{"mutated", 0}
	assert.Equal(t, []entry{{"x", 1}, {"y", 2}}, l.Items(), "list must not alias the input slice")
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, entry{"y", 2}, l.At(1))
}

func TestUniqueListItemsIsACopy(t *testing.T) {
	t.Parallel()

	l := newList(t, entry{"a", 1})
	items := l.Items()
	items[0] = entry{"b", 2}

	assert.Equal(t, []entry{{"a", 1}}, l.Items())
}
