package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/monglot/internal/testutil"
	"github.com/at-ishikawa/monglot/internal/validation"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	return NewLog(NewDBRepository(testutil.OpenTestDB(t)))
}

func TestLog_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated id and echoed fields", func(t *testing.T) {
		log := newTestLog(t)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		log.now = func() time.Time { return now }

		got, err := log.Append(ctx, "hello", "a")
		require.NoError(t, err)
		assert.Equal(t, Record{ID: 1, EN: "hello", MNW: "a", CreatedAt: now}, got)

		second, err := log.Append(ctx, "bye", "b")
		require.NoError(t, err)
		assert.Greater(t, second.ID, got.ID)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		log := newTestLog(t)
		for _, input := range [][2]string{{"", "a"}, {"hello", ""}, {"", ""}} {
			_, err := log.Append(ctx, input[0], input[1])
			assert.True(t, validation.IsValidationError(err), "input %v", input)
		}

		records, err := log.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestLog_List(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		log := newTestLog(t)
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, en := range []string{"A", "B", "C"} {
			at := base.Add(time.Duration(i) * time.Second)
			log.now = func() time.Time { return at }
			_, err := log.Append(ctx, en, "x")
			require.NoError(t, err)
		}

		records, err := log.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"C", "B", "A"}, []string{records[0].EN, records[1].EN, records[2].EN})
	})

	t.Run("same timestamp falls back to insertion order", func(t *testing.T) {
		log := newTestLog(t)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		log.now = func() time.Time { return now }
		for _, en := range []string{"A", "B", "C"} {
			_, err := log.Append(ctx, en, "x")
			require.NoError(t, err)
		}

		records, err := log.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"C", "B", "A"}, []string{records[0].EN, records[1].EN, records[2].EN})
	})
}
