package daily

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/devwordle/internal/store"
)

func fixed(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestDaysSinceEpoch(t *testing.T) {
	cal, err := NewCalendar("", "")
	require.NoError(t, err)

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"epoch midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"epoch late evening", time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), 0},
		{"next day", time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC), 1},
		{"leap year end", time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), 365},
		{"before epoch", time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cal.WithClock(fixed(tc.at)).DaysSinceEpoch())
		})
	}
}

func TestCalendarUsesConfiguredZone(t *testing.T) {
	cal, err := NewCalendar("2024-01-01", "America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	// 03:00 UTC on Jan 2 is still Jan 1 in New York.
	at := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
	c := cal.WithClock(fixed(at))
	assert.Equal(t, 0, c.DaysSinceEpoch())
	assert.Equal(t, "2024-01-01", c.Today())

	// Across the March DST change the count stays whole.
	at = time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 70, cal.WithClock(fixed(at)).DaysSinceEpoch())
}

func TestNewCalendarErrors(t *testing.T) {
	_, err := NewCalendar("01/01/2024", "UTC")
	assert.Error(t, err)
	_, err = NewCalendar("2024-01-01", "Not/AZone")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	d, err := DaysBetween("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = DaysBetween("2024-03-01", "2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, -2, d)

	_, err = DaysBetween("", "2024-03-01")
	assert.Error(t, err)
}

func TestTracker(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	tr := NewTracker(s, zerolog.Nop())

	_, ok := tr.LastCompleted(ctx)
	assert.False(t, ok)
	assert.False(t, tr.AlreadyPlayed(ctx, 42))

	require.NoError(t, tr.MarkPlayed(ctx, 42))
	assert.True(t, tr.AlreadyPlayed(ctx, 42))
	assert.False(t, tr.AlreadyPlayed(ctx, 43))

	raw, err := s.Get(ctx, LastDailyKey)
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))

	require.NoError(t, s.Put(ctx, LastDailyKey, []byte(`"garbage"`)))
	assert.False(t, tr.AlreadyPlayed(ctx, 42))
}
