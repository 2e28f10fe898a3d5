package daily

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/robalobadob/devwordle/internal/store"
)

// LastDailyKey holds the day index of the last completed daily game.
const LastDailyKey = "devWordle_lastDaily"

// Tracker remembers whether the daily challenge of a given day was finished.
type Tracker struct {
	store store.Store
	log   zerolog.Logger
}

func NewTracker(s store.Store, log zerolog.Logger) *Tracker {
	return &Tracker{store: s, log: log.With().Str("component", "daily").Logger()}
}

// LastCompleted returns the stored day index. ok is false when nothing was
// stored or the record cannot be read.
func (t *Tracker) LastCompleted(ctx context.Context) (day int, ok bool) {
	raw, err := t.store.Get(ctx, LastDailyKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			t.log.Warn().Err(err).Msg("read last daily")
		}
		return 0, false
	}
	day, err = strconv.Atoi(string(raw))
	if err != nil {
		t.log.Warn().Err(err).Str("value", string(raw)).Msg("malformed last daily")
		return 0, false
	}
	return day, true
}

// AlreadyPlayed reports whether the daily for day has been completed.
func (t *Tracker) AlreadyPlayed(ctx context.Context, day int) bool {
	last, ok := t.LastCompleted(ctx)
	return ok && last == day
}

// MarkPlayed records day as completed. The value is a bare JSON integer.
func (t *Tracker) MarkPlayed(ctx context.Context, day int) error {
	return t.store.Put(ctx, LastDailyKey, []byte(strconv.Itoa(day)))
}
