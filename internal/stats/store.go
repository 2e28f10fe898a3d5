package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/devwordle/internal/store"
)

// Key is the persisted record name.
const Key = "devWordle_stats"

// Store loads and saves GameStats through a key-value store.
type Store struct {
	kv  store.Store
	log zerolog.Logger
}

func NewStore(kv store.Store, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log.With().Str("component", "stats").Logger()}
}

// wire mirrors GameStats with optional fields so a partial or mistyped
// record can be told apart from a genuine zero.
type wire struct {
	GamesPlayed       *int   `json:"gamesPlayed"`
	GamesWon          *int   `json:"gamesWon"`
	CurrentStreak     *int   `json:"currentStreak"`
	MaxStreak         *int   `json:"maxStreak"`
	GuessDistribution []int  `json:"guessDistribution"`
	LastPlayed        string `json:"lastPlayed"`
}

// Decode parses a stored record. gamesPlayed, gamesWon and a 6-entry
// guessDistribution are required; missing streaks default to 0.
func Decode(raw []byte) (GameStats, error) {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Default(), err
	}
	if w.GamesPlayed == nil || w.GamesWon == nil || w.GuessDistribution == nil {
		return Default(), errors.New("stats: missing required fields")
	}
	if len(w.GuessDistribution) != Buckets {
		return Default(), fmt.Errorf("stats: distribution has %d buckets", len(w.GuessDistribution))
	}

	s := GameStats{
		GamesPlayed: *w.GamesPlayed,
		GamesWon:    *w.GamesWon,
		LastPlayed:  w.LastPlayed,
	}
	if w.CurrentStreak != nil {
		s.CurrentStreak = *w.CurrentStreak
	}
	if w.MaxStreak != nil {
		s.MaxStreak = *w.MaxStreak
	}
	copy(s.GuessDistribution[:], w.GuessDistribution)

	if !s.Valid() {
		return Default(), errors.New("stats: record violates invariants")
	}
	return s, nil
}

// Load returns the stored record, or Default when it is absent or corrupt.
// It never fails.
func (s *Store) Load(ctx context.Context) GameStats {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn().Err(err).Msg("read stats; using defaults")
		}
		return Default()
	}
	gs, err := Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding malformed stats")
		return Default()
	}
	return gs
}

// Save writes the whole record.
func (s *Store) Save(ctx context.Context, gs GameStats) error {
	raw, err := json.Marshal(gs)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, Key, raw)
}

// Record applies one finished game to current and persists the result.
// A failed write is logged and the updated record is still returned; the
// in-memory copy stays authoritative for the rest of the process.
func (s *Store) Record(ctx context.Context, current GameStats, won bool, guessCount int, today string) (GameStats, error) {
	next, err := Update(current, won, guessCount, today)
	if err != nil {
		return current, err
	}
	if err := s.Save(ctx, next); err != nil {
		s.log.Error().Err(err).Msg("save stats")
	}
	s.log.Debug().
		Bool("won", won).
		Int("guesses", guessCount).
		Int("played", next.GamesPlayed).
		Int("streak", next.CurrentStreak).
		Msg("stats updated")
	return next, nil
}
