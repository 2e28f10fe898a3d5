// internal/stats/stats.go
//
// The persisted statistics model and its pure update rules.
//
// Invariants (hold after every Update):
//   - GamesWon <= GamesPlayed
//   - sum(GuessDistribution) == GamesWon
//   - MaxStreak >= CurrentStreak

package stats

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/devwordle/internal/daily"
)

// Buckets is the number of guess-count buckets (one per board row).
const Buckets = 6

var ErrInvalidGuessCount = errors.New("stats: guess count must be between 1 and 6")

// GameStats is the record stored under devWordle_stats.
type GameStats struct {
	GamesPlayed       int          `json:"gamesPlayed"`
	GamesWon          int          `json:"gamesWon"`
	CurrentStreak     int          `json:"currentStreak"`
	MaxStreak         int          `json:"maxStreak"`
	GuessDistribution [Buckets]int `json:"guessDistribution"` // index i counts wins in i+1 guesses
	LastPlayed        string       `json:"lastPlayed"`        // YYYY-MM-DD, "" before the first game
}

// Default is the record for a player who has never finished a game.
func Default() GameStats { return GameStats{} }

// Update folds one finished game into s and returns the new record; s is not
// modified. today is the calendar date (YYYY-MM-DD) the game finished on.
//
// A win extends the streak when the previous game was played today or
// yesterday and starts a new streak of 1 otherwise (including when there is
// no previous date). A loss resets the streak.
func Update(s GameStats, won bool, guessCount int, today string) (GameStats, error) {
	if won && (guessCount < 1 || guessCount > Buckets) {
		return s, ErrInvalidGuessCount
	}

	next := s
	next.GamesPlayed++
	next.LastPlayed = today

	if !won {
		next.CurrentStreak = 0
		return next, nil
	}

	next.GamesWon++
	next.GuessDistribution[guessCount-1]++

	if gap, err := daily.DaysBetween(s.LastPlayed, today); err == nil && gap <= 1 {
		next.CurrentStreak++
	} else {
		next.CurrentStreak = 1
	}
	next.MaxStreak = max(next.MaxStreak, next.CurrentStreak)
	return next, nil
}

// WinPercentage is round(won/played*100), 0 when nothing was played.
func WinPercentage(s GameStats) int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) / float64(s.GamesPlayed) * 100))
}

// MostCommonGuessCount returns the 1-based guess count with the most wins.
// Ties go to the smaller count; an empty distribution yields 1.
func MostCommonGuessCount(s GameStats) int {
	best := 0
	for i := 1; i < Buckets; i++ {
		if s.GuessDistribution[i] > s.GuessDistribution[best] {
			best = i
		}
	}
	return best + 1
}

// Valid reports whether s satisfies the record invariants.
func (s GameStats) Valid() bool {
	if s.GamesPlayed < 0 || s.GamesWon < 0 || s.CurrentStreak < 0 || s.MaxStreak < 0 {
		return false
	}
	if lo.SomeBy(s.GuessDistribution[:], func(n int) bool { return n < 0 }) {
		return false
	}
	return s.GamesWon <= s.GamesPlayed &&
		lo.Sum(s.GuessDistribution[:]) == s.GamesWon &&
		s.MaxStreak >= s.CurrentStreak
}

// Summary renders the figures a stats screen shows, one per line, with a
// bar per distribution bucket scaled to the largest bucket.
func Summary(s GameStats) string {
	var b strings.Builder
	b.WriteString("Played:         " + strconv.Itoa(s.GamesPlayed) + "\n")
	b.WriteString("Win %:          " + strconv.Itoa(WinPercentage(s)) + "\n")
	b.WriteString("Current streak: " + strconv.Itoa(s.CurrentStreak) + "\n")
	b.WriteString("Max streak:     " + strconv.Itoa(s.MaxStreak) + "\n")
	b.WriteString("Guess distribution:\n")

	peak := max(lo.Max(s.GuessDistribution[:]), 1)
	for i, n := range s.GuessDistribution {
		width := 1 + n*20/peak
		b.WriteString("  " + strconv.Itoa(i+1) + " " + strings.Repeat("█", width) + " " + strconv.Itoa(n) + "\n")
	}
	return b.String()
}
