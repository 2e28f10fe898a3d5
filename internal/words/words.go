// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the answer pool and the extra accepted guesses from files or fall
//     back to the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers ∪ extras).
//   - Pick practice words at random and daily words by day index.
//
// Word Lists:
//   - "answers": candidate solutions; order matters, it drives the daily cycle.
//   - "allowed": every accepted guess; always a superset of answers.
//
// Constraints:
//   • Words must be 5 ASCII letters; other entries are dropped on load.
//   • Lists are normalized to uppercase and de-duplicated (first wins).
//   • A Repository is immutable after construction and safe for concurrent use.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/robalobadob/devwordle/assets"
)

// Length is the number of letters in every word.
const Length = 5

var ErrNoAnswers = errors.New("words: answers list is empty")

// Repository is the loaded word universe.
type Repository struct {
	answers    []string
	allowed    []string            // answers first, then extras
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ extras
}

// New builds a repository from an answer pool and extra guesses.
// Entries are uppercased; anything that is not 5 letters is skipped.
func New(answers, extras []string) (*Repository, error) {
	ans := lo.Uniq(normalize(answers))
	if len(ans) == 0 {
		return nil, ErrNoAnswers
	}
	all := lo.Uniq(append(append([]string{}, ans...), normalize(extras)...))
	return &Repository{
		answers:    ans,
		allowed:    all,
		answersSet: toSet(ans),
		allowedSet: toSet(all),
	}, nil
}

// Load reads the lists from answersPath and allowedPath. An empty path
// selects the embedded default for that list.
func Load(answersPath, allowedPath string, log zerolog.Logger) (*Repository, error) {
	ans, err := readList(answersPath, assets.AnswersList)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	ext, err := readList(allowedPath, assets.AllowedList)
	if err != nil {
		return nil, fmt.Errorf("load allowed: %w", err)
	}
	r, err := New(ans, ext)
	if err != nil {
		return nil, err
	}
	a, g := r.Stats()
	log.Debug().
		Str("answers_file", answersPath).
		Str("allowed_file", allowedPath).
		Int("answers", a).
		Int("allowed", g).
		Msg("word lists loaded")
	return r, nil
}

func readList(path string, fallback func() ([]string, error)) ([]string, error) {
	if path == "" {
		return fallback()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalize uppercases and trims every entry and keeps valid words only.
func normalize(list []string) []string {
	return lo.FilterMap(list, func(s string, _ int) (string, bool) {
		w := strings.ToUpper(strings.TrimSpace(s))
		return w, isWord(w)
	})
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isWord reports whether s is exactly Length uppercase ASCII letters.
func isWord(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Answers returns a copy of the answer pool in daily-cycle order.
func (r *Repository) Answers() []string { return append([]string(nil), r.answers...) }

// Allowed returns a copy of every accepted guess.
func (r *Repository) Allowed() []string { return append([]string(nil), r.allowed...) }

// Extras returns the accepted guesses that can never be an answer.
func (r *Repository) Extras() []string { return lo.Without(r.allowed, r.answers...) }

// IsValidGuess reports whether w is an accepted guess, ignoring case.
func (r *Repository) IsValidGuess(w string) bool {
	_, ok := r.allowedSet[strings.ToUpper(w)]
	return ok
}

// IsAnswer reports whether w is in the answer pool, ignoring case.
func (r *Repository) IsAnswer(w string) bool {
	_, ok := r.answersSet[strings.ToUpper(w)]
	return ok
}

// RandomWord returns a uniformly random answer. Used for practice games.
func (r *Repository) RandomWord() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(r.answers))))
	if err != nil {
		return r.answers[0]
	}
	return r.answers[n.Int64()]
}

// DailyWord returns the answer for a day index. The pool cycles with period
// len(Answers()); negative days wrap around.
func (r *Repository) DailyWord(day int) string {
	n := len(r.answers)
	return r.answers[((day%n)+n)%n]
}

// Stats returns counts of loaded words: (answers, allowed).
func (r *Repository) Stats() (answersCount int, allowedCount int) {
	return len(r.answers), len(r.allowed)
}
