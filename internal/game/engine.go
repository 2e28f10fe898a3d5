// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create sessions with a fixed answer.
//   - Apply keystrokes (add/remove letter) to the input row.
//   - Submit the input row and track playing → won/lost.
//   - Score guesses with the two-pass scratch algorithm.
//
// Notes:
//   - Word-list membership is checked by the caller before SubmitGuess; the
//     engine only knows about lengths and the answer.
//   - Every transition is synchronous and side-effect free beyond the
//     session itself. Reveal delays are the presentation layer's concern.
package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotEnoughLetters = errors.New("not enough letters")
	ErrNotInWordList    = errors.New("not in word list")
	ErrGameOver         = errors.New("game over")
)

// New constructs a fresh session for answer.
func New(answer string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Answer:  strings.ToUpper(answer),
		Guesses: []string{},
		Status:  StatusPlaying,
	}
}

// CurrentRow is the index of the row being typed; it always equals the
// number of submitted guesses.
func (s *Session) CurrentRow() int { return len(s.Guesses) }

// AddLetter appends ch to the input row.
// It is a no-op when the game is over, the row is full, or ch is not an
// ASCII letter. Lowercase letters are accepted and uppercased.
func (s *Session) AddLetter(ch rune) bool {
	if s.Status.Terminal() || len(s.Input) >= WordLength {
		return false
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return false
	}
	s.Input += string(ch)
	return true
}

// RemoveLetter drops the last letter of the input row, if any.
func (s *Session) RemoveLetter() bool {
	if s.Status.Terminal() || len(s.Input) == 0 {
		return false
	}
	s.Input = s.Input[:len(s.Input)-1]
	return true
}

// SubmitGuess moves the input row into the guess history and returns its
// score.
//
// State transitions:
//   - guess == answer           → won
//   - MaxGuesses guesses made   → lost
//   - otherwise                 → playing
//
// A terminal session returns ErrGameOver and a short input row returns
// ErrNotEnoughLetters; neither mutates the session.
func (s *Session) SubmitGuess() (Row, error) {
	if s.Status.Terminal() {
		return Row{}, ErrGameOver
	}
	if len(s.Input) != WordLength {
		return Row{}, ErrNotEnoughLetters
	}

	guess := s.Input
	row := Score(guess, s.Answer)
	s.Guesses = append(s.Guesses, guess)
	s.Input = ""

	switch {
	case guess == s.Answer:
		s.Status = StatusWon
	case len(s.Guesses) >= MaxGuesses:
		s.Status = StatusLost
	}
	return row, nil
}

// Rows scores every submitted guess, oldest first.
func (s *Session) Rows() []Row {
	out := make([]Row, len(s.Guesses))
	for i, g := range s.Guesses {
		out[i] = Score(g, s.Answer)
	}
	return out
}

// Board lays the session out as a grid: scored rows, then the input row
// (typed letters marked current) while playing, then empty rows.
func (s *Session) Board() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c].Verdict = VerdictEmpty
		}
	}
	for r, g := range s.Guesses {
		if r >= MaxGuesses {
			break
		}
		row := Score(g, s.Answer)
		for c := range WordLength {
			b[r][c] = Tile{Letter: rune(g[c]), Verdict: row[c]}
		}
	}
	if !s.Status.Terminal() && len(s.Guesses) < MaxGuesses {
		for c, ch := range s.Input {
			b[len(s.Guesses)][c] = Tile{Letter: ch, Verdict: VerdictCurrent}
		}
	}
	return b
}

// Score implements the two-pass comparison.
//
// Pass 1:
//   - Mark exact matches correct and blank that slot in a scratch copy of
//     the answer so it cannot match again.
//
// Pass 2:
//   - For each remaining guess letter, take the first unblanked occurrence
//     in the scratch copy (left to right): present, and blank it.
//     Otherwise absent.
//
// A letter is therefore never reported more times than it occurs in the
// answer. Guess and answer must both be WordLength long; any other input
// scores as all absent.
func Score(guess, answer string) Row {
	var res Row
	for i := range res {
		res[i] = VerdictAbsent
	}
	if len(guess) != WordLength || len(answer) != WordLength {
		return res
	}

	var scratch [WordLength]byte
	copy(scratch[:], answer)

	for i := range WordLength {
		if guess[i] == answer[i] {
			res[i] = VerdictCorrect
			scratch[i] = 0
		}
	}

	for i := range WordLength {
		if res[i] == VerdictCorrect {
			continue
		}
		for j := range WordLength {
			if scratch[j] != 0 && scratch[j] == guess[i] {
				res[i] = VerdictPresent
				scratch[j] = 0
				break
			}
		}
	}
	return res
}
