// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent) plus the
//     display-only states used when drawing the board.
//   - Status: lifecycle of a session (playing → won | lost).
//   - Session: state for a single in-progress or finished game.

package game

const (
	WordLength = 5 // letters per word
	MaxGuesses = 6 // rows on the board
)

// Verdict is the evaluation of a single tile.
//   - "correct": letter is in the answer at this position.
//   - "present": letter is in the answer at another, still unmatched, position.
//   - "absent":  no unmatched occurrence remains in the answer.
//   - "empty" / "current": display-only; never produced by Score and never persisted.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictPresent Verdict = "present"
	VerdictAbsent  Verdict = "absent"
	VerdictEmpty   Verdict = "empty"
	VerdictCurrent Verdict = "current"
)

// rank orders scoring verdicts as correct > present > absent.
// Display-only verdicts rank below all of them.
func (v Verdict) rank() int {
	switch v {
	case VerdictCorrect:
		return 3
	case VerdictPresent:
		return 2
	case VerdictAbsent:
		return 1
	default:
		return 0
	}
}

// Beats reports whether v should replace o in a best-of aggregation.
func (v Verdict) Beats(o Verdict) bool { return v.rank() > o.rank() }

// Row is the scored result of one guess.
type Row [WordLength]Verdict

// Solved reports whether every tile is correct.
func (r Row) Solved() bool {
	for _, v := range r {
		if v != VerdictCorrect {
			return false
		}
	}
	return true
}

// Status is the coarse state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Session holds the state of a single game.
type Session struct {
	ID      string   // random identifier, useful in logs
	Answer  string   // the solution word (uppercase)
	Guesses []string // submitted guesses, oldest first (uppercase)
	Input   string   // the row being typed, 0..WordLength letters
	Status  Status
}

// Tile is one cell of the board as a presentation layer would draw it.
type Tile struct {
	Letter  rune
	Verdict Verdict
}

// Board is the full MaxGuesses x WordLength grid.
type Board [MaxGuesses][WordLength]Tile
