package play

import (
	"errors"

	"github.com/robalobadob/devwordle/internal/game"
)

// Notice maps a rejected action to the transient message a player sees.
// It returns "" for errors that are not player-facing.
func Notice(err error) string {
	switch {
	case errors.Is(err, game.ErrNotEnoughLetters):
		return "Not enough letters"
	case errors.Is(err, game.ErrNotInWordList):
		return "Not in word list"
	case errors.Is(err, ErrDailyAlreadyPlayed):
		return "Come back tomorrow for a new daily challenge!"
	default:
		return ""
	}
}
