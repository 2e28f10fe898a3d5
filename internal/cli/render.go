package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/devwordle/internal/game"
)

var glyph = map[game.Verdict]string{
	game.VerdictCorrect: "🟩",
	game.VerdictPresent: "🟨",
	game.VerdictAbsent:  "⬛",
	game.VerdictEmpty:   "⬜",
	game.VerdictCurrent: "⬜",
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// renderBoard prints every row as its letters followed by its tiles.
func renderBoard(w io.Writer, b game.Board) {
	for _, row := range b {
		var letters, tiles strings.Builder
		for _, t := range row {
			if t.Letter == 0 {
				letters.WriteString("_ ")
			} else {
				letters.WriteRune(t.Letter)
				letters.WriteByte(' ')
			}
			tiles.WriteString(glyph[t.Verdict])
		}
		fmt.Fprintf(w, "  %s  %s\n", letters.String(), tiles.String())
	}
}

// renderKeyboard marks keys as [C]orrect, (P)resent, or · for absent.
func renderKeyboard(w io.Writer, states map[rune]game.Verdict) {
	for i, row := range keyboardRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i*2))
		for _, k := range row {
			switch states[k] {
			case game.VerdictCorrect:
				fmt.Fprintf(&b, "[%c]", k)
			case game.VerdictPresent:
				fmt.Fprintf(&b, "(%c)", k)
			case game.VerdictAbsent:
				b.WriteString(" · ")
			default:
				fmt.Fprintf(&b, " %c ", k)
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

func renderRow(w io.Writer, guess string, row game.Row) {
	var tiles strings.Builder
	names := make([]string, len(row))
	for i, v := range row {
		tiles.WriteString(glyph[v])
		names[i] = string(v)
	}
	fmt.Fprintf(w, "%s %s\n%s\n", guess, tiles.String(), strings.Join(names, " "))
}

const helpText = `How to play:
  Guess the 5-letter programming term in 6 tries.
  Type a word and press enter to submit it.
  🟩 right letter, right spot
  🟨 in the word, wrong spot
  ⬛ not in the word (or no unmatched copy left)

Commands:
  :new       start another game in the current mode
  :daily     switch to today's daily challenge
  :practice  switch to practice with a random word
  :stats     show statistics
  :share     print the result grid of a finished game
  :help      show this text
  :quit      leave
`
