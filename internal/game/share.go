package game

import (
	"strconv"
	"strings"
)

var glyphs = map[Verdict]string{
	VerdictCorrect: "🟩",
	VerdictPresent: "🟨",
	VerdictAbsent:  "⬛",
}

// ShareText renders the spoiler-free result summary:
//
//	<title> <n|X>/6
//
//	🟩🟨⬛⬛⬛
//	...
func ShareText(title string, guesses []string, answer string, won bool) string {
	token := "X"
	if won {
		token = strconv.Itoa(len(guesses))
	}

	lines := make([]string, len(guesses))
	for i, g := range guesses {
		var b strings.Builder
		for _, v := range Score(g, answer) {
			b.WriteString(glyphs[v])
		}
		lines[i] = b.String()
	}
	return title + " " + token + "/" + strconv.Itoa(MaxGuesses) + "\n\n" + strings.Join(lines, "\n")
}

// Share renders the summary for a finished session. ok is false while the
// session is still being played.
func (s *Session) Share(title string) (text string, ok bool) {
	if !s.Status.Terminal() {
		return "", false
	}
	return ShareText(title, s.Guesses, s.Answer, s.Status == StatusWon), true
}
