package game

// Aggregate folds a guess history into the best verdict seen per letter,
// using correct > present > absent. A correct letter is never downgraded.
// Letters that were never guessed are not in the map.
func Aggregate(guesses []string, answer string) map[rune]Verdict {
	states := make(map[rune]Verdict)
	for _, g := range guesses {
		row := Score(g, answer)
		for i, ch := range g {
			if i >= WordLength {
				break
			}
			if cur, ok := states[ch]; !ok || row[i].Beats(cur) {
				states[ch] = row[i]
			}
		}
	}
	return states
}

// Keyboard returns the aggregated letter states for the session.
func (s *Session) Keyboard() map[rune]Verdict {
	return Aggregate(s.Guesses, s.Answer)
}
