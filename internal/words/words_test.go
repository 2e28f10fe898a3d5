package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/devwordle/internal/game"
)

func TestLoadEmbedded(t *testing.T) {
	r, err := Load("", "", zerolog.Nop())
	require.NoError(t, err)

	answers, allowed := r.Stats()
	assert.Equal(t, 60, answers)
	assert.Equal(t, 112, allowed)
	assert.Len(t, r.Extras(), 52)

	assert.Equal(t, "ASYNC", r.Answers()[0])
	for _, w := range r.Answers() {
		assert.True(t, r.IsValidGuess(w), "answer %s must be a valid guess", w)
		assert.True(t, r.IsAnswer(w))
		assert.Len(t, w, Length)
	}
	for _, w := range r.Extras() {
		assert.False(t, r.IsAnswer(w), w)
		assert.True(t, r.IsValidGuess(w), w)
	}
}

func TestNew(t *testing.T) {
	r, err := New(
		[]string{"cache", " mutex ", "CACHE", "toolong", "ab1de", ""},
		[]string{"QUERY", "mutex", "xy"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"CACHE", "MUTEX"}, r.Answers())
	assert.Equal(t, []string{"CACHE", "MUTEX", "QUERY"}, r.Allowed())
	assert.Equal(t, []string{"QUERY"}, r.Extras())

	_, err = New([]string{"nope"}, nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestIsValidGuessIgnoresCase(t *testing.T) {
	r, err := New([]string{"CACHE"}, []string{"QUERY"})
	require.NoError(t, err)
	assert.True(t, r.IsValidGuess("cache"))
	assert.True(t, r.IsValidGuess("Query"))
	assert.False(t, r.IsValidGuess("ZZZZZ"))
	assert.False(t, r.IsAnswer("query"))
}

func TestDailyWordCycles(t *testing.T) {
	r, err := New([]string{"ASYNC", "AWAIT", "CACHE"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "ASYNC", r.DailyWord(0))
	assert.Equal(t, "AWAIT", r.DailyWord(1))
	assert.Equal(t, "CACHE", r.DailyWord(2))
	assert.Equal(t, "ASYNC", r.DailyWord(3))
	assert.Equal(t, "CACHE", r.DailyWord(-1))
	for d := -10; d < 50; d++ {
		assert.Equal(t, r.DailyWord(d), r.DailyWord(d+3))
	}
}

func TestRandomWordIsAnswer(t *testing.T) {
	r, err := Load("", "", zerolog.Nop())
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.True(t, r.IsAnswer(r.RandomWord()))
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	ans := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(ans, []byte("# mine\nmutex\nqueue\n\n"), 0o644))

	r, err := Load(ans, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"MUTEX", "QUEUE"}, r.Answers())
	assert.True(t, r.IsValidGuess("BYTES"), "embedded extras still apply")

	_, err = Load(filepath.Join(dir, "missing.txt"), "", zerolog.Nop())
	assert.Error(t, err)
}

func TestEveryAllowedWordScoresItselfCorrect(t *testing.T) {
	r, err := Load("", "", zerolog.Nop())
	require.NoError(t, err)
	for _, w := range r.Allowed() {
		assert.True(t, game.Score(w, w).Solved(), w)
	}
}
