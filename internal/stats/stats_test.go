package stats

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/devwordle/internal/store"
)

func TestUpdateFirstWin(t *testing.T) {
	got, err := Update(Default(), true, 3, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, GameStats{
		GamesPlayed:       1,
		GamesWon:          1,
		CurrentStreak:     1,
		MaxStreak:         1,
		GuessDistribution: [Buckets]int{0, 0, 1, 0, 0, 0},
		LastPlayed:        "2024-05-01",
	}, got)
}

func TestUpdateStreaks(t *testing.T) {
	base := GameStats{
		GamesPlayed:       4,
		GamesWon:          3,
		CurrentStreak:     2,
		MaxStreak:         3,
		GuessDistribution: [Buckets]int{0, 1, 1, 1, 0, 0},
		LastPlayed:        "2024-05-10",
	}

	cases := []struct {
		name       string
		today      string
		won        bool
		wantStreak int
		wantMax    int
	}{
		{"same day win extends", "2024-05-10", true, 3, 3},
		{"next day win extends", "2024-05-11", true, 3, 3},
		{"gap resets to one", "2024-05-13", true, 1, 3},
		{"loss resets to zero", "2024-05-11", false, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Update(base, tc.won, 4, tc.today)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStreak, got.CurrentStreak)
			assert.Equal(t, tc.wantMax, got.MaxStreak)
			assert.Equal(t, tc.today, got.LastPlayed)
			assert.True(t, got.Valid())
		})
	}

	t.Run("new max", func(t *testing.T) {
		s := base
		s.CurrentStreak = 3
		got, err := Update(s, true, 1, "2024-05-11")
		require.NoError(t, err)
		assert.Equal(t, 4, got.CurrentStreak)
		assert.Equal(t, 4, got.MaxStreak)
	})

	t.Run("input not mutated", func(t *testing.T) {
		before := base
		_, err := Update(base, true, 2, "2024-05-11")
		require.NoError(t, err)
		assert.Equal(t, before, base)
	})
}

func TestUpdateLossLeavesDistribution(t *testing.T) {
	s := GameStats{GamesPlayed: 2, GamesWon: 2, CurrentStreak: 2, MaxStreak: 2,
		GuessDistribution: [Buckets]int{1, 1}, LastPlayed: "2024-01-01"}
	got, err := Update(s, false, 6, "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 2, got.MaxStreak)
	assert.Equal(t, s.GuessDistribution, got.GuessDistribution)
	assert.Equal(t, 3, got.GamesPlayed)
	assert.Equal(t, 2, got.GamesWon)
}

func TestUpdateRejectsBadGuessCount(t *testing.T) {
	for _, n := range []int{0, 7, -1} {
		got, err := Update(Default(), true, n, "2024-01-01")
		assert.ErrorIs(t, err, ErrInvalidGuessCount)
		assert.Equal(t, Default(), got)
	}
}

func TestUpdateInvariantsHoldOverRandomHistory(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	s := Default()
	days := []string{"2024-01-01", "2024-01-02", "2024-01-02", "2024-01-05", "2024-01-06"}
	for i := 0; i < 500; i++ {
		won := r.IntN(3) > 0
		var err error
		s, err = Update(s, won, 1+r.IntN(Buckets), days[r.IntN(len(days))])
		require.NoError(t, err)
		require.True(t, s.Valid(), "step %d: %+v", i, s)
	}
}

func TestWinPercentage(t *testing.T) {
	assert.Equal(t, 0, WinPercentage(Default()))
	assert.Equal(t, 67, WinPercentage(GameStats{GamesPlayed: 3, GamesWon: 2}))
	assert.Equal(t, 100, WinPercentage(GameStats{GamesPlayed: 1, GamesWon: 1}))
	assert.Equal(t, 33, WinPercentage(GameStats{GamesPlayed: 3, GamesWon: 1}))
}

func TestMostCommonGuessCount(t *testing.T) {
	assert.Equal(t, 1, MostCommonGuessCount(Default()))
	assert.Equal(t, 4, MostCommonGuessCount(GameStats{GuessDistribution: [Buckets]int{1, 0, 2, 5, 5, 0}}))
	assert.Equal(t, 6, MostCommonGuessCount(GameStats{GuessDistribution: [Buckets]int{0, 0, 0, 0, 0, 1}}))
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"complete", `{"gamesPlayed":2,"gamesWon":1,"currentStreak":1,"maxStreak":1,"guessDistribution":[0,1,0,0,0,0],"lastPlayed":"2024-01-01"}`, true},
		{"streaks missing", `{"gamesPlayed":1,"gamesWon":0,"guessDistribution":[0,0,0,0,0,0]}`, true},
		{"not json", `{{`, false},
		{"played missing", `{"gamesWon":0,"guessDistribution":[0,0,0,0,0,0]}`, false},
		{"wrong type", `{"gamesPlayed":"1","gamesWon":0,"guessDistribution":[0,0,0,0,0,0]}`, false},
		{"short distribution", `{"gamesPlayed":0,"gamesWon":0,"guessDistribution":[0,0]}`, false},
		{"sum mismatch", `{"gamesPlayed":3,"gamesWon":2,"guessDistribution":[0,0,0,0,0,0]}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.raw))
			if tc.ok {
				require.NoError(t, err)
				assert.True(t, got.Valid())
			} else {
				assert.Error(t, err)
				assert.Equal(t, Default(), got)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	out := Summary(GameStats{GamesPlayed: 4, GamesWon: 3, CurrentStreak: 2, MaxStreak: 3,
		GuessDistribution: [Buckets]int{0, 1, 2, 0, 0, 0}})
	assert.Contains(t, out, "Played:         4")
	assert.Contains(t, out, "Win %:          75")
	assert.Contains(t, out, "  3 "+strings.Repeat("█", 21)+" 2")
	assert.Contains(t, out, "  1 █ 0")
}

type failingStore struct{ store.Store }

func (failingStore) Put(context.Context, string, []byte) error { return errors.New("disk full") }

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := NewStore(kv, zerolog.Nop())

	assert.Equal(t, Default(), s.Load(ctx))

	got, err := s.Record(ctx, s.Load(ctx), true, 3, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, got, s.Load(ctx))

	require.NoError(t, kv.Put(ctx, Key, []byte(`"corrupt"`)))
	assert.Equal(t, Default(), s.Load(ctx))
}

func TestStoreRecordSwallowsWriteFailure(t *testing.T) {
	ctx := context.Background()
	s := NewStore(failingStore{store.NewMemoryStore()}, zerolog.Nop())

	got, err := s.Record(ctx, Default(), false, 6, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 1, got.GamesPlayed)
	assert.Equal(t, Default(), s.Load(ctx))
}
