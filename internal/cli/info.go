package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/robalobadob/devwordle/internal/daily"
	"github.com/robalobadob/devwordle/internal/game"
	"github.com/robalobadob/devwordle/internal/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show saved statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := a.store()
			if err != nil {
				return err
			}
			s := stats.NewStore(kv, a.log).Load(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprint(out, stats.Summary(s))
			if s.LastPlayed != "" {
				fmt.Fprintf(out, "Last played:    %s\n", s.LastPlayed)
			}
			if s.GamesWon > 0 {
				fmt.Fprintf(out, "Most wins in %d guesses\n", stats.MostCommonGuessCount(s))
			}
			return nil
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List the answer words and the additional valid guesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.words()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			answers := repo.Answers()
			extras := repo.Extras()
			fmt.Fprintf(out, "Answer words (%d):\n", len(answers))
			for _, chunk := range lo.Chunk(answers, 10) {
				fmt.Fprintf(out, "  %s\n", strings.Join(chunk, " "))
			}
			fmt.Fprintf(out, "Additional valid words (%d):\n", len(extras))
			for _, chunk := range lo.Chunk(extras, 10) {
				fmt.Fprintf(out, "  %s\n", strings.Join(chunk, " "))
			}
			return nil
		},
	}
}

func newDailyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show today's daily challenge number and whether it is done",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			kv, err := a.store()
			if err != nil {
				return err
			}
			day := cal.DaysSinceEpoch()
			done := daily.NewTracker(kv, a.log).AlreadyPlayed(cmd.Context(), day)
			status := "not played yet"
			if done {
				status = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily #%d (%s, %s): %s\n",
				day, cal.Today(), cal.Location(), status)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess> <answer>",
		Short: "Print the verdicts for a guess against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, answer := strings.ToUpper(args[0]), strings.ToUpper(args[1])
			if len(guess) != game.WordLength || len(answer) != game.WordLength {
				return fmt.Errorf("both words must have %d letters", game.WordLength)
			}
			renderRow(cmd.OutOrStdout(), guess, game.Score(guess, answer))
			return nil
		},
	}
}
