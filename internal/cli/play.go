package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/devwordle/internal/game"
	"github.com/robalobadob/devwordle/internal/play"
	"github.com/robalobadob/devwordle/internal/stats"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal, one guess per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kv, err := a.store()
			if err != nil {
				return err
			}
			repo, err := a.words()
			if err != nil {
				return err
			}
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			mode, err := play.ParseMode(a.cfg.Game.Mode)
			if err != nil {
				return err
			}

			ctl, err := play.New(ctx, play.Deps{Words: repo, Calendar: cal, Store: kv, Log: a.log}, a.cfg.Game.Title, mode)
			if err != nil {
				return err
			}
			return runLoop(cmd, ctl)
		},
	}
	cmd.Flags().String("mode", "", "daily or practice")
	bindFlagToViper(a.v, "game.mode", cmd.Flags().Lookup("mode"))
	return cmd
}

// guessInput reports whether line can be typed as a single guess: at most
// WordLength ASCII letters. Anything else is rejected whole rather than
// trimmed into a different word.
func guessInput(line string) bool {
	if len(line) > game.WordLength {
		return false
	}
	for i := 0; i < len(line); i++ {
		c := line[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// runLoop reads lines until EOF or :quit. Output is driven by the
// controller's event feed; the loop itself only reports errors that carry
// no event.
func runLoop(cmd *cobra.Command, ctl *play.Controller) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	events := ctl.Events().Subscribe()
	defer ctl.Events().Unsubscribe(events)

	if ctl.ShowHelp() {
		fmt.Fprint(out, helpText)
	}
	announce(out, ctl)

	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := meta(cmd, ctl, line)
			if err != nil {
				return err
			}
			render(out, ctl, events)
			if quit {
				return nil
			}
			continue
		}

		if !guessInput(line) {
			fmt.Fprintln(out, play.Notice(game.ErrNotInWordList))
			continue
		}

		// Each line is a whole guess; clear whatever a rejected line left.
		for ctl.RemoveLetter() {
		}
		for _, ch := range line {
			ctl.AddLetter(ch)
		}

		_, err := ctl.Submit(ctx)
		render(out, ctl, events)
		switch {
		case errors.Is(err, game.ErrGameOver):
			fmt.Fprintln(out, "This game is over. Type :new for another or :practice.")
		case err != nil && play.Notice(err) == "":
			return err
		}
	}
}

// render prints everything published since the last call.
func render(w io.Writer, ctl *play.Controller, events chan play.Event) {
	for {
		select {
		case ev := <-events:
			renderEvent(w, ctl, ev)
		default:
			return
		}
	}
}

func renderEvent(w io.Writer, ctl *play.Controller, ev play.Event) {
	s := ctl.Session()
	switch ev.Kind {
	case play.EventInvalid:
		fmt.Fprintln(w, play.Notice(ev.Err))
	case play.EventGuess:
		renderRow(w, ev.Guess, ev.Row)
		renderBoard(w, s.Board())
		renderKeyboard(w, s.Keyboard())
	case play.EventWon:
		tries := "tries"
		if len(s.Guesses) == 1 {
			tries = "try"
		}
		fmt.Fprintf(w, "🎉 You won! You guessed the word in %d %s.\n", len(s.Guesses), tries)
		finished(w, ctl)
	case play.EventLost:
		fmt.Fprintf(w, "Game over. The word was: %s\n", ev.Answer)
		finished(w, ctl)
	case play.EventNewGame:
		announce(w, ctl)
	}
}

func announce(w io.Writer, ctl *play.Controller) {
	fmt.Fprintf(w, "%s (%s). %d guesses, 5 letters. :help for commands.\n",
		ctl.Title(), ctl.Mode(), game.MaxGuesses)
}

func finished(w io.Writer, ctl *play.Controller) {
	if text, ok := ctl.Share(); ok {
		fmt.Fprintf(w, "\n%s\n\n", text)
	}
	fmt.Fprint(w, stats.Summary(ctl.Stats()))
}

// meta handles a :command; quit is true for :quit.
func meta(cmd *cobra.Command, ctl *play.Controller, line string) (quit bool, err error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var switchErr error
	switch strings.ToLower(line) {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help":
		fmt.Fprint(out, helpText)
	case ":stats":
		s := ctl.Stats()
		fmt.Fprint(out, stats.Summary(s))
		if s.GamesWon > 0 {
			fmt.Fprintf(out, "Most wins in %d guesses\n", stats.MostCommonGuessCount(s))
		}
	case ":share":
		if text, ok := ctl.Share(); ok {
			fmt.Fprintln(out, text)
		} else {
			fmt.Fprintln(out, "Finish the game first.")
		}
	case ":new":
		switchErr = ctl.NewGame(ctx)
	case ":daily":
		switchErr = ctl.SetMode(ctx, play.ModeDaily)
	case ":practice":
		switchErr = ctl.SetMode(ctx, play.ModePractice)
	default:
		fmt.Fprintf(out, "Unknown command %s. :help lists them.\n", line)
		return false, nil
	}

	// A successful switch publishes new_game, which render announces.
	if switchErr != nil {
		n := play.Notice(switchErr)
		if n == "" {
			return false, switchErr
		}
		fmt.Fprintln(out, n)
	}
	return false, nil
}
