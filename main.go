// dev-wordle: a terminal Wordle of programming terms.
//
// Configuration comes from defaults, an optional --config file, a .env file
// and DEVWORDLE_* environment variables (see internal/config).
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/devwordle/internal/cli"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("dev-wordle")
	}
}
