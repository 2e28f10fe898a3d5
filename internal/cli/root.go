// Package cli is the dev-wordle command-line driver. It wires configuration,
// logging, persistence and the game controller together; all game rules
// live in the internal packages it calls.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/devwordle/internal/config"
	"github.com/robalobadob/devwordle/internal/daily"
	"github.com/robalobadob/devwordle/internal/store"
	"github.com/robalobadob/devwordle/internal/words"
)

// app carries what the subcommands share. Heavy pieces (store, word lists)
// are opened on demand so that commands like score touch nothing on disk.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg *config.Config
	log zerolog.Logger
	kv  store.Store
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "dev-wordle",
		Short:         "Guess the 5-letter programming term",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("storage-driver", "", "persistence backend: memory, file or sqlite")
	pf.String("storage-path", "", "state file or database path")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	bindFlagToViper(a.v, "storage.driver", pf.Lookup("storage-driver"))
	bindFlagToViper(a.v, "storage.path", pf.Lookup("storage-path"))
	bindFlagToViper(a.v, "log.level", pf.Lookup("log-level"))

	root.AddCommand(
		newPlayCmd(a),
		newStatsCmd(a),
		newWordsCmd(a),
		newDailyCmd(a),
		newScoreCmd(),
	)
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func bindFlagToViper(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := cfg.Log.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// store opens the configured backend once.
func (a *app) store() (store.Store, error) {
	if a.kv != nil {
		return a.kv, nil
	}
	kv, err := store.Open(a.cfg.Storage.Driver, a.cfg.Storage.Path, a.log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.log.Debug().Str("driver", a.cfg.Storage.Driver).Str("path", a.cfg.Storage.Path).Msg("store opened")
	a.kv = kv
	return kv, nil
}

func (a *app) words() (*words.Repository, error) {
	return words.Load(a.cfg.Words.AnswersFile, a.cfg.Words.AllowedFile, a.log)
}

func (a *app) calendar() (*daily.Calendar, error) {
	return a.cfg.Calendar()
}

func (a *app) close() error {
	if a.kv == nil {
		return nil
	}
	err := a.kv.Close()
	a.kv = nil
	return err
}
