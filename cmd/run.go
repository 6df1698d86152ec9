package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/abhisek/kartuli/internal/app"
	"github.com/abhisek/kartuli/internal/session"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("kartuli needs an interactive terminal; try 'kartuli lessons' or 'kartuli progress'")

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNoTerminal
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	skip, _ := cmd.Flags().GetBool("no-splash")
	d.log.Info("starting", zap.String("version", version), zap.String("env", d.cfg.Env))

	return app.Run(app.Options{
		Catalog:  d.catalog,
		Progress: d.progress,
		Hints:    d.hints,
		Logger:   d.log,
		Session: session.Options{
			Catalog:         d.catalog,
			Recorder:        d.progress,
			Logger:          d.log,
			FeedbackDelay:   d.cfg.FeedbackDelay,
			SpellingSize:    d.cfg.SpellingSize,
			GrammarQuizSize: d.cfg.GrammarQuizLen,
		},
		SkipWelcome: skip,
	})
}
