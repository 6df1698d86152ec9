package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/config"
	"github.com/abhisek/kartuli/internal/logging"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/store"
)

// deps is everything a command needs once configuration is resolved.
type deps struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *store.Store
	catalog  *catalog.Catalog
	progress *progress.Store
	hints    *progress.Hints
}

// openDeps loads configuration, applies the --db flag (highest priority),
// then opens the logger and the store.
func openDeps(cmd *cobra.Command) (*deps, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", cfg.DBPath), zap.String("command", cmd.Name()))

	kv := st.KV()
	return &deps{
		cfg:      cfg,
		log:      log,
		store:    st,
		catalog:  catalog.Default(),
		progress: progress.NewStore(kv, log),
		hints:    progress.NewHints(kv, log),
	}, nil
}

// Close releases the store and flushes the logger.
func (d *deps) Close() error {
	return errors.Join(d.store.Close(), d.log.Sync())
}
