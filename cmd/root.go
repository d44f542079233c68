package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/mindtrack/internal/config"
	"github.com/ramanasai/mindtrack/internal/logging"
	"github.com/ramanasai/mindtrack/internal/store"
	"github.com/ramanasai/mindtrack/internal/tracker"
)

var (
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "mindtrack",
	Short:         "Local mood, sleep & stress tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, cfg.Log.File)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("command start", zap.String("cmd", cmd.Name()), zap.String("data_dir", cfg.DataDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to the log file")

	// Bare `mindtrack` opens the TUI
	rootCmd.RunE = tuiCmd.RunE

	// Add commands; other files define these vars
	rootCmd.AddCommand(logCmd, listCmd, summaryCmd, chartCmd, exportCmd, tuiCmd, assessCmd, chatCmd, versionCmd)
}

// openRepository opens the configured slot and hydrates a repository from it.
// The returned func releases the slot.
func openRepository(ctx context.Context) (*tracker.Repository, func(), error) {
	slot, closeSlot, err := store.OpenSlot(store.Options{
		Backend:    cfg.Store.Backend,
		Dir:        cfg.DataDir,
		Name:       cfg.Store.Slot,
		Passphrase: cfg.Encryption.Passphrase,
	})
	if err != nil {
		return nil, func() {}, err
	}
	repo := tracker.NewRepository(store.New(slot, logger), logger)
	repo.Load(ctx)
	logger.Debug("repository ready",
		zap.String("backend", cfg.Store.Backend),
		zap.String("slot", filepath.Join(cfg.DataDir, cfg.Store.Slot)),
		zap.Int("entries", repo.Len()))

	return repo, func() {
		if err := closeSlot(); err != nil {
			logger.Warn("close slot", zap.Error(err))
		}
	}, nil
}

func projectOptions() tracker.ProjectOptions {
	order := tracker.OrderInsertion
	if cfg.Display.Order == string(tracker.OrderDate) {
		order = tracker.OrderDate
	}
	return tracker.ProjectOptions{Locale: cfg.Display.Locale, Order: order}
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
