package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramanasai/mindtrack/internal/notify"
	"github.com/ramanasai/mindtrack/internal/schedule"
	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open TUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		repo, release, err := openRepository(ctx)
		if err != nil {
			return err
		}
		defer release()

		startReminder(ctx, repo)

		th := ui.ThemeByName(cfg.Theme)
		return ui.Run(repo, ui.Options{
			Theme:   &th,
			Project: projectOptions(),
			Log:     logger,
		})
	},
}

// startReminder fires the daily check-in notification while the TUI is open.
func startReminder(ctx context.Context, repo *tracker.Repository) {
	if !cfg.Reminder.Enabled || os.Getenv("MINDTRACK_NO_REMINDER") == "1" {
		return
	}
	logger.Debug("reminder scheduled", zap.Time("next", schedule.NextAt(time.Now(), cfg)))
	go schedule.RunConfigured(ctx, cfg, func() {
		title, msg := notify.FormatCheckInPrompt(tracker.DaysSinceLast(repo.All(), time.Now().In(cfg.Location())))
		if err := notify.Info(title, msg); err != nil {
			logger.Warn("reminder notification", zap.Error(err))
		}
	})
}
