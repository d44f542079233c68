package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/utils"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

var (
	logDate   string
	logMood   int
	logSleep  float64
	logStress int
	logNotes  string
)

var logCmd = &cobra.Command{
	Use:   "log [notes...]",
	Short: "Add a wellness entry",
	Long: `Add a wellness entry. Unset readings take the form defaults
(mood 5, sleep 7 hours, stress 5); the date defaults to today.`,
	Example: `  mindtrack log --mood 7 --sleep 6.5 --stress 4 "long walk after work"
  mindtrack log --date yesterday --mood 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, release, err := openRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		form := tracker.NewForm(repo)
		form.Open()

		if logDate != "" {
			day, err := utils.ParseFlexibleDate(logDate, time.Now())
			if err != nil {
				return err
			}
			if err := form.SetDate(day.Format(wellness.DateLayout)); err != nil {
				return err
			}
		}
		_ = form.SetMood(logMood)
		_ = form.SetSleep(logSleep)
		_ = form.SetStress(logStress)

		notes := logNotes
		if len(args) > 0 {
			notes = joinArgs(args)
		}
		_ = form.SetNotes(notes)

		e, err := form.Submit(cmd.Context())
		if err != nil {
			return err
		}
		printf(cmd, "Saved %s: mood %d (%s), sleep %sh (%s), stress %d (%s)\n",
			e.Date,
			e.Mood, wellness.MoodLabel(float64(e.Mood)),
			tracker.FormatValue(e.Sleep), wellness.SleepLabel(e.Sleep),
			e.Stress, wellness.StressLabel(float64(e.Stress)))
		return nil
	},
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

func init() {
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Entry date: YYYY-MM-DD, today, yesterday, \"3 days ago\", a weekday")
	logCmd.Flags().IntVarP(&logMood, "mood", "m", wellness.DefaultMood, fmt.Sprintf("Mood %d-%d", wellness.MinMood, wellness.MaxMood))
	logCmd.Flags().Float64VarP(&logSleep, "sleep", "s", wellness.DefaultSleep, "Hours slept 0-12")
	logCmd.Flags().IntVarP(&logStress, "stress", "x", wellness.DefaultStress, fmt.Sprintf("Stress %d-%d", wellness.MinStress, wellness.MaxStress))
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Free-text notes")
}
