package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "mindtrack"

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert(appName, message, "")
}

// FormatCheckInPrompt builds the daily reminder. daysSince is the number of days
// since the last entry's date, or -1 when nothing has been logged yet.
func FormatCheckInPrompt(daysSince int) (string, string) {
	title := "Daily check-in"
	switch {
	case daysSince < 0:
		return title, "Track your first wellness entry to get started."
	case daysSince == 0:
		return title, "You've already checked in today. Anything else on your mind?"
	case daysSince == 1:
		return title, "How did today go? Log your mood, sleep and stress."
	default:
		return title, fmt.Sprintf("It's been %d days since your last entry. How are you feeling?", daysSince)
	}
}
