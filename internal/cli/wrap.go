package cli

import (
	"fmt"
	"os"

	"github.com/gcosta/fightlog/internal/constants"
)

type WrapCmd struct{}

// Run archives the current day into history and applies the streak rule.
// The day record itself stays live until rollover so late edits remain
// possible; run it once at the end of the day.
func (c *WrapCmd) Run(ctx *Context) error {
	// Snapshot the storage before the archive mutates the counters.
	if _, err := os.Stat(ctx.Provider.GetConfigPath()); err == nil {
		ctx.PerformAutomaticBackup()
	}

	entry := ctx.Store.SaveDayToHistory()
	athlete := ctx.Store.Athlete()

	fmt.Printf("Day archived: %s at %s completion.\n", entry.Date, FormatRate(entry.CompletionRate))
	if entry.CompletionRate >= constants.StreakThreshold {
		fmt.Printf("🔥 Streak: %d days (best %d). Total training days: %d.\n",
			athlete.CurrentStreak, athlete.BestStreak, athlete.TotalTrainingDays)
	} else {
		fmt.Printf("Streak reset. Below the %s threshold today — best is still %d days.\n",
			FormatRate(constants.StreakThreshold), athlete.BestStreak)
	}
	return nil
}
