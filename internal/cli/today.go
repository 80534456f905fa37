package cli

import (
	"fmt"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	today := ctx.Store.Today()
	activities := ctx.Store.TodayActivities()

	fmt.Printf("%s — %s\n", today.Date, checkinStatus(ctx))
	if len(activities) == 0 {
		fmt.Println("Nothing scheduled today.")
		return nil
	}

	completed := map[string]bool{}
	for _, id := range today.CompletedActivities {
		completed[id] = true
	}

	fmt.Println()
	for _, a := range activities {
		mark := "[ ]"
		if completed[a.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %-12s %s", mark, a.Time, a.Title)
		if a.Location != "" {
			line += fmt.Sprintf("  @ %s", a.Location)
		}
		fmt.Printf("%s  (%s, %s intensity)  #%s\n", line, a.Type, a.Intensity, a.ID)
	}

	fmt.Printf("\nCompletion: %s (%d of %d)\n",
		FormatRate(ctx.Store.CompletionRate()), len(today.CompletedActivities), len(activities))
	return nil
}

func checkinStatus(ctx *Context) string {
	if ctx.Store.HasCheckedInToday() {
		return "checked in"
	}
	return "not checked in yet (run: fightlog checkin)"
}
