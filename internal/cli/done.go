package cli

import (
	"fmt"
)

type DoneCmd struct {
	Activity string `arg:"" help:"Activity id from today's schedule (see: fightlog today)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	// Warn on unknown ids but toggle anyway; the set carries whatever the
	// caller passes and unknown ids have no effect on the completion rate
	// beyond the raw count.
	known := false
	for _, a := range ctx.Store.TodayActivities() {
		if a.ID == c.Activity {
			known = true
			break
		}
	}
	if !known {
		fmt.Printf("Warning: %q is not on today's schedule.\n", c.Activity)
	}

	ctx.Store.ToggleActivity(c.Activity)

	marked := false
	for _, id := range ctx.Store.Today().CompletedActivities {
		if id == c.Activity {
			marked = true
			break
		}
	}
	if marked {
		fmt.Printf("✓ %s marked done. Completion: %s\n", c.Activity, FormatRate(ctx.Store.CompletionRate()))
	} else {
		fmt.Printf("✗ %s unmarked. Completion: %s\n", c.Activity, FormatRate(ctx.Store.CompletionRate()))
	}
	return nil
}
