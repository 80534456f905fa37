package cli

import (
	"fmt"
)

type StatsCmd struct {
	Last int `help:"Show the last N archived days." default:"7"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	athlete := ctx.Store.Athlete()
	history := ctx.Store.History()

	fmt.Printf("%s — %s, %s\n", athlete.Name, athlete.Category, athlete.Level)
	fmt.Printf("Record: %dW-%dL-%dD\n", athlete.Wins, athlete.Losses, athlete.Draws)
	fmt.Printf("Streak: %d days (best %d) | Total training days: %d\n",
		athlete.CurrentStreak, athlete.BestStreak, athlete.TotalTrainingDays)

	if len(history) == 0 {
		fmt.Println("\nNo archived days yet.")
		return nil
	}

	start := len(history) - c.Last
	if start < 0 {
		start = 0
	}
	fmt.Printf("\n%-12s %-8s %-7s %-10s %s\n", "DATE", "SLEEP", "ENERGY", "COMPLETION", "MOOD")
	for _, entry := range history[start:] {
		fmt.Printf("%-12s %-8s %-7d %-10s %s\n",
			entry.Date,
			fmt.Sprintf("%.1fh", entry.SleepHours),
			entry.Energy,
			FormatRate(entry.CompletionRate),
			entry.Mood)
	}
	return nil
}
