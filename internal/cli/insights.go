package cli

import (
	"fmt"
	"strings"

	"github.com/gcosta/fightlog/internal/evolution"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	today := ctx.Store.Today()
	history := ctx.Store.History()
	athlete := ctx.Store.Athlete()

	comparison := evolution.Compare(today, ctx.Store.CompletionRate(), history)
	trends := evolution.AnalyzeTrends(history)
	improvements, problems := evolution.Evaluate(evolution.Snapshot{
		Today:      today,
		Streak:     athlete.CurrentStreak,
		Comparison: comparison,
		Trends:     trends,
	})

	fmt.Println("FIGHT INTELLIGENCE")
	fmt.Println(strings.Repeat("-", 40))

	if comparison == nil {
		fmt.Println("No archived days yet — comparisons unlock after the first wrap.")
	} else {
		fmt.Printf("vs yesterday: sleep %+0.1fh, energy %+0.0f, completion %+0.0f%%\n",
			comparison.SleepDiff, comparison.EnergyDiff, comparison.CompletionDiff*100)
	}

	if trends != nil {
		fmt.Printf("Last %d days: sleep %.1fh (%s), energy %.0f (%s), completion %s (%s)\n",
			trends.Window,
			trends.AvgSleepHours, trends.Sleep,
			trends.AvgEnergy, trends.Energy,
			FormatRate(trends.AvgCompletion), trends.Completion)
	}

	if len(problems) > 0 {
		fmt.Println("\nProblems:")
		for _, p := range problems {
			fmt.Printf("  [%s] %s — %s\n", strings.ToUpper(string(p.Severity)), p.Title, p.Message)
		}
	}
	if len(improvements) > 0 {
		fmt.Println("\nImprovements:")
		for _, i := range improvements {
			fmt.Printf("  %s — %s\n", i.Title, i.Message)
		}
	}
	if len(problems) == 0 && len(improvements) == 0 {
		fmt.Println("\nNothing flagged today.")
	}

	if goals := evolution.AdaptiveGoals(trends); len(goals) > 0 {
		fmt.Println("\nGoals:")
		for _, g := range goals {
			mark := "✗"
			if g.Met {
				mark = "✓"
			}
			fmt.Printf("  %s %s\n", mark, g.Message)
		}
	}

	return nil
}
