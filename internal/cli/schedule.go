package cli

import (
	"fmt"
	"strings"
	"time"
)

type ScheduleCmd struct {
	Day string `help:"Show a single weekday (e.g. monday) instead of the full week."`
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	schedule := ctx.Store.Schedule()

	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	if c.Day != "" {
		day, err := parseWeekday(c.Day)
		if err != nil {
			return err
		}
		days = []time.Weekday{day}
	}

	for _, day := range days {
		fmt.Printf("%s\n", strings.ToUpper(day.String()))
		activities := schedule.ActivitiesFor(day)
		if len(activities) == 0 {
			fmt.Println("  rest day")
			continue
		}
		for _, a := range activities {
			line := fmt.Sprintf("  %-12s %s", a.Time, a.Title)
			if a.Location != "" {
				line += fmt.Sprintf("  @ %s", a.Location)
			}
			fmt.Printf("%s  (%s, %s)\n", line, a.Type, a.Intensity)
		}
	}
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	names := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}
	if day, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}
