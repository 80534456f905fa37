package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/utils"
)

type CheckinCmd struct {
	Force bool `help:"Run the check-in wizard again even if already checked in today."`
}

// checkinAnswers backs the wizard inputs. Numeric fields are captured as
// strings because huh inputs are text; they are parsed after submission.
type checkinAnswers struct {
	WakeUpTime    string
	SleepQuality  models.SleepQuality
	SleepHours    string
	HadDreams     bool
	WokeUpAtNight bool
	Mood          models.Mood
	Energy        string
	Pain          models.PainLevel
	Weight        string
	HeartRate     string
	Notes         string
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if ctx.Store.HasCheckedInToday() && !c.Force {
		fmt.Println("Already checked in today. Use --force to redo the morning check-in.")
		return nil
	}

	today := ctx.Store.Today()
	answers := checkinAnswers{
		WakeUpTime:    today.WakeUpTime,
		SleepQuality:  today.SleepQuality,
		HadDreams:     today.HadDreams,
		WokeUpAtNight: today.WokeUpAtNight,
		Mood:          today.Mood,
		Pain:          today.Pain,
		Notes:         today.Notes,
	}

	if err := checkinForm(&answers).Run(); err != nil {
		return err
	}

	sleepHours := parseFloatOr(answers.SleepHours, today.SleepHours)
	energy := parseIntOr(answers.Energy, today.Energy)
	weight := parseFloatOr(answers.Weight, today.Weight)
	heartRate := parseIntOr(answers.HeartRate, today.HeartRate)

	ctx.Store.UpdateToday(models.DayPatch{
		WakeUpTime:    &answers.WakeUpTime,
		SleepQuality:  &answers.SleepQuality,
		SleepHours:    &sleepHours,
		Mood:          &answers.Mood,
		Energy:        &energy,
		Pain:          &answers.Pain,
		HadDreams:     &answers.HadDreams,
		WokeUpAtNight: &answers.WokeUpAtNight,
		Notes:         &answers.Notes,
		Weight:        &weight,
		HeartRate:     &heartRate,
	})
	ctx.Store.CompleteCheckIn()

	fmt.Printf("✓ Check-in complete for %s. Time to work.\n", ctx.Store.TodayDate())
	return nil
}

func checkinForm(a *checkinAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wake-up time (HH:MM)").
				Value(&a.WakeUpTime).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("invalid time format, use HH:MM")
					}
					return nil
				}),
			huh.NewSelect[models.SleepQuality]().
				Title("Sleep quality").
				Options(
					huh.NewOption("Poor", models.SleepPoor),
					huh.NewOption("Fair", models.SleepFair),
					huh.NewOption("Good", models.SleepGood),
					huh.NewOption("Excellent", models.SleepExcellent),
				).
				Value(&a.SleepQuality),
			huh.NewInput().
				Title("Hours slept").
				Value(&a.SleepHours).
				Validate(floatInRange(0, 24)),
			huh.NewConfirm().
				Title("Had dreams?").
				Value(&a.HadDreams),
			huh.NewConfirm().
				Title("Woke up during the night?").
				Value(&a.WokeUpAtNight),
		),
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(
					huh.NewOption("Focused", models.MoodFocused),
					huh.NewOption("Motivated", models.MoodMotivated),
					huh.NewOption("Neutral", models.MoodNeutral),
					huh.NewOption("Tired", models.MoodTired),
					huh.NewOption("Stressed", models.MoodStressed),
				).
				Value(&a.Mood),
			huh.NewInput().
				Title("Energy (0-100)").
				Value(&a.Energy).
				Validate(intInRange(0, 100)),
			huh.NewSelect[models.PainLevel]().
				Title("Pain level").
				Options(
					huh.NewOption("None", models.PainNone),
					huh.NewOption("Mild", models.PainMild),
					huh.NewOption("Moderate", models.PainModerate),
					huh.NewOption("Severe", models.PainSevere),
				).
				Value(&a.Pain),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Description("Optional").
				Value(&a.Weight).
				Validate(optionalFloat),
			huh.NewInput().
				Title("Resting heart rate").
				Description("Optional").
				Value(&a.HeartRate).
				Validate(optionalInt),
			huh.NewText().
				Title("Notes").
				Value(&a.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func floatInRange(lo, hi float64) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < lo || v > hi {
			return fmt.Errorf("must be between %g and %g", lo, hi)
		}
		return nil
	}
}

func intInRange(lo, hi int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < lo || v > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func optionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func optionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
