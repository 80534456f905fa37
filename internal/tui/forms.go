package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/utils"
)

// NewCheckinForm builds the morning check-in wizard.
func NewCheckinForm(fm *CheckinFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wake-up time (HH:MM)").
				Value(&fm.WakeUpTime).
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
				Value(&fm.SleepQuality),
			huh.NewInput().
				Title("Hours slept").
				Value(&fm.SleepHours).
				Validate(numberBetween(0, 24)),
			huh.NewConfirm().
				Title("Had dreams?").
				Value(&fm.HadDreams),
			huh.NewConfirm().
				Title("Woke up during the night?").
				Value(&fm.WokeUpAtNight),
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
				Value(&fm.Mood),
			huh.NewInput().
				Title("Energy (0-100)").
				Value(&fm.Energy).
				Validate(numberBetween(0, 100)),
			huh.NewSelect[models.PainLevel]().
				Title("Pain level").
				Options(
					huh.NewOption("None", models.PainNone),
					huh.NewOption("Mild", models.PainMild),
					huh.NewOption("Moderate", models.PainModerate),
					huh.NewOption("Severe", models.PainSevere),
				).
				Value(&fm.Pain),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Description("Optional").
				Value(&fm.Weight).
				Validate(optionalNumber),
			huh.NewInput().
				Title("Resting heart rate").
				Description("Optional").
				Value(&fm.HeartRate).
				Validate(optionalNumber),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSecretForm builds the add-secret form for one discipline notebook.
func NewSecretForm(fm *SecretFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Technique").
				Value(&fm.Technique).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("technique cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Situation").
				Description("Optional").
				Value(&fm.Situation),
			huh.NewText().
				Title("Details").
				Value(&fm.Details),
			huh.NewInput().
				Title("Reminder cue").
				Description("Optional").
				Value(&fm.Reminder),
			huh.NewConfirm().
				Title("Favorite?").
				Value(&fm.Favorite),
		),
	).WithTheme(huh.ThemeDracula())
}

func numberBetween(lo, hi float64) func(string) error {
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

func optionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
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
