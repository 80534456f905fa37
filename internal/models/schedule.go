package models

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityCombat       ActivityType = "combat"
	ActivityStrength     ActivityType = "strength"
	ActivityConditioning ActivityType = "conditioning"
	ActivityMental       ActivityType = "mental"
	ActivityMeal         ActivityType = "meal"
	ActivityRecovery     ActivityType = "recovery"
	ActivityRoutine      ActivityType = "routine"
)

type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCombat, ActivityStrength, ActivityConditioning,
		ActivityMental, ActivityMeal, ActivityRecovery, ActivityRoutine:
		return true
	}
	return false
}

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh, IntensityExtreme:
		return true
	}
	return false
}

// ScheduledActivity is one entry in the weekly routine. Time is a literal
// display string: either a clock time, a range like "10:00-12:00", or the
// "FLEX" placeholder for unscheduled weekend sessions.
type ScheduledActivity struct {
	ID        string       `json:"id"`
	Time      string       `json:"time"`
	Title     string       `json:"title"`
	Location  string       `json:"location,omitempty"`
	Type      ActivityType `json:"type"`
	Intensity Intensity    `json:"intensity"`
}

// WeeklySchedule maps a weekday to its ordered activity list. It is static
// configuration; the store never mutates it.
type WeeklySchedule map[time.Weekday][]ScheduledActivity

// ActivitiesFor returns the ordered activities for the given weekday, or an
// empty slice when the day has none.
func (w WeeklySchedule) ActivitiesFor(day time.Weekday) []ScheduledActivity {
	return w[day]
}

// HasActivity reports whether id belongs to the given weekday's schedule.
func (w WeeklySchedule) HasActivity(day time.Weekday, id string) bool {
	for _, a := range w[day] {
		if a.ID == id {
			return true
		}
	}
	return false
}

// LoadWeeklySchedule reads a custom routine from a JSON file keyed by weekday
// name ("monday" through "sunday", case-insensitive). Days absent from the
// file are rest days.
func LoadWeeklySchedule(path string) (WeeklySchedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var file map[string][]ScheduledActivity
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	schedule := WeeklySchedule{}
	for name, activities := range file {
		day, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in schedule file", name)
		}
		for _, a := range activities {
			if a.ID == "" || a.Title == "" {
				return nil, fmt.Errorf("schedule entry for %s is missing an id or title", name)
			}
		}
		schedule[day] = activities
	}
	return schedule, nil
}

// DefaultWeeklySchedule is the bundled fight-camp routine.
func DefaultWeeklySchedule() WeeklySchedule {
	fightDay := []ScheduledActivity{
		{ID: "wake", Time: "09:00", Title: "WAKE UP", Type: ActivityRoutine, Intensity: IntensityLow},
		{ID: "mma", Time: "10:00-12:00", Title: "MMA TRAINING", Location: "Chute Boxe - Parque Barigui", Type: ActivityCombat, Intensity: IntensityExtreme},
		{ID: "bjj", Time: "12:30-13:50", Title: "JIU-JITSU", Location: "Bateu", Type: ActivityCombat, Intensity: IntensityHigh},
		{ID: "lunch", Time: "14:00", Title: "NUTRITION", Type: ActivityMeal, Intensity: IntensityLow},
		{ID: "gym", Time: "15:30-16:30", Title: "STRENGTH TRAINING", Type: ActivityStrength, Intensity: IntensityHigh},
		{ID: "study", Time: "18:30-23:00", Title: "STUDY SESSION", Type: ActivityMental, Intensity: IntensityMedium},
	}
	conditioningDay := []ScheduledActivity{
		{ID: "wake", Time: "09:00", Title: "WAKE UP", Type: ActivityRoutine, Intensity: IntensityLow},
		{ID: "morning_training", Time: "10:00-11:00", Title: "MORNING DRILL", Location: "Colombo", Type: ActivityConditioning, Intensity: IntensityHigh},
		{ID: "lunch", Time: "12:00", Title: "NUTRITION", Type: ActivityMeal, Intensity: IntensityLow},
		{ID: "afternoon_training", Time: "13:00-14:00", Title: "AFTERNOON SESSION", Location: "Colombo", Type: ActivityConditioning, Intensity: IntensityHigh},
		{ID: "english", Time: "15:00-16:00", Title: "ENGLISH CLASS", Type: ActivityMental, Intensity: IntensityLow},
		{ID: "study", Time: "18:30-23:00", Title: "STUDY SESSION", Type: ActivityMental, Intensity: IntensityMedium},
	}

	return WeeklySchedule{
		time.Monday:    fightDay,
		time.Tuesday:   conditioningDay,
		time.Wednesday: fightDay,
		time.Thursday:  conditioningDay,
		time.Friday:    fightDay,
		time.Saturday: {
			{ID: "wake", Time: "FLEX", Title: "WAKE UP", Type: ActivityRoutine, Intensity: IntensityLow},
			{ID: "training", Time: "FLEX", Title: "OPEN MAT", Type: ActivityCombat, Intensity: IntensityMedium},
			{ID: "recovery", Time: "FLEX", Title: "RECOVERY", Type: ActivityRecovery, Intensity: IntensityLow},
		},
		time.Sunday: {
			{ID: "wake", Time: "FLEX", Title: "WAKE UP", Type: ActivityRoutine, Intensity: IntensityLow},
			{ID: "training", Time: "FLEX", Title: "LIGHT TRAINING", Type: ActivityConditioning, Intensity: IntensityLow},
			{ID: "recovery", Time: "FLEX", Title: "RECOVERY", Type: ActivityRecovery, Intensity: IntensityLow},
		},
	}
}
