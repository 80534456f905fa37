package models

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

type Mood string

const (
	MoodFocused   Mood = "focused"
	MoodMotivated Mood = "motivated"
	MoodNeutral   Mood = "neutral"
	MoodTired     Mood = "tired"
	MoodStressed  Mood = "stressed"
)

type PainLevel string

const (
	PainNone     PainLevel = "none"
	PainMild     PainLevel = "mild"
	PainModerate PainLevel = "moderate"
	PainSevere   PainLevel = "severe"
)

// Valid reports whether the value is one of the closed set of sleep qualities.
// The empty string stands for "not answered yet" and is not valid.
func (q SleepQuality) Valid() bool {
	switch q {
	case SleepPoor, SleepFair, SleepGood, SleepExcellent:
		return true
	}
	return false
}

func (m Mood) Valid() bool {
	switch m {
	case MoodFocused, MoodMotivated, MoodNeutral, MoodTired, MoodStressed:
		return true
	}
	return false
}

func (p PainLevel) Valid() bool {
	switch p {
	case PainNone, PainMild, PainModerate, PainSevere:
		return true
	}
	return false
}

// DailyRecord holds the transient answers for the current calendar day. It is
// created fresh at rollover and mutated through check-in answers and activity
// toggles until the day is archived or discarded.
type DailyRecord struct {
	Date                string       `json:"date"` // YYYY-MM-DD
	WakeUpTime          string       `json:"wake_up_time,omitempty"`
	SleepQuality        SleepQuality `json:"sleep_quality,omitempty"`
	SleepHours          float64      `json:"sleep_hours"`
	Mood                Mood         `json:"mood,omitempty"`
	Energy              int          `json:"energy"`
	Pain                PainLevel    `json:"pain,omitempty"`
	HadDreams           bool         `json:"had_dreams"`
	WokeUpAtNight       bool         `json:"woke_up_at_night"`
	Notes               string       `json:"notes,omitempty"`
	Weight              float64      `json:"weight,omitempty"`
	HeartRate           int          `json:"heart_rate,omitempty"`
	CompletedActivities []string     `json:"completed_activities"`
}

// DayPatch carries a shallow merge into the current DailyRecord. Nil fields
// are left untouched. Field domains are advisory here; the check-in surfaces
// only offer the closed enum choices.
type DayPatch struct {
	WakeUpTime    *string       `json:"wake_up_time,omitempty"`
	SleepQuality  *SleepQuality `json:"sleep_quality,omitempty"`
	SleepHours    *float64      `json:"sleep_hours,omitempty"`
	Mood          *Mood         `json:"mood,omitempty"`
	Energy        *int          `json:"energy,omitempty"`
	Pain          *PainLevel    `json:"pain,omitempty"`
	HadDreams     *bool         `json:"had_dreams,omitempty"`
	WokeUpAtNight *bool         `json:"woke_up_at_night,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	Weight        *float64      `json:"weight,omitempty"`
	HeartRate     *int          `json:"heart_rate,omitempty"`
}

// NewDailyRecord returns an empty record stamped with the given calendar date.
func NewDailyRecord(date string) DailyRecord {
	return DailyRecord{
		Date:                date,
		CompletedActivities: []string{},
	}
}

// HistoryEntry is an archived DailyRecord snapshot. Entries are append-only
// and never edited after archival.
type HistoryEntry struct {
	DailyRecord
	CompletionRate float64 `json:"completion_rate"`
	ArchivedAt     string  `json:"archived_at"` // RFC3339
}
