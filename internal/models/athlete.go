package models

// Athlete is the singleton profile record. The streak and training-day
// counters are owned by the store's archive step; everything else is edited
// directly from the profile surface.
type Athlete struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Category          string   `json:"category"`
	Level             string   `json:"level"`
	Photos            []string `json:"photos,omitempty"`
	TotalTrainingDays int      `json:"total_training_days"`
	CurrentStreak     int      `json:"current_streak"`
	BestStreak        int      `json:"best_streak"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	Draws             int      `json:"draws"`
}

// AthletePatch carries optional profile edits. Nil fields are left untouched.
type AthletePatch struct {
	Name     *string   `json:"name,omitempty"`
	Age      *int      `json:"age,omitempty"`
	Category *string   `json:"category,omitempty"`
	Level    *string   `json:"level,omitempty"`
	Photos   *[]string `json:"photos,omitempty"`
	Wins     *int      `json:"wins,omitempty"`
	Losses   *int      `json:"losses,omitempty"`
	Draws    *int      `json:"draws,omitempty"`
}

// DefaultAthlete returns the profile used on first run and after a full reset.
func DefaultAthlete() Athlete {
	return Athlete{
		Name:     "Gabriel",
		Age:      16,
		Category: "MMA Fighter",
		Level:    "PROFESSIONAL",
	}
}
