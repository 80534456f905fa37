package models

// Settings represents application-wide settings
type Settings struct {
	Timezone          string `json:"timezone"`            // IANA timezone name, or "Local" for the system timezone
	ArchiveOnRollover bool   `json:"archive_on_rollover"` // archive the outgoing day automatically when a new day is detected
}

// State is the full persisted state graph. The weekly schedule is bundled
// configuration and lives outside of it.
type State struct {
	Version           int            `json:"version"`
	Settings          Settings       `json:"settings"`
	Athlete           Athlete        `json:"athlete"`
	Today             DailyRecord    `json:"today"`
	History           []HistoryEntry `json:"history"`
	HasCheckedInToday bool           `json:"has_checked_in_today"`
	Secrets           SecretsLibrary `json:"secrets"`
}

// DefaultState returns the state used on first run, after a full reset, and
// whenever the persisted blob is missing or unreadable.
func DefaultState(date string) State {
	return State{
		Version: 1,
		Settings: Settings{
			Timezone:          "Local",
			ArchiveOnRollover: false,
		},
		Athlete: DefaultAthlete(),
		Today:   NewDailyRecord(date),
		History: []HistoryEntry{},
		Secrets: NewSecretsLibrary(),
	}
}

// Normalize repairs nil collections after deserialization so callers never
// have to nil-check. Missing secret categories are re-added empty.
func (s *State) Normalize() {
	if s.History == nil {
		s.History = []HistoryEntry{}
	}
	if s.Today.CompletedActivities == nil {
		s.Today.CompletedActivities = []string{}
	}
	if s.Secrets == nil {
		s.Secrets = NewSecretsLibrary()
	}
	for _, c := range Categories() {
		if s.Secrets[c] == nil {
			s.Secrets[c] = []Secret{}
		}
	}
	if s.Settings.Timezone == "" {
		s.Settings.Timezone = "Local"
	}
}
