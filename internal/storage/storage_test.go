package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gcosta/fightlog/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(t.TempDir(), "fightlog.json")),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "fightlog.db")),
	}
}

func sampleState() models.State {
	state := models.DefaultState("2025-03-10")
	state.Settings.Timezone = "America/Sao_Paulo"
	state.Settings.ArchiveOnRollover = true
	state.Athlete.Name = "Rafael"
	state.Athlete.Photos = []string{"front.jpg", "side.jpg"}
	state.Athlete.TotalTrainingDays = 12
	state.Athlete.CurrentStreak = 3
	state.Athlete.BestStreak = 9
	state.Athlete.Wins = 2
	state.HasCheckedInToday = true

	state.Today.WakeUpTime = "08:45"
	state.Today.SleepQuality = models.SleepGood
	state.Today.SleepHours = 7.5
	state.Today.Mood = models.MoodFocused
	state.Today.Energy = 82
	state.Today.Pain = models.PainMild
	state.Today.WokeUpAtNight = true
	state.Today.Notes = "shoulder tight after sparring"
	state.Today.Weight = 71.2
	state.Today.HeartRate = 54
	state.Today.CompletedActivities = []string{"wake", "mma"}

	state.History = []models.HistoryEntry{
		{
			DailyRecord: models.DailyRecord{
				Date:                "2025-03-09",
				SleepQuality:        models.SleepFair,
				SleepHours:          6,
				Mood:                models.MoodTired,
				Energy:              55,
				Pain:                models.PainNone,
				CompletedActivities: []string{"wake", "training", "recovery"},
			},
			CompletionRate: 1,
			ArchivedAt:     "2025-03-09T22:10:00Z",
		},
	}

	state.Secrets[models.CategoryMMA] = []models.Secret{
		{
			ID:        "s-1",
			Title:     "Wall work",
			Technique: "Underhook off the cage",
			Details:   "Head position first",
			Favorite:  true,
			CreatedAt: "2025-03-01T10:00:00Z",
		},
		{
			ID:        "s-2",
			Title:     "Feint entry",
			Technique: "Jab feint to double",
			CreatedAt: "2025-03-02T10:00:00Z",
			UpdatedAt: "2025-03-05T18:30:00Z",
		},
	}
	return state
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			want := sampleState()
			if err := provider.Save(want); err != nil {
				t.Fatalf("Save() returned unexpected error: %v", err)
			}

			got, err := provider.Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
			}
		})
	}
}

func TestLoadMissingYieldsDefaults(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			got, err := provider.Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			want := models.DefaultState("")
			if !reflect.DeepEqual(want, got) {
				t.Errorf("Load() on a missing store = %+v, want defaults", got)
			}
		})
	}
}

func TestLoadCorruptYieldsDefaults(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			if err := os.WriteFile(provider.GetConfigPath(), []byte("not a valid store"), 0600); err != nil {
				t.Fatalf("failed to corrupt store: %v", err)
			}

			got, err := provider.Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error on corrupt data: %v", err)
			}
			if !reflect.DeepEqual(models.DefaultState(""), got) {
				t.Errorf("Load() on corrupt store = %+v, want defaults", got)
			}
		})
	}
}

func TestLastCheckInSlot(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			got, err := provider.LastCheckIn()
			if err != nil {
				t.Fatalf("LastCheckIn() returned unexpected error: %v", err)
			}
			if got != "" {
				t.Errorf("LastCheckIn() = %q, want empty before any check-in", got)
			}

			if err := provider.SetLastCheckIn("2025-03-10"); err != nil {
				t.Fatalf("SetLastCheckIn() returned unexpected error: %v", err)
			}
			got, err = provider.LastCheckIn()
			if err != nil {
				t.Fatalf("LastCheckIn() returned unexpected error: %v", err)
			}
			if got != "2025-03-10" {
				t.Errorf("LastCheckIn() = %q, want 2025-03-10", got)
			}

			if err := provider.SetLastCheckIn("2025-03-11"); err != nil {
				t.Fatalf("SetLastCheckIn() returned unexpected error: %v", err)
			}
			got, _ = provider.LastCheckIn()
			if got != "2025-03-11" {
				t.Errorf("LastCheckIn() = %q, want the overwritten 2025-03-11", got)
			}
		})
	}
}

func TestInit(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			if err := provider.Init(); err != nil {
				t.Fatalf("Init() returned unexpected error: %v", err)
			}
			if _, err := os.Stat(provider.GetConfigPath()); err != nil {
				t.Errorf("Init() left no storage file: %v", err)
			}
			if err := provider.Init(); err == nil {
				t.Error("second Init() = nil error, want already-initialized failure")
			}
		})
	}
}

func TestReset(t *testing.T) {
	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer provider.Close()

			if err := provider.Save(sampleState()); err != nil {
				t.Fatalf("Save() returned unexpected error: %v", err)
			}
			if err := provider.SetLastCheckIn("2025-03-10"); err != nil {
				t.Fatalf("SetLastCheckIn() returned unexpected error: %v", err)
			}

			if err := provider.Reset(); err != nil {
				t.Fatalf("Reset() returned unexpected error: %v", err)
			}

			got, err := provider.Load()
			if err != nil {
				t.Fatalf("Load() after reset returned unexpected error: %v", err)
			}
			if !reflect.DeepEqual(models.DefaultState(""), got) {
				t.Errorf("Load() after reset = %+v, want defaults", got)
			}
			last, err := provider.LastCheckIn()
			if err != nil {
				t.Fatalf("LastCheckIn() after reset returned unexpected error: %v", err)
			}
			if last != "" {
				t.Errorf("LastCheckIn() after reset = %q, want empty", last)
			}
		})
	}
}
