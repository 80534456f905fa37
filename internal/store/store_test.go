package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/storage"
)

// setupTestStore builds a store over a JSON provider in a temp dir with a
// pinned clock. The pinned date is a Monday so the fight-day schedule (six
// activities) applies.
func setupTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()

	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) // Monday
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "fightlog.json"))

	s, err := New(provider, WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	return s, &now
}

func completeActivities(s *Store, n int) {
	for _, a := range s.TodayActivities()[:n] {
		s.ToggleActivity(a.ID)
	}
}

func TestSaveDayToHistoryStreakRule(t *testing.T) {
	t.Run("rate at or above threshold advances streak and total", func(t *testing.T) {
		s, _ := setupTestStore(t)

		completeActivities(s, 5) // 5 of 6, rate 0.833
		entry := s.SaveDayToHistory()

		if entry.CompletionRate < 0.83 || entry.CompletionRate > 0.84 {
			t.Errorf("CompletionRate = %v, want 5/6", entry.CompletionRate)
		}

		athlete := s.Athlete()
		if athlete.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", athlete.CurrentStreak)
		}
		if athlete.TotalTrainingDays != 1 {
			t.Errorf("TotalTrainingDays = %d, want 1", athlete.TotalTrainingDays)
		}
		if athlete.BestStreak != 1 {
			t.Errorf("BestStreak = %d, want 1", athlete.BestStreak)
		}
	})

	t.Run("rate below threshold resets streak only", func(t *testing.T) {
		s, _ := setupTestStore(t)

		// Build a streak of 6 first.
		for i := 0; i < 6; i++ {
			completeActivities(s, 6)
			s.SaveDayToHistory()
			s.ResetDay()
		}
		before := s.Athlete()
		if before.CurrentStreak != 6 {
			t.Fatalf("CurrentStreak = %d, want 6 before the low day", before.CurrentStreak)
		}

		completeActivities(s, 2) // 2 of 6, rate 0.333
		s.SaveDayToHistory()

		after := s.Athlete()
		if after.CurrentStreak != 0 {
			t.Errorf("CurrentStreak = %d, want 0", after.CurrentStreak)
		}
		if after.BestStreak != before.BestStreak {
			t.Errorf("BestStreak = %d, want unchanged %d", after.BestStreak, before.BestStreak)
		}
		if after.TotalTrainingDays != before.TotalTrainingDays {
			t.Errorf("TotalTrainingDays = %d, want unchanged %d", after.TotalTrainingDays, before.TotalTrainingDays)
		}
		if got := len(s.History()); got != 7 {
			t.Errorf("len(History) = %d, want 7", got)
		}
	})

	t.Run("best streak never decreases", func(t *testing.T) {
		s, _ := setupTestStore(t)

		best := 0
		rates := []int{6, 6, 2, 6, 1, 6, 6, 6, 0}
		for _, n := range rates {
			completeActivities(s, n)
			s.SaveDayToHistory()
			athlete := s.Athlete()
			if athlete.BestStreak < best {
				t.Fatalf("BestStreak decreased from %d to %d", best, athlete.BestStreak)
			}
			best = athlete.BestStreak
			s.ResetDay()
		}
		if best != 3 {
			t.Errorf("final BestStreak = %d, want 3", best)
		}
	})
}

func TestCompletionRateZeroScheduled(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "fightlog.json"))

	s, err := New(provider,
		WithClock(func() time.Time { return now }),
		WithSchedule(models.WeeklySchedule{}))
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	s.ToggleActivity("anything")
	if rate := s.CompletionRate(); rate != 0 {
		t.Errorf("CompletionRate() = %v, want exactly 0 with nothing scheduled", rate)
	}

	entry := s.SaveDayToHistory()
	if entry.CompletionRate != 0 {
		t.Errorf("archived CompletionRate = %v, want exactly 0", entry.CompletionRate)
	}
	if s.Athlete().CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", s.Athlete().CurrentStreak)
	}
}

func TestToggleActivityRoundTrip(t *testing.T) {
	s, _ := setupTestStore(t)

	s.ToggleActivity("mma")
	before := s.Today().CompletedActivities

	s.ToggleActivity("bjj")
	s.ToggleActivity("bjj")

	after := s.Today().CompletedActivities
	if !reflect.DeepEqual(before, after) {
		t.Errorf("toggling twice changed the set: before %v, after %v", before, after)
	}
}

func TestCheckIfNewDay(t *testing.T) {
	t.Run("first run resets the day", func(t *testing.T) {
		s, _ := setupTestStore(t)

		rolled := s.CheckIfNewDay()
		if !rolled {
			t.Error("CheckIfNewDay() = false, want rollover on first run")
		}
		if s.HasCheckedInToday() {
			t.Error("HasCheckedInToday = true, want false after rollover")
		}
		if got := s.Today().Date; got != "2025-03-10" {
			t.Errorf("Today.Date = %q, want 2025-03-10", got)
		}
	})

	t.Run("same day keeps the gate open", func(t *testing.T) {
		s, _ := setupTestStore(t)

		s.CompleteCheckIn()
		notes := "hard sparring"
		s.UpdateToday(models.DayPatch{Notes: &notes})

		rolled := s.CheckIfNewDay()
		if rolled {
			t.Error("CheckIfNewDay() = true, want no rollover on the same day")
		}
		if !s.HasCheckedInToday() {
			t.Error("HasCheckedInToday = false, want true when already checked in")
		}
		if got := s.Today().Notes; got != notes {
			t.Errorf("Today.Notes = %q, want the day record untouched", got)
		}
	})

	t.Run("idempotent within a day", func(t *testing.T) {
		s, _ := setupTestStore(t)

		s.CheckIfNewDay()
		first := s.Today()
		firstGate := s.HasCheckedInToday()

		s.CheckIfNewDay()
		if !reflect.DeepEqual(first, s.Today()) {
			t.Errorf("second call changed the day record: %+v vs %+v", first, s.Today())
		}
		if s.HasCheckedInToday() != firstGate {
			t.Errorf("second call changed the gate: %v vs %v", firstGate, s.HasCheckedInToday())
		}
	})

	t.Run("date advance discards the old record", func(t *testing.T) {
		s, now := setupTestStore(t)

		s.CompleteCheckIn()
		hours := 6.5
		s.UpdateToday(models.DayPatch{SleepHours: &hours})
		s.ToggleActivity("mma")

		*now = now.Add(24 * time.Hour)
		rolled := s.CheckIfNewDay()

		if !rolled {
			t.Error("CheckIfNewDay() = false, want rollover after a date change")
		}
		today := s.Today()
		if today.Date != "2025-03-11" {
			t.Errorf("Today.Date = %q, want 2025-03-11", today.Date)
		}
		if today.SleepHours != 0 || len(today.CompletedActivities) != 0 {
			t.Errorf("day record carried over transient data: %+v", today)
		}
		if s.HasCheckedInToday() {
			t.Error("HasCheckedInToday = true, want false after rollover")
		}
		if got := len(s.History()); got != 0 {
			t.Errorf("len(History) = %d, want 0 without archive-on-rollover", got)
		}
	})

	t.Run("archive on rollover preserves the outgoing day", func(t *testing.T) {
		s, now := setupTestStore(t)
		s.SetArchiveOnRollover(true)

		s.CompleteCheckIn()
		completeActivities(s, 6)

		*now = now.Add(24 * time.Hour)
		s.CheckIfNewDay()

		history := s.History()
		if len(history) != 1 {
			t.Fatalf("len(History) = %d, want 1", len(history))
		}
		if history[0].Date != "2025-03-10" {
			t.Errorf("archived Date = %q, want 2025-03-10", history[0].Date)
		}
		if s.Athlete().CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want the streak rule applied on archive", s.Athlete().CurrentStreak)
		}
	})

	t.Run("archive on rollover does not require a check-in", func(t *testing.T) {
		s, now := setupTestStore(t)
		s.SetArchiveOnRollover(true)

		// Train all day but never run the morning check-in.
		completeActivities(s, 6)

		*now = now.Add(24 * time.Hour)
		rolled := s.CheckIfNewDay()

		if !rolled {
			t.Error("CheckIfNewDay() = false, want rollover after a date change")
		}
		history := s.History()
		if len(history) != 1 {
			t.Fatalf("len(History) = %d, want the unchecked-in day archived", len(history))
		}
		if history[0].Date != "2025-03-10" {
			t.Errorf("archived Date = %q, want 2025-03-10", history[0].Date)
		}
		if s.Athlete().CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want the streak rule applied on archive", s.Athlete().CurrentStreak)
		}
	})
}

func TestCompleteCheckInIdempotent(t *testing.T) {
	s, _ := setupTestStore(t)

	s.CompleteCheckIn()
	first := s.Athlete()

	s.CompleteCheckIn()
	if !s.HasCheckedInToday() {
		t.Error("HasCheckedInToday = false, want true")
	}
	if !reflect.DeepEqual(first, s.Athlete()) {
		t.Error("second check-in changed the profile")
	}
}

func TestResetDay(t *testing.T) {
	s, _ := setupTestStore(t)

	completeActivities(s, 6)
	s.SaveDayToHistory()
	s.CompleteCheckIn()
	before := s.Athlete()

	s.ResetDay()

	if s.HasCheckedInToday() {
		t.Error("HasCheckedInToday = true, want false after ResetDay")
	}
	if got := len(s.Today().CompletedActivities); got != 0 {
		t.Errorf("len(CompletedActivities) = %d, want 0", got)
	}
	if got := len(s.History()); got != 1 {
		t.Errorf("len(History) = %d, want untouched 1", got)
	}
	if !reflect.DeepEqual(before, s.Athlete()) {
		t.Error("ResetDay changed the profile")
	}
}

func TestFreshInstallDefaults(t *testing.T) {
	s, _ := setupTestStore(t)

	athlete := s.Athlete()
	if athlete.TotalTrainingDays != 0 {
		t.Errorf("TotalTrainingDays = %d, want 0", athlete.TotalTrainingDays)
	}
	if s.HasCheckedInToday() {
		t.Error("HasCheckedInToday = true, want false on fresh install")
	}
	if got := len(s.History()); got != 0 {
		t.Errorf("len(History) = %d, want 0", got)
	}
}

func TestUpdateTodayMergesOnlyGivenFields(t *testing.T) {
	s, _ := setupTestStore(t)

	hours := 7.5
	mood := models.MoodFocused
	s.UpdateToday(models.DayPatch{SleepHours: &hours, Mood: &mood})

	energy := 85
	s.UpdateToday(models.DayPatch{Energy: &energy})

	today := s.Today()
	if today.SleepHours != 7.5 || today.Mood != models.MoodFocused || today.Energy != 85 {
		t.Errorf("merged record = %+v, want earlier fields preserved", today)
	}
}

func TestUpdateAthleteLeavesCountersAlone(t *testing.T) {
	s, _ := setupTestStore(t)

	completeActivities(s, 6)
	s.SaveDayToHistory()

	name := "Rafael"
	wins := 3
	s.UpdateAthlete(models.AthletePatch{Name: &name, Wins: &wins})

	athlete := s.Athlete()
	if athlete.Name != "Rafael" || athlete.Wins != 3 {
		t.Errorf("profile = %+v, want edits applied", athlete)
	}
	if athlete.CurrentStreak != 1 || athlete.TotalTrainingDays != 1 {
		t.Errorf("profile edit touched counters: %+v", athlete)
	}
}

func TestResetWipesEverything(t *testing.T) {
	s, _ := setupTestStore(t)

	completeActivities(s, 6)
	s.SaveDayToHistory()
	s.CompleteCheckIn()
	if _, err := s.AddSecret(models.CategoryMMA, models.SecretInput{Title: "Feint entry", Technique: "Jab feint to double"}); err != nil {
		t.Fatalf("AddSecret() returned unexpected error: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() returned unexpected error: %v", err)
	}

	if got := s.Athlete().TotalTrainingDays; got != 0 {
		t.Errorf("TotalTrainingDays = %d, want 0 after reset", got)
	}
	if got := len(s.History()); got != 0 {
		t.Errorf("len(History) = %d, want 0 after reset", got)
	}
	secrets, err := s.SecretsFor(models.CategoryMMA)
	if err != nil {
		t.Fatalf("SecretsFor() returned unexpected error: %v", err)
	}
	if len(secrets) != 0 {
		t.Errorf("len(secrets) = %d, want 0 after reset", len(secrets))
	}
}

func TestStateSurvivesReload(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	path := filepath.Join(t.TempDir(), "fightlog.json")

	s, err := New(storage.NewJSONStore(path), WithClock(clock))
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	completeActivities(s, 6)
	s.SaveDayToHistory()
	s.CompleteCheckIn()

	reloaded, err := New(storage.NewJSONStore(path), WithClock(clock))
	if err != nil {
		t.Fatalf("New() after reload returned unexpected error: %v", err)
	}
	if got := reloaded.Athlete().CurrentStreak; got != 1 {
		t.Errorf("reloaded CurrentStreak = %d, want 1", got)
	}
	if got := len(reloaded.History()); got != 1 {
		t.Errorf("reloaded len(History) = %d, want 1", got)
	}
	if reloaded.CheckIfNewDay() {
		t.Error("CheckIfNewDay() = true after reload on the same day, want false")
	}
	if !reloaded.HasCheckedInToday() {
		t.Error("reloaded HasCheckedInToday = false, want true")
	}
}
