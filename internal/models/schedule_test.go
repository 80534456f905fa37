package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScheduleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routine.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write schedule file: %v", err)
	}
	return path
}

func TestLoadWeeklySchedule(t *testing.T) {
	t.Run("weekday names map to activities", func(t *testing.T) {
		path := writeScheduleFile(t, `{
			"Monday": [
				{"id": "run", "time": "07:00", "title": "ROADWORK", "type": "conditioning", "intensity": "medium"}
			],
			"saturday": [
				{"id": "openmat", "time": "FLEX", "title": "OPEN MAT", "type": "combat", "intensity": "medium"}
			]
		}`)

		schedule, err := LoadWeeklySchedule(path)
		if err != nil {
			t.Fatalf("LoadWeeklySchedule() returned unexpected error: %v", err)
		}

		monday := schedule.ActivitiesFor(time.Monday)
		if len(monday) != 1 || monday[0].ID != "run" {
			t.Errorf("Monday = %+v, want the roadwork entry", monday)
		}
		if got := schedule.ActivitiesFor(time.Saturday); len(got) != 1 {
			t.Errorf("Saturday = %+v, want one entry from the lowercase key", got)
		}
		if got := schedule.ActivitiesFor(time.Sunday); len(got) != 0 {
			t.Errorf("Sunday = %+v, want a rest day when absent from the file", got)
		}
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		path := writeScheduleFile(t, `{"funday": []}`)
		if _, err := LoadWeeklySchedule(path); err == nil {
			t.Error("LoadWeeklySchedule() = nil error, want failure on an unknown weekday")
		}
	})

	t.Run("entry without an id is rejected", func(t *testing.T) {
		path := writeScheduleFile(t, `{"monday": [{"title": "ROADWORK"}]}`)
		if _, err := LoadWeeklySchedule(path); err == nil {
			t.Error("LoadWeeklySchedule() = nil error, want failure on a missing id")
		}
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		if _, err := LoadWeeklySchedule(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("LoadWeeklySchedule() = nil error, want failure on a missing file")
		}
	})
}
