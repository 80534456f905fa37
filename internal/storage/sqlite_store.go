package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/gcosta/fightlog/internal/logger"
	"github.com/gcosta/fightlog/internal/models"
)

// SQLiteStore persists the state graph in a single SQLite database. The
// whole graph is rewritten inside one transaction per Save; the entities are
// small and mutations are not hot-path.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS athlete (
	id                  INTEGER PRIMARY KEY CHECK (id = 1),
	name                TEXT NOT NULL,
	age                 INTEGER NOT NULL,
	category            TEXT NOT NULL,
	level               TEXT NOT NULL,
	photos              TEXT NOT NULL,
	total_training_days INTEGER NOT NULL,
	current_streak      INTEGER NOT NULL,
	best_streak         INTEGER NOT NULL,
	wins                INTEGER NOT NULL,
	losses              INTEGER NOT NULL,
	draws               INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS today (
	id                   INTEGER PRIMARY KEY CHECK (id = 1),
	date                 TEXT NOT NULL,
	wake_up_time         TEXT NOT NULL,
	sleep_quality        TEXT NOT NULL,
	sleep_hours          REAL NOT NULL,
	mood                 TEXT NOT NULL,
	energy               INTEGER NOT NULL,
	pain                 TEXT NOT NULL,
	had_dreams           INTEGER NOT NULL,
	woke_up_at_night     INTEGER NOT NULL,
	notes                TEXT NOT NULL,
	weight               REAL NOT NULL,
	heart_rate           INTEGER NOT NULL,
	completed_activities TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
	date                 TEXT NOT NULL,
	wake_up_time         TEXT NOT NULL,
	sleep_quality        TEXT NOT NULL,
	sleep_hours          REAL NOT NULL,
	mood                 TEXT NOT NULL,
	energy               INTEGER NOT NULL,
	pain                 TEXT NOT NULL,
	had_dreams           INTEGER NOT NULL,
	woke_up_at_night     INTEGER NOT NULL,
	notes                TEXT NOT NULL,
	weight               REAL NOT NULL,
	heart_rate           INTEGER NOT NULL,
	completed_activities TEXT NOT NULL,
	completion_rate      REAL NOT NULL,
	archived_at          TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS secrets (
	id         TEXT PRIMARY KEY,
	category   TEXT NOT NULL,
	position   INTEGER NOT NULL,
	title      TEXT NOT NULL,
	technique  TEXT NOT NULL,
	situation  TEXT NOT NULL,
	details    TEXT NOT NULL,
	reminder   TEXT NOT NULL,
	favorite   INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT
);
`

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.ensureOpen(); err != nil {
		return err
	}

	return s.Save(models.DefaultState(""))
}

// Load assembles the state graph from the database. Any failure degrades to
// the default state: a store that cannot be read is treated as absent.
func (s *SQLiteStore) Load() (models.State, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.DefaultState(""), nil
	}

	if err := s.ensureOpen(); err != nil {
		logger.Warn("Failed to open storage, using defaults", "path", s.path, "error", err)
		return models.DefaultState(""), nil
	}

	state := models.DefaultState("")

	if err := s.loadAthlete(&state); err != nil {
		logger.Warn("Stored athlete is unreadable, using defaults", "error", err)
		return models.DefaultState(""), nil
	}
	if err := s.loadToday(&state); err != nil {
		logger.Warn("Stored day record is unreadable, using defaults", "error", err)
		return models.DefaultState(""), nil
	}
	if err := s.loadHistory(&state); err != nil {
		logger.Warn("Stored history is unreadable, using defaults", "error", err)
		return models.DefaultState(""), nil
	}
	if err := s.loadSecrets(&state); err != nil {
		logger.Warn("Stored secrets are unreadable, using defaults", "error", err)
		return models.DefaultState(""), nil
	}
	if err := s.loadMeta(&state); err != nil {
		logger.Warn("Stored settings are unreadable, using defaults", "error", err)
		return models.DefaultState(""), nil
	}

	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) loadAthlete(state *models.State) error {
	row := s.db.QueryRow(`
		SELECT name, age, category, level, photos, total_training_days,
		       current_streak, best_streak, wins, losses, draws
		FROM athlete WHERE id = 1`)

	var a models.Athlete
	var photos string
	err := row.Scan(&a.Name, &a.Age, &a.Category, &a.Level, &photos,
		&a.TotalTrainingDays, &a.CurrentStreak, &a.BestStreak,
		&a.Wins, &a.Losses, &a.Draws)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	if photos != "" {
		if err := json.Unmarshal([]byte(photos), &a.Photos); err != nil {
			return fmt.Errorf("failed to parse photos: %w", err)
		}
	}
	state.Athlete = a
	return nil
}

func scanRecord(row interface{ Scan(...any) error }, rec *models.DailyRecord, extra ...any) error {
	var hadDreams, wokeUpAtNight int
	var completed string

	dest := []any{
		&rec.Date, &rec.WakeUpTime, &rec.SleepQuality, &rec.SleepHours,
		&rec.Mood, &rec.Energy, &rec.Pain, &hadDreams, &wokeUpAtNight,
		&rec.Notes, &rec.Weight, &rec.HeartRate, &completed,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	rec.HadDreams = hadDreams != 0
	rec.WokeUpAtNight = wokeUpAtNight != 0
	if completed != "" {
		if err := json.Unmarshal([]byte(completed), &rec.CompletedActivities); err != nil {
			return fmt.Errorf("failed to parse completed activities: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadToday(state *models.State) error {
	row := s.db.QueryRow(`
		SELECT date, wake_up_time, sleep_quality, sleep_hours, mood, energy,
		       pain, had_dreams, woke_up_at_night, notes, weight, heart_rate,
		       completed_activities
		FROM today WHERE id = 1`)

	var rec models.DailyRecord
	err := scanRecord(row, &rec)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	state.Today = rec
	return nil
}

func (s *SQLiteStore) loadHistory(state *models.State) error {
	rows, err := s.db.Query(`
		SELECT date, wake_up_time, sleep_quality, sleep_hours, mood, energy,
		       pain, had_dreams, woke_up_at_night, notes, weight, heart_rate,
		       completed_activities, completion_rate, archived_at
		FROM history ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var history []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		if err := scanRecord(rows, &entry.DailyRecord, &entry.CompletionRate, &entry.ArchivedAt); err != nil {
			return err
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	state.History = history
	return nil
}

func (s *SQLiteStore) loadSecrets(state *models.State) error {
	rows, err := s.db.Query(`
		SELECT id, category, title, technique, situation, details, reminder,
		       favorite, created_at, updated_at
		FROM secrets ORDER BY category, position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	secrets := models.NewSecretsLibrary()
	for rows.Next() {
		var sec models.Secret
		var category string
		var favorite int
		var updatedAt sql.NullString

		err := rows.Scan(&sec.ID, &category, &sec.Title, &sec.Technique,
			&sec.Situation, &sec.Details, &sec.Reminder, &favorite,
			&sec.CreatedAt, &updatedAt)
		if err != nil {
			return err
		}
		sec.Favorite = favorite != 0
		if updatedAt.Valid {
			sec.UpdatedAt = updatedAt.String
		}

		cat := models.Category(category)
		if !cat.Valid() {
			// Rows for retired categories are skipped rather than
			// resurrected into the closed set.
			continue
		}
		secrets[cat] = append(secrets[cat], sec)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	state.Secrets = secrets
	return nil
}

func (s *SQLiteStore) loadMeta(state *models.State) error {
	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case "version":
			if v, err := strconv.Atoi(value); err == nil {
				state.Version = v
			}
		case "has_checked_in_today":
			state.HasCheckedInToday = value == "1"
		case "timezone":
			state.Settings.Timezone = value
		case "archive_on_rollover":
			state.Settings.ArchiveOnRollover = value == "1"
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Save(state models.State) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	photos, err := json.Marshal(state.Athlete.Photos)
	if err != nil {
		return fmt.Errorf("failed to serialize photos: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO athlete (id, name, age, category, level, photos,
			total_training_days, current_streak, best_streak, wins, losses, draws)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			category = excluded.category,
			level = excluded.level,
			photos = excluded.photos,
			total_training_days = excluded.total_training_days,
			current_streak = excluded.current_streak,
			best_streak = excluded.best_streak,
			wins = excluded.wins,
			losses = excluded.losses,
			draws = excluded.draws`,
		state.Athlete.Name, state.Athlete.Age, state.Athlete.Category,
		state.Athlete.Level, string(photos), state.Athlete.TotalTrainingDays,
		state.Athlete.CurrentStreak, state.Athlete.BestStreak,
		state.Athlete.Wins, state.Athlete.Losses, state.Athlete.Draws)
	if err != nil {
		return fmt.Errorf("failed to save athlete: %w", err)
	}

	if err := saveToday(tx, state.Today); err != nil {
		return err
	}
	if err := saveHistory(tx, state.History); err != nil {
		return err
	}
	if err := saveSecrets(tx, state.Secrets); err != nil {
		return err
	}
	if err := saveMeta(tx, state); err != nil {
		return err
	}

	return tx.Commit()
}

func saveToday(tx *sql.Tx, rec models.DailyRecord) error {
	completed, err := json.Marshal(rec.CompletedActivities)
	if err != nil {
		return fmt.Errorf("failed to serialize completed activities: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO today (id, date, wake_up_time, sleep_quality, sleep_hours,
			mood, energy, pain, had_dreams, woke_up_at_night, notes, weight,
			heart_rate, completed_activities)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			wake_up_time = excluded.wake_up_time,
			sleep_quality = excluded.sleep_quality,
			sleep_hours = excluded.sleep_hours,
			mood = excluded.mood,
			energy = excluded.energy,
			pain = excluded.pain,
			had_dreams = excluded.had_dreams,
			woke_up_at_night = excluded.woke_up_at_night,
			notes = excluded.notes,
			weight = excluded.weight,
			heart_rate = excluded.heart_rate,
			completed_activities = excluded.completed_activities`,
		rec.Date, rec.WakeUpTime, string(rec.SleepQuality), rec.SleepHours,
		string(rec.Mood), rec.Energy, string(rec.Pain),
		boolToInt(rec.HadDreams), boolToInt(rec.WokeUpAtNight),
		rec.Notes, rec.Weight, rec.HeartRate, string(completed))
	if err != nil {
		return fmt.Errorf("failed to save day record: %w", err)
	}
	return nil
}

func saveHistory(tx *sql.Tx, history []models.HistoryEntry) error {
	// History is append-only from the store's point of view; rewriting the
	// table keeps Save a plain whole-state operation.
	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	for _, entry := range history {
		completed, err := json.Marshal(entry.CompletedActivities)
		if err != nil {
			return fmt.Errorf("failed to serialize completed activities: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO history (date, wake_up_time, sleep_quality,
				sleep_hours, mood, energy, pain, had_dreams,
				woke_up_at_night, notes, weight, heart_rate,
				completed_activities, completion_rate, archived_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.Date, entry.WakeUpTime, string(entry.SleepQuality),
			entry.SleepHours, string(entry.Mood), entry.Energy,
			string(entry.Pain), boolToInt(entry.HadDreams),
			boolToInt(entry.WokeUpAtNight), entry.Notes, entry.Weight,
			entry.HeartRate, string(completed), entry.CompletionRate,
			entry.ArchivedAt)
		if err != nil {
			return fmt.Errorf("failed to save history entry: %w", err)
		}
	}
	return nil
}

func saveSecrets(tx *sql.Tx, secrets models.SecretsLibrary) error {
	if _, err := tx.Exec(`DELETE FROM secrets`); err != nil {
		return fmt.Errorf("failed to clear secrets: %w", err)
	}
	for _, cat := range models.Categories() {
		for pos, sec := range secrets[cat] {
			var updatedAt sql.NullString
			if sec.UpdatedAt != "" {
				updatedAt = sql.NullString{String: sec.UpdatedAt, Valid: true}
			}
			_, err := tx.Exec(`
				INSERT INTO secrets (id, category, position, title, technique,
					situation, details, reminder, favorite, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sec.ID, string(cat), pos, sec.Title, sec.Technique,
				sec.Situation, sec.Details, sec.Reminder,
				boolToInt(sec.Favorite), sec.CreatedAt, updatedAt)
			if err != nil {
				return fmt.Errorf("failed to save secret: %w", err)
			}
		}
	}
	return nil
}

func saveMeta(tx *sql.Tx, state models.State) error {
	values := map[string]string{
		"version":              fmt.Sprintf("%d", state.Version),
		"has_checked_in_today": boolToMeta(state.HasCheckedInToday),
		"timezone":             state.Settings.Timezone,
		"archive_on_rollover":  boolToMeta(state.Settings.ArchiveOnRollover),
	}
	for key, value := range values {
		_, err := tx.Exec(`
			INSERT INTO meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("failed to save meta %s: %w", key, err)
		}
	}
	return nil
}

// Reset closes the connection and removes the database file.
func (s *SQLiteStore) Reset() error {
	if err := s.Close(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove storage: %w", err)
	}
	return nil
}

// LastCheckIn returns the stored date string, or "" when never checked in.
func (s *SQLiteStore) LastCheckIn() (string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return "", nil
	}
	if err := s.ensureOpen(); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_checkin'`).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last check-in: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) SetLastCheckIn(date string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_checkin', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, date)
	if err != nil {
		return fmt.Errorf("failed to write last check-in: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolToMeta(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
