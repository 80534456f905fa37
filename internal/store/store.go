package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/gcosta/fightlog/internal/constants"
	"github.com/gcosta/fightlog/internal/logger"
	"github.com/gcosta/fightlog/internal/models"
	"github.com/gcosta/fightlog/internal/storage"
	"github.com/gcosta/fightlog/internal/utils"
)

// Store is the single authoritative owner of the persisted state graph. Every
// mutation is applied in memory and then written through the provider; a
// failed write is logged and swallowed so no operation ever fails loudly over
// persistence. Mutations take the store lock whole — the entities are small
// and nothing here is hot-path, so coarse exclusion is enough.
type Store struct {
	provider storage.Provider
	clock    utils.Clock
	schedule models.WeeklySchedule

	mu    sync.Mutex
	state models.State
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock replaces the wall clock, letting tests drive day rollover with a
// fixed date.
func WithClock(clock utils.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithSchedule replaces the bundled weekly routine.
func WithSchedule(schedule models.WeeklySchedule) Option {
	return func(s *Store) {
		s.schedule = schedule
	}
}

// New loads the persisted state through the provider and returns a ready
// store. A missing or unreadable store yields defaults, never an error.
func New(provider storage.Provider, opts ...Option) (*Store, error) {
	s := &Store{
		provider: provider,
		clock:    utils.SystemClock,
		schedule: models.DefaultWeeklySchedule(),
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := provider.Load()
	if err != nil {
		return nil, err
	}
	s.state = state

	if s.state.Today.Date == "" {
		s.state.Today.Date = s.today()
	}

	return s, nil
}

// today returns the current calendar date in the configured timezone. An
// invalid timezone setting degrades to the system timezone.
func (s *Store) today() string {
	date, err := utils.TodayIn(s.clock(), s.state.Settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone setting, falling back to local", "timezone", s.state.Settings.Timezone)
		date, _ = utils.TodayIn(s.clock(), "Local")
	}
	return date
}

func (s *Store) weekday() time.Weekday {
	day, err := utils.WeekdayIn(s.clock(), s.state.Settings.Timezone)
	if err != nil {
		day, _ = utils.WeekdayIn(s.clock(), "Local")
	}
	return day
}

// persist writes the whole state graph through. Write failures are logged
// and swallowed.
func (s *Store) persist() {
	if err := s.provider.Save(s.state); err != nil {
		logger.Error("Failed to persist state", "error", err)
	}
}

// UpdateToday shallow-merges the patch into the current day record. Field
// domains are advisory here; the check-in surfaces only offer valid choices.
func (s *Store) UpdateToday(patch models.DayPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &s.state.Today
	if patch.WakeUpTime != nil {
		rec.WakeUpTime = *patch.WakeUpTime
	}
	if patch.SleepQuality != nil {
		rec.SleepQuality = *patch.SleepQuality
	}
	if patch.SleepHours != nil {
		rec.SleepHours = *patch.SleepHours
	}
	if patch.Mood != nil {
		rec.Mood = *patch.Mood
	}
	if patch.Energy != nil {
		rec.Energy = *patch.Energy
	}
	if patch.Pain != nil {
		rec.Pain = *patch.Pain
	}
	if patch.HadDreams != nil {
		rec.HadDreams = *patch.HadDreams
	}
	if patch.WokeUpAtNight != nil {
		rec.WokeUpAtNight = *patch.WokeUpAtNight
	}
	if patch.Notes != nil {
		rec.Notes = *patch.Notes
	}
	if patch.Weight != nil {
		rec.Weight = *patch.Weight
	}
	if patch.HeartRate != nil {
		rec.HeartRate = *patch.HeartRate
	}

	s.persist()
}

// CompleteCheckIn records today as the last-checked-in date and opens the
// dashboard. Calling it twice in the same day is a no-op the second time.
func (s *Store) CompleteCheckIn() {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.today()
	if err := s.provider.SetLastCheckIn(date); err != nil {
		logger.Error("Failed to record last check-in", "error", err)
	}
	s.state.HasCheckedInToday = true
	s.persist()
}

// ToggleActivity flips membership of the id in today's completed set. Ids are
// trusted; an id outside today's schedule is carried with no further effect.
func (s *Store) ToggleActivity(activityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := s.state.Today.CompletedActivities
	for i, id := range completed {
		if id == activityID {
			s.state.Today.CompletedActivities = append(completed[:i], completed[i+1:]...)
			s.persist()
			return
		}
	}
	s.state.Today.CompletedActivities = append(completed, activityID)
	s.persist()
}

// CompletionRate is the fraction of today's scheduled activities marked done.
// A day with nothing scheduled is exactly 0.
func (s *Store) CompletionRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completionRate()
}

func (s *Store) completionRate() float64 {
	scheduled := s.schedule.ActivitiesFor(s.weekday())
	if len(scheduled) == 0 {
		return 0
	}
	return float64(len(s.state.Today.CompletedActivities)) / float64(len(scheduled))
}

// SaveDayToHistory archives a snapshot of the current day and applies the
// streak rule. This is the only place the streak and training-day counters
// change: at or above the threshold the streak and total both advance, below
// it the streak resets to zero. The total never decreases.
func (s *Store) SaveDayToHistory() models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveDayToHistory()
}

func (s *Store) saveDayToHistory() models.HistoryEntry {
	rate := s.completionRate()

	snapshot := s.state.Today
	snapshot.CompletedActivities = append([]string{}, s.state.Today.CompletedActivities...)

	entry := models.HistoryEntry{
		DailyRecord:    snapshot,
		CompletionRate: rate,
		ArchivedAt:     s.clock().Format(time.RFC3339),
	}
	s.state.History = append(s.state.History, entry)

	if rate >= constants.StreakThreshold {
		s.state.Athlete.CurrentStreak++
		s.state.Athlete.TotalTrainingDays++
		if s.state.Athlete.CurrentStreak > s.state.Athlete.BestStreak {
			s.state.Athlete.BestStreak = s.state.Athlete.CurrentStreak
		}
	} else {
		s.state.Athlete.CurrentStreak = 0
	}

	s.persist()
	return entry
}

// ResetDay replaces the current day record with a fresh one stamped with
// today's date and closes the check-in gate. History and the profile are
// untouched.
func (s *Store) ResetDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetDay()
}

func (s *Store) resetDay() {
	s.state.Today = models.NewDailyRecord(s.today())
	s.state.HasCheckedInToday = false
	s.persist()
}

// CheckIfNewDay is the once-per-activation rollover transition. When the
// stored last-check-in date differs from today (including the never-checked-in
// case) the transient day record is discarded and the gate closes; when it
// matches, the gate stays open. Archiving on rollover is opt-in: by default
// a day the user never archived explicitly is simply lost, matching the
// manual-archive model. With the setting enabled any outgoing day is
// archived, checked in or not; the date guard keeps a fresh install from
// archiving its own first day. It reports whether a rollover happened.
func (s *Store) CheckIfNewDay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, err := s.provider.LastCheckIn()
	if err != nil {
		logger.Warn("Failed to read last check-in, treating as first run", "error", err)
		last = ""
	}

	date := s.today()
	if last == date {
		s.state.HasCheckedInToday = true
		s.persist()
		return false
	}

	if s.state.Settings.ArchiveOnRollover && s.state.Today.Date != "" && s.state.Today.Date != date {
		logger.Info("Archiving outgoing day on rollover", "date", s.state.Today.Date)
		s.saveDayToHistory()
	}

	s.resetDay()
	return true
}

// UpdateAthlete merges profile edits. The streak and training-day counters
// are owned by the archive step and cannot be patched here.
func (s *Store) UpdateAthlete(patch models.AthletePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &s.state.Athlete
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Age != nil {
		a.Age = *patch.Age
	}
	if patch.Category != nil {
		a.Category = *patch.Category
	}
	if patch.Level != nil {
		a.Level = *patch.Level
	}
	if patch.Photos != nil {
		a.Photos = append([]string{}, (*patch.Photos)...)
	}
	if patch.Wins != nil {
		a.Wins = *patch.Wins
	}
	if patch.Losses != nil {
		a.Losses = *patch.Losses
	}
	if patch.Draws != nil {
		a.Draws = *patch.Draws
	}

	s.persist()
}

// SetTimezone updates the timezone used for day-boundary detection.
func (s *Store) SetTimezone(timezone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !utils.ValidateTimezone(timezone) {
		return fmt.Errorf("invalid timezone %q", timezone)
	}
	s.state.Settings.Timezone = timezone
	s.persist()
	return nil
}

// SetArchiveOnRollover toggles automatic archival of the outgoing day.
func (s *Store) SetArchiveOnRollover(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings.ArchiveOnRollover = enabled
	s.persist()
}

// Reset wipes the persisted store and returns every entity to its default.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.provider.Reset(); err != nil {
		return err
	}
	s.state = models.DefaultState(s.today())
	s.persist()
	return nil
}

// Read accessors. Slices are copied so callers cannot reach into the store's
// own state.

func (s *Store) Athlete() models.Athlete {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.state.Athlete
	a.Photos = append([]string{}, s.state.Athlete.Photos...)
	return a
}

func (s *Store) Today() models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.state.Today
	rec.CompletedActivities = append([]string{}, s.state.Today.CompletedActivities...)
	return rec
}

func (s *Store) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HistoryEntry{}, s.state.History...)
}

func (s *Store) HasCheckedInToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasCheckedInToday
}

func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Schedule returns the weekly routine. It is static configuration and safe
// to share.
func (s *Store) Schedule() models.WeeklySchedule {
	return s.schedule
}

// TodayActivities returns the scheduled activities for the current weekday.
func (s *Store) TodayActivities() []models.ScheduledActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.ActivitiesFor(s.weekday())
}

// TodayDate returns the current calendar date in the configured timezone.
func (s *Store) TodayDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.today()
}
