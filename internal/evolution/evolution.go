// Package evolution derives comparison, trend, and advice data from the
// history log. Everything here is a pure function of an immutable history
// snapshot plus today's record; nothing is cached on the entities.
package evolution

import (
	"github.com/montanaflynn/stats"

	"github.com/gcosta/fightlog/internal/constants"
	"github.com/gcosta/fightlog/internal/models"
)

// Comparison is today's metrics against the most recent archived entry.
type Comparison struct {
	SleepDiff      float64 `json:"sleep_diff"`
	EnergyDiff     float64 `json:"energy_diff"`
	CompletionDiff float64 `json:"completion_diff"`
}

// Compare diffs today against the last archived entry. It returns nil when
// the history holds nothing to compare against.
func Compare(today models.DailyRecord, todayRate float64, history []models.HistoryEntry) *Comparison {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	return &Comparison{
		SleepDiff:      today.SleepHours - last.SleepHours,
		EnergyDiff:     float64(today.Energy - last.Energy),
		CompletionDiff: todayRate - last.CompletionRate,
	}
}

// Direction is the coarse trend classification. A flat window classifies as
// declining so the answer is deterministic.
type Direction string

const (
	Improving Direction = "improving"
	Declining Direction = "declining"
)

// Trends holds trailing-window averages and per-metric directions.
type Trends struct {
	Window        int       `json:"window"`
	AvgSleepHours float64   `json:"avg_sleep_hours"`
	AvgEnergy     float64   `json:"avg_energy"`
	AvgCompletion float64   `json:"avg_completion"`
	Sleep         Direction `json:"sleep"`
	Energy        Direction `json:"energy"`
	Completion    Direction `json:"completion"`
}

// AnalyzeTrends averages the most recent window of history entries and
// classifies each metric by comparing the earlier half of the window against
// the later half. It returns nil when the history is empty.
func AnalyzeTrends(history []models.HistoryEntry) *Trends {
	if len(history) == 0 {
		return nil
	}

	window := history
	if len(window) > constants.TrendWindow {
		window = window[len(window)-constants.TrendWindow:]
	}

	sleep := make([]float64, len(window))
	energy := make([]float64, len(window))
	completion := make([]float64, len(window))
	for i, entry := range window {
		sleep[i] = entry.SleepHours
		energy[i] = float64(entry.Energy)
		completion[i] = entry.CompletionRate
	}

	return &Trends{
		Window:        len(window),
		AvgSleepHours: mean(sleep),
		AvgEnergy:     mean(energy),
		AvgCompletion: mean(completion),
		Sleep:         direction(sleep),
		Energy:        direction(energy),
		Completion:    direction(completion),
	}
}

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// direction compares the earlier-half mean to the later-half mean. A window
// too small to split, or a tie, classifies as declining.
func direction(values []float64) Direction {
	if len(values) < 2 {
		return Declining
	}
	mid := len(values) / 2
	earlier := mean(values[:mid])
	later := mean(values[mid:])
	if later > earlier {
		return Improving
	}
	return Declining
}
