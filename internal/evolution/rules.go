package evolution

import (
	"github.com/gcosta/fightlog/internal/constants"
	"github.com/gcosta/fightlog/internal/models"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Insight is one triggered rule: an improvement to celebrate or a problem
// with a recommendation.
type Insight struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Snapshot is the read-only input the rule set evaluates against.
type Snapshot struct {
	Today      models.DailyRecord
	Streak     int
	Comparison *Comparison
	Trends     *Trends
}

type rule struct {
	key      string
	title    string
	message  string
	severity Severity
	positive bool
	applies  func(Snapshot) bool
}

// The rule table. Rules are stateless predicates over the snapshot; adding
// an insight means adding a row, not a branch.
var rules = []rule{
	{
		key:      "sleep_poor",
		title:    "SLEEP ALERT",
		message:  "Poor sleep quality detected. Recovery compromised. Adjust training intensity.",
		severity: SeverityHigh,
		applies: func(s Snapshot) bool {
			return s.Today.SleepQuality == models.SleepPoor
		},
	},
	{
		key:      "sleep_excellent",
		title:    "OPTIMAL RECOVERY",
		message:  "Excellent sleep quality. Body primed for intense training.",
		severity: SeverityLow,
		positive: true,
		applies: func(s Snapshot) bool {
			return s.Today.SleepQuality == models.SleepExcellent
		},
	},
	{
		key:      "energy_low",
		title:    "LOW ENERGY",
		message:  "Energy below 50%. Consider lighter training or active recovery.",
		severity: SeverityMedium,
		applies: func(s Snapshot) bool {
			return s.Today.Energy < constants.LowEnergyThreshold
		},
	},
	{
		key:      "energy_high",
		title:    "HIGH ENERGY",
		message:  "Energy levels optimal. Perfect for high-intensity sessions.",
		severity: SeverityLow,
		positive: true,
		applies: func(s Snapshot) bool {
			return s.Today.Energy > constants.HighEnergyThreshold
		},
	},
	{
		key:      "pain",
		title:    "INJURY RISK",
		message:  "Pain detected. Consider physiotherapy or rest. Do not push through pain.",
		severity: SeverityHigh,
		applies: func(s Snapshot) bool {
			return s.Today.Pain == models.PainModerate || s.Today.Pain == models.PainSevere
		},
	},
	{
		key:      "sleep_disruption",
		title:    "SLEEP DISRUPTION",
		message:  "Night waking detected. Check hydration and room temperature.",
		severity: SeverityMedium,
		applies: func(s Snapshot) bool {
			return s.Today.WokeUpAtNight
		},
	},
	{
		key:      "streak_milestone",
		title:    "STREAK MILESTONE",
		message:  "Consistency is building champions. Keep the momentum.",
		severity: SeverityLow,
		positive: true,
		applies: func(s Snapshot) bool {
			return s.Streak >= constants.StreakMilestoneDays
		},
	},
	{
		key:      "energy_drop",
		title:    "ENERGY DROP",
		message:  "Energy well below yesterday. Prioritize fuel and recovery before the next session.",
		severity: SeverityHigh,
		applies: func(s Snapshot) bool {
			return s.Comparison != nil && s.Comparison.EnergyDiff <= -constants.EnergyDropThreshold
		},
	},
	{
		key:      "sleep_drop",
		title:    "SLEEP DEFICIT",
		message:  "Noticeably less sleep than yesterday. Plan an earlier night.",
		severity: SeverityMedium,
		applies: func(s Snapshot) bool {
			return s.Comparison != nil && s.Comparison.SleepDiff <= -constants.SleepDropThresholdHrs
		},
	},
	{
		key:      "completion_rising",
		title:    "WORK RATE CLIMBING",
		message:  "Completion trend is up across the week. The plan is working.",
		severity: SeverityLow,
		positive: true,
		applies: func(s Snapshot) bool {
			return s.Trends != nil && s.Trends.Window >= 2 && s.Trends.Completion == Improving
		},
	},
	{
		key:      "energy_rising",
		title:    "ENERGY CLIMBING",
		message:  "Energy trend is up across the week. Recovery is paying off.",
		severity: SeverityLow,
		positive: true,
		applies: func(s Snapshot) bool {
			return s.Trends != nil && s.Trends.Window >= 2 && s.Trends.Energy == Improving
		},
	},
}

// Evaluate runs the rule table over the snapshot and splits the triggered
// rows into improvements and problems, in table order.
func Evaluate(snap Snapshot) (improvements, problems []Insight) {
	for _, r := range rules {
		if !r.applies(snap) {
			continue
		}
		insight := Insight{Key: r.key, Title: r.title, Message: r.message, Severity: r.severity}
		if r.positive {
			improvements = append(improvements, insight)
		} else {
			problems = append(problems, insight)
		}
	}
	return improvements, problems
}
