package constants

const (
	// Insight thresholds. Energy is on the 0-100 scale the check-in
	// captures; diffs are day-over-day against the last archived entry.
	LowEnergyThreshold    = 50
	HighEnergyThreshold   = 80
	EnergyDropThreshold   = 15.0
	SleepDropThresholdHrs = 1.5
	StreakMilestoneDays   = 7

	// Adaptive goal targets
	SleepGoalHours = 8.0
	EnergyGoal     = 70.0
	CompletionGoal = 0.8
)
