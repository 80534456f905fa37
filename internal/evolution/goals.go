package evolution

import (
	"fmt"

	"github.com/gcosta/fightlog/internal/constants"
)

// Goal is one tracked target compared against the trailing average.
type Goal struct {
	Key     string  `json:"key"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Met     bool    `json:"met"`
	Message string  `json:"message"`
}

// AdaptiveGoals measures the trailing averages against the fixed targets and
// phrases the gap per metric. It returns nil when there is no trend data yet.
func AdaptiveGoals(trends *Trends) []Goal {
	if trends == nil {
		return nil
	}

	sleep := Goal{
		Key:     "sleep",
		Target:  constants.SleepGoalHours,
		Current: trends.AvgSleepHours,
	}
	if sleep.Met = sleep.Current >= sleep.Target; sleep.Met {
		sleep.Message = fmt.Sprintf("Sleep on target: averaging %.1fh against an %.0fh goal.", sleep.Current, sleep.Target)
	} else {
		sleep.Message = fmt.Sprintf("Sleep %.1fh short of the %.0fh goal. Move bedtime earlier.", sleep.Target-sleep.Current, sleep.Target)
	}

	energy := Goal{
		Key:     "energy",
		Target:  constants.EnergyGoal,
		Current: trends.AvgEnergy,
	}
	if energy.Met = energy.Current >= energy.Target; energy.Met {
		energy.Message = fmt.Sprintf("Energy on target: averaging %.0f%% against a %.0f%% goal.", energy.Current, energy.Target)
	} else {
		energy.Message = fmt.Sprintf("Energy %.0f points below the %.0f%% goal. Check fuel and rest.", energy.Target-energy.Current, energy.Target)
	}

	completion := Goal{
		Key:     "completion",
		Target:  constants.CompletionGoal,
		Current: trends.AvgCompletion,
	}
	if completion.Met = completion.Current >= completion.Target; completion.Met {
		completion.Message = fmt.Sprintf("Completion on target: averaging %.0f%% of scheduled work.", completion.Current*100)
	} else {
		completion.Message = fmt.Sprintf("Completion at %.0f%%, below the %.0f%% streak threshold.", completion.Current*100, completion.Target*100)
	}

	return []Goal{sleep, energy, completion}
}
