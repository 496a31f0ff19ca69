package simulation

import (
	"context"
	"fmt"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
)

// Stats aggregates a batch of random searches.
type Stats struct {
	Runs      int    `json:"runs"`
	Seed      uint64 `json:"seed"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`

	// CoLocated counts runs where both robots landed on the same position.
	CoLocated int `json:"co_located"`

	// FoundByFirst and FoundBySecond count which robot discovered the
	// other's parachute.
	FoundByFirst  int `json:"found_by_first"`
	FoundBySecond int `json:"found_by_second"`

	// Step statistics cover successful runs only.
	MinSteps  int     `json:"min_steps"`
	MaxSteps  int     `json:"max_steps"`
	MeanSteps float64 `json:"mean_steps"`

	// WorstGap is the largest landing distance seen in a failed run.
	WorstGap int `json:"worst_gap,omitempty"`
}

// SuccessRate returns the fraction of runs that met, or 0 for an empty batch.
func (s Stats) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Runs)
}

// Trials runs the scenario runs times with landings drawn from a source
// seeded with seed, so the same arguments always produce the same Stats.
// Pinned landings in the scenario are ignored. Events go to sink, which may
// be nil.
func Trials(ctx context.Context, scenario Scenario, runs int, seed uint64, sink events.Sink) (Stats, error) {
	if runs < 1 || runs > constants.MaxTrialRuns {
		return Stats{}, fmt.Errorf("runs must be between 1 and %d, got %d", constants.MaxTrialRuns, runs)
	}
	scenario.FirstLand = nil
	scenario.SecondLand = nil
	if err := scenario.Validate(); err != nil {
		return Stats{}, err
	}
	if runs*scenario.MaxSteps > constants.MaxTrialSteps {
		return Stats{}, fmt.Errorf("runs times max steps must be at most %d, got %d x %d",
			constants.MaxTrialSteps, runs, scenario.MaxSteps)
	}

	runner := NewRunner(random.NewSeeded(seed), sink)
	runner.record = false
	stats := Stats{Seed: seed}
	totalSteps := 0

	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("trials interrupted after %d runs: %w", stats.Runs, err)
		}

		res, err := runner.Run(scenario)
		if err != nil {
			return stats, err
		}
		stats.Runs++

		sum := res.Summary
		if sum.FirstLand == sum.SecondLand {
			stats.CoLocated++
		}
		if by, _, ok := res.Outcome.Discovery(); ok {
			if by == sum.FirstRobot {
				stats.FoundByFirst++
			} else {
				stats.FoundBySecond++
			}
		}

		if !res.Outcome.Succeeded {
			stats.Failed++
			if sum.TotalDistance > stats.WorstGap {
				stats.WorstGap = sum.TotalDistance
			}
			continue
		}

		steps := res.Outcome.StepsTaken
		if stats.Succeeded == 0 || steps < stats.MinSteps {
			stats.MinSteps = steps
		}
		if steps > stats.MaxSteps {
			stats.MaxSteps = steps
		}
		stats.Succeeded++
		totalSteps += steps
	}

	if stats.Succeeded > 0 {
		stats.MeanSteps = float64(totalSteps) / float64(stats.Succeeded)
	}
	return stats, nil
}
