package main

import (
	"github.com/spf13/cobra"

	"github.com/nvandessel/rendezvous/internal/config"
	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/random"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

// addSearchFlags registers the flags shared by run and trials. Unset flags
// fall back to the configuration.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("direction", "", "Common starting heading: positive or negative")
	cmd.Flags().Int("unit-speed", 0, "Starting speed of both robots")
	cmd.Flags().Int("land-range", 0, "R for the landing interval [-R, R]")
	cmd.Flags().Int("acceleration", 0, "Factor applied to the robot that finds a parachute")
	cmd.Flags().Int("max-steps", 0, "Maximum number of lockstep moves")
	cmd.Flags().Uint64("seed", 0, "Seed for random landings (default: random)")
}

// scenarioFromFlags builds a scenario from cfg, overridden by any search
// flag the user set.
func scenarioFromFlags(cmd *cobra.Command, cfg *config.Config) simulation.Scenario {
	sc := simulation.Scenario{
		BaseName:     cfg.Robot.DefaultName,
		Direction:    cfg.Robot.DefaultDirection,
		UnitSpeed:    cfg.Robot.UnitSpeed,
		LandRange:    cfg.Robot.LandRange,
		Acceleration: cfg.Robot.Acceleration,
		MaxSteps:     cfg.Search.MaxSteps,
	}

	flags := cmd.Flags()
	if flags.Changed("direction") {
		d, _ := flags.GetString("direction")
		sc.Direction = constants.Direction(d)
	}
	if flags.Changed("unit-speed") {
		sc.UnitSpeed, _ = flags.GetInt("unit-speed")
	}
	if flags.Changed("land-range") {
		sc.LandRange, _ = flags.GetInt("land-range")
	}
	if flags.Changed("acceleration") {
		sc.Acceleration, _ = flags.GetInt("acceleration")
	}
	if flags.Changed("max-steps") {
		sc.MaxSteps, _ = flags.GetInt("max-steps")
	}
	return sc
}

// seedFromFlags returns the --seed value, or a fresh random seed when unset.
func seedFromFlags(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	return random.NewSeed()
}
