package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

func newTrialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Run many random searches and report statistics",
		Long: `Run many seeded random searches with the current settings and report how
many met, how many ran out of steps, and how long the successful ones took.

Trials are not journaled.

Examples:
  rendezvous trials                              # 100 runs with the configured settings
  rendezvous trials --runs 10000 --seed 7        # Repeatable batch
  rendezvous trials --land-range 500 --max-steps 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			runs, _ := cmd.Flags().GetInt("runs")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sc := scenarioFromFlags(cmd, cfg)
			seed := seedFromFlags(cmd)

			ctx, cancel := withSignals(cmd.Context())
			defer cancel()

			stats, err := simulation.Trials(ctx, sc, runs, seed, nil)
			if err != nil {
				return fmt.Errorf("trials failed: %w", err)
			}

			if jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(stats); err != nil {
					return fmt.Errorf("failed to encode stats: %w", err)
				}
				return nil
			}
			printTrials(cmd.OutOrStdout(), stats, sc)
			return nil
		},
	}

	addSearchFlags(cmd)
	cmd.Flags().Int("runs", constants.DefaultTrialRuns, fmt.Sprintf("Number of searches (1-%d)", constants.MaxTrialRuns))

	return cmd
}

func printTrials(w io.Writer, st simulation.Stats, sc simulation.Scenario) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "Trials: %d run(s), seed %d\n", st.Runs, st.Seed)
	fmt.Fprintf(w, "  met:           %d (%.1f%%)\n", st.Succeeded, 100*st.SuccessRate())
	fmt.Fprintf(w, "  ran out:       %d\n", st.Failed)
	if st.Succeeded > 0 {
		fmt.Fprintf(w, "  steps:         min %d, mean %.1f, max %d\n", st.MinSteps, st.MeanSteps, st.MaxSteps)
	}
	fmt.Fprintf(w, "  found by:      first %d, second %d\n", st.FoundByFirst, st.FoundBySecond)
	fmt.Fprintf(w, "  same landing:  %d\n", st.CoLocated)

	if st.Failed == 0 {
		return
	}
	fmt.Fprintf(w, "  widest failing gap: %d\n", st.WorstGap)
	// With factor 2 at unit speed a gap d takes exactly 2d steps, and gaps
	// never exceed twice the landing range.
	if sc.Acceleration == 2 && sc.UnitSpeed == 1 {
		color.New(color.FgYellow).Fprintf(w, "  max_steps of %d covers every landing in [-%d, %d]\n", 4*sc.LandRange, sc.LandRange, sc.LandRange)
	}
}
