package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nvandessel/rendezvous/internal/config"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/logging"
	"github.com/nvandessel/rendezvous/internal/random"
	"github.com/nvandessel/rendezvous/internal/rendezvous"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

// errRendezvousFailed makes the process exit non-zero after a search that
// ended without a meeting. The diagnostics have already been printed.
var errRendezvousFailed = errors.New("rendezvous failed")

// runResult is the JSON form of a single run.
type runResult struct {
	RunID         string             `json:"run_id"`
	Seed          uint64             `json:"seed"`
	Outcome       rendezvous.Outcome `json:"outcome"`
	Summary       rendezvous.Summary `json:"summary"`
	FirstHistory  []int              `json:"first_history,omitempty"`
	SecondHistory []int              `json:"second_history,omitempty"`
	Journal       string             `json:"journal,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Land two robots and let them find each other",
		Long: `Land two robots on the integer line and run the parachute search.

Landing positions are drawn from [-land_range, land_range] unless pinned with
--first-land and --second-land. Every run is seeded; the seed is printed so a
random run can be replayed with --seed.

Examples:
  rendezvous run                                  # Random landings
  rendezvous run --first-land -3 --second-land 5  # Meet at 21 after 16 steps
  rendezvous run --direction negative --history   # Show every position
  rendezvous run --max-steps 5 --json             # Fails: not enough steps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			showHistory, _ := cmd.Flags().GetBool("history")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			sc := scenarioFromFlags(cmd, cfg)
			sc.FirstName, _ = cmd.Flags().GetString("first")
			sc.SecondName, _ = cmd.Flags().GetString("second")
			if cmd.Flags().Changed("first-land") {
				p, _ := cmd.Flags().GetInt("first-land")
				sc.FirstLand = simulation.Landing(p)
			}
			if cmd.Flags().Changed("second-land") {
				p, _ := cmd.Flags().GetInt("second-land")
				sc.SecondLand = simulation.Landing(p)
			}
			printSummary := cfg.Search.PrintSummary
			if cmd.Flags().Changed("summary") {
				printSummary, _ = cmd.Flags().GetBool("summary")
			}

			runID := uuid.NewString()
			seed := seedFromFlags(cmd)
			sc.Name = runID

			sinks := []events.Sink{events.NewSlogSink(newLogger(cmd, cfg))}
			journal, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer journal.Close()
			if journal != nil {
				sinks = append(sinks, journal)
			}
			sink := events.WithFields(events.Multi(sinks...), events.FieldRunID, runID)

			res, err := simulation.NewRunner(random.NewSeeded(seed), sink).Run(sc)
			if err != nil {
				return fmt.Errorf("invalid run: %w", err)
			}

			if jsonOut {
				out := runResult{
					RunID:   runID,
					Seed:    seed,
					Outcome: res.Outcome,
					Summary: res.Summary,
					Journal: journal.Path(),
				}
				if showHistory {
					out.FirstHistory = res.First.History()
					out.SecondHistory = res.Second.History()
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else {
				printRun(cmd.OutOrStdout(), res, seed, printSummary, showHistory)
			}

			if !res.Outcome.Succeeded {
				return errRendezvousFailed
			}
			return nil
		},
	}

	addSearchFlags(cmd)
	cmd.Flags().String("first", "", "Name of the first robot (default: <robot.default_name> A)")
	cmd.Flags().String("second", "", "Name of the second robot (default: <robot.default_name> B)")
	cmd.Flags().Int("first-land", 0, "Pin the first robot's landing position")
	cmd.Flags().Int("second-land", 0, "Pin the second robot's landing position")
	cmd.Flags().Bool("summary", true, "Print the journey summary (overrides search.print_summary)")
	cmd.Flags().Bool("history", false, "Print every position each robot occupied")

	return cmd
}

// openJournal opens the robot journal when it is enabled. A nil journal is
// safe to use.
func openJournal(cfg *config.Config) (*logging.Journal, error) {
	if !cfg.Logging.Journal {
		return nil, nil
	}
	dir, err := cfg.JournalDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve journal directory: %w", err)
	}
	journal, err := logging.OpenJournal(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return journal, nil
}

func printRun(w io.Writer, res simulation.Result, seed uint64, printSummary, showHistory bool) {
	out := res.Outcome
	first, second := res.First.Name(), res.Second.Name()

	if m, ok := out.Meeting(); ok {
		color.New(color.FgGreen, color.Bold).Fprintf(w, "%s and %s found each other at %d after %d step(s)\n", first, second, m, out.StepsTaken)
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(w, "Rendezvous failed: %s\n", out.Reason)
		fmt.Fprintf(w, "  after %d step(s) %s is at %d and %s is at %d\n", out.StepsTaken, first, out.FirstPosition, second, out.SecondPosition)
		if errors.Is(out.Err, rendezvous.ErrIterationCapExceeded) {
			color.New(color.FgYellow).Fprintln(w, "  raise --max-steps or lower --land-range and try again")
		}
	}
	if by, at, ok := out.Discovery(); ok {
		fmt.Fprintf(w, "  parachute found by %s at %d\n", by, at)
	}
	fmt.Fprintf(w, "  seed %d\n", seed)

	if showHistory {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s: %s\n", first, joinInts(res.First.History()))
		fmt.Fprintf(w, "%s: %s\n", second, joinInts(res.Second.History()))
	}

	if printSummary && out.Succeeded {
		fmt.Fprintln(w)
		color.New(color.FgCyan).Fprintln(w, res.Summary.String())
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
