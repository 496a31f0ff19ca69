package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

// registerTools registers all rendezvous tools with the MCP server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolRun,
		Description: "Land two robots on an integer line and run the parachute rendezvous search between them. Returns where and when they met, or why they did not.",
	}, s.handleRun)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolTrials,
		Description: "Run many seeded random rendezvous searches and report success counts and step statistics. Useful for choosing max_steps for a land_range.",
	}, s.handleTrials)
}

// scenario builds a Scenario from the server settings, overridden by any
// argument the caller set.
func (s *Server) scenario(direction string, unitSpeed, landRange, acceleration, maxSteps *int) simulation.Scenario {
	sc := simulation.Scenario{
		BaseName:     s.settings.Robot.DefaultName,
		Direction:    s.settings.Robot.DefaultDirection,
		UnitSpeed:    s.settings.Robot.UnitSpeed,
		LandRange:    s.settings.Robot.LandRange,
		Acceleration: s.settings.Robot.Acceleration,
		MaxSteps:     s.settings.Search.MaxSteps,
	}
	if direction != "" {
		sc.Direction = constants.Direction(direction)
	}
	if unitSpeed != nil {
		sc.UnitSpeed = *unitSpeed
	}
	if landRange != nil {
		sc.LandRange = *landRange
	}
	if acceleration != nil {
		sc.Acceleration = *acceleration
	}
	if maxSteps != nil {
		sc.MaxSteps = *maxSteps
	}
	return sc
}

// handleRun implements the rendezvous_run tool.
func (s *Server) handleRun(ctx context.Context, req *sdk.CallToolRequest, args RunInput) (_ *sdk.CallToolResult, _ RunOutput, retErr error) {
	start := time.Now()
	runID := uuid.NewString()
	defer func() {
		s.auditTool(ToolRun, runID, start, retErr, toolParams(
			"first_name", args.FirstName, "second_name", args.SecondName,
			"first_land", args.FirstLand, "second_land", args.SecondLand,
			"seed", args.Seed, "direction", args.Direction,
			"unit_speed", args.UnitSpeed, "land_range", args.LandRange,
			"acceleration", args.Acceleration, "max_steps", args.MaxSteps,
		))
	}()

	if err := s.limiters.check(ToolRun); err != nil {
		return nil, RunOutput{}, err
	}

	sc := s.scenario(args.Direction, args.UnitSpeed, args.LandRange, args.Acceleration, args.MaxSteps)
	sc.Name = runID
	sc.FirstName = args.FirstName
	sc.SecondName = args.SecondName
	sc.FirstLand = args.FirstLand
	sc.SecondLand = args.SecondLand

	var source random.Source = random.System{}
	if args.Seed != nil {
		source = random.NewSeeded(*args.Seed)
	}
	sink := events.WithFields(s.sink, events.FieldRunID, runID)

	res, err := simulation.NewRunner(source, sink).Run(sc)
	if err != nil {
		return nil, RunOutput{}, err
	}

	out := RunOutput{
		RunID:   runID,
		Outcome: res.Outcome,
		Summary: res.Summary.String(),
		Message: runMessage(res),
	}
	if args.History {
		out.FirstHistory = res.First.History()
		out.SecondHistory = res.Second.History()
	}
	return nil, out, nil
}

// handleTrials implements the rendezvous_trials tool. Trial events are not
// journaled; a batch can produce millions of moves.
func (s *Server) handleTrials(ctx context.Context, req *sdk.CallToolRequest, args TrialsInput) (_ *sdk.CallToolResult, _ TrialsOutput, retErr error) {
	start := time.Now()
	runID := uuid.NewString()
	defer func() {
		s.auditTool(ToolTrials, runID, start, retErr, toolParams(
			"runs", args.Runs, "seed", args.Seed, "direction", args.Direction,
			"unit_speed", args.UnitSpeed, "land_range", args.LandRange,
			"acceleration", args.Acceleration, "max_steps", args.MaxSteps,
		))
	}()

	if err := s.limiters.check(ToolTrials); err != nil {
		return nil, TrialsOutput{}, err
	}

	runs := args.Runs
	if runs == 0 {
		runs = constants.DefaultTrialRuns
	}
	seed := random.NewSeed()
	if args.Seed != nil {
		seed = *args.Seed
	}

	sc := s.scenario(args.Direction, args.UnitSpeed, args.LandRange, args.Acceleration, args.MaxSteps)
	stats, err := simulation.Trials(ctx, sc, runs, seed, nil)
	if err != nil {
		return nil, TrialsOutput{}, err
	}

	return nil, TrialsOutput{
		RunID:   runID,
		Stats:   stats,
		Message: trialsMessage(stats),
	}, nil
}

func runMessage(res simulation.Result) string {
	out := res.Outcome
	if m, ok := out.Meeting(); ok {
		return fmt.Sprintf("%s and %s found each other at %d after %d step(s)",
			res.First.Name(), res.Second.Name(), m, out.StepsTaken)
	}
	return fmt.Sprintf("%s after %d step(s); %s is at %d and %s is at %d",
		out.Reason, out.StepsTaken, res.First.Name(), out.FirstPosition, res.Second.Name(), out.SecondPosition)
}

func trialsMessage(st simulation.Stats) string {
	msg := fmt.Sprintf("%d of %d searches met (seed %d)", st.Succeeded, st.Runs, st.Seed)
	if st.Succeeded > 0 {
		msg += fmt.Sprintf("; steps min %d, mean %.1f, max %d", st.MinSteps, st.MeanSteps, st.MaxSteps)
	}
	if st.Failed > 0 {
		msg += fmt.Sprintf("; %d ran out of steps, widest failing gap %d", st.Failed, st.WorstGap)
	}
	return msg
}
