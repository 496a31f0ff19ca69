package mcp

import (
	"github.com/nvandessel/rendezvous/internal/rendezvous"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

// Tool names.
const (
	ToolRun    = "rendezvous_run"
	ToolTrials = "rendezvous_trials"
)

// RunInput defines the input for the rendezvous_run tool. Unset fields fall
// back to the server's configuration.
type RunInput struct {
	FirstName    string  `json:"first_name,omitempty" jsonschema:"Name of the first robot"`
	SecondName   string  `json:"second_name,omitempty" jsonschema:"Name of the second robot"`
	FirstLand    *int    `json:"first_land,omitempty" jsonschema:"Landing position of the first robot; drawn at random when omitted"`
	SecondLand   *int    `json:"second_land,omitempty" jsonschema:"Landing position of the second robot; drawn at random when omitted"`
	Seed         *uint64 `json:"seed,omitempty" jsonschema:"Seed for random landings, for repeatable runs"`
	Direction    string  `json:"direction,omitempty" jsonschema:"Common starting heading: positive or negative"`
	UnitSpeed    *int    `json:"unit_speed,omitempty" jsonschema:"Starting speed of both robots"`
	LandRange    *int    `json:"land_range,omitempty" jsonschema:"R for the landing interval [-R, R] (at most 2^40)"`
	Acceleration *int    `json:"acceleration,omitempty" jsonschema:"Factor applied to the robot that finds a parachute (at least 2)"`
	MaxSteps     *int    `json:"max_steps,omitempty" jsonschema:"Maximum number of lockstep moves (at most 1000000)"`
	History      bool    `json:"history,omitempty" jsonschema:"Include both robots' position histories in the result"`
}

// RunOutput defines the output for the rendezvous_run tool.
type RunOutput struct {
	RunID         string             `json:"run_id" jsonschema:"Identifier tagging this run's journal entries"`
	Outcome       rendezvous.Outcome `json:"outcome" jsonschema:"Terminal result of the search"`
	Summary       string             `json:"summary" jsonschema:"Human-readable journey summary"`
	FirstHistory  []int              `json:"first_history,omitempty" jsonschema:"Every position the first robot occupied"`
	SecondHistory []int              `json:"second_history,omitempty" jsonschema:"Every position the second robot occupied"`
	Message       string             `json:"message" jsonschema:"Human-readable result message"`
}

// TrialsInput defines the input for the rendezvous_trials tool.
type TrialsInput struct {
	Runs         int     `json:"runs" jsonschema:"Number of random searches to run"`
	Seed         *uint64 `json:"seed,omitempty" jsonschema:"Seed for the landing draws; random when omitted"`
	Direction    string  `json:"direction,omitempty" jsonschema:"Common starting heading: positive or negative"`
	UnitSpeed    *int    `json:"unit_speed,omitempty" jsonschema:"Starting speed of both robots"`
	LandRange    *int    `json:"land_range,omitempty" jsonschema:"R for the landing interval [-R, R] (at most 2^40)"`
	Acceleration *int    `json:"acceleration,omitempty" jsonschema:"Factor applied to the robot that finds a parachute (at least 2)"`
	MaxSteps     *int    `json:"max_steps,omitempty" jsonschema:"Maximum number of lockstep moves per search (at most 1000000; runs times max_steps at most 100000000)"`
}

// TrialsOutput defines the output for the rendezvous_trials tool.
type TrialsOutput struct {
	RunID   string           `json:"run_id" jsonschema:"Identifier tagging this batch's journal entries"`
	Stats   simulation.Stats `json:"stats" jsonschema:"Aggregate statistics over all searches"`
	Message string           `json:"message" jsonschema:"Human-readable result message"`
}
