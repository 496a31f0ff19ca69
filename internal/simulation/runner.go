package simulation

import (
	"fmt"

	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
	"github.com/nvandessel/rendezvous/internal/rendezvous"
	"github.com/nvandessel/rendezvous/internal/robot"
)

// Runner builds robots and a controller for each Scenario it runs.
// It is not safe for concurrent use when its source is not.
type Runner struct {
	source random.Source
	sink   events.Sink

	// record keeps every event in Result.Events.
	record bool
}

// NewRunner creates a runner drawing unpinned landings from source and
// forwarding every event to sink. Nil arguments fall back to the process
// entropy source and a discarding sink.
func NewRunner(source random.Source, sink events.Sink) *Runner {
	if source == nil {
		source = random.System{}
	}
	if sink == nil {
		sink = events.Discard
	}
	return &Runner{source: source, sink: sink, record: true}
}

// Run executes the scenario and returns the collected result. Errors are
// reserved for scenarios that fail validation; a search that runs out of
// steps is reported through Result.Outcome.
func (r *Runner) Run(scenario Scenario) (Result, error) {
	if err := scenario.Validate(); err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	s := scenario.withDefaults()

	var rec *events.Recorder
	sink := r.sink
	if r.record {
		rec = events.NewRecorder()
		sink = events.Multi(rec, r.sink)
	}

	opts := []robot.Option{
		robot.WithSource(r.source),
		robot.WithSink(sink),
		robot.WithLandRange(s.LandRange),
		robot.WithAcceleration(s.Acceleration),
	}
	first := robot.New(s.FirstName, opts...)
	second := robot.New(s.SecondName, opts...)

	land(first, s.FirstLand)
	land(second, s.SecondLand)

	ctrl := rendezvous.NewController(sink,
		rendezvous.WithDirection(s.Direction),
		rendezvous.WithUnitSpeed(s.UnitSpeed),
	)
	out := ctrl.FindEachOther(first, second, s.MaxSteps)

	res := Result{
		Scenario: s.Name,
		Outcome:  out,
		Summary:  rendezvous.NewSummary(first, second, out),
		First:    first,
		Second:   second,
	}
	if rec != nil {
		res.Events = rec.Events()
	}
	return res, nil
}

// land uses the pinned position when there is one. Both robots are fresh, so
// neither call can hit ErrAlreadyLanded.
func land(r *robot.Robot, pinned *int) {
	if pinned != nil {
		_ = r.LandAt(*pinned)
		return
	}
	_ = r.Land()
}
