package simulation

import (
	"fmt"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/rendezvous"
	"github.com/nvandessel/rendezvous/internal/robot"
	"github.com/nvandessel/rendezvous/internal/sanitize"
)

// Scenario defines a single rendezvous search.
type Scenario struct {
	Name string

	// BaseName derives robot names that are left empty: "<BaseName> A" and
	// "<BaseName> B". Defaults to constants.DefaultName. All names pass
	// through sanitize.RobotName.
	BaseName   string
	FirstName  string
	SecondName string

	// FirstLand and SecondLand pin landing positions. Nil draws from the
	// runner's random source within [-LandRange, LandRange].
	FirstLand  *int
	SecondLand *int

	Direction    constants.Direction
	UnitSpeed    int
	LandRange    int
	Acceleration int
	MaxSteps     int
}

// Landing returns a pinned landing position for a Scenario.
func Landing(p int) *int { return &p }

// withDefaults cleans names and fills zero values. MaxSteps is left alone:
// zero is a valid budget.
func (s Scenario) withDefaults() Scenario {
	s.BaseName = sanitize.RobotName(s.BaseName)
	s.FirstName = sanitize.RobotName(s.FirstName)
	s.SecondName = sanitize.RobotName(s.SecondName)

	if s.BaseName == "" {
		s.BaseName = constants.DefaultName
	}
	if s.FirstName == "" {
		s.FirstName = s.BaseName + " A"
	}
	if s.SecondName == "" {
		s.SecondName = s.BaseName + " B"
	}
	if s.Direction == "" {
		s.Direction = constants.DefaultDirection
	}
	if s.UnitSpeed == 0 {
		s.UnitSpeed = constants.UnitSpeed
	}
	if s.LandRange == 0 {
		s.LandRange = constants.DefaultLandRange
	}
	if s.Acceleration == 0 {
		s.Acceleration = constants.DefaultAcceleration
	}
	return s
}

// Validate reports the first setting that cannot drive a search.
func (s Scenario) Validate() error {
	s = s.withDefaults()
	if s.FirstName == s.SecondName {
		return fmt.Errorf("robot names must differ, both are %q", s.FirstName)
	}
	if !s.Direction.Valid() {
		return fmt.Errorf("invalid direction: %q (valid: positive, negative)", s.Direction)
	}
	if s.UnitSpeed < 0 {
		return fmt.Errorf("unit speed must be positive, got %d", s.UnitSpeed)
	}
	if s.LandRange < 0 {
		return fmt.Errorf("land range must be positive, got %d", s.LandRange)
	}
	if s.Acceleration < constants.MinAcceleration {
		return fmt.Errorf("acceleration must be at least %d, got %d", constants.MinAcceleration, s.Acceleration)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("max steps must be non-negative, got %d", s.MaxSteps)
	}
	return checkLimits(s)
}

// checkLimits rejects settings whose positions or step counts could grow
// without practical bound.
func checkLimits(s Scenario) error {
	if s.LandRange > constants.MaxLandRange {
		return fmt.Errorf("land range must be at most %d, got %d", constants.MaxLandRange, s.LandRange)
	}
	if s.UnitSpeed > constants.MaxUnitSpeed {
		return fmt.Errorf("unit speed must be at most %d, got %d", constants.MaxUnitSpeed, s.UnitSpeed)
	}
	if s.Acceleration > constants.MaxAcceleration {
		return fmt.Errorf("acceleration must be at most %d, got %d", constants.MaxAcceleration, s.Acceleration)
	}
	if s.MaxSteps > constants.MaxSearchSteps {
		return fmt.Errorf("max steps must be at most %d, got %d", constants.MaxSearchSteps, s.MaxSteps)
	}
	return nil
}

// Result captures a finished search.
type Result struct {
	Scenario string             `json:"scenario,omitempty"`
	Outcome  rendezvous.Outcome `json:"outcome"`
	Summary  rendezvous.Summary `json:"summary"`

	First  *robot.Robot   `json:"-"`
	Second *robot.Robot   `json:"-"`
	Events []events.Event `json:"-"`
}

// Kinds returns the kinds of the recorded events in emission order.
func (r Result) Kinds() []events.Kind {
	kinds := make([]events.Kind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}
