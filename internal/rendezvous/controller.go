// Package rendezvous drives two landed robots toward each other.
//
// The search has two phases. In the discovery phase both robots move in
// lockstep at the same velocity until one of them stands on the other's
// landing position (its parachute) and accelerates. In the catch-up phase the
// faster robot closes the gap. Both phases share a single step budget; running
// out of it is a reported outcome, not a fault.
package rendezvous

import (
	"errors"
	"fmt"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/robot"
)

var (
	// ErrNotLanded means a search was requested while a robot was airborne.
	// No robot moved.
	ErrNotLanded = fmt.Errorf("robots can not find each other until both land: %w", robot.ErrNotLanded)

	// ErrIterationCapExceeded means the step budget ran out before the robots met.
	// Raise the step budget or shrink the landing range and retry.
	ErrIterationCapExceeded = errors.New("maximum step count reached before the robots met")
)

// Controller runs rendezvous searches. It holds configuration only, so a
// single Controller may serve any number of independent searches.
type Controller struct {
	direction constants.Direction
	unitSpeed int
	sink      events.Sink
}

// Option configures a Controller.
type Option func(*Controller)

// WithDirection sets the common heading assigned to both robots.
// Unrecognized directions are ignored.
func WithDirection(d constants.Direction) Option {
	return func(c *Controller) {
		if d.Valid() {
			c.direction = d
		}
	}
}

// WithUnitSpeed sets the speed both robots start with. Non-positive values are ignored.
func WithUnitSpeed(speed int) Option {
	return func(c *Controller) {
		if speed > 0 {
			c.unitSpeed = speed
		}
	}
}

// NewController creates a controller reporting to sink. A nil sink discards events.
func NewController(sink events.Sink, opts ...Option) *Controller {
	if sink == nil {
		sink = events.Discard
	}
	c := &Controller{
		direction: constants.DefaultDirection,
		unitSpeed: constants.UnitSpeed,
		sink:      sink,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Direction returns the configured starting heading.
func (c *Controller) Direction() constants.Direction { return c.direction }

// FindEachOther runs a search between a and b taking at most maxSteps
// lockstep moves. When both robots stand on the other's parachute in the same
// step, a is checked first and wins. A non-positive maxSteps allows no moves.
func (c *Controller) FindEachOther(a, b *robot.Robot, maxSteps int) Outcome {
	if a.OnAir() || b.OnAir() {
		c.sink.Emit(events.New(events.KindCantFind,
			events.FieldRobot, a.Name(),
			events.FieldOtherRobot, b.Name()))
		return Outcome{
			FirstPosition:  a.Position(),
			SecondPosition: b.Position(),
			Err:            ErrNotLanded,
			Reason:         ErrNotLanded.Error(),
		}
	}

	v := c.direction.Velocity(c.unitSpeed)
	a.SetVelocity(v)
	b.SetVelocity(v)

	aLand, _ := a.LandPosition()
	bLand, _ := b.LandPosition()

	var out Outcome
	steps := 0

	for a.Velocity() == b.Velocity() && steps < maxSteps {
		switch {
		case a.Position() == bLand:
			c.foundParachute(&out, a, b)
		case b.Position() == aLand:
			c.foundParachute(&out, b, a)
		default:
			stepBoth(a, b)
			steps++
			continue
		}
		// A factor of 1 leaves the velocities equal; stop here rather than
		// rediscover the same parachute forever.
		if a.Velocity() == b.Velocity() {
			break
		}
	}

	for a.Position() != b.Position() && steps < maxSteps {
		stepBoth(a, b)
		steps++
	}

	out.StepsTaken = steps
	out.FirstPosition = a.Position()
	out.SecondPosition = b.Position()

	if a.Position() == b.Position() {
		meeting := a.Position()
		out.Succeeded = true
		out.MeetingPosition = &meeting

		c.sink.Emit(events.New(events.KindFoundEachOther,
			events.FieldRobot, a.Name(),
			events.FieldOtherRobot, b.Name(),
			events.FieldPosition, meeting))
		c.sink.Emit(NewSummary(a, b, out).Event())
		return out
	}

	out.Err = ErrIterationCapExceeded
	out.Reason = ErrIterationCapExceeded.Error()
	c.sink.Emit(events.New(events.KindAboveMaxCount,
		events.FieldRobot, a.Name(),
		events.FieldOtherRobot, b.Name(),
		events.FieldSteps, steps,
		events.FieldFirstPosition, a.Position(),
		events.FieldSecondPosition, b.Position()))
	return out
}

// foundParachute records that finder stands on other's landing position and
// speeds finder up.
func (c *Controller) foundParachute(out *Outcome, finder, other *robot.Robot) {
	name := finder.Name()
	pos := finder.Position()
	out.ParachuteFoundBy = &name
	out.ParachuteFoundAt = &pos

	c.sink.Emit(events.New(events.KindFoundParachute,
		events.FieldRobot, name,
		events.FieldOtherRobot, other.Name(),
		events.FieldPosition, pos))
	finder.Accelerate()
}

// stepBoth moves both robots once. Both are known to be landed, so Move
// cannot fail here.
func stepBoth(a, b *robot.Robot) {
	_ = a.Move()
	_ = b.Move()
}
