// Package robot models a point robot on the integer line.
//
// A robot starts in the air. It lands exactly once, either at a position
// drawn from its random source or at an injected one, and may then move any
// number of times at its current velocity. Every landing and move is appended
// to an in-memory position history.
package robot

import (
	"errors"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
)

var (
	// ErrAlreadyLanded is returned by Land and LandAt on a robot that has
	// already landed. It is a warning: the robot is left unchanged.
	ErrAlreadyLanded = errors.New("robot has already landed")

	// ErrNotLanded is returned by Move on a robot that is still in the air.
	// The robot is left unchanged.
	ErrNotLanded = errors.New("robot has not landed")
)

// Robot is a single agent on the line. It is not safe for concurrent use.
type Robot struct {
	name         string
	landPosition int
	position     int
	history      []int
	velocity     int
	onAir        bool

	landRange    int
	acceleration int
	source       random.Source
	sink         events.Sink
}

// Option configures a Robot.
type Option func(*Robot)

// WithSource sets the random source landing positions are drawn from.
func WithSource(s random.Source) Option {
	return func(r *Robot) {
		if s != nil {
			r.source = s
		}
	}
}

// WithSink sets the sink the robot reports its state transitions to.
func WithSink(s events.Sink) Option {
	return func(r *Robot) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithLandRange sets R for the landing interval [-R, R].
// Non-positive values keep the default.
func WithLandRange(n int) Option {
	return func(r *Robot) {
		if n > 0 {
			r.landRange = n
		}
	}
}

// WithAcceleration sets the factor Accelerate multiplies the velocity by.
func WithAcceleration(factor int) Option {
	return func(r *Robot) {
		r.acceleration = factor
	}
}

// New creates an airborne robot. An empty name falls back to constants.DefaultName.
func New(name string, opts ...Option) *Robot {
	if name == "" {
		name = constants.DefaultName
	}
	r := &Robot{
		name:         name,
		onAir:        true,
		landRange:    constants.DefaultLandRange,
		acceleration: constants.DefaultAcceleration,
		source:       random.System{},
		sink:         events.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the robot's label.
func (r *Robot) Name() string { return r.name }

// Position returns the current position. It is 0 while airborne.
func (r *Robot) Position() int { return r.position }

// LandPosition returns where the robot landed, and false if it has not landed yet.
func (r *Robot) LandPosition() (int, bool) {
	if r.onAir {
		return 0, false
	}
	return r.landPosition, true
}

// Velocity returns the signed velocity.
func (r *Robot) Velocity() int { return r.velocity }

// OnAir reports whether the robot has yet to land.
func (r *Robot) OnAir() bool { return r.onAir }

// LandRange returns R for the landing interval [-R, R].
func (r *Robot) LandRange() int { return r.landRange }

// Acceleration returns the factor applied by Accelerate.
func (r *Robot) Acceleration() int { return r.acceleration }

// History returns a copy of every position the robot has occupied, starting
// with its landing position.
func (r *Robot) History() []int {
	return append([]int(nil), r.history...)
}

// Steps returns how many positions the robot has recorded.
func (r *Robot) Steps() int { return len(r.history) }

// Land places the robot at a position drawn uniformly from [-R, R].
func (r *Robot) Land() error {
	if !r.onAir {
		return r.alreadyLanded()
	}
	return r.LandAt(r.source.IntInRange(-r.landRange, r.landRange))
}

// LandAt places the robot at an externally chosen position. The landing
// range is not enforced.
func (r *Robot) LandAt(position int) error {
	if !r.onAir {
		return r.alreadyLanded()
	}
	r.landPosition = position
	r.onAir = false
	r.setPosition(position)
	r.sink.Emit(events.New(events.KindLanded,
		events.FieldRobot, r.name,
		events.FieldPosition, position))
	return nil
}

func (r *Robot) alreadyLanded() error {
	r.sink.Emit(events.New(events.KindAlreadyLanded,
		events.FieldRobot, r.name,
		events.FieldPosition, r.landPosition))
	return ErrAlreadyLanded
}

// Move advances the robot by its velocity.
func (r *Robot) Move() error {
	if r.onAir {
		r.sink.Emit(events.New(events.KindCantMove, events.FieldRobot, r.name))
		return ErrNotLanded
	}
	r.setPosition(r.position + r.velocity)
	r.sink.Emit(events.New(events.KindMoved,
		events.FieldRobot, r.name,
		events.FieldPosition, r.position))
	return nil
}

// Accelerate multiplies the velocity by the acceleration factor.
func (r *Robot) Accelerate() {
	r.velocity *= r.acceleration
	r.sink.Emit(events.New(events.KindAccelerated,
		events.FieldRobot, r.name,
		events.FieldAcceleration, r.acceleration))
}

// SetVelocity sets the signed velocity directly.
func (r *Robot) SetVelocity(v int) {
	r.velocity = v
}

// setPosition moves the robot and records the position; the two never
// change independently.
func (r *Robot) setPosition(p int) {
	r.position = p
	r.history = append(r.history, p)
}
