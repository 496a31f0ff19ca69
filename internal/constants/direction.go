package constants

// Direction is the common heading both robots take at the start of a search.
type Direction string

const (
	// DirectionPositive moves robots toward increasing positions
	DirectionPositive Direction = "positive"

	// DirectionNegative moves robots toward decreasing positions
	DirectionNegative Direction = "negative"

	// DefaultDirection is the heading used when none is configured
	DefaultDirection = DirectionPositive
)

// Valid returns true if the direction is a recognized value.
func (d Direction) Valid() bool {
	switch d {
	case DirectionPositive, DirectionNegative:
		return true
	}
	return false
}

// Velocity returns the signed velocity for a robot moving in this direction
// at the given speed. Unknown directions map to the positive heading.
func (d Direction) Velocity(speed int) int {
	if d == DirectionNegative {
		return -speed
	}
	return speed
}

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}
