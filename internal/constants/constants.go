// Package constants provides named constants used throughout the rendezvous codebase.
// This centralizes the simulation defaults for better maintainability and documentation.
package constants

// Robot defaults
const (
	// DefaultName is the name given to a robot constructed without one.
	DefaultName = "Iron Giant"

	// UnitSpeed is the magnitude of a robot's velocity before it accelerates.
	UnitSpeed = 1
)

// Landing and search bounds
const (
	// DefaultLandRange is the symmetric bound R of the landing interval [-R, R].
	DefaultLandRange = 50

	// DefaultMaxSteps is the iteration cap for a single rendezvous search.
	// Both the discovery phase and the catch-up phase count against it.
	DefaultMaxSteps = 1000
)

// Acceleration constants
const (
	// DefaultAcceleration is the factor applied to the velocity of the robot
	// that finds the other's parachute. On the integer line it should be exactly 2:
	// larger factors can step over the other robot and never land on it.
	DefaultAcceleration = 2

	// MinAcceleration is the smallest factor that lets the discovering robot
	// gain on the other one.
	MinAcceleration = 2
)

// Trial defaults used by the trials command and MCP tool.
const (
	// DefaultTrialRuns is the number of random rendezvous runs in a trial batch.
	DefaultTrialRuns = 100

	// MaxTrialRuns bounds a single trial batch.
	MaxTrialRuns = 100000
)

// Search limits. Within them every position stays far inside the int range:
// R + steps*speed*factor is below 2^51.
const (
	// MaxLandRange bounds R.
	MaxLandRange = 1 << 40

	// MaxUnitSpeed bounds the starting velocity magnitude.
	MaxUnitSpeed = 1 << 20

	// MaxAcceleration bounds the discovery factor.
	MaxAcceleration = 1 << 10

	// MaxSearchSteps bounds the step cap of a single search.
	MaxSearchSteps = 1_000_000

	// MaxTrialSteps bounds runs times the step cap for one trial batch.
	MaxTrialSteps = 100_000_000
)
