package simulation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
	"github.com/nvandessel/rendezvous/internal/rendezvous"
	"github.com/nvandessel/rendezvous/internal/simulation"
	"github.com/nvandessel/rendezvous/internal/simulation/simtest"
)

func golden(direction constants.Direction, maxSteps int) simulation.Scenario {
	return simulation.Scenario{
		Name:       "golden-" + string(direction),
		FirstName:  "A",
		SecondName: "B",
		FirstLand:  simulation.Landing(-3),
		SecondLand: simulation.Landing(5),
		Direction:  direction,
		MaxSteps:   maxSteps,
	}
}

func TestRun_GoldenPositive(t *testing.T) {
	res, err := simulation.NewRunner(nil, nil).Run(golden(constants.DirectionPositive, 100))
	require.NoError(t, err)

	simtest.AssertMet(t, res, 21, 16)
	simtest.AssertDiscovery(t, res, "A", 5)
	simtest.AssertHistoryConsistent(t, res)
	simtest.AssertEventOrder(t, res,
		events.KindLanded,
		events.KindLanded,
		events.KindFoundParachute,
		events.KindAccelerated,
		events.KindFoundEachOther,
		events.KindJourneySummary,
	)
}

func TestRun_GoldenNegative(t *testing.T) {
	res, err := simulation.NewRunner(nil, nil).Run(golden(constants.DirectionNegative, 100))
	require.NoError(t, err)

	simtest.AssertMet(t, res, -19, 16)
	simtest.AssertDiscovery(t, res, "B", -3)
	simtest.AssertHistoryConsistent(t, res)
}

func TestRun_StepCaps(t *testing.T) {
	tests := []struct {
		maxSteps int
		first    int
		second   int
		foundBy  string
	}{
		{maxSteps: 0, first: -3, second: 5},
		{maxSteps: 5, first: 2, second: 10},
		{maxSteps: 8, first: 5, second: 13},
		{maxSteps: 10, first: 9, second: 15, foundBy: "A"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("cap %d", tt.maxSteps), func(t *testing.T) {
			res, err := simulation.NewRunner(nil, nil).Run(golden(constants.DirectionPositive, tt.maxSteps))
			require.NoError(t, err)

			simtest.AssertFailed(t, res, rendezvous.ErrIterationCapExceeded)
			simtest.AssertHistoryConsistent(t, res)
			assert.Equal(t, tt.maxSteps, res.Outcome.StepsTaken)
			assert.Equal(t, tt.first, res.Outcome.FirstPosition)
			assert.Equal(t, tt.second, res.Outcome.SecondPosition)
			if tt.foundBy == "" {
				simtest.AssertNoDiscovery(t, res)
			} else {
				simtest.AssertDiscovery(t, res, tt.foundBy, 5)
			}
			simtest.AssertEventOrder(t, res, events.KindAboveMaxCount)
		})
	}
}

func TestRun_Symmetric(t *testing.T) {
	runner := simulation.NewRunner(nil, nil)

	forward := golden(constants.DirectionPositive, 100)
	swapped := forward
	swapped.Name = "golden-swapped"
	swapped.FirstLand, swapped.SecondLand = forward.SecondLand, forward.FirstLand

	a, err := runner.Run(forward)
	require.NoError(t, err)
	b, err := runner.Run(swapped)
	require.NoError(t, err)

	simtest.AssertSymmetric(t, a, b)
	simtest.AssertDiscovery(t, b, "B", 5)
}

func TestRun_SameLanding(t *testing.T) {
	res, err := simulation.NewRunner(nil, nil).Run(simulation.Scenario{
		FirstName:  "A",
		SecondName: "B",
		FirstLand:  simulation.Landing(7),
		SecondLand: simulation.Landing(7),
		MaxSteps:   10,
	})
	require.NoError(t, err)

	simtest.AssertMet(t, res, 7, 0)
	simtest.AssertDiscovery(t, res, "A", 7)
	assert.Equal(t, 0, res.Summary.TotalDistance)
}

func TestRun_DrawsUnpinnedLandings(t *testing.T) {
	runner := simulation.NewRunner(random.NewSequence(10, -10), nil)

	res, err := runner.Run(simulation.Scenario{
		FirstName:  "A",
		SecondName: "B",
		Direction:  constants.DirectionNegative,
		MaxSteps:   100,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Summary.FirstLand)
	assert.Equal(t, -10, res.Summary.SecondLand)
	simtest.AssertMet(t, res, -50, 40)
	simtest.AssertDiscovery(t, res, "A", -10)
}

func TestRun_ForwardsEventsToSink(t *testing.T) {
	rec := events.NewRecorder()
	res, err := simulation.NewRunner(nil, rec).Run(golden(constants.DirectionPositive, 100))
	require.NoError(t, err)

	assert.Equal(t, len(res.Events), len(rec.Events()))
	assert.Equal(t, 32, rec.Count(events.KindMoved))
	assert.Equal(t, 1, rec.Count(events.KindJourneySummary))
}

func TestRun_DefaultNames(t *testing.T) {
	res, err := simulation.NewRunner(nil, nil).Run(simulation.Scenario{
		BaseName:   "Probe",
		FirstLand:  simulation.Landing(0),
		SecondLand: simulation.Landing(1),
		MaxSteps:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Probe A", res.First.Name())
	assert.Equal(t, "Probe B", res.Second.Name())
	simtest.AssertMet(t, res, 3, 2)
}

func TestRun_AccelerationAndSpeed(t *testing.T) {
	t.Run("factor three oversteps an odd gap", func(t *testing.T) {
		sc := golden(constants.DirectionPositive, 1000)
		sc.SecondLand = simulation.Landing(4)
		sc.Acceleration = 3
		res, err := simulation.NewRunner(nil, nil).Run(sc)
		require.NoError(t, err)
		simtest.AssertFailed(t, res, rendezvous.ErrIterationCapExceeded)
		simtest.AssertDiscovery(t, res, "A", 4)
		assert.Equal(t, 1000, res.Outcome.StepsTaken)
	})

	t.Run("unit speed two", func(t *testing.T) {
		res, err := simulation.NewRunner(nil, nil).Run(simulation.Scenario{
			FirstName:  "A",
			SecondName: "B",
			FirstLand:  simulation.Landing(0),
			SecondLand: simulation.Landing(4),
			UnitSpeed:  2,
			MaxSteps:   100,
		})
		require.NoError(t, err)
		simtest.AssertMet(t, res, 12, 4)
	})
}

func TestRun_InvalidScenario(t *testing.T) {
	tests := []struct {
		name string
		sc   simulation.Scenario
	}{
		{"same names", simulation.Scenario{FirstName: "X", SecondName: "X"}},
		{"direction", simulation.Scenario{Direction: "up"}},
		{"acceleration", simulation.Scenario{Acceleration: 1}},
		{"unit speed", simulation.Scenario{UnitSpeed: -1}},
		{"land range", simulation.Scenario{LandRange: -5}},
		{"max steps", simulation.Scenario{MaxSteps: -1}},
		{"land range too wide", simulation.Scenario{LandRange: constants.MaxLandRange + 1}},
		{"unit speed too fast", simulation.Scenario{UnitSpeed: constants.MaxUnitSpeed + 1}},
		{"acceleration too large", simulation.Scenario{Acceleration: constants.MaxAcceleration + 1}},
		{"max steps too many", simulation.Scenario{MaxSteps: constants.MaxSearchSteps + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := simulation.NewRunner(nil, nil).Run(tt.sc)
			assert.Error(t, err)
		})
	}
}

func TestRun_SanitizesNames(t *testing.T) {
	res, err := simulation.NewRunner(nil, nil).Run(simulation.Scenario{
		FirstName:  "A\nlevel=ERROR",
		SecondName: "\x00",
		BaseName:   "<b>Probe</b>",
		FirstLand:  simulation.Landing(0),
		SecondLand: simulation.Landing(1),
		MaxSteps:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, "A level=ERROR", res.First.Name())
	assert.Equal(t, "Probe B", res.Second.Name())
}
