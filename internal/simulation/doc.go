// Package simulation runs complete rendezvous searches from a declarative
// Scenario and aggregates many seeded random searches into trial statistics.
//
// A Scenario pins whatever it cares about (landing positions, direction,
// acceleration factor, step budget) and leaves the rest to defaults. Landing
// positions that are not pinned are drawn from the Runner's random source,
// so a seeded source makes every run repeatable.
//
// Usage:
//
//	r := simulation.NewRunner(random.NewSeeded(42), sink)
//	res, err := r.Run(simulation.Scenario{
//	    Name:       "golden",
//	    FirstName:  "A",
//	    SecondName: "B",
//	    FirstLand:  simulation.Landing(-3),
//	    SecondLand: simulation.Landing(5),
//	    MaxSteps:   100,
//	})
//
// Test helpers asserting on results live in the simtest subpackage.
package simulation
