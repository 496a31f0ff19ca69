// Package simtest provides assertions over simulation results for tests.
package simtest

import (
	"errors"
	"testing"

	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/simulation"
)

// AssertMet asserts that the robots met at position after exactly steps moves.
func AssertMet(t testing.TB, res simulation.Result, position, steps int) {
	t.Helper()
	out := res.Outcome
	if !out.Succeeded {
		t.Errorf("AssertMet: %s: search failed after %d steps: %v", res.Scenario, out.StepsTaken, out.Err)
		return
	}
	if got, _ := out.Meeting(); got != position {
		t.Errorf("AssertMet: %s: met at %d, want %d", res.Scenario, got, position)
	}
	if out.StepsTaken != steps {
		t.Errorf("AssertMet: %s: took %d steps, want %d", res.Scenario, out.StepsTaken, steps)
	}
}

// AssertFailed asserts that the search failed with an error matching want.
func AssertFailed(t testing.TB, res simulation.Result, want error) {
	t.Helper()
	out := res.Outcome
	if out.Succeeded {
		m, _ := out.Meeting()
		t.Errorf("AssertFailed: %s: robots met at %d, want failure", res.Scenario, m)
		return
	}
	if !errors.Is(out.Err, want) {
		t.Errorf("AssertFailed: %s: error %v, want %v", res.Scenario, out.Err, want)
	}
	if _, ok := out.Meeting(); ok {
		t.Errorf("AssertFailed: %s: failed outcome reports a meeting position", res.Scenario)
	}
}

// AssertDiscovery asserts that robot by found the other's parachute at position at.
func AssertDiscovery(t testing.TB, res simulation.Result, by string, at int) {
	t.Helper()
	gotBy, gotAt, ok := res.Outcome.Discovery()
	if !ok {
		t.Errorf("AssertDiscovery: %s: no parachute was found, want %s at %d", res.Scenario, by, at)
		return
	}
	if gotBy != by || gotAt != at {
		t.Errorf("AssertDiscovery: %s: %s found it at %d, want %s at %d", res.Scenario, gotBy, gotAt, by, at)
	}
}

// AssertNoDiscovery asserts that neither robot found the other's parachute.
func AssertNoDiscovery(t testing.TB, res simulation.Result) {
	t.Helper()
	if by, at, ok := res.Outcome.Discovery(); ok {
		t.Errorf("AssertNoDiscovery: %s: %s found a parachute at %d", res.Scenario, by, at)
	}
}

// AssertEventOrder asserts that kinds appear in the recorded events in the
// given order. Other events may appear in between.
func AssertEventOrder(t testing.TB, res simulation.Result, kinds ...events.Kind) {
	t.Helper()
	next := 0
	for _, e := range res.Events {
		if next < len(kinds) && e.Kind == kinds[next] {
			next++
		}
	}
	if next < len(kinds) {
		t.Errorf("AssertEventOrder: %s: event %q missing or out of order in %v", res.Scenario, kinds[next], res.Kinds())
	}
}

// AssertHistoryConsistent asserts that each robot's history holds its landing
// plus one entry per step and ends at its final position.
func AssertHistoryConsistent(t testing.TB, res simulation.Result) {
	t.Helper()
	want := res.Outcome.StepsTaken + 1
	for _, r := range []struct {
		name string
		hist []int
		pos  int
	}{
		{res.First.Name(), res.First.History(), res.First.Position()},
		{res.Second.Name(), res.Second.History(), res.Second.Position()},
	} {
		if len(r.hist) != want {
			t.Errorf("AssertHistoryConsistent: %s: %s has %d history entries, want %d", res.Scenario, r.name, len(r.hist), want)
			continue
		}
		if last := r.hist[len(r.hist)-1]; last != r.pos {
			t.Errorf("AssertHistoryConsistent: %s: %s history ends at %d but robot is at %d", res.Scenario, r.name, last, r.pos)
		}
	}
}

// AssertSymmetric asserts that two searches met at the same place after the
// same number of steps.
func AssertSymmetric(t testing.TB, a, b simulation.Result) {
	t.Helper()
	if a.Outcome.Succeeded != b.Outcome.Succeeded {
		t.Errorf("AssertSymmetric: %s succeeded=%v but %s succeeded=%v", a.Scenario, a.Outcome.Succeeded, b.Scenario, b.Outcome.Succeeded)
		return
	}
	am, _ := a.Outcome.Meeting()
	bm, _ := b.Outcome.Meeting()
	if am != bm || a.Outcome.StepsTaken != b.Outcome.StepsTaken {
		t.Errorf("AssertSymmetric: %s met at %d after %d steps, %s met at %d after %d steps",
			a.Scenario, am, a.Outcome.StepsTaken, b.Scenario, bm, b.Outcome.StepsTaken)
	}
}
