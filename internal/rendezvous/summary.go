package rendezvous

import (
	"fmt"
	"strings"

	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/robot"
)

// Summary describes a finished journey for people reading the output.
type Summary struct {
	FirstRobot       string `json:"first_robot"`
	FirstLand        int    `json:"first_land"`
	SecondRobot      string `json:"second_robot"`
	SecondLand       int    `json:"second_land"`
	TotalDistance    int    `json:"total_distance"`
	ParachuteFoundBy string `json:"parachute_found_by,omitempty"`
	ParachuteFoundAt *int   `json:"parachute_found_at,omitempty"`
	Acceleration     int    `json:"acceleration"`
	TotalSteps       int    `json:"total_steps"`
	LastPosition     int    `json:"last_position"`
	Succeeded        bool   `json:"succeeded"`
}

// NewSummary builds the summary of a search between a and b.
func NewSummary(a, b *robot.Robot, out Outcome) Summary {
	aLand, _ := a.LandPosition()
	bLand, _ := b.LandPosition()

	s := Summary{
		FirstRobot:    a.Name(),
		FirstLand:     aLand,
		SecondRobot:   b.Name(),
		SecondLand:    bLand,
		TotalDistance: abs(aLand - bLand),
		Acceleration:  a.Acceleration(),
		TotalSteps:    out.StepsTaken,
		LastPosition:  out.FirstPosition,
		Succeeded:     out.Succeeded,
	}
	if by, at, ok := out.Discovery(); ok {
		s.ParachuteFoundBy = by
		s.ParachuteFoundAt = &at
		if by == b.Name() && by != a.Name() {
			s.Acceleration = b.Acceleration()
		}
	}
	return s
}

// String renders the multi-line journey summary.
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("Summary of the journey:\n")
	fmt.Fprintf(&b, "%s landed at %d and %s landed at %d.\n", s.FirstRobot, s.FirstLand, s.SecondRobot, s.SecondLand)
	fmt.Fprintf(&b, "The distance between them was %d unit(s), but neither of them knew that.\n", s.TotalDistance)
	b.WriteString("Both started to move in the same direction at the same speed.\n")
	if s.ParachuteFoundAt != nil {
		fmt.Fprintf(&b, "At position %d, %s found the parachute of the other robot and\n", *s.ParachuteFoundAt, s.ParachuteFoundBy)
		fmt.Fprintf(&b, "its speed was accelerated by the factor %d.\n", s.Acceleration)
	} else {
		b.WriteString("Neither robot found the other's parachute.\n")
	}
	if s.Succeeded {
		fmt.Fprintf(&b, "After %d step(s), they eventually found each other at %d.", s.TotalSteps, s.LastPosition)
	} else {
		fmt.Fprintf(&b, "After %d step(s), they still had not found each other.", s.TotalSteps)
	}
	return b.String()
}

// Event converts the summary to a journey_summary event.
func (s Summary) Event() events.Event {
	kv := []any{
		events.FieldSummary, s.String(),
		"first_robot", s.FirstRobot,
		"first_land", s.FirstLand,
		"second_robot", s.SecondRobot,
		"second_land", s.SecondLand,
		"total_distance", s.TotalDistance,
		events.FieldAcceleration, s.Acceleration,
		events.FieldSteps, s.TotalSteps,
		events.FieldPosition, s.LastPosition,
	}
	if s.ParachuteFoundAt != nil {
		kv = append(kv, "parachute_found_by", s.ParachuteFoundBy, "parachute_found_at", *s.ParachuteFoundAt)
	}
	return events.New(events.KindJourneySummary, kv...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
