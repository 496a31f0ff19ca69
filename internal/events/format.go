package events

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Format renders an event as a single human-readable message.
// Unknown kinds fall back to "kind key=value ...".
func Format(e Event) string {
	robot, _ := e.String(FieldRobot)
	other, _ := e.String(FieldOtherRobot)
	pos := e.Fields[FieldPosition]

	switch e.Kind {
	case KindLanded:
		return fmt.Sprintf("%s has landed successfully at position %v.", robot, pos)
	case KindAlreadyLanded:
		return fmt.Sprintf("%s has already landed at position %v.", robot, pos)
	case KindMoved:
		return fmt.Sprintf("%s has moved to %v.", robot, pos)
	case KindCantMove:
		return fmt.Sprintf("%s can not move until it lands on the surface.", robot)
	case KindCantFind:
		return "Robots can not find each other until both land on the surface."
	case KindFoundParachute:
		return fmt.Sprintf("%s just found the parachute of %s at position %v.", robot, other, pos)
	case KindAccelerated:
		return fmt.Sprintf("Speed of %s has been accelerated by the factor %v.", robot, e.Fields[FieldAcceleration])
	case KindFoundEachOther:
		return fmt.Sprintf("%s and %s found each other at %v.", robot, other, pos)
	case KindAboveMaxCount:
		return fmt.Sprintf("%s and %s could not find each other within %v steps. "+
			"Increase the maximum step count or shrink the landing range. "+
			"Last positions: %s at %v, %s at %v.",
			robot, other, e.Fields[FieldSteps],
			robot, e.Fields[FieldFirstPosition], other, e.Fields[FieldSecondPosition])
	case KindJourneySummary:
		if s, ok := e.String(FieldSummary); ok {
			return s
		}
	}
	return fallback(e)
}

func fallback(e Event) string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(e.Kind))
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// Attrs converts the event fields to slog attributes in key order.
// The multi-line summary text is left out; it is already the message.
func Attrs(e Event) []any {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		if k == FieldSummary {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys)+1)
	attrs = append(attrs, slog.String("event", string(e.Kind)))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Fields[k]))
	}
	return attrs
}
