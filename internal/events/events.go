// Package events defines the structured events robots and the rendezvous
// controller emit, and the sinks that receive them.
//
// Control flow never depends on how an event is stored or rendered: the core
// calls Sink.Emit with a Kind and named fields, and collaborators decide
// whether to log it, journal it, or keep it in memory.
package events

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Kind identifies what happened.
type Kind string

const (
	KindLanded         Kind = "landed"
	KindAlreadyLanded  Kind = "already_landed"
	KindMoved          Kind = "moved"
	KindCantMove       Kind = "cant_move"
	KindCantFind       Kind = "cant_find"
	KindFoundParachute Kind = "found_parachute"
	KindAccelerated    Kind = "accelerated"
	KindFoundEachOther Kind = "found_each_other"
	KindAboveMaxCount  Kind = "above_max_count"
	KindJourneySummary Kind = "journey_summary"
)

// Field names shared by emitters and formatters.
const (
	FieldRobot          = "robot"
	FieldOtherRobot     = "other_robot"
	FieldPosition       = "position"
	FieldAcceleration   = "acceleration"
	FieldSteps          = "steps"
	FieldFirstPosition  = "first_position"
	FieldSecondPosition = "second_position"
	FieldSummary        = "summary"
	FieldRunID          = "run_id"
)

// Event is a single structured occurrence.
type Event struct {
	Kind   Kind           `json:"event"`
	Fields map[string]any `json:"fields,omitempty"`
}

// New builds an event from alternating key/value arguments, in the style of
// slog. A trailing key without a value is dropped.
func New(kind Kind, kv ...any) Event {
	e := Event{Kind: kind, Fields: make(map[string]any, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e.Fields[key] = kv[i+1]
	}
	return e
}

// Level returns the severity the event is logged at.
func (e Event) Level() slog.Level {
	switch e.Kind {
	case KindAlreadyLanded:
		return slog.LevelWarn
	case KindCantMove, KindCantFind, KindAboveMaxCount:
		return slog.LevelError
	case KindMoved:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Int returns an integer field.
func (e Event) Int(key string) (int, bool) {
	v, ok := e.Fields[key].(int)
	return v, ok
}

// String returns a string field.
func (e Event) String(key string) (string, bool) {
	v, ok := e.Fields[key].(string)
	return v, ok
}

// Sink receives events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit implements Sink.
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder keeps every event in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Kinds returns the kinds of the recorded events in emission order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]Kind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given kind.
func (r *Recorder) Last(kind Kind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Multi fans each event out to every non-nil sink, in order.
func Multi(sinks ...Sink) Sink {
	live := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return SinkFunc(func(e Event) {
		for _, s := range live {
			s.Emit(e)
		}
	})
}

// WithFields decorates a sink so every event carries the given fields.
// Fields already set on an event win over the decorating ones.
func WithFields(s Sink, kv ...any) Sink {
	extra := New("", kv...).Fields
	return SinkFunc(func(e Event) {
		fields := maps.Clone(extra)
		maps.Copy(fields, e.Fields)
		s.Emit(Event{Kind: e.Kind, Fields: fields})
	})
}
