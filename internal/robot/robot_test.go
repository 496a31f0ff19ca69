package robot

import (
	"errors"
	"math"
	"testing"

	"github.com/nvandessel/rendezvous/internal/constants"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/random"
)

func TestNew_Defaults(t *testing.T) {
	r := New("")
	if r.Name() != constants.DefaultName {
		t.Errorf("Name() = %q, want %q", r.Name(), constants.DefaultName)
	}
	if !r.OnAir() {
		t.Error("new robot should be airborne")
	}
	if r.Velocity() != 0 {
		t.Errorf("Velocity() = %d, want 0", r.Velocity())
	}
	if _, ok := r.LandPosition(); ok {
		t.Error("LandPosition should be absent before landing")
	}
	if len(r.History()) != 0 {
		t.Errorf("History() = %v, want empty", r.History())
	}
	if r.LandRange() != constants.DefaultLandRange {
		t.Errorf("LandRange() = %d, want %d", r.LandRange(), constants.DefaultLandRange)
	}
	if r.Acceleration() != constants.DefaultAcceleration {
		t.Errorf("Acceleration() = %d, want %d", r.Acceleration(), constants.DefaultAcceleration)
	}
}

func TestNew_Options(t *testing.T) {
	r := New("Metu", WithLandRange(10), WithAcceleration(3), WithSource(nil), WithSink(nil))
	if r.Name() != "Metu" {
		t.Errorf("Name() = %q, want %q", r.Name(), "Metu")
	}
	if r.LandRange() != 10 {
		t.Errorf("LandRange() = %d, want 10", r.LandRange())
	}
	if r.Acceleration() != 3 {
		t.Errorf("Acceleration() = %d, want 3", r.Acceleration())
	}

	// Non-positive range keeps the default; nil source and sink keep defaults.
	r = New("Math", WithLandRange(0))
	if r.LandRange() != constants.DefaultLandRange {
		t.Errorf("LandRange() = %d, want default", r.LandRange())
	}
	if err := r.Land(); err != nil {
		t.Fatalf("Land() with default source: %v", err)
	}
}

func TestLand(t *testing.T) {
	rec := events.NewRecorder()
	r := New("Metu", WithSource(random.NewSequence(-3)), WithSink(rec))

	if err := r.Land(); err != nil {
		t.Fatalf("Land() error = %v", err)
	}

	lp, ok := r.LandPosition()
	if !ok || lp != -3 {
		t.Errorf("LandPosition() = (%d, %v), want (-3, true)", lp, ok)
	}
	if r.Position() != -3 {
		t.Errorf("Position() = %d, want -3", r.Position())
	}
	if r.OnAir() {
		t.Error("robot should not be airborne after landing")
	}
	if h := r.History(); len(h) != 1 || h[0] != -3 {
		t.Errorf("History() = %v, want [-3]", h)
	}

	e, ok := rec.Last(events.KindLanded)
	if !ok {
		t.Fatal("expected landed event")
	}
	if name, _ := e.String(events.FieldRobot); name != "Metu" {
		t.Errorf("landed robot = %q, want Metu", name)
	}
	if p, _ := e.Int(events.FieldPosition); p != -3 {
		t.Errorf("landed position = %d, want -3", p)
	}
}

func TestLand_WideRange(t *testing.T) {
	for _, landRange := range []int{math.MaxInt/2 + 1, math.MaxInt} {
		r := New("Wide", WithLandRange(landRange), WithSource(random.NewSeeded(1)))
		if err := r.Land(); err != nil {
			t.Fatalf("Land() with range %d error = %v", landRange, err)
		}
		lp, ok := r.LandPosition()
		if !ok {
			t.Fatalf("range %d: robot did not land", landRange)
		}
		if lp < -landRange || lp > landRange {
			t.Errorf("range %d: landed at %d, outside [-R, R]", landRange, lp)
		}
	}
}

func TestLand_Twice(t *testing.T) {
	rec := events.NewRecorder()
	r := New("Metu", WithSource(random.NewSequence(4, 40)), WithSink(rec))

	if err := r.Land(); err != nil {
		t.Fatalf("first Land() error = %v", err)
	}
	err := r.Land()
	if !errors.Is(err, ErrAlreadyLanded) {
		t.Fatalf("second Land() error = %v, want ErrAlreadyLanded", err)
	}

	lp, _ := r.LandPosition()
	if lp != 4 || r.Position() != 4 {
		t.Errorf("state changed by second land: land=%d pos=%d", lp, r.Position())
	}
	if len(r.History()) != 1 {
		t.Errorf("History() length = %d, want 1", len(r.History()))
	}
	if rec.Count(events.KindAlreadyLanded) != 1 {
		t.Errorf("already_landed events = %d, want 1", rec.Count(events.KindAlreadyLanded))
	}
	if rec.Count(events.KindLanded) != 1 {
		t.Errorf("landed events = %d, want 1", rec.Count(events.KindLanded))
	}

	if err := r.LandAt(99); !errors.Is(err, ErrAlreadyLanded) {
		t.Errorf("LandAt on landed robot error = %v, want ErrAlreadyLanded", err)
	}
	if r.Position() != 4 {
		t.Errorf("LandAt changed position to %d", r.Position())
	}
}

func TestLandAt_IgnoresRange(t *testing.T) {
	r := New("Metu", WithLandRange(5))
	if err := r.LandAt(500); err != nil {
		t.Fatalf("LandAt error = %v", err)
	}
	if lp, _ := r.LandPosition(); lp != 500 {
		t.Errorf("LandPosition() = %d, want 500", lp)
	}
}

func TestMove_Airborne(t *testing.T) {
	rec := events.NewRecorder()
	r := New("Metu", WithSink(rec))
	r.SetVelocity(1)

	err := r.Move()
	if !errors.Is(err, ErrNotLanded) {
		t.Fatalf("Move() error = %v, want ErrNotLanded", err)
	}
	if r.Position() != 0 {
		t.Errorf("Position() = %d, want 0", r.Position())
	}
	if len(r.History()) != 0 {
		t.Errorf("History() = %v, want empty", r.History())
	}
	if rec.Count(events.KindCantMove) != 1 {
		t.Errorf("cant_move events = %d, want 1", rec.Count(events.KindCantMove))
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		land     int
		velocity int
		moves    int
		wantPos  int
		wantHist []int
	}{
		{"zero velocity stays put", 2, 0, 2, 2, []int{2, 2, 2}},
		{"positive unit", -3, 1, 3, 0, []int{-3, -2, -1, 0}},
		{"negative unit", 5, -1, 2, 3, []int{5, 4, 3}},
		{"accelerated", 0, 2, 3, 6, []int{0, 2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("r")
			if err := r.LandAt(tt.land); err != nil {
				t.Fatalf("LandAt: %v", err)
			}
			r.SetVelocity(tt.velocity)
			for i := 0; i < tt.moves; i++ {
				if err := r.Move(); err != nil {
					t.Fatalf("Move %d: %v", i, err)
				}
			}
			if r.Position() != tt.wantPos {
				t.Errorf("Position() = %d, want %d", r.Position(), tt.wantPos)
			}
			h := r.History()
			if len(h) != len(tt.wantHist) {
				t.Fatalf("History() = %v, want %v", h, tt.wantHist)
			}
			for i := range h {
				if h[i] != tt.wantHist[i] {
					t.Errorf("History()[%d] = %d, want %d", i, h[i], tt.wantHist[i])
				}
			}
			if r.Steps() != len(tt.wantHist) {
				t.Errorf("Steps() = %d, want %d", r.Steps(), len(tt.wantHist))
			}
		})
	}
}

func TestAccelerate(t *testing.T) {
	rec := events.NewRecorder()
	r := New("Metu", WithSink(rec))
	r.SetVelocity(-1)

	r.Accelerate()
	if r.Velocity() != -2 {
		t.Errorf("Velocity() = %d, want -2", r.Velocity())
	}
	r.Accelerate()
	if r.Velocity() != -4 {
		t.Errorf("Velocity() = %d, want -4", r.Velocity())
	}

	e, ok := rec.Last(events.KindAccelerated)
	if !ok {
		t.Fatal("expected accelerated event")
	}
	if f, _ := e.Int(events.FieldAcceleration); f != 2 {
		t.Errorf("acceleration field = %d, want 2", f)
	}
}

func TestHistory_IsCopy(t *testing.T) {
	r := New("r")
	_ = r.LandAt(1)
	h := r.History()
	h[0] = 100
	if r.History()[0] != 1 {
		t.Error("mutating History() result changed the robot")
	}
}
