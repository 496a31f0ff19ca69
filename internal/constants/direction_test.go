package constants

import "testing"

func TestDirection_Valid(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		want      bool
	}{
		{
			name:      "positive is valid",
			direction: DirectionPositive,
			want:      true,
		},
		{
			name:      "negative is valid",
			direction: DirectionNegative,
			want:      true,
		},
		{
			name:      "empty string is invalid",
			direction: Direction(""),
			want:      false,
		},
		{
			name:      "arbitrary string is invalid",
			direction: Direction("sideways"),
			want:      false,
		},
		{
			name:      "POSITIVE uppercase is invalid",
			direction: Direction("POSITIVE"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.direction.Valid(); got != tt.want {
				t.Errorf("Direction(%q).Valid() = %v, want %v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestDirection_Velocity(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		speed     int
		want      int
	}{
		{"positive unit speed", DirectionPositive, 1, 1},
		{"negative unit speed", DirectionNegative, 1, -1},
		{"positive faster", DirectionPositive, 3, 3},
		{"negative faster", DirectionNegative, 3, -3},
		{"unknown falls back to positive", Direction("up"), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.direction.Velocity(tt.speed); got != tt.want {
				t.Errorf("Direction(%q).Velocity(%d) = %d, want %d", tt.direction, tt.speed, got, tt.want)
			}
		})
	}
}

func TestDefaultDirection(t *testing.T) {
	if DefaultDirection != DirectionPositive {
		t.Errorf("DefaultDirection = %q, want %q", DefaultDirection, DirectionPositive)
	}
	if DefaultAcceleration < MinAcceleration {
		t.Errorf("DefaultAcceleration (%d) below MinAcceleration (%d)", DefaultAcceleration, MinAcceleration)
	}
}
