package platform

import (
	"errors"
	"testing"
	"time"
)

func TestRequireSystem(t *testing.T) {
	tests := []struct {
		name   string
		sender Identity
		wantOK bool
	}{
		{"system sender", System, true},
		{"arbitrary sender", Identity{0x01}, false},
		{"nil identity aliases System", NilIdentity, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSystem(tt.sender)
			if tt.wantOK && err != nil {
				t.Fatalf("RequireSystem(%v) = %v, want nil", tt.sender, err)
			}
			if !tt.wantOK && !errors.Is(err, ErrNotSystem) {
				t.Fatalf("RequireSystem(%v) = %v, want ErrNotSystem", tt.sender, err)
			}
		})
	}
}

func TestAliveRipe(t *testing.T) {
	now := EpochZero.Add(time.Hour)

	if !Alive(EpochZero) {
		t.Fatalf("Alive(EpochZero) = false, want true")
	}
	if Alive(now) {
		t.Fatalf("Alive(future) = true, want false")
	}

	future := EpochZero.Add(2 * time.Hour)
	if Ripe(future, now) {
		t.Fatalf("Ripe(future > now) = true, want false")
	}
	if !Ripe(now, future) {
		t.Fatalf("Ripe(now < future) = false, want true")
	}
	if Ripe(EpochZero, now) {
		t.Fatalf("Ripe(EpochZero) = true, want false: EpochZero means alive, not depleted")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1, 2)
	for i := 0; i < 100; i++ {
		if v := r.IntRange(3, 3); v != 3 {
			t.Fatalf("IntRange(3, 3) = %d, want 3", v)
		}
		if v := r.IntRange(1, 5); v < 1 || v > 5 {
			t.Fatalf("IntRange(1, 5) = %d, out of range", v)
		}
		if v := r.Float32Range(2, 2); v != 2 {
			t.Fatalf("Float32Range(2, 2) = %v, want 2", v)
		}
		if v := r.DurationRange(time.Second, time.Second); v != time.Second {
			t.Fatalf("DurationRange(1s, 1s) = %v, want 1s", v)
		}
		if f := r.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v, out of [0, 1)", f)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(7, 9)
	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatalf("Chance(0) returned true")
		}
	}
}
