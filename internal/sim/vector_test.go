package sim

import (
	"math"
	"testing"
)

func TestVec3Basics(t *testing.T) {
	v := NewVec3(3, 0, 4)
	if m := v.Magnitude(); m != 5 {
		t.Errorf("magnitude %f, want 5", m)
	}
	if m := NewVec3(3, 7, 4).HorizontalMagnitude(); m != 5 {
		t.Errorf("horizontal magnitude %f, want 5", m)
	}
	if n := v.Normalize().Magnitude(); math.Abs(n-1) > 1e-12 {
		t.Errorf("normalized magnitude %f", n)
	}
	if !(Vec3{}).Normalize().IsZero() {
		t.Error("normalizing the zero vector should stay zero")
	}
}

func TestVec3CrossOrientation(t *testing.T) {
	// Right-handed frame: backspin axis +Z crossed with +X travel lifts +Y.
	up := NewVec3(0, 0, 1).Cross(NewVec3(1, 0, 0))
	if up.Y <= 0 || up.X != 0 || up.Z != 0 {
		t.Errorf("z × x = %+v, want +y", up)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component reported finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component reported finite")
	}
}
