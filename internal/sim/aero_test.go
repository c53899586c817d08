package sim

import (
	"math"
	"testing"
)

func TestAirDensityStandardAtmosphere(t *testing.T) {
	a := NewAero()
	rho := a.AirDensity(StandardTemperatureF, StandardElevationFt, StandardHumidityPct, StandardPressureInHg)
	if math.Abs(rho-1.221) > 0.01 {
		t.Errorf("standard air density %.4f kg/m³, want ≈1.221", rho)
	}
}

func TestAirDensityResponds(t *testing.T) {
	a := NewAero()
	base := a.AirDensity(59, 0, 50, 29.92)

	if hot := a.AirDensity(95, 0, 50, 29.92); hot >= base {
		t.Errorf("hot air %.4f not thinner than %.4f", hot, base)
	}
	if high := a.AirDensity(59, 5280, 50, 29.92); high >= base {
		t.Errorf("mile-high air %.4f not thinner than %.4f", high, base)
	}
	if humid := a.AirDensity(59, 0, 100, 29.92); humid >= base {
		t.Errorf("humid air %.4f not thinner than %.4f", humid, base)
	}
	if low := a.AirDensity(59, 0, 50, 28.5); low >= base {
		t.Errorf("low pressure air %.4f not thinner than %.4f", low, base)
	}
}

func TestReynoldsNumber(t *testing.T) {
	a := NewAero()
	if re := a.ReynoldsNumber(0, 1.225); re != 0 {
		t.Errorf("zero speed Reynolds %.1f, want 0 by convention", re)
	}
	re := a.ReynoldsNumber(70, 1.225)
	if re < 1e5 || re > 1e6 {
		t.Errorf("Re at 70 m/s = %.0f, expected order 2e5", re)
	}
}

func TestDragCoefficientMonotonicNonIncreasing(t *testing.T) {
	a := NewAero()
	prev := math.Inf(1)
	for re := 1.0e4; re <= 5.0e5; re += 1.0e3 {
		cd := a.DragCoefficient(re)
		if cd > prev+1e-12 {
			t.Fatalf("Cd increased at Re=%.0f: %.4f > %.4f", re, cd, prev)
		}
		prev = cd
	}
}

func TestDragCoefficientPlateaus(t *testing.T) {
	a := NewAero()
	if cd := a.DragCoefficient(1.0e3); cd != DragTable[0].Y {
		t.Errorf("below-table Cd %.3f, want clamp to %.3f", cd, DragTable[0].Y)
	}
	if cd := a.DragCoefficient(5.0e6); cd != SupercriticalCd {
		t.Errorf("supercritical Cd %.3f, want %.3f", cd, SupercriticalCd)
	}
}

func TestLiftCoefficientMonotonicAndCapped(t *testing.T) {
	a := NewAero()
	prev := -1.0
	for s := 0.0; s <= 1.0; s += 0.005 {
		cl := a.LiftCoefficient(s)
		if cl < prev-1e-12 {
			t.Fatalf("Cl decreased at S=%.3f: %.4f < %.4f", s, cl, prev)
		}
		if cl > MaxCl {
			t.Fatalf("Cl %.4f exceeds cap %.2f at S=%.3f", cl, MaxCl, s)
		}
		prev = cl
	}
	if cl := a.LiftCoefficient(0); cl != 0 {
		t.Errorf("Cl at zero spin %.4f, want 0", cl)
	}
}

func TestSpinDragCapped(t *testing.T) {
	a := NewAero()
	if d := a.SpinDrag(0); d != 0 {
		t.Errorf("spin drag at S=0 is %.4f", d)
	}
	if d := a.SpinDrag(10); d != SpinDragMax {
		t.Errorf("spin drag %.4f not capped at %.4f", d, SpinDragMax)
	}
}

// Malformed calibration data must fail at construction, never per shot.
func TestAeroTableValidation(t *testing.T) {
	if _, err := NewAeroWithTables(nil, LiftTable); err == nil {
		t.Error("empty drag table accepted")
	}
	unsorted := []CurvePoint{{2e5, 0.23}, {1e5, 0.26}}
	if _, err := NewAeroWithTables(unsorted, LiftTable); err == nil {
		t.Error("unsorted drag table accepted")
	}
	if _, err := NewAeroWithTables(DragTable, []CurvePoint{}); err == nil {
		t.Error("empty lift table accepted")
	}
}
