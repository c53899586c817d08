package sim

import (
	"fmt"
	"math"
)

// Aero evaluates the empirical aerodynamic model: air density from weather,
// Reynolds number, and coefficient lookups over the calibrated tables. It is
// immutable after construction and safe to share between concurrent shots.
type Aero struct {
	drag []CurvePoint
	lift []CurvePoint
}

// NewAero builds an evaluator over the default calibration tables.
func NewAero() *Aero {
	a, err := NewAeroWithTables(DragTable, LiftTable)
	if err != nil {
		// The default tables are compiled in; failing here is a build defect.
		panic(err)
	}
	return a
}

// NewAeroWithTables builds an evaluator over custom coefficient tables.
// Tables must be non-empty and sorted by x; this is the only place the engine
// fails fast instead of clamping.
func NewAeroWithTables(drag, lift []CurvePoint) (*Aero, error) {
	if err := checkTable("drag", drag); err != nil {
		return nil, err
	}
	if err := checkTable("lift", lift); err != nil {
		return nil, err
	}
	return &Aero{drag: drag, lift: lift}, nil
}

func checkTable(name string, t []CurvePoint) error {
	if len(t) == 0 {
		return fmt.Errorf("aero: empty %s table", name)
	}
	for i := 1; i < len(t); i++ {
		if t[i].X <= t[i-1].X {
			return fmt.Errorf("aero: %s table not sorted at index %d", name, i)
		}
	}
	return nil
}

// AirDensity computes air density in kg/m³ from range-side weather readings:
// temperature °F, elevation ft, relative humidity %, barometric pressure inHg.
// Ideal-gas density of the dry-air/vapor mixture, with the barometric formula
// applied for elevation and the Magnus formula for saturation vapor pressure.
func (a *Aero) AirDensity(tempF, elevationFt, humidityPct, pressureInHg float64) float64 {
	tC := (tempF - 32) * 5 / 9
	tK := tC + 273.15

	p := pressureInHg * 3386.389
	h := elevationFt * 0.3048
	p *= math.Pow(1-2.25577e-5*h, 5.25588)

	saturation := 610.78 * math.Exp(17.27*tC/(tC+237.3))
	vapor := humidityPct / 100 * saturation

	return (p-vapor)/(DryAirGasConstant*tK) + vapor/(VaporGasConstant*tK)
}

// ReynoldsNumber for the ball at the given airspeed. Zero speed maps to zero
// by convention so callers never divide by it upstream.
func (a *Aero) ReynoldsNumber(speed, airDensity float64) float64 {
	if speed <= 0 {
		return 0
	}
	return airDensity * speed * BallDiameter / AirViscosity
}

// DragCoefficient interpolates Cd over the Reynolds table. Below the table it
// clamps to the first entry; above it the supercritical constant applies.
func (a *Aero) DragCoefficient(re float64) float64 {
	if re >= a.drag[len(a.drag)-1].X {
		return SupercriticalCd
	}
	return interpolate(a.drag, re)
}

// SpinDrag is the induced-drag increment from spin, added on top of the
// table Cd. Quadratic in spin factor, capped.
func (a *Aero) SpinDrag(spinFactor float64) float64 {
	return math.Min(SpinDragGain*spinFactor*spinFactor, SpinDragMax)
}

// LiftCoefficient interpolates Cl over the spin-factor table, capped at MaxCl.
func (a *Aero) LiftCoefficient(spinFactor float64) float64 {
	return math.Min(interpolate(a.lift, spinFactor), MaxCl)
}

// interpolate does piecewise-linear lookup with boundary clamping.
func interpolate(t []CurvePoint, x float64) float64 {
	if x <= t[0].X {
		return t[0].Y
	}
	if x >= t[len(t)-1].X {
		return t[len(t)-1].Y
	}
	for i := 1; i < len(t); i++ {
		if x <= t[i].X {
			frac := (x - t[i-1].X) / (t[i].X - t[i-1].X)
			return t[i-1].Y + frac*(t[i].Y-t[i-1].Y)
		}
	}
	return t[len(t)-1].Y
}
