package units

import (
	"math"
	"testing"
)

// Every conversion pair must round-trip within 1e-4 relative error across
// realistic input ranges.
func TestRoundTrips(t *testing.T) {
	pairs := []struct {
		name    string
		forward func(float64) float64
		back    func(float64) float64
		min     float64
		max     float64
	}{
		{"mph", MPHToMPS, MPSToMPH, 0.1, 250},
		{"yards", YardsToMeters, MetersToYards, 0.1, 400},
		{"feet", FeetToMeters, MetersToFeet, 0.1, 10000},
		{"degrees", DegToRad, RadToDeg, -180, 180},
		{"rpm", RPMToRadPerSec, RadPerSecToRPM, 0, 15000},
		{"fahrenheit", FahrenheitToCelsius, CelsiusToFahrenheit, -40, 120},
		{"inhg", InHgToPascal, PascalToInHg, 25, 32},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for x := p.min; x <= p.max; x += (p.max - p.min) / 97 {
				got := p.back(p.forward(x))
				denom := math.Max(math.Abs(x), 1e-9)
				if math.Abs(got-x)/denom > 1e-4 {
					t.Fatalf("round trip %f -> %f", x, got)
				}
			}
		})
	}
}

func TestKnownValues(t *testing.T) {
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"100 mph", MPHToMPS(100), 44.704},
		{"100 yd", YardsToMeters(100), 91.44},
		{"1 ft", FeetToMeters(1), 0.3048},
		{"180°", DegToRad(180), math.Pi},
		{"60 rpm", RPMToRadPerSec(60), 2 * math.Pi},
		{"32°F", FahrenheitToCelsius(32), 0},
		{"212°F", FahrenheitToCelsius(212), 100},
		{"29.92 inHg", InHgToPascal(29.92), 101325.0},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > math.Abs(c.want)*1e-3+1e-9 {
			t.Errorf("%s: got %f, want %f", c.name, c.got, c.want)
		}
	}
}
