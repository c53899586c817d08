// Package units holds the unit conversions used at the simulation boundary.
// Inputs and outputs of the engine are in range units (mph, yards, feet,
// degrees, rpm, °F); everything inside the simulation is SI.
package units

import "math"

const (
	metersPerYard = 0.9144
	metersPerFoot = 0.3048
	mpsPerMPH     = 0.44704
	pascalPerInHg = 3386.389
)

func MPHToMPS(mph float64) float64 { return mph * mpsPerMPH }
func MPSToMPH(mps float64) float64 { return mps / mpsPerMPH }

func YardsToMeters(yd float64) float64 { return yd * metersPerYard }
func MetersToYards(m float64) float64  { return m / metersPerYard }

func FeetToMeters(ft float64) float64 { return ft * metersPerFoot }
func MetersToFeet(m float64) float64  { return m / metersPerFoot }

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// RPMToRadPerSec converts rotational speed; 1 rpm = 2π/60 rad/s.
func RPMToRadPerSec(rpm float64) float64 { return rpm * 2 * math.Pi / 60 }
func RadPerSecToRPM(rad float64) float64 { return rad * 60 / (2 * math.Pi) }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func InHgToPascal(inHg float64) float64 { return inHg * pascalPerInHg }
func PascalToInHg(pa float64) float64   { return pa / pascalPerInHg }
