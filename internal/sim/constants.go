package sim

import "math"

// Ball and atmosphere constants. The coefficient tables and ground thresholds
// below are the calibration surface of the engine: they are tuned so that the
// standard-atmosphere reference shots land within tolerance of published
// carry distances, and should only be changed together with the validation
// tests.

const (
	BallMass     = 0.04593  // kg, USGA conforming ball
	BallRadius   = 0.021335 // m
	BallDiameter = 2 * BallRadius

	Gravity      = 9.81      // m/s²
	AirViscosity = 1.802e-5 // kg/(m·s), dynamic viscosity of air

	DryAirGasConstant = 287.058 // J/(kg·K)
	VaporGasConstant  = 461.495 // J/(kg·K)

	// Standard atmosphere defaults, range units.
	StandardTemperatureF  = 59.0
	StandardElevationFt   = 0.0
	StandardHumidityPct   = 50.0
	StandardPressureInHg  = 29.92

	// Drag above the top of the Reynolds table is flat (supercritical regime).
	SupercriticalCd = 0.225

	// Extra drag induced by spin, quadratic in spin factor and capped.
	SpinDragGain = 0.64
	SpinDragMax  = 0.075

	// Lift coefficient cap; the Cl(S) table saturates here.
	MaxCl = 0.36

	// Exponential spin decay time constant during flight, seconds.
	FlightSpinDecayTau = 25.0
)

// BallArea is the cross-sectional area, πr².
var BallArea = math.Pi * BallRadius * BallRadius

// Velocity-dependent coefficient of restitution, e(v) = A − B·v + C·v²
// (Penner's measured firm-ground fit), clamped to a stability range before use.
const (
	CorA = 0.510
	CorB = 0.0375
	CorC = 0.000903

	CorMin = 0.15
	CorMax = 0.65
)

// Bounce thresholds. The check/reversal branch is two-regime: moderate spin at
// a steep landing only scrubs tangential speed, extreme spin reverses it.
const (
	FrictionAngleThresholdDeg = 30.0 // landing angle above which friction is amplified
	FrictionAngleGain         = 0.5

	SpinBrakeScaleRPM = 12000.0 // backspin at which tangential braking saturates
	SpinBrakeMax      = 0.7     // maximum braking fraction

	ReversalSpinRPM       = 6000.0 // backspin below this never checks
	ReversalAngleDeg      = 40.0   // landing angle threshold for the check branch
	CheckSpeedThreshold   = 5.0    // m/s, post-friction tangential speed ceiling
	CheckFactor           = 0.35
	ReversalStrongSpinRPM = 8000.0 // above this the ball spins back, not just checks
	ReversalSpeedCap      = 1.5    // m/s, maximum reversed tangential speed

	SpinRetentionBase    = 0.35
	SpinRetentionCORGain = 0.5

	// Height the ball is lifted to after a bounce so the same contact is not
	// re-detected on the next step.
	BounceSnapHeight = 0.005

	// Vertical rebound speed below which the ball stops bouncing and rolls.
	MinBounceSpeed = 2.0

	MaxBounces = 8
)

// Rolling constants.
const (
	RollStepDT = 0.01 // s

	RollStopSpeed = 0.05 // m/s
	RollStopSpin  = 10.0 // rad/s, ≈95 rpm

	RollSpinBrakeGain = 0.004 // m/s² of extra deceleration per rad/s of backspin
	RollSpinBrakeMax  = 2.5   // m/s²
	MinRollDecel      = 0.7   // m/s², floor so the ball always stops

	SpinBackSpinRPM = 5000.0 // backspin above which the ball can roll backward
	SpinBackSpeed   = 0.8    // m/s, forward speed ceiling for spin-back
	SpinBackFactor  = 0.3

	HardCheckSpinRPM = 3000.0 // moderate-spin clamp, no direction change
	HardCheckSpeed   = 1.5    // m/s
	HardCheckFactor  = 0.6

	RollSpinDecayBase = 1.2 // 1/s
	RollSpinDecaySlow = 2.0 // extra decay as the ball slows, 1/(m)
)

// Flight integration constants.
const (
	FlightDT = 0.001 // s, fixed RK4 step

	// Hard safety valve: 60 simulated seconds of flight stepping.
	MaxFlightSteps = 60000
	// Rolling cap, 30 simulated seconds.
	MaxRollSteps = 3000

	// Ground contact before this time is ignored (ball leaving the tee).
	LaunchContactGuard = 0.1 // s

	// Default ceiling on emitted trajectory points per shot.
	DefaultMaxSamples = 400
)

// CurvePoint is one (x, y) entry of a piecewise-linear coefficient curve.
// X is the lookup key (Reynolds number or spin factor), Y the coefficient.
type CurvePoint struct {
	X float64
	Y float64
}

// DragTable maps Reynolds number to drag coefficient through the drag crisis.
// Monotonic non-increasing; below the first entry Cd clamps to it, above the
// last entry SupercriticalCd applies.
var DragTable = []CurvePoint{
	{3.0e4, 0.450},
	{5.0e4, 0.350},
	{7.5e4, 0.280},
	{1.0e5, 0.255},
	{1.5e5, 0.240},
	{2.0e5, 0.230},
}

// LiftTable maps spin factor S = ωr/v to lift coefficient. Monotonic
// non-decreasing and capped at MaxCl.
var LiftTable = []CurvePoint{
	{0.00, 0.00},
	{0.04, 0.10},
	{0.08, 0.16},
	{0.12, 0.21},
	{0.16, 0.25},
	{0.20, 0.28},
	{0.25, 0.31},
	{0.30, 0.33},
	{0.40, 0.35},
}
