package sim

import (
	"math"

	"github.com/fairwaysim/backend/internal/units"
)

// BounceResult is the full outcome of one ground impact.
type BounceResult struct {
	Position Vec3
	Velocity Vec3
	Backspin float64 // rad/s
	Reversed bool    // tangential direction flipped (checked hard)
}

// RollResult is the outcome of one rolling step.
type RollResult struct {
	Position Vec3
	Velocity Vec3
	Backspin float64 // rad/s
	Stopped  bool
}

// Bounce resolves a ground impact: velocity-dependent restitution on the
// normal component, angle- and spin-scaled friction on the tangential
// component, and the two-tier check/reversal branch that gives high-spin
// wedge shots their bite.
//
// landingAngleDeg is the descent angle below horizontal; backspin is rad/s.
func Bounce(position, velocity Vec3, backspin, landingAngleDeg float64, surface Surface) BounceResult {
	normalSpeed := -velocity.Y // downward impact speed, positive
	tangential := NewVec3(velocity.X, 0, velocity.Z)
	tangentialSpeed := tangential.Magnitude()

	cor := CorA - CorB*normalSpeed + CorC*normalSpeed*normalSpeed
	cor = clamp(cor*surface.CORScale, CorMin, CorMax)
	newNormalSpeed := normalSpeed * cor

	backspinRPM := units.RadPerSecToRPM(backspin)

	// Steeper landings dig in and scrub more speed.
	angleFactor := 1 + FrictionAngleGain*clamp((landingAngleDeg-FrictionAngleThresholdDeg)/FrictionAngleThresholdDeg, 0, 1)
	retention := clamp(1-surface.Friction*angleFactor, 0, 1)

	spinBrake := 1 - math.Min(backspinRPM/SpinBrakeScaleRPM, SpinBrakeMax)
	newTangentialSpeed := tangentialSpeed * retention * spinBrake

	reversed := false
	if backspinRPM > ReversalSpinRPM && landingAngleDeg > ReversalAngleDeg && newTangentialSpeed < CheckSpeedThreshold {
		if backspinRPM > ReversalStrongSpinRPM {
			newTangentialSpeed = -math.Min(newTangentialSpeed*CheckFactor, ReversalSpeedCap)
			reversed = true
		} else {
			newTangentialSpeed *= CheckFactor
		}
	}

	// A lively bounce keeps more spin; grabby surfaces soak it up.
	spinRetention := (SpinRetentionBase + SpinRetentionCORGain*cor) * (1 - surface.SpinAbsorption)
	if reversed {
		spinRetention *= 0.5
	}

	direction := tangential.Normalize()
	if direction.IsZero() {
		direction = NewVec3(1, 0, 0)
	}
	newVelocity := direction.Times(newTangentialSpeed)
	newVelocity.Y = newNormalSpeed

	return BounceResult{
		Position: NewVec3(position.X, BounceSnapHeight, position.Z),
		Velocity: newVelocity,
		Backspin: backspin * spinRetention,
		Reversed: reversed,
	}
}

// RollStep advances the ball by dt seconds of rolling. Deceleration is the
// surface's rolling resistance plus a capped spin-braking term, floored so
// the ball always reaches rest. Residual backspin can clamp the ball down
// (hard check) or briefly reverse it (spin-back) near zero speed.
func RollStep(position, velocity Vec3, backspin float64, surface Surface, dt float64) RollResult {
	velocity.Y = 0
	speed := velocity.HorizontalMagnitude()

	if stopped(speed, backspin) {
		return RollResult{
			Position: NewVec3(position.X, 0, position.Z),
			Stopped:  true,
		}
	}

	decel := surface.RollingResistance*Gravity + math.Min(RollSpinBrakeGain*math.Abs(backspin), RollSpinBrakeMax)
	decel = math.Max(decel, MinRollDecel)

	newSpeed := math.Max(speed-decel*dt, 0)

	backspinRPM := units.RadPerSecToRPM(backspin)
	direction := velocity.Normalize()
	if direction.IsZero() {
		direction = NewVec3(1, 0, 0)
	}

	if backspinRPM > SpinBackSpinRPM && newSpeed > 0 && newSpeed < SpinBackSpeed {
		// Enough spin to pull the ball backward. Spin is consumed doing it.
		newSpeed *= SpinBackFactor
		direction = direction.Times(-1)
		backspin *= 0.5
	} else if backspinRPM > HardCheckSpinRPM && newSpeed < HardCheckSpeed {
		newSpeed *= HardCheckFactor
	}

	velocity = direction.Times(newSpeed)
	position = position.Plus(velocity.Times(dt))
	position.Y = 0

	// Spin bleeds faster as the ball slows and rolling friction takes over.
	decayRate := (RollSpinDecayBase + RollSpinDecaySlow/(newSpeed+0.5)) * (0.5 + surface.SpinAbsorption)
	backspin *= math.Exp(-dt * decayRate)

	if stopped(newSpeed, backspin) {
		return RollResult{Position: position, Stopped: true}
	}
	return RollResult{Position: position, Velocity: velocity, Backspin: backspin}
}

// stopped needs BOTH conditions: a ball can creep with negligible spin, or
// sit nearly still with spin that would still pull it backward.
func stopped(speed, backspin float64) bool {
	return speed < RollStopSpeed && math.Abs(backspin) < RollStopSpin
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
