package sim

import (
	"math"

	"github.com/fairwaysim/backend/internal/units"
)

// Simulator runs full shots: flight, bounces, roll, rest. It holds only
// immutable configuration, so one Simulator may serve concurrent callers;
// every Simulate call owns its state by value.
type Simulator struct {
	aero       *Aero
	maxSamples int
}

// NewSimulator builds a simulator over the default aerodynamic calibration.
func NewSimulator() *Simulator {
	return &Simulator{aero: NewAero(), maxSamples: DefaultMaxSamples}
}

// NewSimulatorWith builds a simulator over a custom aerodynamic evaluator and
// trajectory sample ceiling. maxSamples <= 0 selects the default.
func NewSimulatorWith(aero *Aero, maxSamples int) *Simulator {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Simulator{aero: aero, maxSamples: maxSamples}
}

// simState is the mutable per-shot state. It never escapes Simulate.
type simState struct {
	pos      Vec3
	vel      Vec3
	backspin float64 // rad/s
	sidespin float64 // rad/s
	t        float64
	phase    Phase
	bounces  int
	reversed bool
}

// Simulate computes a full shot. Pure: no I/O, deterministic for identical
// inputs. Inputs are taken at face value (validation is the caller's job);
// numerical guards keep the state machine marching to rest regardless.
func (s *Simulator) Simulate(launch LaunchConditions, env EnvironmentConditions, surface Surface) ShotResult {
	airDensity := s.aero.AirDensity(env.TemperatureF, env.ElevationFt, env.HumidityPct, env.PressureInHg)
	wind := windVector(env)

	speed := units.MPHToMPS(launch.BallSpeedMPH)
	vert := units.DegToRad(launch.LaunchAngleDeg)
	horiz := units.DegToRad(launch.DirectionDeg)

	st := simState{
		vel: NewVec3(
			speed*math.Cos(vert)*math.Cos(horiz),
			speed*math.Sin(vert),
			speed*math.Cos(vert)*math.Sin(horiz),
		),
		backspin: units.RPMToRadPerSec(launch.BackspinRPM),
		sidespin: units.RPMToRadPerSec(launch.SidespinRPM),
		phase:    PhaseFlight,
	}

	res := ShotResult{
		Launch:      launch,
		Environment: env,
		Surface:     surface.Name,
	}

	stride := (MaxFlightSteps + MaxRollSteps) / s.maxSamples
	if stride < 1 {
		stride = 1
	}

	var (
		apexHeight float64
		apexTime   float64
		landed     bool
		steps      int
	)

	sample := func(force bool) {
		if !force && steps%stride != 0 {
			return
		}
		res.Trajectory = append(res.Trajectory, TrajectoryPoint{
			TimeSec:     st.t,
			DownrangeYd: units.MetersToYards(st.pos.X),
			HeightFt:    units.MetersToFeet(st.pos.Y),
			LateralYd:   units.MetersToYards(st.pos.Z),
			Phase:       st.phase,
		})
	}
	sample(true)

	for st.phase != PhaseStopped {
		switch st.phase {
		case PhaseFlight, PhaseBounce:
			s.stepFlight(&st, airDensity, wind)
			if st.pos.Y > apexHeight {
				apexHeight = st.pos.Y
				apexTime = st.t
			}
			if st.pos.Y < 0 && st.vel.Y < 0 && st.t > LaunchContactGuard {
				if !landed {
					landed = true
					res.CarryYd = units.MetersToYards(st.pos.HorizontalMagnitude())
					res.FlightTimeSec = st.t
					res.LandingSpeedMPH = units.MPSToMPH(st.vel.Magnitude())
					res.LandingAngleDeg = descentAngleDeg(st.vel)
					res.LandingSpinRPM = units.RadPerSecToRPM(st.backspin)
				}
				s.touchdown(&st, surface)
				sample(true)
				if st.phase == PhaseBounce {
					// Bounce is momentary; the ball is airborne again.
					st.phase = PhaseFlight
				}
			}
			if steps >= MaxFlightSteps && st.phase != PhaseRolling {
				// Safety valve: report the state at cutoff rather than diverge.
				st.phase = PhaseStopped
			}
		case PhaseRolling:
			r := RollStep(st.pos, st.vel, st.backspin, surface, RollStepDT)
			st.pos = r.Position
			st.vel = r.Velocity
			st.backspin = r.Backspin
			st.t += RollStepDT
			if r.Stopped || steps >= MaxFlightSteps+MaxRollSteps {
				st.vel = Vec3{}
				st.backspin = 0
				st.phase = PhaseStopped
			}
		}
		steps++
		sample(false)
	}
	sample(true)

	res.TotalYd = units.MetersToYards(st.pos.HorizontalMagnitude())
	if !landed {
		// Cutoff mid-air: treat the whole shot as carry.
		res.CarryYd = res.TotalYd
		res.FlightTimeSec = st.t
	}
	res.RollYd = res.TotalYd - res.CarryYd
	res.OfflineYd = units.MetersToYards(st.pos.Z)
	res.MaxHeightFt = units.MetersToFeet(apexHeight)
	res.ApexTimeSec = apexTime
	res.TotalTimeSec = st.t
	res.BounceCount = st.bounces
	res.RestSpinRPM = units.RadPerSecToRPM(st.backspin)
	res.SpinReversed = st.reversed
	return res
}

// stepFlight advances one fixed RK4 step of the airborne ball.
func (s *Simulator) stepFlight(st *simState, airDensity float64, wind Vec3) {
	dt := FlightDT

	k1 := s.safeAcceleration(st.vel, st.backspin, st.sidespin, airDensity, wind)
	k2 := s.safeAcceleration(st.vel.Plus(k1.Times(dt/2)), st.backspin, st.sidespin, airDensity, wind)
	k3 := s.safeAcceleration(st.vel.Plus(k2.Times(dt/2)), st.backspin, st.sidespin, airDensity, wind)
	k4 := s.safeAcceleration(st.vel.Plus(k3.Times(dt)), st.backspin, st.sidespin, airDensity, wind)

	newVel := st.vel.Plus(k1.Plus(k2.Times(2)).Plus(k3.Times(2)).Plus(k4).Times(dt / 6))
	st.pos = st.pos.Plus(st.vel.Plus(newVel).Times(dt / 2))
	st.vel = newVel

	// Spin bleeds off slowly in the air; the ground model has its own decay.
	decay := math.Exp(-dt / FlightSpinDecayTau)
	st.backspin *= decay
	st.sidespin *= decay

	st.t += dt
}

// touchdown resolves a ground contact: bounce again, or hand over to rolling.
func (s *Simulator) touchdown(st *simState, surface Surface) {
	b := Bounce(st.pos, st.vel, st.backspin, descentAngleDeg(st.vel), surface)
	st.pos = b.Position
	st.vel = b.Velocity
	st.backspin = b.Backspin
	st.reversed = st.reversed || b.Reversed
	st.bounces++

	if st.vel.Y < MinBounceSpeed || st.bounces >= MaxBounces {
		st.vel.Y = 0
		st.pos.Y = 0
		st.phase = PhaseRolling
		return
	}
	st.phase = PhaseBounce
}

// safeAcceleration evaluates the aerodynamic forces and falls back to pure
// gravity if the computation degenerates (zero relative velocity, NaN from
// bad input). This is the single numerical guard for the flight phase.
func (s *Simulator) safeAcceleration(vel Vec3, backspin, sidespin, airDensity float64, wind Vec3) Vec3 {
	a := s.acceleration(vel, backspin, sidespin, airDensity, wind)
	if !a.IsFinite() {
		return NewVec3(0, -Gravity, 0)
	}
	return a
}

// acceleration combines gravity, drag against the wind-relative airflow, and
// the Magnus force from the combined back/side spin vector.
func (s *Simulator) acceleration(vel Vec3, backspin, sidespin, airDensity float64, wind Vec3) Vec3 {
	accel := NewVec3(0, -Gravity, 0)

	rel := vel.Minus(wind)
	speed := rel.Magnitude()
	if speed < 1e-9 {
		return accel
	}

	spinAxis := spinVector(rel, backspin, sidespin)
	spinRate := spinAxis.Magnitude()
	spinFactor := spinRate * BallRadius / speed

	re := s.aero.ReynoldsNumber(speed, airDensity)
	cd := s.aero.DragCoefficient(re) + s.aero.SpinDrag(spinFactor)

	k := 0.5 * airDensity * BallArea / BallMass
	accel = accel.Plus(rel.Times(-k * cd * speed))

	if spinRate > 1e-9 {
		cl := s.aero.LiftCoefficient(spinFactor)
		magnusDir := spinAxis.Normalize().Cross(rel).Normalize()
		if !magnusDir.IsZero() {
			accel = accel.Plus(magnusDir.Times(k * cl * speed * speed))
		}
	}
	return accel
}

// spinVector builds the ball's angular velocity vector from its backspin and
// sidespin components. The backspin axis is horizontal and perpendicular to
// the direction of travel, oriented so backspin lifts; the sidespin axis is
// vertical, oriented so positive sidespin curves the ball right.
func spinVector(rel Vec3, backspin, sidespin float64) Vec3 {
	horizontal := NewVec3(rel.X, 0, rel.Z)
	h := horizontal.Magnitude()
	if h < 1e-9 {
		return NewVec3(0, -sidespin, 0)
	}
	ux := rel.X / h
	uz := rel.Z / h
	return NewVec3(-uz*backspin, -sidespin, ux*backspin)
}

// windVector converts wind speed and direction into an air-velocity vector.
// Direction is where the wind comes from: 0° blows straight at the player
// (headwind, negative X), 90° blows from the right.
func windVector(env EnvironmentConditions) Vec3 {
	speed := units.MPHToMPS(env.WindSpeedMPH)
	if speed == 0 {
		return Vec3{}
	}
	dir := units.DegToRad(env.WindDirectionDeg)
	return NewVec3(-speed*math.Cos(dir), 0, -speed*math.Sin(dir))
}

// descentAngleDeg is the angle below horizontal of a descending velocity.
func descentAngleDeg(vel Vec3) float64 {
	return units.RadToDeg(math.Atan2(-vel.Y, vel.HorizontalMagnitude()))
}
