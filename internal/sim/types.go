package sim

// Phase identifies where the ball is in its life between launch and rest.
type Phase string

const (
	PhaseFlight  Phase = "flight"
	PhaseBounce  Phase = "bounce"
	PhaseRolling Phase = "rolling"
	PhaseStopped Phase = "stopped"
)

// LaunchConditions is what the launch monitor measured, in range units.
type LaunchConditions struct {
	BallSpeedMPH   float64 `json:"ball_speed_mph"`
	LaunchAngleDeg float64 `json:"launch_angle_deg"`
	// DirectionDeg is the horizontal launch direction; positive = right.
	DirectionDeg float64 `json:"direction_deg"`
	BackspinRPM  float64 `json:"backspin_rpm"`
	// SidespinRPM is signed; positive curves the ball right (slice/fade).
	SidespinRPM float64 `json:"sidespin_rpm"`
}

// EnvironmentConditions describes the air the ball flies through. Typically
// configured once per session and reused across shots.
type EnvironmentConditions struct {
	TemperatureF     float64 `json:"temperature_f"`
	ElevationFt      float64 `json:"elevation_ft"`
	HumidityPct      float64 `json:"humidity_pct"`
	PressureInHg     float64 `json:"pressure_inhg"`
	WindSpeedMPH     float64 `json:"wind_speed_mph"`
	// WindDirectionDeg is where the wind blows from relative to the target
	// line: 0 = headwind, 90 = from the right, 180 = tailwind.
	WindDirectionDeg float64 `json:"wind_direction_deg"`
}

// StandardEnvironment returns standard-atmosphere, windless conditions.
func StandardEnvironment() EnvironmentConditions {
	return EnvironmentConditions{
		TemperatureF: StandardTemperatureF,
		ElevationFt:  StandardElevationFt,
		HumidityPct:  StandardHumidityPct,
		PressureInHg: StandardPressureInHg,
	}
}

// TrajectoryPoint is one sampled snapshot of the shot, in display units:
// downrange/lateral in yards, height in feet. Points are emitted in
// chronological order and never mutated afterward.
type TrajectoryPoint struct {
	TimeSec     float64 `json:"time_sec"`
	DownrangeYd float64 `json:"downrange_yd"`
	HeightFt    float64 `json:"height_ft"`
	LateralYd   float64 `json:"lateral_yd"`
	Phase       Phase   `json:"phase"`
}

// ShotResult is the sole output of a simulation: the sampled trajectory plus
// summary scalars, all in display units. It echoes the inputs it was computed
// from and is immutable once returned.
type ShotResult struct {
	Launch      LaunchConditions      `json:"launch"`
	Environment EnvironmentConditions `json:"environment"`
	Surface     string                `json:"surface"`

	Trajectory []TrajectoryPoint `json:"trajectory"`

	CarryYd   float64 `json:"carry_yd"`
	TotalYd   float64 `json:"total_yd"`
	RollYd    float64 `json:"roll_yd"`
	OfflineYd float64 `json:"offline_yd"` // positive = right of the target line

	MaxHeightFt float64 `json:"max_height_ft"`
	ApexTimeSec float64 `json:"apex_time_sec"`

	FlightTimeSec float64 `json:"flight_time_sec"` // launch to first landing
	TotalTimeSec  float64 `json:"total_time_sec"`  // launch to rest

	BounceCount     int     `json:"bounce_count"`
	LandingAngleDeg float64 `json:"landing_angle_deg"`
	LandingSpeedMPH float64 `json:"landing_speed_mph"`
	LandingSpinRPM  float64 `json:"landing_spin_rpm"`
	RestSpinRPM     float64 `json:"rest_spin_rpm"`

	// SpinReversed reports whether any ground contact checked the ball hard
	// enough to reverse its tangential velocity.
	SpinReversed bool `json:"spin_reversed"`
}
