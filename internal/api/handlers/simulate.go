package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaysim/backend/internal/config"
	"github.com/fairwaysim/backend/internal/sim"
)

// SimulateRequest is the wire shape of a shot request. Environment and
// surface are optional; the range defaults from configuration fill the gaps.
type SimulateRequest struct {
	Launch      sim.LaunchConditions       `json:"launch" binding:"required"`
	Environment *sim.EnvironmentConditions `json:"environment,omitempty"`
	Surface     string                     `json:"surface,omitempty"`
	// CustomSurface overrides Surface when present; it must validate.
	CustomSurface *sim.Surface `json:"custom_surface,omitempty"`
}

// Resolve validates the request and fills defaults from configuration. Input
// validation lives here at the API edge; the engine itself takes inputs at
// face value.
func (r *SimulateRequest) Resolve(cfg *config.Config) (sim.LaunchConditions, sim.EnvironmentConditions, sim.Surface, error) {
	l := r.Launch
	for name, v := range map[string]float64{
		"ball_speed_mph":   l.BallSpeedMPH,
		"launch_angle_deg": l.LaunchAngleDeg,
		"direction_deg":    l.DirectionDeg,
		"backspin_rpm":     l.BackspinRPM,
		"sidespin_rpm":     l.SidespinRPM,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return l, sim.EnvironmentConditions{}, sim.Surface{}, fmt.Errorf("%s is not a number", name)
		}
	}
	if l.BallSpeedMPH <= 0 {
		return l, sim.EnvironmentConditions{}, sim.Surface{}, fmt.Errorf("ball_speed_mph must be positive")
	}
	if l.BallSpeedMPH > 250 {
		return l, sim.EnvironmentConditions{}, sim.Surface{}, fmt.Errorf("ball_speed_mph %.0f is not a golf shot", l.BallSpeedMPH)
	}

	env := sim.EnvironmentConditions{
		TemperatureF: cfg.RangeTempF,
		ElevationFt:  cfg.RangeElevationFt,
		HumidityPct:  cfg.RangeHumidityPct,
		PressureInHg: cfg.RangePressureInHg,
	}
	if r.Environment != nil {
		env = *r.Environment
	}

	var surface sim.Surface
	switch {
	case r.CustomSurface != nil:
		surface = *r.CustomSurface
		if surface.Name == "" {
			surface.Name = "custom"
		}
	case r.Surface != "":
		var err error
		surface, err = sim.SurfaceByName(r.Surface)
		if err != nil {
			return l, env, surface, err
		}
	default:
		var err error
		surface, err = sim.SurfaceByName(cfg.RangeSurface)
		if err != nil {
			return l, env, surface, err
		}
	}
	if err := surface.Validate(); err != nil {
		return l, env, surface, err
	}
	return l, env, surface, nil
}

// SimulateShot runs one shot through the engine and returns the full result.
func SimulateShot(simulator *sim.Simulator, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. Launch conditions required."})
			return
		}

		launch, env, surface, err := req.Resolve(cfg)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := simulator.Simulate(launch, env, surface)
		log.Printf("[SIM] %s shot %.0f mph / %.1f° / %.0f rpm -> carry %.1f yd, total %.1f yd",
			surface.Name, launch.BallSpeedMPH, launch.LaunchAngleDeg, launch.BackspinRPM,
			result.CarryYd, result.TotalYd)

		c.JSON(http.StatusOK, result)
	}
}
