package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fairwaysim/backend/internal/config"
	"github.com/fairwaysim/backend/internal/sim"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		RangeTempF:        59,
		RangeHumidityPct:  50,
		RangePressureInHg: 29.92,
		RangeSurface:      "fairway",
	}
	router := gin.New()
	router.POST("/simulate", SimulateShot(sim.NewSimulator(), cfg))
	return router
}

func postShot(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSimulateShotRoundTrip(t *testing.T) {
	router := testRouter()
	w := postShot(t, router, `{
		"launch": {"ball_speed_mph": 167, "launch_angle_deg": 10.9, "backspin_rpm": 2686}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var res sim.ShotResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.CarryYd < 250 || res.CarryYd > 300 {
		t.Errorf("driver carry %.1f yd out of expected band", res.CarryYd)
	}
	if res.Surface != "fairway" {
		t.Errorf("default surface %q, want fairway", res.Surface)
	}
	if len(res.Trajectory) == 0 {
		t.Error("no trajectory in response")
	}
}

func TestSimulateShotValidation(t *testing.T) {
	router := testRouter()
	cases := []struct {
		name string
		body string
	}{
		{"no body", `{}`},
		{"zero speed", `{"launch": {"ball_speed_mph": 0, "launch_angle_deg": 10}}`},
		{"absurd speed", `{"launch": {"ball_speed_mph": 900, "launch_angle_deg": 10}}`},
		{"unknown surface", `{"launch": {"ball_speed_mph": 150, "launch_angle_deg": 12}, "surface": "bunker"}`},
		{"bad custom surface", `{"launch": {"ball_speed_mph": 150, "launch_angle_deg": 12},
			"custom_surface": {"name": "ice", "cor_scale": 9, "rolling_resistance": 0.1, "friction": 0.1, "spin_absorption": 0.1}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if w := postShot(t, router, c.body); w.Code != http.StatusBadRequest {
				t.Errorf("status %d, want 400 (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestSimulateShotCustomSurface(t *testing.T) {
	router := testRouter()
	w := postShot(t, router, `{
		"launch": {"ball_speed_mph": 150, "launch_angle_deg": 12, "backspin_rpm": 2800},
		"custom_surface": {"name": "links", "cor_scale": 1.2, "rolling_resistance": 0.08,
			"friction": 0.2, "spin_absorption": 0.25}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var res sim.ShotResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if res.Surface != "links" {
		t.Errorf("surface %q, want links", res.Surface)
	}
}
