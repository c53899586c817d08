// Package ws streams simulated shots to range-display clients. A client
// sends one simulate request per shot and receives a summary frame, the
// sampled trajectory paced for animation, and a rest frame.
package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/fairwaysim/backend/internal/api/handlers"
	"github.com/fairwaysim/backend/internal/config"
	"github.com/fairwaysim/backend/internal/sim"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin is checked by the middleware before upgrade
	},
}

// Frame is one message of the shot stream.
type Frame struct {
	Type    string               `json:"type"` // "summary", "point", "rest", "error"
	Summary *sim.ShotResult      `json:"summary,omitempty"`
	Point   *sim.TrajectoryPoint `json:"point,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// HandleShotStream upgrades the connection and serves shots until the client
// goes away. One connection handles many shots in sequence.
func HandleShotStream(simulator *sim.Simulator, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		log.Printf("[WS] Display client connected from %s", conn.RemoteAddr())

		pace := time.Duration(cfg.StreamIntervalMs) * time.Millisecond
		for {
			var req handlers.SimulateRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("[WS] Read error: %v", err)
				}
				return
			}

			launch, env, surface, err := req.Resolve(cfg)
			if err != nil {
				if werr := conn.WriteJSON(Frame{Type: "error", Error: err.Error()}); werr != nil {
					return
				}
				continue
			}

			result := simulator.Simulate(launch, env, surface)
			if err := streamShot(conn, result, pace); err != nil {
				log.Printf("[WS] Stream aborted: %v", err)
				return
			}
		}
	}
}

// streamShot writes the summary first so displays can set up the scene, then
// paces the trajectory out point by point, and closes the shot with a rest
// frame carrying the final summary again.
func streamShot(conn *websocket.Conn, result sim.ShotResult, pace time.Duration) error {
	summary := result
	summary.Trajectory = nil

	if err := conn.WriteJSON(Frame{Type: "summary", Summary: &summary}); err != nil {
		return err
	}
	for i := range result.Trajectory {
		if err := conn.WriteJSON(Frame{Type: "point", Point: &result.Trajectory[i]}); err != nil {
			return err
		}
		if pace > 0 {
			time.Sleep(pace)
		}
	}
	return conn.WriteJSON(Frame{Type: "rest", Summary: &summary})
}
