package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaysim/backend/internal/sim"
)

// ListSurfaces returns the named ground presets and their coefficients.
func ListSurfaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"surfaces": sim.Surfaces(),
	})
}
