package main

import (
	"errors"
	"net/http"

	"cool-finder/internal/directions"
	"cool-finder/internal/types"

	"github.com/gin-gonic/gin"
)

// DirectionsInput defines the query parameters for the directions endpoint
type DirectionsInput struct {
	FromLat float64 `form:"from_lat" binding:"required"` // Origin latitude
	FromLon float64 `form:"from_lon" binding:"required"` // Origin longitude
	ToLat   float64 `form:"to_lat" binding:"required"`   // Destination latitude
	ToLon   float64 `form:"to_lon" binding:"required"`   // Destination longitude
	Mode    string  `form:"mode"`                        // driving, walking (default), cycling
}

// handleDirections godoc
// @Summary Get directions to a cooling center
// @Description Compute a route with turn-by-turn instructions between two coordinates
// @Tags geo
// @Produce json
// @Param from_lat query number true "Origin latitude" example(47.6062)
// @Param from_lon query number true "Origin longitude" example(-122.3321)
// @Param to_lat query number true "Destination latitude" example(47.6067)
// @Param to_lon query number true "Destination longitude" example(-122.3325)
// @Param mode query string false "Travel mode" Enums(driving, walking, cycling) default(walking)
// @Success 200 {object} directions.Route
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /directions [get]
func (app *App) handleDirections(c *gin.Context) {
	var input DirectionsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := directions.ParseMode(input.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := app.directionsService.GetRoute(
		c.Request.Context(),
		types.NewCoords(input.FromLat, input.FromLon),
		types.NewCoords(input.ToLat, input.ToLon),
		mode,
	)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidLatitude), errors.Is(err, types.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, directions.ErrNoRoute):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			app.logger.Error("failed to get directions", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get directions"})
		}
		return
	}

	c.JSON(http.StatusOK, route)
}
