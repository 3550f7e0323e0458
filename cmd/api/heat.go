package main

import (
	"errors"
	"net/http"

	"cool-finder/internal/types"

	"github.com/gin-gonic/gin"
)

// HeatConditionsInput defines the query parameters for the heat endpoint
type HeatConditionsInput struct {
	Latitude  float64 `form:"latitude"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude"` // Longitude in decimal degrees
}

// handleHeatConditions godoc
// @Summary Get current heat conditions
// @Description Report the current temperature, heat index advisory level, and active heat alerts for a location. Falls back to the configured default location when no coordinate is given.
// @Tags heat
// @Produce json
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(47.6062)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.3321)
// @Success 200 {object} heat.Conditions
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /heat [get]
func (app *App) handleHeatConditions(c *gin.Context) {
	var input HeatConditionsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// No coordinate at all: report conditions for the configured default
	// location rather than rejecting the request.
	if c.Query("latitude") == "" && c.Query("longitude") == "" {
		input.Latitude = app.cfg.App.DefaultLatitude
		input.Longitude = app.cfg.App.DefaultLongitude
	}

	conditions, err := app.heatService.GetConditions(
		c.Request.Context(),
		types.NewCoords(input.Latitude, input.Longitude),
	)
	if err != nil {
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to get heat conditions",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get heat conditions"})
		return
	}

	c.JSON(http.StatusOK, conditions)
}
