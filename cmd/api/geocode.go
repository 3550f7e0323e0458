package main

import (
	"errors"
	"net/http"

	"cool-finder/internal/location"
	"cool-finder/internal/types"

	"github.com/gin-gonic/gin"
)

// GeocodeInput defines the query parameters for the geocode endpoint
type GeocodeInput struct {
	Address string `form:"address" binding:"required"` // Free-text address
}

// handleGeocode godoc
// @Summary Geocode an address
// @Description Convert a free-text address into coordinates suitable for the nearest-centers endpoint
// @Tags geo
// @Produce json
// @Param address query string true "Free-text address" example(1000 4th Ave, Seattle)
// @Success 200 {object} location.Place
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := app.locationService.Geocode(c.Request.Context(), input.Address)
	if err != nil {
		if errors.Is(err, location.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to geocode address",
			"address", input.Address,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to geocode address"})
		return
	}

	c.JSON(http.StatusOK, place)
}

// ReverseGeocodeInput defines the query parameters for the reverse geocode endpoint
type ReverseGeocodeInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleReverseGeocode godoc
// @Summary Reverse geocode a coordinate
// @Description Convert a coordinate into the nearest known address
// @Tags geo
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" example(47.6062)
// @Param longitude query number true "Longitude in decimal degrees" example(-122.3321)
// @Success 200 {object} location.Place
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /geocode/reverse [get]
func (app *App) handleReverseGeocode(c *gin.Context) {
	var input ReverseGeocodeInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := app.locationService.ReverseGeocode(
		c.Request.Context(),
		types.NewCoords(input.Latitude, input.Longitude),
	)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidLatitude), errors.Is(err, types.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, location.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			app.logger.Error("failed to reverse geocode",
				"latitude", input.Latitude,
				"longitude", input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reverse geocode"})
		}
		return
	}

	c.JSON(http.StatusOK, place)
}
