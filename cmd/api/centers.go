package main

import (
	"errors"
	"net/http"
	"time"

	"cool-finder/internal/centers"
	"cool-finder/internal/types"

	"github.com/gin-gonic/gin"
)

// NearestCentersInput defines the query parameters for the nearest endpoint
type NearestCentersInput struct {
	Latitude    float64  `form:"latitude"`     // Latitude in decimal degrees
	Longitude   float64  `form:"longitude"`    // Longitude in decimal degrees
	RadiusMiles float64  `form:"radius_miles"` // 0 means uncapped
	Types       []string `form:"type"`         // repeatable, OR across values
	Features    []string `form:"feature"`      // repeatable, all must match
	OpenNow     bool     `form:"open_now"`
	At          string   `form:"at"` // RFC3339 reference instant for open_now
	Limit       int      `form:"limit"`
}

// handleNearestCenters godoc
// @Summary Find nearest cooling centers
// @Description Rank cooling centers by distance from a coordinate, optionally filtered by type, features, and open-now status. Falls back to the configured default location when no coordinate is given.
// @Tags centers
// @Produce json
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(47.6062)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.3321)
// @Param radius_miles query number false "Maximum distance in miles, 0 for uncapped" example(5)
// @Param type query []string false "Center type filter, repeatable" collectionFormat(multi)
// @Param feature query []string false "Required feature, repeatable" collectionFormat(multi)
// @Param open_now query boolean false "Only centers open at the reference time"
// @Param at query string false "RFC3339 reference instant for open_now, defaults to now"
// @Param limit query integer false "Maximum number of results"
// @Success 200 {array} registry.RankedCenter
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /centers/nearest [get]
func (app *App) handleNearestCenters(c *gin.Context) {
	var input NearestCentersInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// No coordinate at all: center the search on the configured default
	// location rather than rejecting the request.
	if c.Query("latitude") == "" && c.Query("longitude") == "" {
		input.Latitude = app.cfg.App.DefaultLatitude
		input.Longitude = app.cfg.App.DefaultLongitude
	}

	query, err := app.buildQuery(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := app.centersService.FindNearest(*query)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) ||
			errors.Is(err, types.ErrInvalidLongitude) ||
			errors.Is(err, centers.ErrInvalidRadius) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to find nearest centers",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find nearest centers"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// buildQuery translates bound HTTP parameters into a domain query
func (app *App) buildQuery(input NearestCentersInput) (*centers.Query, error) {
	if input.RadiusMiles < 0 {
		return nil, centers.ErrInvalidRadius
	}
	if input.RadiusMiles > app.cfg.App.MaxRadiusMiles {
		return nil, errors.New("radius_miles exceeds the configured maximum")
	}

	centerTypes, err := parseCenterTypes(input.Types)
	if err != nil {
		return nil, err
	}

	var at time.Time
	if input.At != "" {
		at, err = time.Parse(time.RFC3339, input.At)
		if err != nil {
			return nil, errors.New("at must be an RFC3339 timestamp")
		}
	}

	limit := input.Limit
	if limit == 0 {
		limit = app.cfg.App.DefaultLimit
	}
	if limit < 0 {
		return nil, errors.New("limit must be non-negative")
	}

	return &centers.Query{
		Origin:       types.NewCoords(input.Latitude, input.Longitude),
		RadiusMeters: types.NewDistanceFromMiles(input.RadiusMiles).Meters,
		Types:        centerTypes,
		Features:     parseFeatures(input.Features),
		OpenNow:      input.OpenNow,
		At:           at,
		Limit:        limit,
	}, nil
}

func parseCenterTypes(raw []string) ([]types.CenterType, error) {
	parsed := make([]types.CenterType, 0, len(raw))
	for _, s := range raw {
		t, err := types.ParseCenterType(s)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, t)
	}
	return parsed, nil
}

// Features are matched leniently: an unknown feature simply matches nothing
func parseFeatures(raw []string) []types.Feature {
	features := make([]types.Feature, 0, len(raw))
	for _, s := range raw {
		features = append(features, types.Feature(s))
	}
	return features
}

// handleListCenters godoc
// @Summary List cooling centers
// @Description List all registered cooling centers, optionally narrowed by type and feature
// @Tags centers
// @Produce json
// @Param type query []string false "Center type filter, repeatable" collectionFormat(multi)
// @Param feature query []string false "Required feature, repeatable" collectionFormat(multi)
// @Success 200 {array} types.CoolingCenter
// @Failure 400 {object} map[string]string
// @Router /centers [get]
func (app *App) handleListCenters(c *gin.Context) {
	centerTypes, err := parseCenterTypes(c.QueryArray("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := app.centersService.List(centerTypes, parseFeatures(c.QueryArray("feature")))
	c.JSON(http.StatusOK, results)
}

// handleGetCenter godoc
// @Summary Get a cooling center by id
// @Tags centers
// @Produce json
// @Param id path string true "Center id" example(central-library)
// @Success 200 {object} types.CoolingCenter
// @Failure 404 {object} map[string]string
// @Router /centers/{id} [get]
func (app *App) handleGetCenter(c *gin.Context) {
	center, err := app.centersService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, centers.ErrCenterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to get center", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get center"})
		return
	}

	c.JSON(http.StatusOK, center)
}

// handleCentersGeoJSON godoc
// @Summary Export centers as GeoJSON
// @Description Render the full registry as a GeoJSON FeatureCollection for map frontends
// @Tags centers
// @Produce json
// @Success 200 {object} map[string]any
// @Router /centers.geojson [get]
func (app *App) handleCentersGeoJSON(c *gin.Context) {
	c.JSON(http.StatusOK, app.centersService.GeoJSON())
}
