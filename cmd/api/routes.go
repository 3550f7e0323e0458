package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Center endpoints
	app.router.GET("/centers", app.handleListCenters)
	app.router.GET("/centers/nearest", app.handleNearestCenters)
	app.router.GET("/centers.geojson", app.handleCentersGeoJSON)
	app.router.GET("/centers/:id", app.handleGetCenter)

	// Geospatial helpers
	app.router.GET("/geocode", app.handleGeocode)
	app.router.GET("/geocode/reverse", app.handleReverseGeocode)
	app.router.GET("/directions", app.handleDirections)

	// Current heat conditions
	app.router.GET("/heat", app.handleHeatConditions)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
