package main

// @title Cool Finder API
// @version 1.0
// @description Cooling center finder API: nearest-center queries, geocoding, and directions for extreme heat events
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
