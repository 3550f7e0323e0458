package centers

import (
	"errors"
	"time"

	"cool-finder/internal/types"
)

// ErrInvalidRadius is returned for a negative radius cap
var ErrInvalidRadius = errors.New("radius must be non-negative")

// ErrCenterNotFound is returned when no center carries the requested id
var ErrCenterNotFound = errors.New("center not found")

// Query describes one nearest-center lookup. Queries are ephemeral: built
// per request, discarded with the response.
//
// Filter dimensions combine with AND; within Types the selected values
// combine with OR (a center matches if it is any of the selected types).
type Query struct {
	Origin       types.Coords
	RadiusMeters float64 // 0 means uncapped

	Types    []types.CenterType
	Features []types.Feature
	OpenNow  bool
	At       time.Time // reference instant for OpenNow; zero means "now"

	Limit int // 0 means unlimited
}
