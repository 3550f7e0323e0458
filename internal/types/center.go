package types

import (
	"errors"
	"fmt"
)

// ErrUnknownCenterType is returned when a type filter value does not match
// any known center type. Filtering is strict: a typo yields an error, not an
// empty result.
var ErrUnknownCenterType = errors.New("unknown center type")

// CenterType classifies a cooling center by the kind of facility hosting it
type CenterType string

const (
	CenterTypeCommunityCenter CenterType = "community-center"
	CenterTypeLibrary         CenterType = "library"
	CenterTypeEventHall       CenterType = "event-hall"
)

// ParseCenterType validates a raw type string against the known center types
func ParseCenterType(s string) (CenterType, error) {
	switch CenterType(s) {
	case CenterTypeCommunityCenter, CenterTypeLibrary, CenterTypeEventHall:
		return CenterType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCenterType, s)
}

// Feature names an amenity a cooling center offers
type Feature string

const (
	FeatureAirConditioning Feature = "air-conditioning"
	FeatureWaterFountain   Feature = "water-fountain"
	FeatureRestrooms       Feature = "restrooms"
	FeatureSeating         Feature = "seating"
	FeatureFoodCourt       Feature = "food-court"
)

// CoolingCenter is an immutable registry record for a public location
// offering refuge from extreme heat. Records are loaded once at startup and
// only ever replaced wholesale.
type CoolingCenter struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Type        CenterType     `json:"type"`
	Coordinates Coords         `json:"coordinates"`
	Hours       OperatingHours `json:"hours"`
	Features    []Feature      `json:"features,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}

// HasFeature reports whether the center lists the given amenity
func (c *CoolingCenter) HasFeature(f Feature) bool {
	for _, have := range c.Features {
		if have == f {
			return true
		}
	}
	return false
}
