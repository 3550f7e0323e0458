package types

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks the coordinates against valid Earth ranges
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// Point returns the coordinates as an orb.Point ([lon, lat] order)
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
