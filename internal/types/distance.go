package types

const (
	metersPerMile      = 1609.344
	metersPerKilometer = 1000
)

// Distance holds a distance in multiple units so handlers never convert inline
type Distance struct {
	Meters     float64 `json:"meters"`
	Kilometers float64 `json:"kilometers"`
	Miles      float64 `json:"miles"`
}

func NewDistanceFromMeters(meters float64) Distance {
	return Distance{
		Meters:     meters,
		Kilometers: meters / metersPerKilometer,
		Miles:      meters / metersPerMile,
	}
}

func NewDistanceFromMiles(miles float64) Distance {
	return NewDistanceFromMeters(miles * metersPerMile)
}
