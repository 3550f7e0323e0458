package osrm

// RouteAPIResponse is the OSRM route service response envelope. Code is "Ok"
// on success; any other value carries a human-readable message.
type RouteAPIResponse struct {
	Code    string     `json:"code"`
	Message string     `json:"message,omitempty"`
	Routes  []RouteAPI `json:"routes"`
}

type RouteAPI struct {
	Distance float64       `json:"distance"` // meters
	Duration float64       `json:"duration"` // seconds
	Geometry string        `json:"geometry"` // encoded polyline, precision 5
	Legs     []RouteAPILeg `json:"legs"`
}

type RouteAPILeg struct {
	Distance float64        `json:"distance"`
	Duration float64        `json:"duration"`
	Steps    []RouteAPIStep `json:"steps"`
}

type RouteAPIStep struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Name     string  `json:"name"`
	Mode     string  `json:"mode"`
	Maneuver struct {
		Type     string `json:"type"`
		Modifier string `json:"modifier"`
	} `json:"maneuver"`
}
