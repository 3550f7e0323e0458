package openmeteo

// CurrentAPIResponse is the Open-Meteo forecast response limited to the
// "current" variable block.
type CurrentAPIResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone"`
	Current   CurrentAPIValues `json:"current"`
}

// CurrentAPIValues holds the most recent model values for the requested
// current-weather variables.
type CurrentAPIValues struct {
	Time                string  `json:"time"`
	Interval            int     `json:"interval"`
	Temperature2M       float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	RelativeHumidity2M  float64 `json:"relative_humidity_2m"`
	IsDay               int     `json:"is_day"`
}
