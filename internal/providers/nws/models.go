package nws

// AlertsAPIResponse is the GeoJSON FeatureCollection returned by the active
// alerts endpoint.
type AlertsAPIResponse struct {
	Features []AlertAPIFeature `json:"features"`
}

type AlertAPIFeature struct {
	ID         string             `json:"id"`
	Properties AlertAPIProperties `json:"properties"`
}

type AlertAPIProperties struct {
	Event       string `json:"event"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	Onset       string `json:"onset"`
	Ends        string `json:"ends"`
	Expires     string `json:"expires"`
	SenderName  string `json:"senderName"`
	AreaDesc    string `json:"areaDesc"`
}
