package heat

import (
	"encoding/json"
	"time"

	"cool-finder/internal/types"
)

// AdvisoryLevel buckets the heat index into the NWS exposure categories.
type AdvisoryLevel int

const (
	AdvisoryNone AdvisoryLevel = iota
	AdvisoryCaution
	AdvisoryExtremeCaution
	AdvisoryDanger
	AdvisoryExtremeDanger
)

// Heat index thresholds in Fahrenheit, lower bound inclusive.
const (
	cautionThresholdF        = 80
	extremeCautionThresholdF = 90
	dangerThresholdF         = 103
	extremeDangerThresholdF  = 125
)

// AdvisoryForHeatIndex maps an apparent temperature in Fahrenheit to an
// advisory level.
func AdvisoryForHeatIndex(apparentFahrenheit float64) AdvisoryLevel {
	switch {
	case apparentFahrenheit >= extremeDangerThresholdF:
		return AdvisoryExtremeDanger
	case apparentFahrenheit >= dangerThresholdF:
		return AdvisoryDanger
	case apparentFahrenheit >= extremeCautionThresholdF:
		return AdvisoryExtremeCaution
	case apparentFahrenheit >= cautionThresholdF:
		return AdvisoryCaution
	default:
		return AdvisoryNone
	}
}

func (l AdvisoryLevel) String() string {
	switch l {
	case AdvisoryCaution:
		return "caution"
	case AdvisoryExtremeCaution:
		return "extreme-caution"
	case AdvisoryDanger:
		return "danger"
	case AdvisoryExtremeDanger:
		return "extreme-danger"
	default:
		return "none"
	}
}

func (l AdvisoryLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Alert is an active heat-related warning from the weather service.
type Alert struct {
	Event       string    `json:"event"`
	Severity    string    `json:"severity"`
	Headline    string    `json:"headline"`
	Instruction string    `json:"instruction,omitempty"`
	Expires     time.Time `json:"expires,omitempty"`
}

// Conditions describes the current heat exposure at a location.
type Conditions struct {
	Coordinates         types.Coords      `json:"coordinates"`
	ObservedAt          time.Time         `json:"observed_at"`
	Temperature         types.Temperature `json:"temperature"`
	ApparentTemperature types.Temperature `json:"apparent_temperature"`
	RelativeHumidity    float64           `json:"relative_humidity"`
	IsDay               bool              `json:"is_day"`
	Advisory            AdvisoryLevel     `json:"advisory"`
	Alerts              []Alert           `json:"alerts"`
}
