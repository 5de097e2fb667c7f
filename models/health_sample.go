package models

import "time"

// Health data types requested from the on-device provider. The set mirrors
// what the backend accepts; providers may grant a subset.
const (
	SampleTypeSteps       = "steps"
	SampleTypeHeartRate   = "heart_rate"
	SampleTypeSleep       = "sleep_session"
	SampleTypeActiveBurn  = "active_calories_burned"
	SampleTypeDistance    = "distance"
	SampleTypeWeight      = "weight"
	SampleTypeBloodOxygen = "oxygen_saturation"
)

// DefaultSampleTypes is the standard permission/query set for both sync
// phases.
var DefaultSampleTypes = []string{
	SampleTypeSteps,
	SampleTypeHeartRate,
	SampleTypeSleep,
	SampleTypeActiveBurn,
	SampleTypeDistance,
	SampleTypeWeight,
	SampleTypeBloodOxygen,
}

// HealthSample is a single measurement read from the health provider.
type HealthSample struct {
	// Type is one of the SampleType* constants.
	Type string `json:"type"`

	// Value is the numeric reading in Unit.
	Value float64 `json:"value"`

	// Unit is the measurement unit reported by the provider (e.g. "count",
	// "bpm", "kg").
	Unit string `json:"unit"`

	// Start and End bound the interval the sample covers. Point-in-time
	// samples have Start == End.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// SourceDevice identifies the recording device, when known.
	SourceDevice string `json:"source_device,omitempty"`
}
