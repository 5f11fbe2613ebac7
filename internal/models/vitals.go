package models

import "time"

// Sample is one point of the synthetic ECG trace.
type Sample struct {
	Time  int64   `json:"time" yaml:"time"`   // unix milliseconds
	Value float64 `json:"value" yaml:"value"` // amplitude, arbitrary units
}

// HRVBar is one hourly heart-rate-variability bar.
type HRVBar struct {
	Time  string  `json:"time" yaml:"time"` // "0:00" .. "23:00"
	Value float64 `json:"value" yaml:"value"`
}

// VitalsSnapshot is a copy of the generator state handed to readers.
type VitalsSnapshot struct {
	Recording bool      `json:"recording"`
	BPM       int       `json:"bpm"`
	ECG       []Sample  `json:"ecg"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VitalCard is one tile of the vitals grid.
type VitalCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}
