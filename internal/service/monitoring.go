package service

import (
	"strconv"

	"vitals_monitor/internal/models"
)

// VitalsSource yields the live generator state.
type VitalsSource interface {
	Snapshot() models.VitalsSnapshot
}

// Static cards shown next to the live ECG value.
var staticCards = []models.VitalCard{
	{Label: "Blood Pressure", Value: "118/76", Unit: "mmHg", Status: "Healthy"},
	{Label: "Blood Oxygen", Value: "98", Unit: "%", Status: "SpO2 Saturation"},
	{Label: "HRV", Value: "86", Unit: "ms", Status: "Stable"},
}

type MonitoringService struct {
	source VitalsSource
	hrv    []models.HRVBar
}

// NewMonitoringService keeps its own copy of hrv; it is never mutated afterwards.
func NewMonitoringService(source VitalsSource, hrv []models.HRVBar) *MonitoringService {
	return &MonitoringService{source: source, hrv: append([]models.HRVBar(nil), hrv...)}
}

// Snapshot returns the latest vitals.
func (s *MonitoringService) Snapshot() models.VitalsSnapshot {
	return s.source.Snapshot()
}

// Pulse returns the displayed pulse rate.
func (s *MonitoringService) Pulse() int {
	return s.source.Snapshot().BPM
}

// HRV returns a copy of the hourly bars.
func (s *MonitoringService) HRV() []models.HRVBar {
	return append([]models.HRVBar(nil), s.hrv...)
}

// Cards returns the vitals grid with the live pulse rate first.
func (s *MonitoringService) Cards() []models.VitalCard {
	cards := make([]models.VitalCard, 0, len(staticCards)+1)
	cards = append(cards, models.VitalCard{
		Label:  "ECG",
		Value:  strconv.Itoa(s.Pulse()),
		Unit:   "bpm",
		Status: "Normal",
	})
	return append(cards, staticCards...)
}
