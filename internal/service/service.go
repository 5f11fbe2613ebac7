package service

import (
	"context"

	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/models"
	"vitals_monitor/internal/repository"
	"vitals_monitor/internal/signal"
)

// Recorder owns the Running/Paused lifecycle of the synthetic generator.
// Start and Pause report whether a transition actually happened.
type Recorder interface {
	Start(ctx context.Context) bool
	Pause(ctx context.Context) bool
	Toggle(ctx context.Context) bool
	Recording() bool
	// Run blocks until ctx is canceled, then stops the tick source.
	Run(ctx context.Context)
}

// Monitoring exposes read-only vitals: ECG window, pulse, HRV bars, cards.
type Monitoring interface {
	Snapshot() models.VitalsSnapshot
	Pulse() int
	HRV() []models.HRVBar
	Cards() []models.VitalCard
}

// EventLog exposes the recording history with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.RecordingEvent, error)
}

// Service aggregates all sub-services.
type Service struct {
	Recorder
	Monitoring
	EventLog
}

// NewService wires the repository layer into concrete services. HRV bars
// are drawn once here, before the recorder starts using the same source.
func NewService(repos *repository.Repository, log *logger.Logger, opts RecorderOptions) *Service {
	opts = opts.withDefaults()
	recorder := NewRecorderService(repos.EventRepo, log, opts)
	return &Service{
		Recorder:   recorder,
		Monitoring: NewMonitoringService(recorder, signal.GenerateHRV(opts.Rand)),
		EventLog:   NewEventLogService(repos.EventRepo),
	}
}
