package service

import (
	"context"
	"sync"
	"time"

	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/models"
	"vitals_monitor/internal/repository"
	"vitals_monitor/internal/signal"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// RecorderService drives the synthetic ECG on a fixed tick while recording.
// All generator state is guarded by mu; readers get copies.
type RecorderService struct {
	eventRepo repository.EventRepo // optional
	log       *logger.Logger
	clock     clockwork.Clock
	tick      time.Duration
	autoStart bool
	retention time.Duration // 0 keeps every event

	mu        sync.Mutex
	sim       *signal.ECGSim
	window    *signal.Window
	bpm       int
	updatedAt time.Time

	// non-nil while Running
	cancel context.CancelFunc
	done   chan struct{}
	closed bool // set once Run returns
}

// NewRecorderService returns a paused recorder with an empty window.
func NewRecorderService(eventRepo repository.EventRepo, log *logger.Logger, opts RecorderOptions) *RecorderService {
	opts = opts.withDefaults()
	if log == nil {
		log = logger.Nop()
	}
	return &RecorderService{
		eventRepo: eventRepo,
		log:       log,
		clock:     opts.Clock,
		tick:      opts.Tick,
		autoStart: opts.AutoStart,
		retention: opts.Retention,
		sim:       signal.NewECGSim(opts.Rand),
		window:    signal.NewWindow(opts.WindowSize),
		bpm:       signal.InitialBPM,
	}
}

// Run starts recording when autostart is set and blocks until ctx is
// canceled. On return the recorder is closed: the ticker is gone and later
// Start or Toggle calls are no-ops.
func (s *RecorderService) Run(ctx context.Context) {
	if s.autoStart {
		s.Start(ctx)
	}
	<-ctx.Done()

	s.mu.Lock()
	s.closed = true
	done := s.detachLocked()
	s.mu.Unlock()

	if done != nil {
		<-done
		s.log.Infow("recording_stopped_on_shutdown")
	}
}

// Start enters Running. It is a no-op when already Running or after Run has
// returned, so at most one ticker exists at any time. The phase restarts
// from zero on every start.
func (s *RecorderService) Start(ctx context.Context) bool {
	s.mu.Lock()
	now, started := s.startLocked()
	s.mu.Unlock()

	if started {
		s.onStarted(ctx, now)
	}
	return started
}

// Pause enters Paused. It is a no-op when already Paused. When it returns
// the ticker is stopped and no further samples will be appended; the
// current window and pulse rate are kept.
func (s *RecorderService) Pause(ctx context.Context) bool {
	s.mu.Lock()
	done := s.detachLocked()
	s.mu.Unlock()

	if done == nil {
		return false
	}
	<-done
	s.onPaused(ctx)
	return true
}

// Toggle flips Running/Paused and returns whether recording is now on.
// The state is read and flipped under one lock hold.
func (s *RecorderService) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	if done := s.detachLocked(); done != nil {
		s.mu.Unlock()
		<-done
		s.onPaused(ctx)
		return false
	}
	now, started := s.startLocked()
	s.mu.Unlock()

	if started {
		s.onStarted(ctx, now)
	}
	return started
}

// Recording reports whether the recorder is Running.
func (s *RecorderService) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Snapshot returns a copy of the current generator state.
func (s *RecorderService) Snapshot() models.VitalsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.VitalsSnapshot{
		Recording: s.cancel != nil,
		BPM:       s.bpm,
		ECG:       s.window.Samples(),
		UpdatedAt: s.updatedAt,
	}
}

// Step applies one generator tick stamped with now, regardless of state.
// It reports the new pulse rate when this tick refreshed it.
func (s *RecorderService) Step(now time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked(now)
}

// startLocked launches the tick loop unless one is running or the recorder
// is closed. Caller holds mu.
func (s *RecorderService) startLocked() (time.Time, bool) {
	if s.closed || s.cancel != nil {
		return time.Time{}, false
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ticker := s.clock.NewTicker(s.tick)
	s.cancel, s.done = cancel, done
	s.sim.Reset()
	go s.loop(loopCtx, ticker, done)
	return s.clock.Now(), true
}

// detachLocked cancels the tick loop and returns the channel that closes
// once it has exited, or nil when nothing was running. Caller holds mu and
// waits on the channel after releasing it. Because the cancel happens under
// mu, a tick that races with it sees a canceled context and drops itself.
func (s *RecorderService) detachLocked() <-chan struct{} {
	if s.cancel == nil {
		return nil
	}
	done := s.done
	s.cancel()
	s.cancel, s.done = nil, nil
	return done
}

func (s *RecorderService) onStarted(ctx context.Context, now time.Time) {
	s.log.Infow("recording_started", "tick", s.tick.String())
	s.appendEvent(ctx, models.RecordingEvent{
		OccurredAt:  now.UTC(),
		Type:        models.EventStart,
		Description: "Recording started",
	})
}

func (s *RecorderService) onPaused(ctx context.Context) {
	s.log.Infow("recording_paused", "samples", s.windowLen())
	s.appendEvent(ctx, models.RecordingEvent{
		OccurredAt:  s.clock.Now().UTC(),
		Type:        models.EventPause,
		Description: "Recording paused",
	})
}

func (s *RecorderService) loop(ctx context.Context, ticker clockwork.Ticker, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.Chan():
			s.onTick(ctx, now)
		}
	}
}

func (s *RecorderService) onTick(ctx context.Context, now time.Time) {
	s.mu.Lock()
	if ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	bpm, refreshed := s.stepLocked(now)
	s.mu.Unlock()

	if refreshed {
		s.log.Debugw("pulse_rate_updated", "bpm", bpm)
		s.appendEvent(context.WithoutCancel(ctx), models.RecordingEvent{
			OccurredAt:  now.UTC(),
			Type:        models.EventPulse,
			Description: "Pulse rate updated",
			Metadata:    map[string]any{"bpm": bpm},
		})
	}
}

func (s *RecorderService) stepLocked(now time.Time) (int, bool) {
	amp, bpm, refreshed := s.sim.Next()
	s.window.Push(models.Sample{Time: now.UnixMilli(), Value: amp})
	if refreshed {
		s.bpm = bpm
	}
	s.updatedAt = now.UTC()
	return bpm, refreshed
}

func (s *RecorderService) windowLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window.Len()
}

// appendEvent is best-effort: a failing log never affects recording.
// Events older than the retention window are pruned after each append.
func (s *RecorderService) appendEvent(ctx context.Context, e models.RecordingEvent) {
	if s.eventRepo == nil {
		return
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if err := s.eventRepo.Append(ctx, e); err != nil {
		s.log.Errorw("recording_event_append_failed", "type", e.Type, "err", err)
		return
	}
	if s.retention <= 0 {
		return
	}
	n, err := s.eventRepo.DeleteBefore(ctx, e.OccurredAt.Add(-s.retention))
	if err != nil {
		s.log.Errorw("recording_event_prune_failed", "err", err)
		return
	}
	if n > 0 {
		s.log.Debugw("recording_events_pruned", "rows", n)
	}
}
