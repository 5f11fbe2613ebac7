package handlers

import (
	"context"
	"sync"
	"time"

	"vitals_monitor/internal/models"
	"vitals_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockRecorder struct {
	mu          sync.Mutex
	on          bool
	startCalled int
	pauseCalled int
}

func (m *mockRecorder) Start(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalled++
	if m.on {
		return false
	}
	m.on = true
	return true
}

func (m *mockRecorder) Pause(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalled++
	if !m.on {
		return false
	}
	m.on = false
	return true
}

func (m *mockRecorder) Toggle(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.on = !m.on
	return m.on
}

func (m *mockRecorder) Recording() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.on
}

func (m *mockRecorder) Run(ctx context.Context) { <-ctx.Done() }

type mockMonitoring struct {
	snap  models.VitalsSnapshot
	hrv   []models.HRVBar
	cards []models.VitalCard
}

func (m *mockMonitoring) Snapshot() models.VitalsSnapshot { return m.snap }
func (m *mockMonitoring) Pulse() int                      { return m.snap.BPM }
func (m *mockMonitoring) HRV() []models.HRVBar            { return m.hrv }
func (m *mockMonitoring) Cards() []models.VitalCard       { return m.cards }

type mockEventLog struct {
	resp     []models.RecordingEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.RecordingEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
