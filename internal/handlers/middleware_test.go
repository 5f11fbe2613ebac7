package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedHandler() (*Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	return NewHandler(&service.Service{}, log), logs
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"ok", http.StatusOK, zapcore.DebugLevel},
		{"client_error", http.StatusBadRequest, zapcore.WarnLevel},
		{"server_error", http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, logs := newObservedHandler()
			r := gin.New()
			r.Use(h.requestLogger)
			r.GET("/probe", func(c *gin.Context) { c.Status(tc.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

			entries := logs.FilterMessage("http_request").All()
			if len(entries) != 1 {
				t.Fatalf("expected one log entry, got %d", len(entries))
			}
			e := entries[0]
			if e.Level != tc.level {
				t.Fatalf("level = %v, want %v", e.Level, tc.level)
			}
			fields := e.ContextMap()
			if fields["path"] != "/probe" || fields["method"] != http.MethodGet {
				t.Fatalf("unexpected fields: %v", fields)
			}
			if fields["status"] != int64(tc.status) {
				t.Fatalf("status field = %v (%T)", fields["status"], fields["status"])
			}
		})
	}
}

func TestRequestLogger_NilLoggerIsSafe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil)
	r := gin.New()
	r.Use(h.requestLogger)
	r.GET("/probe", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("status=%d", w.Code)
	}
}
