package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		DebugLevel: zapcore.DebugLevel,
		"bogus":    defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewCore_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(newCore(zapcore.InfoLevel, JSONFormat, zapcore.AddSync(&buf))).Sugar()
	l.Infow("recording_started", "tick_ms", 50)
	l.Debugw("dropped_below_level")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "recording_started" || entry["tick_ms"] != float64(50) {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestNewCore_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(newCore(zapcore.WarnLevel, ConsoleFormat, zapcore.AddSync(&buf))).Sugar()
	l.Infow("hidden")
	l.Warnw("ws_ping_failed", "err", "boom")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "ws_ping_failed") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestNamedAndNop(t *testing.T) {
	l := Nop().Named("recorder")
	if l == nil || l.SugaredLogger == nil {
		t.Fatalf("expected usable logger")
	}
	l.Infow("noop")
}
