package service

import (
	"math/rand"
	"time"

	"vitals_monitor/internal/signal"

	"github.com/jonboulle/clockwork"
)

// RecorderOptions configures the generator. Zero fields take defaults.
type RecorderOptions struct {
	Clock      clockwork.Clock   // real clock by default
	Rand       signal.RandSource // time-seeded by default
	Tick       time.Duration     // 50ms by default
	WindowSize int               // signal.DefaultWindowSize by default
	AutoStart  bool              // start recording when Run is called
	Retention  time.Duration     // event log age limit; 0 keeps everything
}

const defaultTick = 50 * time.Millisecond

func (o RecorderOptions) withDefaults() RecorderOptions {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Rand == nil {
		o.Rand = NewRand(0)
	}
	if o.Tick <= 0 {
		o.Tick = defaultTick
	}
	if o.WindowSize < 1 {
		o.WindowSize = signal.DefaultWindowSize
	}
	return o
}

// NewRand returns a seeded source; seed 0 picks a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "START", "PAUSE", "PULSE"
}
