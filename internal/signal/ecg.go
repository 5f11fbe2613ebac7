package signal

import "math"

// ----------- Waveform constants -----------
// Cycle thresholds are kept exactly as the dashboard has always drawn them.
const (
	PhaseStep = 0.1 // phase advance per tick
	CycleLen  = 8.0 // phase units per heartbeat cycle

	BaselineAmp  = 0.1 // sine baseline amplitude
	BaselineFreq = 3.0 // baseline angular speed per phase unit

	PulseStart = 1.8 // spike sub-window (exclusive bounds)
	PulseEnd   = 2.2
	PulseWidth = 0.4 // half-sine period of the spike
	PulseAmp   = 1.5 // spike peak above baseline

	RateStart = 2.0 // pulse-rate refresh sub-window (exclusive bounds)
	RateEnd   = 2.1

	NoiseAmp = 0.1 // uniform noise in [0, NoiseAmp)

	MinBPM     = 92
	BPMSpread  = 6 // MinBPM + [0, BPMSpread)
	MaxBPM     = MinBPM + BPMSpread - 1
	InitialBPM = 95
)

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ECGSim produces a QRS-like synthetic trace. Not clinical.
type ECGSim struct {
	rnd   RandSource
	phase float64
}

// NewECGSim returns a simulator at phase 0.
func NewECGSim(rnd RandSource) *ECGSim {
	return &ECGSim{rnd: rnd}
}

// Phase returns the accumulated phase.
func (s *ECGSim) Phase() float64 { return s.phase }

// Reset rewinds the phase to zero.
func (s *ECGSim) Reset() { s.phase = 0 }

// Next advances the phase by one step and returns the new amplitude.
// When the phase lands in the rate sub-window it also returns a fresh
// pulse rate and true.
func (s *ECGSim) Next() (float64, int, bool) {
	s.phase += PhaseStep

	amp := Amplitude(s.phase) + s.rnd.Float64()*NoiseAmp

	if InRateWindow(s.phase) {
		return amp, MinBPM + int(math.Floor(s.rnd.Float64()*BPMSpread)), true
	}
	return amp, 0, false
}

// Amplitude is the noiseless waveform at phase t.
func Amplitude(t float64) float64 {
	amp := math.Sin(t*BaselineFreq) * BaselineAmp
	if InPulseWindow(t) {
		pos := cyclePos(t)
		amp += PulseAmp * math.Sin((pos-PulseStart)*math.Pi/PulseWidth)
	}
	return amp
}

// InPulseWindow reports whether t falls inside the spike sub-window.
func InPulseWindow(t float64) bool {
	pos := cyclePos(t)
	return pos > PulseStart && pos < PulseEnd
}

// InRateWindow reports whether t falls inside the pulse-rate refresh sub-window.
func InRateWindow(t float64) bool {
	pos := cyclePos(t)
	return pos > RateStart && pos < RateEnd
}

func cyclePos(t float64) float64 { return math.Mod(t, CycleLen) }
