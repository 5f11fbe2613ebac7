// Command tracegen renders a deterministic ECG trace without starting the
// server. It is handy for eyeballing the waveform or seeding fixtures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"vitals_monitor/internal/config"
	"vitals_monitor/internal/logger"
	"vitals_monitor/internal/models"
	"vitals_monitor/internal/service"
	"vitals_monitor/internal/signal"

	"gopkg.in/yaml.v3"
)

type pulseUpdate struct {
	Tick int `json:"tick" yaml:"tick"`
	BPM  int `json:"bpm" yaml:"bpm"`
}

type trace struct {
	Seed   int64           `json:"seed" yaml:"seed"`
	Ticks  int             `json:"ticks" yaml:"ticks"`
	TickMS int64           `json:"tick_ms" yaml:"tick_ms"`
	BPM    int             `json:"bpm" yaml:"bpm"`
	Pulse  []pulseUpdate   `json:"pulse_updates" yaml:"pulse_updates"`
	ECG    []models.Sample `json:"ecg" yaml:"ecg"`
	HRV    []models.HRVBar `json:"hrv" yaml:"hrv"`
}

type options struct {
	seed   int64
	ticks  int
	window int
	tick   time.Duration
	format string
}

func main() {
	var o options
	flag.Int64Var(&o.seed, "seed", 1, "random seed (0 = time based)")
	flag.IntVar(&o.ticks, "ticks", 160, "number of generator ticks")
	flag.IntVar(&o.window, "window", config.DefaultWindow, "ECG window capacity")
	flag.DurationVar(&o.tick, "tick", config.DefaultTick, "tick interval used for sample timestamps")
	flag.StringVar(&o.format, "format", "json", "output format: json | yaml")
	flag.Parse()

	log := logger.Get(logger.WarnLevel)
	if err := run(o, os.Stdout); err != nil {
		log.Fatalw("tracegen failed", "err", err)
	}
}

func run(o options, w io.Writer) error {
	if o.ticks < 0 {
		return fmt.Errorf("ticks must be >= 0, got %d", o.ticks)
	}
	if o.tick <= 0 {
		return fmt.Errorf("tick must be > 0, got %v", o.tick)
	}
	t := generate(o, time.Unix(0, 0).UTC())
	return encode(w, o.format, t)
}

// generate draws HRV first and then steps the recorder, the same order the
// server uses, so one seed yields the same data in both.
func generate(o options, start time.Time) trace {
	rnd := service.NewRand(o.seed)
	hrv := signal.GenerateHRV(rnd)
	rec := service.NewRecorderService(nil, logger.Nop(), service.RecorderOptions{
		Rand:       rnd,
		Tick:       o.tick,
		WindowSize: o.window,
	})

	var updates []pulseUpdate
	for i := 1; i <= o.ticks; i++ {
		if bpm, ok := rec.Step(start.Add(time.Duration(i) * o.tick)); ok {
			updates = append(updates, pulseUpdate{Tick: i, BPM: bpm})
		}
	}

	snap := rec.Snapshot()
	return trace{
		Seed:   o.seed,
		Ticks:  o.ticks,
		TickMS: o.tick.Milliseconds(),
		BPM:    snap.BPM,
		Pulse:  updates,
		ECG:    snap.ECG,
		HRV:    hrv,
	}
}

func encode(w io.Writer, format string, t trace) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
