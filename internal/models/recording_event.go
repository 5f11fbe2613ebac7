package models

import "time"

// Event types written to the recording log.
const (
	EventStart = "START"
	EventPause = "PAUSE"
	EventPulse = "PULSE"
)

// RecordingEvent is a single log entry.
type RecordingEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // START | PAUSE | PULSE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
