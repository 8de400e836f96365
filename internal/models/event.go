package models

import "time"

// EventRecord is the flattened structure for telemetry event storage
type EventRecord struct {
	SessionID string
	Name      string
	Attrs     map[string]string
	CreatedAt time.Time
}

// EventCount is an aggregated per-event-name count for a session
type EventCount struct {
	Name  string
	Count int
}
