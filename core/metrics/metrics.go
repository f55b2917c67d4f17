package metrics

import (
	"time"

	"github.com/kilianp07/fabric/core/block"
)

// Table names the registry table an event refers to.
type Table string

const (
	TableDirect     Table = "direct"
	TableDescriptor Table = "descriptor"
)

// RegistrationEvent describes one registration attempt.
type RegistrationEvent struct {
	Table Table
	// Ident is the hex NocID for the direct table or the key for the
	// descriptor table.
	Ident    string
	Name     string
	Accepted bool
	Reason   string
	Time     time.Time
}

// ResolutionEvent describes one NocID lookup.
type ResolutionEvent struct {
	NocID block.NocID
	Name  string
	// Table is empty when the id was not found.
	Table Table
	Found bool
	Time  time.Time
}

// MetricsSink records registry activity for observability purposes.
type MetricsSink interface {
	RecordRegistration(ev RegistrationEvent) error
	RecordResolution(ev ResolutionEvent) error
}

// InventoryRecorder records the size of both registry tables.
type InventoryRecorder interface {
	RecordInventory(direct, descriptor int) error
}

// EnumerationEvent summarizes one discovery run.
type EnumerationEvent struct {
	RunID       string
	Slots       int
	Constructed int
	Skipped     int
	Failed      bool
	Duration    time.Duration
	Time        time.Time
}

// EnumerationRecorder records discovery runs.
type EnumerationRecorder interface {
	RecordEnumeration(ev EnumerationEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRegistration(RegistrationEvent) error { return nil }
func (NopSink) RecordResolution(ResolutionEvent) error     { return nil }
func (NopSink) RecordInventory(int, int) error             { return nil }
func (NopSink) RecordEnumeration(EnumerationEvent) error   { return nil }
