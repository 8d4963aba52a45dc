// Package metrics defines the sink interface assignment runs are recorded
// to. Concrete sinks (Prometheus, InfluxDB) live under infra/metrics.
package metrics

import "time"

// Task outcomes reported per run.
const (
	OutcomeAssigned    = "assigned"
	OutcomePreAssigned = "pre_assigned"
	OutcomeUnassigned  = "unassigned"
)

// RunEvent describes one completed assignment run.
type RunEvent struct {
	RunID       string
	PlanLabel   string
	PlanKnown   bool
	Rows        int
	Tasks       int
	Assigned    int
	PreAssigned int
	Unassigned  int
	MeanLoad    float64
	Duration    time.Duration
	Timestamp   time.Time
}

// TaskEvent describes the outcome for a single task within a run.
type TaskEvent struct {
	RunID    string
	TaskID   string
	Module   string
	Hours    float64
	Priority int
	// Assignee is empty when the task stayed unassigned.
	Assignee string
	Outcome  string
}

// Sink records assignment outcomes. Implementations must be safe for
// concurrent use.
type Sink interface {
	RecordRun(RunEvent)
	RecordTasks([]TaskEvent)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent)      {}
func (NopSink) RecordTasks([]TaskEvent) {}
