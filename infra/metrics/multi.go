package metrics

import coremetrics "github.com/ajoux/workplan/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run event to all sinks.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) {
	for _, s := range m.Sinks {
		s.RecordRun(ev)
	}
}

// RecordTasks forwards the task events to all sinks.
func (m *MultiSink) RecordTasks(events []coremetrics.TaskEvent) {
	for _, s := range m.Sinks {
		s.RecordTasks(events)
	}
}
