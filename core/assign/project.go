package assign

import (
	"github.com/ajoux/workplan/core/extract"
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
)

// Project maps the run's decisions back onto the original rows. Every row
// passes through with its shape unchanged; only the configured resource
// field is overwritten, and only where a task decision with an assignee
// exists for the row's ID. Rows that never became tasks keep their original
// assignee cell. Output count and order equal the input's.
func Project(tasks []model.Task, rows []model.Row, cfg plan.Config) []model.Row {
	decided := make(map[string]model.Assignee, len(tasks))
	for _, t := range tasks {
		decided[t.ID] = t.Assigned
	}
	out := make([]model.Row, len(rows))
	for i, row := range rows {
		clone := row.Clone()
		if a, ok := decided[extract.TaskID(row, cfg, i)]; ok && a.IsSet() {
			clone[cfg.ResourceField] = a.Name()
		}
		out[i] = clone
	}
	return out
}
