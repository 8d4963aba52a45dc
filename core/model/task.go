package model

import "time"

// Task is a unit of work extracted from one plan row: a required module
// (skill tag), a duration in hours, a time window and a computed priority.
type Task struct {
	// ID is the row's identity column when the sheet has one, the
	// positional row index otherwise. The projector relies on the same
	// derivation to map decisions back onto rows.
	ID        string
	Project   string
	Module    string
	Hours     float64
	Priority  int
	StartDate time.Time
	EndDate   time.Time
	// Assigned is set either upstream (pre-assigned rows are never
	// reassigned) or by the engine.
	Assigned Assignee
}
