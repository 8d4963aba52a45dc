package extract

import (
	"sort"
	"strconv"
	"time"

	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
)

// Tasks filters the rows down to schedulable work and returns the tasks
// ordered by descending priority, then ascending start date. A row becomes a
// task iff its project cell is non-empty and its hours cell is a positive
// number; everything else is dropped from scheduling (the projector still
// passes such rows through untouched). now anchors the urgency component of
// the priority score.
func Tasks(rows []model.Row, cfg plan.Config, now time.Time) []model.Task {
	var tasks []model.Task
	for i, row := range rows {
		project := row.String(cfg.ProjectField)
		hours := row.Number(cfg.HoursField)
		if project == "" || hours <= 0 {
			continue
		}
		tasks = append(tasks, model.Task{
			ID:        TaskID(row, cfg, i),
			Project:   project,
			Module:    moduleOf(row, cfg),
			Hours:     hours,
			Priority:  calculatePriority(row, now),
			StartDate: row.Date(cfg.StartDateField),
			EndDate:   row.Date(cfg.EndDateField),
			Assigned:  model.ParseAssignee(row.String(cfg.ResourceField)),
		})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		return startsBefore(tasks[i].StartDate, tasks[j].StartDate)
	})
	return tasks
}

// TaskID derives a task's key: the identity column when the row carries one,
// the positional row index otherwise. The projector must use the same rule
// to map decisions back onto rows.
func TaskID(row model.Row, cfg plan.Config, idx int) string {
	if id := row.String(cfg.IDField); id != "" {
		return id
	}
	return strconv.Itoa(idx)
}

func moduleOf(row model.Row, cfg plan.Config) string {
	if cfg.ModuleField == "" {
		return ""
	}
	return row.String(cfg.ModuleField)
}

// startsBefore orders start dates ascending with unparseable (zero) dates
// last.
func startsBefore(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.Before(b)
}
