package assign

import (
	"time"

	"github.com/ajoux/workplan/core/calendar"
	"github.com/ajoux/workplan/core/extract"
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
)

// Execute runs the full pipeline over one dataset: extract the resource pool
// and the ordered task list, run the engine, project the decisions back onto
// the rows. now anchors priority urgency so a fixed instant gives identical
// output across runs.
func Execute(rows []model.Row, cfg plan.Config, now time.Time, cal *calendar.Calendar) ([]model.Row, Report, Result) {
	resources := extract.Resources(rows, cfg)
	tasks := extract.Tasks(rows, cfg, now)
	res := Run(tasks, resources)
	out := Project(res.Tasks, rows, cfg)
	return out, BuildReport(res, cal, len(rows)), res
}
