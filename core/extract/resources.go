// Package extract turns raw plan rows into the resource pool and the
// ordered task list consumed by the assignment engine.
package extract

import (
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
)

// Resources folds the rows into a deduplicated resource pool. Rows whose
// name cell is empty or a placeholder never produce a resource. Duplicate
// rows for the same name merge: skill tags accumulate in first-seen order
// and available hours take the maximum observed value. Output order is the
// order of first encounter.
func Resources(rows []model.Row, cfg plan.Config) []model.Resource {
	var pool []model.Resource
	index := make(map[string]int)
	for _, row := range rows {
		owner := model.ParseAssignee(row.String(cfg.ResourceField))
		if !owner.IsSet() {
			continue
		}
		hours := row.Number(cfg.AvailableHoursField)
		if hours < 0 {
			hours = 0
		}
		skill := row.String(cfg.GroupField)
		if i, ok := index[owner.Name()]; ok {
			r := &pool[i]
			r.AddSkill(skill)
			if hours > r.AvailableHours {
				r.AvailableHours = hours
			}
			continue
		}
		r := model.Resource{Name: owner.Name(), AvailableHours: hours}
		r.AddSkill(skill)
		index[owner.Name()] = len(pool)
		pool = append(pool, r)
	}
	return pool
}
