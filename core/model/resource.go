package model

import (
	"math"
	"strings"
)

// Resource is a named worker with finite available hours and a skill set.
// AssignedHours grows as the engine commits tasks; the struct is otherwise
// immutable after extraction.
type Resource struct {
	Name           string
	AvailableHours float64
	AssignedHours  float64
	// Skills holds the worker's skill tags in first-seen order, deduplicated.
	Skills []string
}

// AddSkill appends a skill tag unless it is empty or already recorded.
func (r *Resource) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, s := range r.Skills {
		if s == skill {
			return
		}
	}
	r.Skills = append(r.Skills, skill)
}

// Load returns the committed share of capacity as a percentage. A resource
// with zero available hours reports +Inf so the load comparator keeps a
// total order; such a resource can never take on positive-hours work anyway.
func (r Resource) Load() float64 {
	if r.AvailableHours == 0 {
		return math.Inf(1)
	}
	return r.AssignedHours / r.AvailableHours * 100
}

// CanTake reports whether hours more can be committed without exceeding the
// available capacity.
func (r Resource) CanTake(hours float64) bool {
	return r.AssignedHours+hours <= r.AvailableHours
}

// Matches reports whether the resource qualifies for work in the given
// module. A resource with no recorded skills matches anything; otherwise a
// skill must contain the module name or vice versa, case-insensitively.
func (r Resource) Matches(module string) bool {
	if len(r.Skills) == 0 {
		return true
	}
	m := strings.ToLower(module)
	for _, s := range r.Skills {
		ls := strings.ToLower(s)
		if strings.Contains(ls, m) || strings.Contains(m, ls) {
			return true
		}
	}
	return false
}
