// Package assign binds ordered tasks to resources under capacity and skill
// constraints: a single deterministic left-to-right pass with the resource
// pool as the accumulator, no backtracking.
package assign

import (
	"sort"

	"github.com/google/uuid"

	"github.com/ajoux/workplan/core/metrics"
	"github.com/ajoux/workplan/core/model"
)

// Result carries the outcome of one run: tasks in scheduling order with
// their final assignee, the final state of every resource, per-task events
// for the sinks, and a run identifier.
type Result struct {
	RunID     string
	Tasks     []model.Task
	Resources []model.Resource
	Events    []metrics.TaskEvent

	Assigned    int
	PreAssigned int
	Unassigned  int
}

// Run executes one pass over the ordered tasks. The task order is the
// scheduling policy: the caller hands tasks sorted by priority then start
// date and each one is bound, or not, exactly once. Tasks that arrive with
// an assignee are left untouched and consume no capacity. Inputs are copied;
// the caller's slices are never mutated.
func Run(tasks []model.Task, resources []model.Resource) Result {
	st := newState(resources)
	res := Result{
		RunID:  uuid.NewString(),
		Tasks:  make([]model.Task, len(tasks)),
		Events: make([]metrics.TaskEvent, 0, len(tasks)),
	}
	for i, t := range tasks {
		outcome := metrics.OutcomeUnassigned
		switch {
		case t.Assigned.IsSet():
			outcome = metrics.OutcomePreAssigned
		default:
			if r := st.pick(t); r != nil {
				r.AssignedHours += t.Hours
				t.Assigned = model.AssigneeOf(r.Name)
				outcome = metrics.OutcomeAssigned
			}
		}
		res.Tasks[i] = t
		res.Events = append(res.Events, metrics.TaskEvent{
			RunID:    res.RunID,
			TaskID:   t.ID,
			Module:   t.Module,
			Hours:    t.Hours,
			Priority: t.Priority,
			Assignee: t.Assigned.Name(),
			Outcome:  outcome,
		})
		switch outcome {
		case metrics.OutcomeAssigned:
			res.Assigned++
		case metrics.OutcomePreAssigned:
			res.PreAssigned++
		default:
			res.Unassigned++
		}
	}
	res.Resources = st.pool
	return res
}

// state is the accumulator threaded through the task pass. It owns a deep
// copy of the resource pool so commits never alias caller data.
type state struct {
	pool []model.Resource
}

func newState(resources []model.Resource) *state {
	pool := make([]model.Resource, len(resources))
	for i, r := range resources {
		r.Skills = append([]string(nil), r.Skills...)
		pool[i] = r
	}
	return &state{pool: pool}
}

// pick returns the least-loaded resource eligible for the task, or nil when
// nobody can take it. Eligibility: enough remaining capacity, and either no
// recorded skills or a skill matching the task's module. Load ties keep
// first-encounter order via the stable sort.
func (s *state) pick(t model.Task) *model.Resource {
	var eligible []*model.Resource
	for i := range s.pool {
		r := &s.pool[i]
		if !r.CanTake(t.Hours) || !r.Matches(t.Module) {
			continue
		}
		eligible = append(eligible, r)
	}
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Load() < eligible[j].Load()
	})
	return eligible[0]
}
