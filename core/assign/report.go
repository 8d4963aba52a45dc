package assign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ajoux/workplan/core/calendar"
)

// Report summarises one run for logging, metrics and API responses.
type Report struct {
	RunID       string
	TotalRows   int
	Tasks       int
	Assigned    int
	PreAssigned int
	Unassigned  int
	// MeanLoad and StdDevLoad describe the final load distribution across
	// resources with nonzero capacity, in percent.
	MeanLoad   float64
	StdDevLoad float64
	// NonWorkingDayStarts counts scheduled tasks whose start date falls on
	// a weekend or holiday. Advisory only; the engine never moves tasks.
	NonWorkingDayStarts int
}

// BuildReport derives run totals and the load distribution from a finished
// run. cal may be nil when no calendar is configured.
func BuildReport(res Result, cal *calendar.Calendar, totalRows int) Report {
	rep := Report{
		RunID:       res.RunID,
		TotalRows:   totalRows,
		Tasks:       len(res.Tasks),
		Assigned:    res.Assigned,
		PreAssigned: res.PreAssigned,
		Unassigned:  res.Unassigned,
	}
	loads := make([]float64, 0, len(res.Resources))
	for _, r := range res.Resources {
		if l := r.Load(); !math.IsInf(l, 1) {
			loads = append(loads, l)
		}
	}
	if len(loads) > 0 {
		rep.MeanLoad = stat.Mean(loads, nil)
	}
	if len(loads) > 1 {
		rep.StdDevLoad = stat.StdDev(loads, nil)
	}
	if cal != nil {
		for _, t := range res.Tasks {
			if t.Assigned.IsSet() && !t.StartDate.IsZero() && !cal.IsWorkingDay(t.StartDate) {
				rep.NonWorkingDayStarts++
			}
		}
	}
	return rep
}

// Message renders the one-line run summary returned by the API.
func (r Report) Message() string {
	return fmt.Sprintf("assigned %d of %d tasks (%d pre-assigned, %d unassigned)",
		r.Assigned, r.Tasks, r.PreAssigned, r.Unassigned)
}
