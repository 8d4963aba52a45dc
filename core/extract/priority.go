package extract

import (
	"math"
	"strings"
	"time"

	"github.com/ajoux/workplan/core/model"
)

// Column names read by the priority score. These are the development-plan
// names on purpose: upstream sheets compute priority from the same columns
// whichever plan is selected, and existing schedules depend on that.
const (
	priorityModuleField = "Module"
	priorityHoursField  = "Development Hours"
	priorityStartField  = "Start Date"
)

// Urgency buckets for days-until-start.
const (
	imminentDays = 7
	upcomingDays = 30
)

// calculatePriority scores a row additively: critical modules, large
// development workloads and imminent start dates raise the score. Rows with
// an unparseable start date get no urgency component.
func calculatePriority(row model.Row, now time.Time) int {
	score := 0
	module := strings.ToLower(row.String(priorityModuleField))
	if strings.Contains(module, "core") || strings.Contains(module, "critical") {
		score += 10
	}
	if row.Number(priorityHoursField) > 40 {
		score += 5
	}
	if start := row.Date(priorityStartField); !start.IsZero() {
		days := int(math.Ceil(start.Sub(now).Hours() / 24))
		switch {
		case days <= imminentDays:
			score += 15
		case days <= upcomingDays:
			score += 10
		}
	}
	return score
}
