package config

import (
	"fmt"
	"time"

	"github.com/ajoux/workplan/core/plan"
)

// PlanConfig holds the assignment defaults: which plan a CLI run uses when
// none is given, plus the non-working-day calendar.
type PlanConfig struct {
	// DefaultPlan is the plan-type label used when a run omits one.
	DefaultPlan string `json:"default_plan"`
	// Holidays lists non-working dates as YYYY-MM-DD.
	Holidays []string `json:"holidays"`
	// WeekendDays lists weekdays treated as weekend (0=Sunday .. 6=Saturday).
	// Empty means Saturday and Sunday.
	WeekendDays []int `json:"weekend_days"`
}

// SetDefaults applies sane defaults.
func (c *PlanConfig) SetDefaults() {
	if c.DefaultPlan == "" {
		c.DefaultPlan = plan.DevelopmentLabel
	}
}

// Validate checks holiday dates and weekend bounds.
func (c PlanConfig) Validate() error {
	for _, h := range c.Holidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return fmt.Errorf("invalid holiday %q: expected YYYY-MM-DD", h)
		}
	}
	for _, d := range c.WeekendDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekend day %d: expected 0..6", d)
		}
	}
	return nil
}

// Weekend converts the configured day numbers to time.Weekday values.
func (c PlanConfig) Weekend() []time.Weekday {
	out := make([]time.Weekday, 0, len(c.WeekendDays))
	for _, d := range c.WeekendDays {
		out = append(out, time.Weekday(d))
	}
	return out
}
