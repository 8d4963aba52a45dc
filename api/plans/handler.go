// Package plans exposes the plan-upload endpoint: thin JSON plumbing around
// the assignment pipeline.
package plans

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ajoux/workplan/core/assign"
	"github.com/ajoux/workplan/core/logger"
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
)

// Runner executes one assignment run over an uploaded dataset.
type Runner interface {
	Assign(rows []model.Row, planLabel string, now time.Time) ([]model.Row, assign.Report, error)
}

// Request is the upload payload: the tabular dataset plus the plan-type
// selector.
type Request struct {
	PlanType string      `json:"plan_type"`
	Data     []model.Row `json:"data"`
}

// Response is the envelope for both success and failure.
type Response struct {
	Success bool        `json:"success"`
	Data    []model.Row `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewAssignHandler returns the POST /api/plan/assign handler. It validates
// the dataset, normalizes dates and hours, and hands the rows to the runner.
func NewAssignHandler(runner Runner, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "body must be a JSON object with a data array"})
			return
		}
		if len(req.Data) == 0 {
			writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: "data must be a non-empty array"})
			return
		}
		cfg, ptype := plan.Resolve(req.PlanType)
		if ptype == plan.Unknown {
			log.Warnf("unknown plan type %q, using %s", req.PlanType, cfg.Label)
		}
		if field, ok := missingField(req.Data[0], cfg); !ok {
			writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: fmt.Sprintf("missing required field: %s", field)})
			return
		}
		rows := normalize(req.Data, cfg)

		out, rep, err := runner.Assign(rows, req.PlanType, time.Now())
		if err != nil {
			log.Errorf("assignment run failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, Response{Success: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, Response{Success: true, Data: out, Message: rep.Message()})
	})
}

// missingField checks that the first row carries the four columns the
// pipeline cannot run without. Returns the first missing name.
func missingField(first model.Row, cfg plan.Config) (string, bool) {
	for _, f := range []string{cfg.ProjectField, cfg.HoursField, cfg.StartDateField, cfg.EndDateField} {
		if _, ok := first[f]; !ok {
			return f, false
		}
	}
	return "", true
}

// normalize re-renders the two date columns as RFC3339 timestamps where they
// parse, and coerces the hours column to a float64. Cells that do not parse
// stay as uploaded; the engine's own coercion rules apply downstream.
func normalize(rows []model.Row, cfg plan.Config) []model.Row {
	out := make([]model.Row, len(rows))
	for i, row := range rows {
		clone := row.Clone()
		for _, f := range []string{cfg.StartDateField, cfg.EndDateField} {
			if t := row.Date(f); !t.IsZero() {
				clone[f] = t.Format(time.RFC3339)
			}
		}
		if _, ok := clone[cfg.HoursField]; ok {
			clone[cfg.HoursField] = row.Number(cfg.HoursField)
		}
		out[i] = clone
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
