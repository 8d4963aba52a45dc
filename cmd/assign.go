package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajoux/workplan/config"
	"github.com/ajoux/workplan/core/assign"
	"github.com/ajoux/workplan/core/calendar"
	"github.com/ajoux/workplan/core/model"
	"github.com/ajoux/workplan/core/plan"
	"github.com/ajoux/workplan/infra/logger"
)

var (
	assignInput  string
	assignOutput string
	assignPlan   string
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Run the assignment pipeline over a JSON dataset file",
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().StringVarP(&assignInput, "input", "i", "", "JSON file holding an array of rows")
	assignCmd.Flags().StringVarP(&assignOutput, "output", "o", "", "destination file (stdout when empty)")
	assignCmd.Flags().StringVarP(&assignPlan, "plan", "p", "", "plan-type label (config default when empty)")
	_ = assignCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	logg := logger.New("assign-command")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	label := assignPlan
	if label == "" {
		label = cfg.Plan.DefaultPlan
	}

	raw, err := os.ReadFile(assignInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var rows []model.Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	planCfg, ptype := plan.Resolve(label)
	if ptype == plan.Unknown {
		logg.Warnf("unknown plan type %q, using %s", label, planCfg.Label)
	}
	cal := calendar.New(cfg.Plan.Holidays, cfg.Plan.Weekend()...)
	out, rep, _ := assign.Execute(rows, planCfg, time.Now(), cal)
	logg.Infof("run %s (%s): %s", rep.RunID, planCfg.Label, rep.Message())

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if assignOutput == "" {
		_, err = os.Stdout.Write(append(encoded, '\n'))
		return err
	}
	return os.WriteFile(assignOutput, append(encoded, '\n'), 0o644)
}
