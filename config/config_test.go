package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajoux/workplan/core/plan"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, "config.yaml", `server:
  addr: ":9090"
plan:
  default_plan: "test plan"
  holidays:
    - "2026-07-14"
    - "2026-12-25"
  weekend_days: [5, 6]
metrics:
  prometheus_enabled: true
  prometheus_port: "9102"
  influx_enabled: false
notify:
  enabled: true
  broker: "tcp://localhost:1883"
  topic: "plans/runs"
  qos: 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.addr", cfg.Server.Addr, ":9090"},
		{"plan.default_plan", cfg.Plan.DefaultPlan, "test plan"},
		{"plan.holidays", len(cfg.Plan.Holidays), 2},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_port", cfg.Metrics.PrometheusPort, "9102"},
		{"notify.broker", cfg.Notify.Broker, "tcp://localhost:1883"},
		{"notify.topic", cfg.Notify.Topic, "plans/runs"},
		{"notify.client_id_default", cfg.Notify.ClientID, "workplan-notifier"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v got %v", c.name, c.want, c.got)
		}
	}
	if w := cfg.Plan.Weekend(); len(w) != 2 {
		t.Errorf("weekend: expected 2 days got %v", w)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := write(t, "config.yaml", `server: {}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.Plan.DefaultPlan != plan.DevelopmentLabel {
		t.Fatalf("expected default plan, got %q", cfg.Plan.DefaultPlan)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := write(t, "config.toml", "x = 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadRejectsBadHoliday(t *testing.T) {
	path := write(t, "config.yaml", `plan:
  holidays: ["christmas"]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed holiday")
	}
}

func TestLoadRejectsBadWeekendDay(t *testing.T) {
	path := write(t, "config.yaml", `plan:
  weekend_days: [9]
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for out-of-range weekend day")
	}
}

func TestLoadRejectsNotifierWithoutBroker(t *testing.T) {
	path := write(t, "config.yaml", `notify:
  enabled: true
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for enabled notifier without broker")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := write(t, "config.yaml", `server:
  addr: ":9090"
`)
	t.Setenv("W_SERVER__ADDR", ":7070")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("env override ignored, got %q", cfg.Server.Addr)
	}
}
