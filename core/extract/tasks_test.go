package extract

import (
	"testing"
	"time"

	"github.com/ajoux/workplan/core/model"
)

var anchor = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func dateCell(d time.Time) string { return d.Format("2006-01-02") }

func TestTasksFilter(t *testing.T) {
	rows := []model.Row{
		{"Project": "ERP", "Development Hours": 10.0},
		{"Project": "", "Development Hours": 10.0},
		{"Project": "ERP", "Development Hours": 0.0},
		{"Project": "ERP", "Development Hours": "n/a"},
	}
	tasks := Tasks(rows, devConfig(), anchor)
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if tasks[0].ID != "0" {
		t.Fatalf("expected positional id 0, got %q", tasks[0].ID)
	}
}

func TestTasksIdentityField(t *testing.T) {
	rows := []model.Row{{"ID": "T-7", "Project": "ERP", "Development Hours": 5.0}}
	tasks := Tasks(rows, devConfig(), anchor)
	if tasks[0].ID != "T-7" {
		t.Fatalf("expected identity column id, got %q", tasks[0].ID)
	}
}

func TestCalculatePriorityBuckets(t *testing.T) {
	critical := model.Row{
		"Module":            "Critical Billing",
		"Development Hours": 50.0,
		"Start Date":        dateCell(anchor.AddDate(0, 0, 3)),
	}
	if got := calculatePriority(critical, anchor); got != 30 {
		t.Fatalf("expected 30 got %d", got)
	}
	idle := model.Row{
		"Module":            "misc",
		"Development Hours": 10.0,
		"Start Date":        dateCell(anchor.AddDate(0, 0, 60)),
	}
	if got := calculatePriority(idle, anchor); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	upcoming := model.Row{
		"Module":            "core services",
		"Development Hours": 20.0,
		"Start Date":        dateCell(anchor.AddDate(0, 0, 20)),
	}
	if got := calculatePriority(upcoming, anchor); got != 20 {
		t.Fatalf("expected 20 got %d", got)
	}
}

func TestCalculatePriorityPastStartIsImminent(t *testing.T) {
	row := model.Row{"Start Date": dateCell(anchor.AddDate(0, 0, -5))}
	if got := calculatePriority(row, anchor); got != 15 {
		t.Fatalf("expected 15 got %d", got)
	}
}

func TestCalculatePriorityUnparseableDate(t *testing.T) {
	row := model.Row{"Module": "misc", "Start Date": "soon"}
	if got := calculatePriority(row, anchor); got != 0 {
		t.Fatalf("unparseable start date should add no urgency, got %d", got)
	}
}

func TestTasksOrdering(t *testing.T) {
	rows := []model.Row{
		{"ID": "low", "Project": "P", "Development Hours": 5.0, "Module": "misc",
			"Start Date": dateCell(anchor.AddDate(0, 0, 90))},
		{"ID": "hot", "Project": "P", "Development Hours": 5.0, "Module": "critical",
			"Start Date": dateCell(anchor.AddDate(0, 0, 2))},
		{"ID": "later", "Project": "P", "Development Hours": 5.0, "Module": "critical",
			"Start Date": dateCell(anchor.AddDate(0, 0, 5))},
		{"ID": "undated", "Project": "P", "Development Hours": 5.0, "Module": "misc",
			"Start Date": "??"},
	}
	tasks := Tasks(rows, devConfig(), anchor)
	got := make([]string, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
	}
	want := []string{"hot", "later", "low", "undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v got %v", want, got)
		}
	}
}

func TestTasksPreAssigned(t *testing.T) {
	rows := []model.Row{
		{"Project": "P", "Development Hours": 5.0, "Assigned To": "Ana"},
		{"Project": "P", "Development Hours": 5.0, "Assigned To": "None"},
	}
	tasks := Tasks(rows, devConfig(), anchor)
	var set, unset int
	for _, task := range tasks {
		if task.Assigned.IsSet() {
			set++
		} else {
			unset++
		}
	}
	if set != 1 || unset != 1 {
		t.Fatalf("expected one pre-assigned and one open task, got %d/%d", set, unset)
	}
}
