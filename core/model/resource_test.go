package model

import (
	"math"
	"testing"
)

func TestResourceLoad(t *testing.T) {
	r := Resource{Name: "Ana", AvailableHours: 40, AssignedHours: 10}
	if got := r.Load(); got != 25 {
		t.Fatalf("expected 25%% got %v", got)
	}
	zero := Resource{Name: "Bo"}
	if got := zero.Load(); !math.IsInf(got, 1) {
		t.Fatalf("zero capacity should report +Inf load, got %v", got)
	}
}

func TestResourceCanTake(t *testing.T) {
	r := Resource{AvailableHours: 20, AssignedHours: 15}
	if !r.CanTake(5) {
		t.Fatalf("5 hours should fit exactly")
	}
	if r.CanTake(6) {
		t.Fatalf("6 hours must not fit")
	}
}

func TestResourceMatches(t *testing.T) {
	r := Resource{Skills: []string{"FI", "ABAP"}}
	if !r.Matches("fi module") {
		t.Fatalf("skill contained in module should match")
	}
	if !r.Matches("F") {
		t.Fatalf("module contained in skill should match")
	}
	if r.Matches("HR") {
		t.Fatalf("unrelated module must not match")
	}
	unskilled := Resource{}
	if !unskilled.Matches("anything") {
		t.Fatalf("resource without skills matches everything")
	}
}

func TestResourceAddSkill(t *testing.T) {
	var r Resource
	r.AddSkill("ABAP")
	r.AddSkill("FI")
	r.AddSkill("ABAP")
	r.AddSkill("")
	if len(r.Skills) != 2 || r.Skills[0] != "ABAP" || r.Skills[1] != "FI" {
		t.Fatalf("unexpected skills %v", r.Skills)
	}
}

func TestParseAssignee(t *testing.T) {
	for _, s := range []string{"", "None", "nan", "  "} {
		if a := ParseAssignee(s); a.IsSet() {
			t.Fatalf("%q should parse as absent", s)
		}
	}
	a := ParseAssignee("Ana")
	if !a.IsSet() || a.Name() != "Ana" {
		t.Fatalf("unexpected assignee %v", a)
	}
}
