package model

import "strings"

// Assignee is the optional owner of a task. The upstream data source encodes
// "nobody" with placeholder strings ("", "None", "nan"); ParseAssignee maps
// those to the absent value at the row boundary so the placeholders never
// travel through the engine.
type Assignee struct {
	name string
}

// ParseAssignee interprets a raw cell value as an assignee. Placeholder
// strings yield the absent Assignee.
func ParseAssignee(s string) Assignee {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" || s == "nan" {
		return Assignee{}
	}
	return Assignee{name: s}
}

// AssigneeOf names an assignee directly. Used by the engine when committing
// a task to a resource, whose name is known to be valid.
func AssigneeOf(name string) Assignee {
	return Assignee{name: name}
}

// IsSet reports whether the assignee is present.
func (a Assignee) IsSet() bool { return a.name != "" }

// Name returns the assignee name, or "" when absent.
func (a Assignee) Name() string { return a.name }

func (a Assignee) String() string {
	if a.name == "" {
		return "<unassigned>"
	}
	return a.name
}
