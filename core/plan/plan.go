// Package plan maps plan-type labels to the column bindings of the
// corresponding sheet layout.
package plan

// Type identifies which known plan configuration a label resolved to.
type Type int

const (
	Development Type = iota
	ProductiveSupport
	Test
	// Unknown tags labels that did not match any known plan. Resolution
	// still hands back the development configuration so existing callers
	// keep working; the tag lets stricter callers log or reject the label.
	Unknown
)

// String returns a human-readable name for the plan type.
func (t Type) String() string {
	switch t {
	case Development:
		return "development"
	case ProductiveSupport:
		return "productive-support"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// Config binds the logical fields of the assignment pipeline to the column
// names of a concrete plan sheet. All bindings are non-empty row keys.
type Config struct {
	Label               string
	IDField             string
	StartDateField      string
	EndDateField        string
	ResourceField       string
	HoursField          string
	AvailableHoursField string
	ModuleField         string
	ProjectField        string
	GroupField          string
}

// Labels accepted by Resolve.
const (
	DevelopmentLabel       = "development plan"
	ProductiveSupportLabel = "productive support plan"
	TestLabel              = "test plan"
)

var development = Config{
	Label:               DevelopmentLabel,
	IDField:             "ID",
	StartDateField:      "Start Date",
	EndDateField:        "End Date",
	ResourceField:       "Assigned To",
	HoursField:          "Development Hours",
	AvailableHoursField: "Available Hours",
	ModuleField:         "Module",
	ProjectField:        "Project",
	GroupField:          "Group",
}

var productiveSupport = Config{
	Label:               ProductiveSupportLabel,
	IDField:             "ID",
	StartDateField:      "Support Start",
	EndDateField:        "Support End",
	ResourceField:       "Assigned To",
	HoursField:          "Support Hours",
	AvailableHoursField: "Available Hours",
	ModuleField:         "Module",
	ProjectField:        "Project",
	GroupField:          "Group",
}

var test = Config{
	Label:               TestLabel,
	IDField:             "ID",
	StartDateField:      "Test Start",
	EndDateField:        "Test End",
	ResourceField:       "Tester",
	HoursField:          "Test Hours",
	AvailableHoursField: "Available Hours",
	ModuleField:         "Module",
	ProjectField:        "Project",
	GroupField:          "Group",
}

// Resolve maps a plan-type label to its configuration. An unrecognized label
// falls back to the development configuration tagged Unknown; callers that
// ignore the tag get the permissive default, callers that care can tell a
// typo from a real match.
func Resolve(label string) (Config, Type) {
	switch label {
	case DevelopmentLabel:
		return development, Development
	case ProductiveSupportLabel:
		return productiveSupport, ProductiveSupport
	case TestLabel:
		return test, Test
	default:
		return development, Unknown
	}
}
