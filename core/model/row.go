package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is a single record of an uploaded plan dataset. Values are loosely
// typed: depending on the exporter a cell may arrive as a string, a number
// or a date-like string, so all reads go through the coercion helpers below.
type Row map[string]any

// String returns the cell under key rendered as a trimmed string. Missing
// or nil cells render as the empty string.
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Number returns the cell under key as a float64. Anything that does not
// parse as a finite number yields 0.
func (r Row) Number(key string) float64 {
	switch n := r[key].(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// dateLayouts lists the timestamp formats observed in upstream exports, most
// specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// Date returns the cell under key parsed as a timestamp. Unparseable or
// missing cells yield the zero time; callers sort such values last instead
// of failing.
func (r Row) Date(key string) time.Time {
	if t, ok := r[key].(time.Time); ok {
		return t
	}
	s := r.String(key)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Clone returns a shallow copy of the row. The projector writes into clones
// so the caller's input rows are never mutated.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
