package duedate

import (
	"strings"
	"time"
)

// NoDueDate is the sentinel users (and the Canvas importer) store for tasks
// without a deadline. Matched case-insensitively.
const NoDueDate = "no due date"

// utcLayouts parse the wall clock preceding a trailing 'Z' designator.
// Fractional seconds are accepted by time.Parse without a layout marker.
var utcLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// localLayouts are the accepted naive formats, tried in order. Date-only
// layouts imply midnight.
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
}

// Normalizer turns heterogeneous due-date text into instants in a single
// reference location, so they compare directly against "now".
type Normalizer struct {
	loc        *time.Location
	strategies []strategy
}

// strategy is one parse attempt. Strategies are tried in fixed precedence;
// the first success wins.
type strategy func(text string) (time.Time, bool)

// New creates a Normalizer that resolves everything into loc.
// Pass time.Local for host-local behavior; tests inject fixed zones.
func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	n := &Normalizer{loc: loc}
	n.strategies = []strategy{
		n.parseUTCSuffix,
		n.parseExplicitOffset,
		n.parseLocalLayouts,
	}
	return n
}

// Normalize parses due-date text into an instant in the normalizer's
// location. The second return is false when the text carries no usable date:
// empty input, the "no due date" sentinel, or text matching no known format.
// Normalize never fails in any other way.
func (n *Normalizer) Normalize(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, NoDueDate) {
		return time.Time{}, false
	}

	for _, parse := range n.strategies {
		if t, ok := parse(text); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseUTCSuffix handles strings ending in the literal 'Z' designator: the
// remainder is UTC wall clock, converted into the reference location.
func (n *Normalizer) parseUTCSuffix(text string) (time.Time, bool) {
	if !strings.HasSuffix(text, "Z") {
		return time.Time{}, false
	}
	rest := strings.TrimSuffix(text, "Z")
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, rest, time.UTC); err == nil {
			return t.In(n.loc), true
		}
	}
	return time.Time{}, false
}

// parseExplicitOffset handles timestamps carrying a numeric offset such as
// "+00:00" or "-08:00"; the offset is resolved into the reference location.
func (n *Normalizer) parseExplicitOffset(text string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.In(n.loc), true
	}
	return time.Time{}, false
}

// parseLocalLayouts tries the fixed naive formats, interpreted directly in
// the reference location.
func (n *Normalizer) parseLocalLayouts(text string) (time.Time, bool) {
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, text, n.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
