package benchcmp

import "strings"

// An extractRule projects metrics out of one benchmark entry. Rules are
// tried in order, and every rule whose predicate matches the entry name
// gets to emit metrics.
type extractRule struct {
	match func(name string) bool
	emit  func(b Bench, m MetricMap)
}

// extractRules is the ordered list of recognized metric families. A new
// family follows the same pattern: substring match on the entry name,
// derive one or more named metrics from the fields the entry carries.
var extractRules = []extractRule{
	{
		match: func(name string) bool { return strings.Contains(name, "startup_time") },
		emit: func(b Bench, m MetricMap) {
			if b.Mean == nil {
				return
			}

			// Mean is assumed to be in nanoseconds.
			m["startup_time_ns"] = *b.Mean
			m["startup_time_ms"] = *b.Mean / 1_000_000
		},
	},
}

// Extract projects a flat metric map out of a benchmark document.
// Entries that match no rule are skipped; a document without benches
// yields an empty map.
func Extract(doc *Document) MetricMap {
	metrics := make(MetricMap)

	for _, b := range doc.Benches {
		for _, rule := range extractRules {
			if rule.match(b.Name) {
				rule.emit(b, metrics)
			}
		}
	}

	return metrics
}
