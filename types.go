// Package benchcmp compares two benchmark result files (current vs.
// baseline) and reports per-metric percentage change, classifying each
// metric as improved, regressed, or stable.
package benchcmp

// Document is the shallow schema of a benchmark result file. Every field
// is optional; a document without benches is valid.
type Document struct {
	Benches []Bench `json:"benches"`
}

// Bench is one benchmark entry. Mean is nil when the entry carries no
// mean statistic.
type Bench struct {
	Name string   `json:"name"`
	Mean *float64 `json:"mean,omitempty"`
}

// MetricMap maps a metric name to its numeric value.
type MetricMap map[string]float64

// Comparison is the per-metric comparison of a current value against a
// baseline value.
type Comparison struct {
	Current       float64 `json:"current"`
	Baseline      float64 `json:"baseline"`
	ChangePercent float64 `json:"change_percent"`
	Improved      bool    `json:"improved"`
	Regression    bool    `json:"regression"`
}

// ComparisonSet maps a metric name to its Comparison.
type ComparisonSet map[string]Comparison
