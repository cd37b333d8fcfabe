package benchcmp

// regressionThresholdPct is the percent increase above which a metric
// counts as a regression. Lower is better for every metric in scope, so
// any decrease counts as an improvement and changes in [0, 10] are
// reported as stable.
const regressionThresholdPct = 10.0

// Compare builds a per-metric comparison for every metric present in
// both maps. Metrics unique to one side are dropped, as are metrics
// whose baseline value is exactly zero.
func Compare(current, baseline MetricMap) ComparisonSet {
	set := make(ComparisonSet)

	for name, cur := range current {
		base, ok := baseline[name]
		if !ok {
			continue
		}

		if base == 0 {
			continue
		}

		change := (cur - base) / base * 100

		set[name] = Comparison{
			Current:       cur,
			Baseline:      base,
			ChangePercent: change,
			Improved:      change < 0,
			Regression:    change > regressionThresholdPct,
		}
	}

	return set
}
