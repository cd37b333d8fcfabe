package benchcmp

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Format selects the report representation.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatJSON, FormatText, FormatHTML:
		return Format(s), nil
	}

	return "", fmt.Errorf("unknown format: %s (expected: markdown, json, text, html)", s)
}

// timeNow is stubbed in tests to pin report timestamps.
var timeNow = time.Now

// Render writes the comparison report for set to w. An empty set renders
// a valid, mostly empty document in every format.
func Render(w io.Writer, set ComparisonSet, format Format) error {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(w, set)
	case FormatJSON:
		return renderJSON(w, set)
	case FormatText:
		return renderText(w, set)
	case FormatHTML:
		return renderChart(w, set)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderJSON(w io.Writer, set ComparisonSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(set)
	if err != nil {
		return fmt.Errorf("encode comparison: %w", err)
	}

	return nil
}

func renderMarkdown(w io.Writer, set ComparisonSet) error {
	var b strings.Builder

	b.WriteString("# 📊 Performance Benchmark Comparison\n\n")
	fmt.Fprintf(&b, "**Generated**: %s\n\n", generatedAt())
	b.WriteString("## 📈 Performance Changes\n\n")
	b.WriteString("| Metric | Current | Baseline | Change | Status |\n")
	b.WriteString("|--------|---------|----------|--------|--------|\n")

	names := metricNames(set)
	for _, name := range names {
		c := set[name]

		status := "🟡 Similar"
		switch {
		case c.Regression:
			status = "🔴 Regression"
		case c.Improved:
			status = "🟢 Improved"
		}

		fmt.Fprintf(&b, "| %s | %s | %s | %+.1f%% | %s |\n",
			name,
			formatValue(name, c.Current),
			formatValue(name, c.Baseline),
			c.ChangePercent,
			status,
		)
	}

	b.WriteString("\n## 📋 Summary\n\n")

	var regressions, improvements []string

	for _, name := range names {
		if set[name].Regression {
			regressions = append(regressions, name)
		}

		if set[name].Improved {
			improvements = append(improvements, name)
		}
	}

	if len(regressions) > 0 {
		fmt.Fprintf(&b, "⚠️  **%d regression(s) detected:**\n", len(regressions))
		for _, name := range regressions {
			fmt.Fprintf(&b, "- %s: %+.1f%%\n", name, set[name].ChangePercent)
		}

		b.WriteString("\n")
	}

	if len(improvements) > 0 {
		fmt.Fprintf(&b, "🎉 **%d improvement(s):**\n", len(improvements))
		for _, name := range improvements {
			fmt.Fprintf(&b, "- %s: %+.1f%%\n", name, set[name].ChangePercent)
		}

		b.WriteString("\n")
	}

	stable := len(set) - len(regressions) - len(improvements)
	if stable > 0 {
		fmt.Fprintf(&b, "✅ **%d metric(s) stable** (< 10%% change)\n", stable)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func renderText(w io.Writer, set ComparisonSet) error {
	var b strings.Builder

	b.WriteString("Performance Benchmark Comparison\n")
	b.WriteString(strings.Repeat("=", 35) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt())

	for _, name := range metricNames(set) {
		c := set[name]

		icon := "🟡"
		switch {
		case c.Regression:
			icon = "🔴"
		case c.Improved:
			icon = "🟢"
		}

		fmt.Fprintf(&b, "%s %s:\n", icon, name)
		fmt.Fprintf(&b, "  Current:  %.2f\n", c.Current)
		fmt.Fprintf(&b, "  Baseline: %.2f\n", c.Baseline)
		fmt.Fprintf(&b, "  Change:   %+.1f%%\n\n", c.ChangePercent)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// metricNames returns the set's metric names sorted ascending, matching
// the key order of the json format.
func metricNames(set ComparisonSet) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func generatedAt() string {
	return timeNow().UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// formatValue renders a metric value for display. Time metrics carry an
// explicit unit in their name ("ms") or are raw nanoseconds; everything
// else is a unitless quantity.
func formatValue(metric string, v float64) string {
	if strings.Contains(metric, "time") {
		if strings.Contains(metric, "ms") {
			return fmt.Sprintf("%.2fms", v)
		}

		return formatDuration(v)
	}

	return fmt.Sprintf("%.2f", v)
}

// formatDuration renders a nanosecond quantity at a human scale.
func formatDuration(ns float64) string {
	switch {
	case ns < 1000:
		return fmt.Sprintf("%.2fns", ns)
	case ns < 1_000_000:
		return fmt.Sprintf("%.2fμs", ns/1000)
	case ns < 1_000_000_000:
		return fmt.Sprintf("%.2fms", ns/1_000_000)
	default:
		return fmt.Sprintf("%.2fs", ns/1_000_000_000)
	}
}
