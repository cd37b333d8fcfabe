package benchcmp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClock(t *testing.T) {
	t.Helper()

	orig := timeNow
	timeNow = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	t.Cleanup(func() { timeNow = orig })
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"markdown", "json", "text", "html"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ns   float64
		want string
	}{
		{999, "999.00ns"},
		{1000, "1.00μs"},
		{999_999, "1000.00μs"},
		{1_000_000, "1.00ms"},
		{999_999_999, "1000.00ms"},
		{1_000_000_000, "1.00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.ns))
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		metric string
		value  float64
		want   string
	}{
		{"startup_time_ms", 12.0, "12.00ms"},
		{"startup_time_ns", 5_000_000, "5.00ms"},
		{"startup_time_ns", 500, "500.00ns"},
		{"throughput", 42.5, "42.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.metric, tt.value))
	}
}

func TestRenderMarkdownSingleRegression(t *testing.T) {
	stubClock(t)

	set := ComparisonSet{
		"startup_time_ms": {Current: 12.0, Baseline: 10.0, ChangePercent: 20.0, Regression: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, set, FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "# 📊 Performance Benchmark Comparison")
	assert.Contains(t, out, "**Generated**: 2026-03-14 09:26:53 UTC")
	assert.Contains(t, out, "| Metric | Current | Baseline | Change | Status |")
	assert.Contains(t, out, "| startup_time_ms | 12.00ms | 10.00ms | +20.0% | 🔴 Regression |")
	assert.Contains(t, out, "⚠️  **1 regression(s) detected:**")
	assert.Contains(t, out, "- startup_time_ms: +20.0%")
	assert.NotContains(t, out, "improvement(s)")
	assert.NotContains(t, out, "stable")
}

func TestRenderMarkdownMixedStatuses(t *testing.T) {
	stubClock(t)

	set := ComparisonSet{
		"startup_time_ms": {Current: 8.0, Baseline: 10.0, ChangePercent: -20.0, Improved: true},
		"startup_time_ns": {Current: 10_500_000, Baseline: 10_000_000, ChangePercent: 5.0},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, set, FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "| startup_time_ms | 8.00ms | 10.00ms | -20.0% | 🟢 Improved |")
	assert.Contains(t, out, "| startup_time_ns | 10.50ms | 10.00ms | +5.0% | 🟡 Similar |")
	assert.Contains(t, out, "🎉 **1 improvement(s):**")
	assert.Contains(t, out, "✅ **1 metric(s) stable** (< 10% change)")

	// Rows follow sorted metric order.
	assert.Less(t,
		strings.Index(out, "| startup_time_ms |"),
		strings.Index(out, "| startup_time_ns |"),
	)
}

func TestRenderMarkdownEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ComparisonSet{}, FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# 📊 Performance Benchmark Comparison")
	assert.Contains(t, out, "## 📋 Summary")
	assert.NotContains(t, out, "regression(s) detected")
}

func TestRenderJSONRoundTrip(t *testing.T) {
	set := ComparisonSet{
		"startup_time_ms": {Current: 12.0, Baseline: 10.0, ChangePercent: 20.0, Regression: true},
		"startup_time_ns": {Current: 12_000_000, Baseline: 10_000_000, ChangePercent: 20.0, Regression: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, set, FormatJSON))

	var back ComparisonSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, set, back)
}

func TestRenderText(t *testing.T) {
	stubClock(t)

	set := ComparisonSet{
		"startup_time_ms": {Current: 12.0, Baseline: 10.0, ChangePercent: 20.0, Regression: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, set, FormatText))
	out := buf.String()

	assert.Contains(t, out, "Performance Benchmark Comparison\n"+strings.Repeat("=", 35))
	assert.Contains(t, out, "Generated: 2026-03-14 09:26:53 UTC")
	assert.Contains(t, out, "🔴 startup_time_ms:")
	assert.Contains(t, out, "  Current:  12.00")
	assert.Contains(t, out, "  Baseline: 10.00")
	assert.Contains(t, out, "  Change:   +20.0%")
	assert.NotContains(t, out, "Summary")
}

func TestRenderTextEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ComparisonSet{}, FormatText))
	assert.Contains(t, buf.String(), "Performance Benchmark Comparison")
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, ComparisonSet{}, Format("xml"))
	require.Error(t, err)
}
