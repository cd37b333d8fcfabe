// benchcmp compares two benchmark result files and reports per-metric
// performance changes.
//
// Usage:
//
//	benchcmp <current> <baseline> [--format markdown|json|text|html]
//	         [--output FILE] [--fail-on-regression]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cmdrun/benchcmp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		format           string
		output           string
		failOnRegression bool
		verbose          bool
	)

	cmd := &cobra.Command{
		Use:   "benchcmp <current> <baseline>",
		Short: "Compare benchmark results against a baseline",
		Long: `benchcmp compares two benchmark result files (current vs. baseline)
and reports per-metric percentage change, classifying each metric as
improved, regressed, or stable.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return run(cmd, args[0], args[1], format, output, failOnRegression)
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown, json, text, html")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&failOnRegression, "fail-on-regression", false, "exit with error code if regressions detected")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, currentPath, baselinePath, formatName, output string, failOnRegression bool) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	format, err := benchcmp.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return err
	}

	currentDoc, err := loadFile(stderr, currentPath)
	if err != nil {
		return err
	}

	baselineDoc, err := loadFile(stderr, baselinePath)
	if err != nil {
		return err
	}

	currentMetrics := benchcmp.Extract(currentDoc)
	baselineMetrics := benchcmp.Extract(baselineDoc)
	logrus.Debugf("extracted %d current and %d baseline metric(s)", len(currentMetrics), len(baselineMetrics))

	if len(currentMetrics) == 0 {
		fmt.Fprintln(stderr, "❌ No performance metrics found in current data")
		return errors.New("no performance metrics found in current data")
	}

	if len(baselineMetrics) == 0 {
		fmt.Fprintln(stderr, "❌ No performance metrics found in baseline data")
		return errors.New("no performance metrics found in baseline data")
	}

	comparison := benchcmp.Compare(currentMetrics, baselineMetrics)
	logrus.Debugf("compared %d metric(s)", len(comparison))

	if len(comparison) == 0 {
		fmt.Fprintln(stderr, "❌ No comparable metrics found")
		return errors.New("no comparable metrics found")
	}

	err = writeReport(stdout, stderr, comparison, format, output)
	if err != nil {
		return err
	}

	if failOnRegression {
		regressions := 0
		for _, c := range comparison {
			if c.Regression {
				regressions++
			}
		}

		if regressions > 0 {
			fmt.Fprintf(stdout, "\n❌ %d performance regression(s) detected!\n", regressions)
			return fmt.Errorf("%d performance regression(s) detected", regressions)
		}
	}

	fmt.Fprintln(stdout, "\n✅ Benchmark comparison complete")

	return nil
}

func loadFile(stderr io.Writer, path string) (*benchcmp.Document, error) {
	doc, err := benchcmp.Load(path)
	if err == nil {
		logrus.Debugf("loaded %d benchmark entries from %s", len(doc.Benches), path)
		return doc, nil
	}

	var (
		notFound *benchcmp.NotFoundError
		parse    *benchcmp.ParseError
	)

	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(stderr, "❌ Benchmark file not found: %s\n", notFound.Path)
	case errors.As(err, &parse):
		fmt.Fprintf(stderr, "❌ Invalid JSON in %s: %v\n", parse.Path, parse.Err)
	default:
		fmt.Fprintf(stderr, "❌ %v\n", err)
	}

	return nil, err
}

func writeReport(stdout, stderr io.Writer, comparison benchcmp.ComparisonSet, format benchcmp.Format, output string) error {
	if output == "" {
		err := benchcmp.Render(stdout, comparison, format)
		if err != nil {
			fmt.Fprintf(stderr, "❌ Rendering report failed: %v\n", err)
			return err
		}

		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Cannot create output file %s: %v\n", output, err)
		return err
	}

	renderErr := benchcmp.Render(f, comparison, format)

	closeErr := f.Close()
	if renderErr != nil {
		fmt.Fprintf(stderr, "❌ Rendering report failed: %v\n", renderErr)
		return renderErr
	}

	if closeErr != nil {
		fmt.Fprintf(stderr, "❌ Writing report failed: %v\n", closeErr)
		return closeErr
	}

	fmt.Fprintf(stdout, "📊 Report written to: %s\n", output)

	return nil
}
