// internal/metrics/analyze.go
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/util"
)

// AnalyzeOptions captures the inputs for 'analyze'.
type AnalyzeOptions struct {
	ResultsDir   string
	AnalysisPath string
	JSONMode     bool
}

var (
	suiteTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	unstableColor   = color.New(color.FgYellow)
	neverColor      = color.New(color.FgRed)
)

// Analyze loads the results history and prints it, optionally writing the
// analysis JSON to opts.AnalysisPath as well.
func Analyze(opts AnalyzeOptions, out io.Writer) error {
	history, err := LoadHistory(opts.ResultsDir)
	if err != nil {
		return err
	}
	logging.LogEvent("Analyzed %d suite(s) in %s", len(history.Suites), opts.ResultsDir)

	if opts.AnalysisPath != "" {
		data, err := json.MarshalIndent(history, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to marshal analysis JSON: %w", err)
		}
		if err := util.WriteFile(opts.AnalysisPath, append(data, '\n')); err != nil {
			return fmt.Errorf("unable to write analysis JSON %s: %w", opts.AnalysisPath, err)
		}
		if !opts.JSONMode {
			fmt.Fprintf(out, "Analysis JSON written to %s\n", opts.AnalysisPath)
		}
	}

	if opts.JSONMode {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(history)
	}
	PrintHistory(out, history)
	return nil
}

// PrintHistory writes a text report of every suite in history.
func PrintHistory(out io.Writer, history History) {
	if len(history.Suites) == 0 {
		fmt.Fprintf(out, "No results found in %s\n", history.ResultsDir)
		return
	}
	for i, suite := range history.Suites {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, suiteTitleStyle.Render(suite.Suite))
		fmt.Fprintf(out, "  runs:     %d (%d records)\n", len(suite.Runs), suite.Records)
		fmt.Fprintf(out, "  overall:  %d/%d (%.1f%%)\n", suite.Overall.Correct, suite.Overall.Total, suite.Overall.Accuracy*100)
		if len(suite.Runs) > 1 {
			d := suite.RunAccuracy
			fmt.Fprintf(out, "  per run:  mean %.1f%%  stddev %.1f  min %.1f%%  max %.1f%%\n", d.Mean*100, d.StdDev*100, d.Min*100, d.Max*100)
		}
		if n := len(suite.Runs); n > 0 {
			last := suite.Runs[n-1]
			fmt.Fprintf(out, "  latest:   %d/%d at %s\n", last.Correct, last.Total, last.Timestamp)
		}
		if len(suite.UnstableCases) > 0 {
			unstableColor.Fprintf(out, "  unstable: %s\n", joinInts(suite.UnstableCases))
		}
		if len(suite.NeverCorrect) > 0 {
			neverColor.Fprintf(out, "  never correct: %s\n", joinInts(suite.NeverCorrect))
		}
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
