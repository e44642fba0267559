package accuracy

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/agential/internal/util"
)

var (
	correctColor   = color.New(color.FgGreen, color.Bold)
	incorrectColor = color.New(color.FgRed, color.Bold)
	errorColor     = color.New(color.FgYellow)

	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	summaryBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("242")).
				Padding(0, 1)
)

// PrintResult writes one colored result line. Answers and keys longer than
// width runes are truncated; width <= 0 disables truncation.
func PrintResult(w io.Writer, r Result, width int) {
	label := correctColor.Sprint("correct")
	if !r.Correct {
		label = incorrectColor.Sprint("incorrect")
	}
	fmt.Fprintf(w, "[%d] %s answer=%q key=%q\n", r.CaseID, label, clip(r.Answer, width), clip(r.Key, width))
	if !r.Correct {
		fmt.Fprintf(w, "    normalized: %q != %q\n", clip(r.NormalizedAnswer, width), clip(r.NormalizedKey, width))
	}
}

// RenderSummary renders a bordered summary block for a suite.
func RenderSummary(s Summary, resultsFile string) string {
	lines := []string{
		summaryTitleStyle.Render(s.Suite),
		fmt.Sprintf("Exact match: %d/%d (%.1f%%)", s.Correct, s.Total, s.Accuracy*100),
	}
	if resultsFile != "" {
		lines = append(lines, fmt.Sprintf("Results: %s", resultsFile))
	}
	return summaryBoxStyle.Render(strings.Join(lines, "\n"))
}

// PrintReport writes every result of a report followed by its summary.
func PrintReport(w io.Writer, report Report, width int) {
	if report.Error != "" {
		errorColor.Fprintf(w, "%s: %s\n", report.Path, report.Error)
		return
	}
	for _, r := range report.Results {
		PrintResult(w, r, width)
	}
	fmt.Fprintln(w, RenderSummary(report.Summary, report.ResultsFile))
}

func clip(text string, width int) string {
	if width <= 0 {
		return text
	}
	return util.TruncateRunes(text, width)
}
