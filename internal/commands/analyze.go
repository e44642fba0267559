// internal/commands/analyze.go
package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/metrics"
	"github.com/spf13/cobra"
)

// analyzeCmd implements 'analyze', which summarizes the score history kept in
// the results directory.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize score history across runs from the results JSONL files",
	Long: `Read every JSONL file in the results directory, split the records into
scoring runs and report overall accuracy, per-run spread, and the cases whose
outcome changed between runs or that were never answered correctly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}
		out, _ := cmd.Flags().GetString("out")
		return metrics.Analyze(metrics.AnalyzeOptions{
			ResultsDir:   cfg.ResultsPath(),
			AnalysisPath: out,
			JSONMode:     cfg.JSONMode,
		}, cmd.OutOrStdout())
	},
}

func init() {
	analyzeCmd.Flags().String("out", "", "optional path to also write the analysis JSON")
	rootCmd.AddCommand(analyzeCmd)
}
