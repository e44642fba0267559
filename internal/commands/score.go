package agential

import (
	"github.com/mwiater/agential/internal/accuracy"
	"github.com/spf13/cobra"
)

// scoreCmd implements 'score', which runs exact-match scoring over suite files.
var scoreCmd = &cobra.Command{
	Use:   "score [suite...]",
	Short: "Score JSON/YAML answer suites by exact match and append JSONL results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return accuracy.RunScoreCommand(GetConfig(), args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
