package agential

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/agential/internal/accuracy"
	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/spf13/cobra"
)

// emOutput is the JSON document printed by 'em'.
type emOutput struct {
	Answer           string `json:"answer"`
	Key              string `json:"key"`
	NormalizedAnswer string `json:"normalizedAnswer"`
	NormalizedKey    string `json:"normalizedKey"`
	Match            bool   `json:"match"`
}

// emCmd implements 'em', which compares an answer with its key by exact match.
var emCmd = &cobra.Command{
	Use:   "em <answer> <key>",
	Short: "Exact-match an answer against a key after normalization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := emOutput{
			Answer:           args[0],
			Key:              args[1],
			NormalizedAnswer: parse.NormalizeAnswer(args[0]),
			NormalizedKey:    parse.NormalizeAnswer(args[1]),
			Match:            accuracy.EM(args[0], args[1]),
		}
		logging.LogOperation("em", args[0]+" | "+args[1], result.Match)

		out := cmd.OutOrStdout()
		if JSONModeEnabled() {
			return writeJSON(out, result)
		}
		if result.Match {
			color.New(color.FgGreen, color.Bold).Fprintln(out, "match")
		} else {
			color.New(color.FgRed, color.Bold).Fprintln(out, "no match")
		}
		fmt.Fprintf(out, "  answer: %q\n  key:    %q\n", result.NormalizedAnswer, result.NormalizedKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emCmd)
}
