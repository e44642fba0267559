// internal/commands/normalize.go
package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/spf13/cobra"
)

var normalizeSteps = map[string]func(string) string{
	"full":       parse.NormalizeAnswer,
	"articles":   parse.RemoveArticles,
	"whitespace": parse.WhiteSpaceFix,
	"punc":       parse.RemovePunc,
}

// normalizeOutput is the JSON document printed by 'normalize'.
type normalizeOutput struct {
	Step   string `json:"step"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// normalizeCmd implements 'normalize', which canonicalizes an answer the same
// way exact-match scoring does.
var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Normalize answer text (lowercase, no punctuation or articles, single spaces)",
	Long:  `Normalize answer text. With --step, run a single stage: articles, whitespace or punc. Reads stdin when no text is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		step, _ := cmd.Flags().GetString("step")
		fn, ok := normalizeSteps[step]
		if !ok {
			return fmt.Errorf("unknown step %q (want full, articles, whitespace or punc)", step)
		}

		input, err := readArgsOrInput(cmd, args)
		if err != nil {
			return err
		}
		output := fn(input)
		logging.LogOperation("normalize-"+step, input, output)

		if JSONModeEnabled() {
			return writeJSON(cmd.OutOrStdout(), normalizeOutput{Step: step, Input: input, Output: output})
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	normalizeCmd.Flags().String("step", "full", "normalization stage to run: full, articles, whitespace or punc")
	rootCmd.AddCommand(normalizeCmd)
}
