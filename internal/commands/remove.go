package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/spf13/cobra"
)

// removeCmd groups the text cleaning commands.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Clean names and line breaks out of model output",
}

// removeNameCmd implements 'remove name'.
var removeNameCmd = &cobra.Command{
	Use:   "name [text...]",
	Short: "Remove the first whole-word occurrence of --name from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		input, err := readArgsOrInput(cmd, args)
		if err != nil {
			return err
		}
		output := parse.RemoveName(input, name)
		logging.LogOperation("remove-name", input, output)
		return printText(cmd, input, output)
	},
}

// removeNewlineCmd implements 'remove newline'.
var removeNewlineCmd = &cobra.Command{
	Use:   "newline [file|-]",
	Short: "Trim a step and delete its internal line breaks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readFileOrInput(cmd, args)
		if err != nil {
			return err
		}
		output := parse.RemoveNewline(input)
		logging.LogOperation("remove-newline", input, output)
		return printText(cmd, input, output)
	},
}

// textOutput is the JSON document printed by the remove commands.
type textOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func printText(cmd *cobra.Command, input, output string) error {
	if JSONModeEnabled() {
		return writeJSON(cmd.OutOrStdout(), textOutput{Input: input, Output: output})
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func init() {
	removeNameCmd.Flags().String("name", "", "name to remove")
	_ = removeNameCmd.MarkFlagRequired("name")

	removeCmd.AddCommand(removeNameCmd)
	removeCmd.AddCommand(removeNewlineCmd)
	rootCmd.AddCommand(removeCmd)
}
