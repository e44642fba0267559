package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/spf13/cobra"
)

// parseListCmd implements 'parse list', which splits a numbered list into items.
var parseListCmd = &cobra.Command{
	Use:   "list [file|-]",
	Short: "Split a numbered list (\"1.\" or \"1)\") into items",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numbered, _ := cmd.Flags().GetBool("numbered")
		input, err := readFileOrInput(cmd, args)
		if err != nil {
			return err
		}

		var items []string
		if numbered {
			items = parse.ParseNumberedList(input)
		} else {
			items = parse.ParseList(input)
		}
		logging.LogOperation("parse-list", input, items)

		if JSONModeEnabled() {
			return writeJSON(cmd.OutOrStdout(), items)
		}
		for _, item := range items {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
		return nil
	},
}

func init() {
	parseListCmd.Flags().Bool("numbered", false, "strip trailing periods and commas from each item")
	parseCmd.AddCommand(parseListCmd)
}
