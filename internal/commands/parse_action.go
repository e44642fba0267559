package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/spf13/cobra"
)

// actionOutput is the JSON document printed by 'parse action'.
type actionOutput struct {
	Type     string `json:"type"`
	Argument string `json:"argument"`
	Valid    bool   `json:"valid"`
}

// parseActionCmd implements 'parse action', which splits "Type[Argument]".
var parseActionCmd = &cobra.Command{
	Use:   "action <text>",
	Short: "Parse an action string of the form Type[Argument]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actionType, argument := parse.ParseAction(args[0])
		result := actionOutput{Type: actionType, Argument: argument, Valid: actionType != ""}
		logging.LogOperation("parse-action", args[0], result)

		if JSONModeEnabled() {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		if !result.Valid {
			return fmt.Errorf("not an action string: %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "type: %s\nargument: %s\n", result.Type, result.Argument)
		return nil
	},
}

func init() {
	parseCmd.AddCommand(parseActionCmd)
}
