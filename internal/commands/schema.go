package agential

import (
	"fmt"

	"github.com/mwiater/agential/internal/accuracy"
	"github.com/mwiater/agential/internal/util"
	"github.com/spf13/cobra"
)

// schemaCmd implements 'schema', which prints the suite JSON Schema.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema suite files are validated against",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := accuracy.SuiteSchema()
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := util.WriteFile(out, append(schema, '\n')); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", out)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	schemaCmd.Flags().String("out", "", "write the schema to this file instead of stdout")
	rootCmd.AddCommand(schemaCmd)
}
