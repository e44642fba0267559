package agential

import (
	"github.com/spf13/cobra"
)

// parseCmd groups the commands that turn model output into structured values.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse structured values out of model output",
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
