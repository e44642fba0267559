package agential

import "github.com/spf13/cobra"

// showCmd groups commands that display application state.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration details",
}

// listCmd groups commands that list things.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List commands",
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}
