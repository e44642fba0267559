package agential

import (
	"github.com/mwiater/agential/internal/tui"
	"github.com/spf13/cobra"
)

// exploreCmd implements 'explore', an interactive playground for the text operations.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Try normalization and parsing interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
