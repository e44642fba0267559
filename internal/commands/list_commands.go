// internal/commands/list_commands.go
package agential

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandInfo is one row of 'list commands'.
type commandInfo struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Depth       int    `json:"depth"`
}

var groupStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// commandsCmd implements 'list commands', which prints the command tree with
// the path in the first column and the short description in the second.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := collectCommandData(rootCmd, "", 0)
		if JSONModeEnabled() {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		printCommandTable(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// collectCommandData walks the command tree depth first. Completion and help
// commands are left out.
func collectCommandData(cmd *cobra.Command, parentPath string, depth int) []commandInfo {
	path := cmd.Name()
	if parentPath != "" {
		path = parentPath + " " + path
	}

	rows := []commandInfo{{Path: path, Description: cmd.Short, Depth: depth}}
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" || sub.Name() == "help" {
			continue
		}
		rows = append(rows, collectCommandData(sub, path, depth+1)...)
	}
	return rows
}

// printCommandTable aligns descriptions one column past the longest indented
// path. Commands with subcommands are highlighted.
func printCommandTable(out io.Writer, rows []commandInfo) {
	width := 0
	for _, row := range rows {
		width = max(width, 2*row.Depth+len(row.Path))
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for i, row := range rows {
		cell := strings.Repeat("  ", row.Depth) + row.Path
		padding := strings.Repeat(" ", width-len(cell)+2)
		if i+1 < len(rows) && rows[i+1].Depth > row.Depth {
			cell = groupStyle.Render(cell)
		}
		fmt.Fprintf(out, "  %s%s%s\n", cell, padding, row.Description)
	}
}
