// internal/commands/root_test.go
package agential

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mwiater/agential/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// resetFlags restores every flag in the tree to its default so tests do not
// leak values into each other through the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args against an isolated config and log
// file and returns everything written to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		_ = logging.Close()
		resetFlags(rootCmd)
	})

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	base := []string{
		"--config", configPath,
		"--logFile", filepath.Join(dir, "agential.log"),
	}

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(base, args...))

	_, err := rootCmd.ExecuteC()
	return b.String(), err
}

// TestRootCmd verifies running the root command with an invalid subcommand reports an error.
func TestRootCmd(t *testing.T) {
	out, err := executeCommand(t, "", "nonexistent")
	if err == nil {
		t.Error("Expected an error for a nonexistent command, but got none")
	}

	expected := "unknown command \"nonexistent\" for \"agential\""
	if !strings.Contains(out, expected) {
		t.Errorf("Expected output to contain '%s', but got '%s'", expected, out)
	}
}
