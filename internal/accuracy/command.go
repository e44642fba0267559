package accuracy

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mwiater/agential/internal/appconfig"
	"github.com/mwiater/agential/internal/logging"
)

// RunScoreCommand is the CLI entry point for score. With no paths it falls
// back to the suites listed in the config.
func RunScoreCommand(cfg *appconfig.Config, paths []string, out io.Writer) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if len(paths) == 0 {
		paths = cfg.Suites
	}
	if len(paths) == 0 {
		return fmt.Errorf("no suite files given and none configured")
	}
	logging.LogEvent("score command called for %d suite(s)", len(paths))

	reports, runErr := RunScoreBatch(paths, cfg.ResultsPath())

	if cfg.JSONMode {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			return fmt.Errorf("error writing reports: %w", err)
		}
		return runErr
	}

	for _, report := range reports {
		PrintReport(out, report, cfg.TruncateWidth())
	}
	return runErr
}
