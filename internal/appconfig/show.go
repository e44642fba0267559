package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:       %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode:   %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Log File:    %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Results Dir: %s\n", cfg.ResultsPath())
	fmt.Fprintf(out, "  Truncate:    %d runes\n", cfg.TruncateWidth())
	fmt.Fprintf(out, "  Suites:      %v\n", cfg.Suites)

	if cfg.Debug {
		fmt.Fprintln(out)
		pp.Fprintln(out, cfg)
	}
}
