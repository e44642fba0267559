// internal/accuracy/accuracyBatch.go
package accuracy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mwiater/agential/internal/logging"
)

// RunScoreBatch loads and scores each suite file concurrently and appends the
// results under resultsDir. Reports come back in the order of paths. A failing
// suite does not stop the others; all failures are joined into the returned
// error.
func RunScoreBatch(paths []string, resultsDir string) ([]Report, error) {
	reports := make([]Report, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			report, err := runSuiteFile(path, resultsDir)
			if err != nil {
				logging.LogEvent("score error for suite %s: %v", path, err)
				report.Error = err.Error()
				errs[i] = err
			}
			reports[i] = report
		}(i, path)
	}
	wg.Wait()

	return reports, errors.Join(errs...)
}

func runSuiteFile(path, resultsDir string) (Report, error) {
	report := Report{Path: path}

	logging.LogEvent("Loading suite %s...", path)
	suite, err := LoadSuite(path)
	if err != nil {
		return report, err
	}

	results, summary, err := ScoreSuite(suite)
	if err != nil {
		return report, fmt.Errorf("%s: %w", path, err)
	}
	report.Results = results
	report.Summary = summary

	if resultsDir != "" {
		report.ResultsFile = ResultsFileFor(resultsDir, suite.Name)
		if err := appendResults(report.ResultsFile, results); err != nil {
			return report, err
		}
	}

	logging.LogEvent("Scored suite %s: %d/%d correct", suite.Name, summary.Correct, summary.Total)
	return report, nil
}
