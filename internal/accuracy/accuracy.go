// internal/accuracy/accuracy.go
package accuracy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mwiater/agential/internal/logging"
	"github.com/mwiater/agential/internal/parse"
	"github.com/mwiater/agential/internal/util"
)

// now is swapped out by tests that need stable timestamps.
var now = time.Now

// fileLocks serializes appends to a results file shared by several suites.
var fileLocks sync.Map

// ScoreCase applies EM to a single case and stamps the result with timestamp.
// Cases without an ID take position.
func ScoreCase(suiteName string, position int, c Case, timestamp string) Result {
	id := c.ID
	if id == 0 {
		id = position
	}
	normalizedAnswer := parse.NormalizeAnswer(c.Answer)
	normalizedKey := parse.NormalizeAnswer(c.Key)
	return Result{
		Timestamp:        timestamp,
		Suite:            suiteName,
		CaseID:           id,
		Question:         c.Question,
		Answer:           c.Answer,
		Key:              c.Key,
		NormalizedAnswer: normalizedAnswer,
		NormalizedKey:    normalizedKey,
		Correct:          normalizedAnswer == normalizedKey,
	}
}

// ScoreSuite scores every case of a suite in order. All results of one call
// share a single timestamp, which is what marks them as one run.
func ScoreSuite(suite Suite) ([]Result, Summary, error) {
	if len(suite.Cases) == 0 {
		return nil, Summary{Suite: suite.Name}, ErrEmptySuite
	}

	timestamp := now().Format(time.RFC3339)
	results := make([]Result, 0, len(suite.Cases))
	for i, c := range suite.Cases {
		result := ScoreCase(suite.Name, i+1, c, timestamp)
		logging.LogScore(suite.Name, result.CaseID, result.Correct)
		results = append(results, result)
	}
	return results, Summarize(suite.Name, results), nil
}

// Summarize counts correct results and computes the accuracy ratio.
func Summarize(suiteName string, results []Result) Summary {
	summary := Summary{Suite: suiteName, Total: len(results)}
	for _, r := range results {
		summary.Correct += util.BoolToInt(r.Correct)
	}
	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Total)
	}
	return summary
}

// ResultsFileFor returns the JSONL file results for suiteName are appended to.
func ResultsFileFor(resultsDir, suiteName string) string {
	slug := util.Slugify(suiteName)
	if slug == "" {
		slug = "suite"
	}
	return filepath.Join(resultsDir, fmt.Sprintf("%s.jsonl", slug))
}

// appendResults writes results to path as JSON lines, appending to any
// previous run.
func appendResults(path string, results []Result) error {
	lock, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating results directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("error opening results file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("error writing results: %w", err)
		}
	}

	return nil
}
