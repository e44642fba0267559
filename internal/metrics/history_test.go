package metrics

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mwiater/agential/internal/accuracy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResults(t *testing.T, path string, results ...accuracy.Result) {
	t.Helper()
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, r := range results {
		require.NoError(t, encoder.Encode(r))
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	defer file.Close()
	_, err = file.Write(buf.Bytes())
	require.NoError(t, err)
}

func result(suite, ts string, id int, correct bool) accuracy.Result {
	return accuracy.Result{Timestamp: ts, Suite: suite, CaseID: id, Correct: correct}
}

func TestLoadHistory(t *testing.T) {
	dir := t.TempDir()
	capitals := filepath.Join(dir, "capitals.jsonl")

	writeResults(t, capitals,
		result("capitals", "2025-03-01T10:00:00Z", 1, true),
		result("capitals", "2025-03-01T10:00:00Z", 2, false),
		result("capitals", "2025-03-01T10:00:00Z", 3, false),
	)
	// Same second as the first run; the repeated case ID starts a new run.
	writeResults(t, capitals,
		result("capitals", "2025-03-01T10:00:00Z", 1, true),
		result("capitals", "2025-03-01T10:00:00Z", 2, true),
		result("capitals", "2025-03-01T10:00:00Z", 3, false),
	)
	writeResults(t, filepath.Join(dir, "rivers.jsonl"), result("rivers", "2025-03-02T09:00:00Z", 1, true))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	history, err := LoadHistory(dir)
	require.NoError(t, err)
	require.Len(t, history.Suites, 2)

	caps := history.Suites[0]
	assert.Equal(t, "capitals", caps.Suite)
	assert.Equal(t, []string{capitals}, caps.Files)
	assert.Equal(t, 6, caps.Records)
	require.Len(t, caps.Runs, 2)
	assert.Equal(t, RunSummary{Timestamp: "2025-03-01T10:00:00Z", Total: 3, Correct: 1, Accuracy: 1.0 / 3.0}, caps.Runs[0])
	assert.Equal(t, 2, caps.Runs[1].Correct)
	assert.Equal(t, AccuracyAggregate{Total: 6, Correct: 3, Accuracy: 0.5, ErrorRate: 0.5}, caps.Overall)
	assert.Equal(t, []int{2}, caps.UnstableCases)
	assert.Equal(t, []int{3}, caps.NeverCorrect)
	assert.Equal(t, 2, caps.RunAccuracy.Count)
	assert.InDelta(t, 0.5, caps.RunAccuracy.Mean, 1e-9)

	assert.Equal(t, "rivers", history.Suites[1].Suite)
	assert.Empty(t, history.Suites[1].UnstableCases)
}

func TestLoadHistoryScoredSuiteIsOneRun(t *testing.T) {
	dir := t.TempDir()
	cases := make([]accuracy.Case, 0, 50)
	for i := 0; i < 50; i++ {
		cases = append(cases, accuracy.Case{Answer: "x", Key: strings.Repeat("x", 1+i%2)})
	}

	results, summary, err := accuracy.ScoreSuite(accuracy.Suite{Name: "bulk", Cases: cases})
	require.NoError(t, err)
	writeResults(t, filepath.Join(dir, "bulk.jsonl"), results...)

	history, err := LoadHistory(dir)
	require.NoError(t, err)
	require.Len(t, history.Suites, 1)

	bulk := history.Suites[0]
	require.Len(t, bulk.Runs, 1)
	assert.Equal(t, 50, bulk.Runs[0].Total)
	assert.Equal(t, summary.Correct, bulk.Runs[0].Correct)
	assert.Equal(t, 1, bulk.RunAccuracy.Count)
}

func TestLoadHistoryErrors(t *testing.T) {
	_, err := LoadHistory(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jsonl"), []byte("{\"suite\":\"a\"}\nnot json\n"), 0o644))
	_, err = LoadHistory(dir)
	require.ErrorContains(t, err, "bad.jsonl:2")
}

func TestDistributionStats(t *testing.T) {
	stats := distributionStats([]float64{0.2, 0.4, 0.6, 0.8})
	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 0.5, stats.Mean, 1e-9)
	assert.InDelta(t, 0.2, stats.Min, 1e-9)
	assert.InDelta(t, 0.8, stats.Max, 1e-9)
	assert.InDelta(t, 0.5, stats.P50, 1e-9)
	assert.InDelta(t, 0.2582, stats.StdDev, 1e-4)

	assert.Equal(t, DistributionStats{}, distributionStats(nil))
	assert.Zero(t, ratio(1, 0))
}

func TestAnalyze(t *testing.T) {
	color.NoColor = true

	dir := t.TempDir()
	writeResults(t, filepath.Join(dir, "capitals.jsonl"),
		result("capitals", "2025-03-01T10:00:00Z", 1, true),
		result("capitals", "2025-03-01T10:00:00Z", 2, false),
	)
	analysisPath := filepath.Join(t.TempDir(), "reports", "analysis.json")

	var out bytes.Buffer
	require.NoError(t, Analyze(AnalyzeOptions{ResultsDir: dir, AnalysisPath: analysisPath}, &out))
	text := out.String()
	assert.Contains(t, text, "Analysis JSON written to")
	assert.Contains(t, text, "overall:  1/2 (50.0%)")
	assert.Contains(t, text, "never correct: 2")

	data, err := os.ReadFile(analysisPath)
	require.NoError(t, err)
	var history History
	require.NoError(t, json.Unmarshal(data, &history))
	require.Len(t, history.Suites, 1)

	out.Reset()
	require.NoError(t, Analyze(AnalyzeOptions{ResultsDir: dir, JSONMode: true}, &out))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out.String()), "{"))
}

func TestPrintHistoryEmpty(t *testing.T) {
	var out bytes.Buffer
	PrintHistory(&out, History{ResultsDir: "nowhere"})
	assert.Equal(t, "No results found in nowhere\n", out.String())
}
