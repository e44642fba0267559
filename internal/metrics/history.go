// internal/metrics/history.go
package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwiater/agential/internal/accuracy"
)

// LoadHistory reads every *.jsonl results file in dir and aggregates the
// records per suite. Suites are returned sorted by name.
func LoadHistory(dir string) (History, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return History{}, fmt.Errorf("read results dir %s: %w", dir, err)
	}

	bySuite := make(map[string]*suiteRecords)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".jsonl") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		records, err := readResultsFile(path)
		if err != nil {
			return History{}, err
		}
		for _, record := range records {
			sr := bySuite[record.Suite]
			if sr == nil {
				sr = &suiteRecords{}
				bySuite[record.Suite] = sr
			}
			sr.add(path, record)
		}
	}

	history := History{ResultsDir: dir, Suites: make([]SuiteHistory, 0, len(bySuite))}
	for name, sr := range bySuite {
		history.Suites = append(history.Suites, sr.aggregate(name))
	}
	sort.Slice(history.Suites, func(i, j int) bool {
		return history.Suites[i].Suite < history.Suites[j].Suite
	})
	return history, nil
}

func readResultsFile(path string) ([]accuracy.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read results file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 50*1024*1024)
	var records []accuracy.Result
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var record accuracy.Result
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			return nil, fmt.Errorf("parse results record %s:%d: %w", path, line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan results file %s: %w", path, err)
	}
	return records, nil
}

// suiteRecords splits one suite's records into runs as they are read. Records
// of a run are appended contiguously with one timestamp; a change of file or
// timestamp, or a case ID repeating, starts a new run.
type suiteRecords struct {
	files   []string
	runs    [][]accuracy.Result
	lastKey string
	seen    map[int]bool
}

func (s *suiteRecords) add(path string, record accuracy.Result) {
	if len(s.files) == 0 || s.files[len(s.files)-1] != path {
		s.files = append(s.files, path)
	}
	key := path + "\x00" + record.Timestamp
	if key != s.lastKey || s.seen[record.CaseID] {
		s.runs = append(s.runs, nil)
		s.lastKey = key
		s.seen = make(map[int]bool)
	}
	s.seen[record.CaseID] = true
	last := len(s.runs) - 1
	s.runs[last] = append(s.runs[last], record)
}

func (s *suiteRecords) aggregate(name string) SuiteHistory {
	history := SuiteHistory{Suite: name, Files: s.files}

	outcomes := make(map[int][2]int) // case ID -> {correct, incorrect}
	runAccuracy := make([]float64, 0, len(s.runs))
	for _, run := range s.runs {
		summary := accuracy.Summarize(name, run)
		history.Runs = append(history.Runs, RunSummary{
			Timestamp: run[0].Timestamp,
			Total:     summary.Total,
			Correct:   summary.Correct,
			Accuracy:  summary.Accuracy,
		})
		runAccuracy = append(runAccuracy, summary.Accuracy)

		history.Records += summary.Total
		history.Overall.Total += summary.Total
		history.Overall.Correct += summary.Correct

		for _, r := range run {
			counts := outcomes[r.CaseID]
			if r.Correct {
				counts[0]++
			} else {
				counts[1]++
			}
			outcomes[r.CaseID] = counts
		}
	}

	history.Overall.Accuracy = ratio(float64(history.Overall.Correct), float64(history.Overall.Total))
	if history.Overall.Total > 0 {
		history.Overall.ErrorRate = 1 - history.Overall.Accuracy
	}
	history.RunAccuracy = distributionStats(runAccuracy)

	for id, counts := range outcomes {
		switch {
		case counts[0] > 0 && counts[1] > 0:
			history.UnstableCases = append(history.UnstableCases, id)
		case counts[0] == 0:
			history.NeverCorrect = append(history.NeverCorrect, id)
		}
	}
	sort.Ints(history.UnstableCases)
	sort.Ints(history.NeverCorrect)
	return history
}

func distributionStats(values []float64) DistributionStats {
	if len(values) == 0 {
		return DistributionStats{}
	}
	meanVal := mean(values)
	return DistributionStats{
		Count:  len(values),
		Mean:   meanVal,
		StdDev: stddev(values, meanVal),
		Min:    percentile(values, 0),
		Max:    percentile(values, 100),
		P50:    percentile(values, 50),
		P90:    percentile(values, 90),
	}
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	if p <= 0 || len(sorted) == 1 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	pos := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	weight := pos - float64(lower)
	return sorted[lower] + weight*(sorted[upper]-sorted[lower])
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation.
func stddev(values []float64, meanVal float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		diff := v - meanVal
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
