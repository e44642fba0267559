// internal/metrics/types.go
package metrics

// History is the analysis of every results file in a results directory.
type History struct {
	ResultsDir string         `json:"resultsDir"`
	Suites     []SuiteHistory `json:"suites"`
}

// SuiteHistory aggregates all recorded runs of one suite.
type SuiteHistory struct {
	Suite       string            `json:"suite"`
	Files       []string          `json:"files"`
	Records     int               `json:"records"`
	Runs        []RunSummary      `json:"runs"`
	Overall     AccuracyAggregate `json:"overall"`
	RunAccuracy DistributionStats `json:"runAccuracy"`
	// UnstableCases lists case IDs that were scored both correct and incorrect across runs.
	UnstableCases []int `json:"unstableCases,omitempty"`
	// NeverCorrect lists case IDs that no run got right.
	NeverCorrect []int `json:"neverCorrect,omitempty"`
}

// RunSummary is one scoring run reconstructed from the results file.
type RunSummary struct {
	Timestamp string  `json:"timestamp"`
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// AccuracyAggregate captures correctness rollups over all records.
type AccuracyAggregate struct {
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
	ErrorRate float64 `json:"errorRate"`
}

// DistributionStats summarizes a series of values.
type DistributionStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
}
