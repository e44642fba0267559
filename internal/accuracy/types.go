// internal/accuracy/types.go
package accuracy

// Suite defines the exact-match cases loaded from a JSON or YAML file.
type Suite struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty" jsonschema:"description=Suite name used for the results file; defaults to the file name"`
	Cases []Case `json:"cases" yaml:"cases" jsonschema:"minItems=1"`
}

// Case is a single answer to be scored against its key.
type Case struct {
	ID       int    `json:"id,omitempty" yaml:"id,omitempty" jsonschema:"minimum=1"`
	Question string `json:"question,omitempty" yaml:"question,omitempty"`
	Answer   string `json:"answer" yaml:"answer" jsonschema:"description=Model generated answer"`
	Key      string `json:"key" yaml:"key" jsonschema:"description=Ground truth answer"`
}

// Result records a single scored case.
type Result struct {
	Timestamp        string `json:"timestamp"`
	Suite            string `json:"suite"`
	CaseID           int    `json:"caseId"`
	Question         string `json:"question,omitempty"`
	Answer           string `json:"answer"`
	Key              string `json:"key"`
	NormalizedAnswer string `json:"normalizedAnswer"`
	NormalizedKey    string `json:"normalizedKey"`
	Correct          bool   `json:"correct"`
}

// Summary aggregates the results of one suite.
type Summary struct {
	Suite    string  `json:"suite"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Report is the outcome of scoring one suite file.
type Report struct {
	Path        string   `json:"path"`
	ResultsFile string   `json:"resultsFile,omitempty"`
	Summary     Summary  `json:"summary"`
	Results     []Result `json:"results,omitempty"`
	Error       string   `json:"error,omitempty"`
}
