package accuracy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const schemaDraft = "http://json-schema.org/draft-07/schema#"

// Suite file formats accepted by ParseSuite.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrEmptySuite is returned when a suite has no cases to score.
	ErrEmptySuite = errors.New("suite contains no cases")
	// ErrInvalidSuite is returned when a suite document does not match the suite schema.
	ErrInvalidSuite = errors.New("suite failed validation")
)

var suiteSchema = sync.OnceValues(func() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Suite{})
	schema.Version = schemaDraft
	schema.Title = "agential exact-match suite"
	return json.MarshalIndent(schema, "", "  ")
})

// SuiteSchema returns the JSON Schema that suite files are validated against.
func SuiteSchema() ([]byte, error) {
	schema, err := suiteSchema()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(schema), nil
}

// FormatForPath picks the suite format from a file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadSuite reads, validates and decodes a suite file. A suite without a name
// is named after the file.
func LoadSuite(path string) (Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("error reading suite: %w", err)
	}

	suite, err := ParseSuite(raw, FormatForPath(path))
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	if strings.TrimSpace(suite.Name) == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return suite, nil
}

// ParseSuite validates raw against the suite schema and decodes it.
func ParseSuite(raw []byte, format string) (Suite, error) {
	var (
		document gojsonschema.JSONLoader
		suite    Suite
	)

	switch format {
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return Suite{}, fmt.Errorf("error parsing suite: %w", err)
		}
		document = gojsonschema.NewGoLoader(doc)
	case FormatJSON:
		document = gojsonschema.NewBytesLoader(raw)
	default:
		return Suite{}, fmt.Errorf("unsupported suite format %q", format)
	}

	if err := validateSuite(document); err != nil {
		return Suite{}, err
	}

	if format == FormatYAML {
		if err := yaml.Unmarshal(raw, &suite); err != nil {
			return Suite{}, fmt.Errorf("error decoding suite: %w", err)
		}
	} else if err := json.Unmarshal(raw, &suite); err != nil {
		return Suite{}, fmt.Errorf("error decoding suite: %w", err)
	}

	if len(suite.Cases) == 0 {
		return Suite{}, ErrEmptySuite
	}
	return suite, nil
}

func validateSuite(document gojsonschema.JSONLoader) error {
	schema, err := SuiteSchema()
	if err != nil {
		return fmt.Errorf("error building suite schema: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), document)
	if err != nil {
		return fmt.Errorf("error parsing suite: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidSuite, strings.Join(details, "; "))
}
