package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	"gopkg.in/yaml.v3"
)

var (
	ErrMalformedReport = errors.New("malformed report")
	ErrUnknownFormat   = errors.New("unknown report format")
)

// Persisted report encoding
type Format uint

const (
	Format_JSON Format = iota
	Format_YAML
)

func (f Format) String() string {
	switch f {
	case Format_JSON:
		return "json"
	case Format_YAML:
		return "yaml"
	}

	panic("unreachable")
}

// Parses a format name ("json", "yaml" or "yml")
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return Format_JSON, nil
	case "yaml", "yml":
		return Format_YAML, nil
	}

	return 0, utils.MakeError(ErrUnknownFormat, "'%v'", name)
}

// Guesses the format of a report file from its extension, defaulting to JSON
func FormatFromPath(path string) Format {
	if format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return format
	}

	return Format_JSON
}

// Encodes a report
func Write(w io.Writer, r *Report, format Format) error {
	wire := toWireReport(r)
	if wire.TestCases == nil {
		wire.TestCases = []wireTestCase{}
	}

	switch format {
	case Format_JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(wire)
	case Format_YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(wire); err != nil {
			return err
		}

		return encoder.Close()
	}

	return utils.MakeError(ErrUnknownFormat, "%d", uint(format))
}

// Decodes a report. Unknown fields, null values, malformed values and inconsistent mismatch flags are rejected
func Read(r io.Reader, format Format) (*Report, error) {
	var wire wireReport

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case Format_JSON:
		if err := rejectJSONNulls(data); err != nil {
			return nil, err
		}

		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&wire); err != nil {
			return nil, utils.MakeError(ErrMalformedReport, "%w", err)
		}

		if decoder.More() {
			return nil, utils.MakeError(ErrMalformedReport, "trailing data after the report")
		}
	case Format_YAML:
		if err := rejectYAMLNulls(data); err != nil {
			return nil, err
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		if err := decoder.Decode(&wire); err != nil {
			return nil, utils.MakeError(ErrMalformedReport, "%w", err)
		}
	default:
		return nil, utils.MakeError(ErrUnknownFormat, "%d", uint(format))
	}

	return wire.decode()
}

func nullValue(path string) error {
	return utils.MakeError(ErrMalformedReport, "null value at '%v', absent fields must be omitted", path)
}

// Absent fields are omitted from reports, never written as null
func rejectJSONNulls(data []byte) error {
	var document any

	if err := json.Unmarshal(data, &document); err != nil {
		return utils.MakeError(ErrMalformedReport, "%w", err)
	}

	return rejectNulls(document, "$")
}

func rejectNulls(value any, path string) error {
	switch value := value.(type) {
	case nil:
		return nullValue(path)
	case map[string]any:
		for _, key := range utils.SortedKeys(value) {
			if err := rejectNulls(value[key], path+"."+key); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range value {
			if err := rejectNulls(item, fmt.Sprintf("%v[%v]", path, i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func rejectYAMLNulls(data []byte) error {
	var document yaml.Node

	if err := yaml.Unmarshal(data, &document); err != nil {
		return utils.MakeError(ErrMalformedReport, "%w", err)
	}

	return rejectNullNodes(&document, "$")
}

func rejectNullNodes(node *yaml.Node, path string) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := rejectNullNodes(child, path); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if err := rejectNullNodes(node.Content[i+1], path+"."+node.Content[i].Value); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			if err := rejectNullNodes(item, fmt.Sprintf("%v[%v]", path, i)); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nullValue(path)
		}
	}

	return nil
}

// Writes a report into a file, in the format matching its extension
func WriteFile(path string, r *Report) error {
	return WriteFileFormat(path, r, FormatFromPath(path))
}

// Writes a report into a file in the given format. Errors flushing the file on close are reported
func WriteFileFormat(path string, r *Report, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(file, r, format); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Reads a report file, in the format matching its extension
func ReadFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, FormatFromPath(path))
}

// Returns the persisted rendering of a single test case, used by the interactive viewer and logs
func MarshalTestCase(testCase TestCase, format Format) (string, error) {
	wire := toWireTestCase(testCase)

	switch format {
	case Format_JSON:
		bytes, err := json.MarshalIndent(wire, "", "  ")
		return string(bytes), err
	case Format_YAML:
		bytes, err := yaml.Marshal(wire)
		return string(bytes), err
	}

	return "", utils.MakeError(ErrUnknownFormat, "%d", uint(format))
}
