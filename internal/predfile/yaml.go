package predfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout.
type File struct {
	Predicates []Definition `yaml:"predicates"`
}

// LoadYAML reads a YAML definition file. Unknown keys are rejected so that
// typos such as "feild" surface as errors.
func LoadYAML(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("failed to read definition file: %v", err)}
	}
	return ParseYAML(data)
}

// ParseYAML decodes YAML definition content.
func ParseYAML(data []byte) ([]Definition, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	return file.Predicates, nil
}
