// Package config loads the optional YAML run configuration. Values set here
// are defaults that explicit command-line flags override.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML document. Pointer fields distinguish "unset" from
// the zero value.
type File struct {
	Index         string   `yaml:"index"`
	Output        string   `yaml:"output"`
	Venn          string   `yaml:"venn"`
	VennFormat    string   `yaml:"venn_format"`
	Threads       *int     `yaml:"threads"`
	Duplicates    string   `yaml:"duplicates"`
	HeaderTokens  []string `yaml:"header_tokens"`
	Strict        *bool    `yaml:"strict"`
	RelativePaths *bool    `yaml:"relative_paths"`
	Quiet         *bool    `yaml:"quiet"`
}

// Load reads and decodes path. Unknown keys are an error.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Decode reads one YAML document. An empty document yields the zero File.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	if f.Threads != nil && *f.Threads < 0 {
		return File{}, errors.New("threads must be ≥ 0")
	}
	return f, nil
}
