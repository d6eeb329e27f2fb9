// Package report describes a generation run in a YAML document that build
// tooling can consume instead of re-deriving namespaces from the options.
package report

import (
	"fmt"
	"sort"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
	"github.com/cianwilson/TerraFERMA/internal/namespace"
	"gopkg.in/yaml.v3"
)

// Artifact is one generated file and what the writer did with it.
type Artifact struct {
	File    string `yaml:"file"`
	Outcome string `yaml:"outcome"`
}

// Report is the document written next to the generated sources.
type Report struct {
	Namespaces   []string   `yaml:"namespaces"`
	CppLibraries []string   `yaml:"cpp_libraries"`
	Artifacts    []Artifact `yaml:"artifacts"`
}

// New starts a report for b with no artifacts recorded yet.
func New(b *bucket.Bucket) *Report {
	return &Report{
		Namespaces:   namespace.List(b),
		CppLibraries: b.ListCppLibraries(),
		Artifacts:    []Artifact{},
	}
}

// Record adds an artifact outcome.
func (r *Report) Record(file, outcome string) {
	r.Artifacts = append(r.Artifacts, Artifact{File: file, Outcome: outcome})
}

// Marshal renders the report. Artifacts are sorted by file name because jobs
// finish in no particular order.
func (r *Report) Marshal() ([]byte, error) {
	sorted := *r
	sorted.Artifacts = append([]Artifact(nil), r.Artifacts...)
	sort.Slice(sorted.Artifacts, func(i, j int) bool {
		return sorted.Artifacts[i].File < sorted.Artifacts[j].File
	})

	out, err := yaml.Marshal(&sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}

// Unmarshal parses a report previously produced by Marshal.
func Unmarshal(data []byte) (*Report, error) {
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &r, nil
}
