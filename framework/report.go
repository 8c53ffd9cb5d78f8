package framework

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable form of a run, as written by WriteReport.
type Report struct {
	RunID    string    `yaml:"runId"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Passed   bool      `yaml:"passed"`
	Summary  string    `yaml:"summary"`
	Failures []string  `yaml:"failures,omitempty"`
	Notes    []string  `yaml:"notes,omitempty"`
}

// NewReport builds a Report from the current contents of the Collector.
func NewReport(c *Collector, started time.Time) Report {
	summary := c.Summary()
	r := Report{
		RunID:    uuid.NewString(),
		Started:  started,
		Finished: time.Now(),
		Passed:   summary.OK(),
		Summary:  summary.String(),
	}
	for _, f := range c.Failures() {
		r.Failures = append(r.Failures, f.Message)
	}
	for _, n := range c.Notes() {
		r.Notes = append(r.Notes, n.Message)
	}
	return r
}

// WriteReport writes the report as YAML to the specified file.
func WriteReport(path string, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing report file %s: %w", path, err)
	}
	return nil
}
