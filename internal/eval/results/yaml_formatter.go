package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
)

// Task statuses of a run summary.
const (
	StatusScored       = "scored"
	StatusFailed       = "failed"
	StatusNotAttempted = "not_attempted"
)

// RunConfig records what a run scored
type RunConfig struct {
	RunID         string `yaml:"runid" json:"run_id"`
	Submission    string `yaml:"submission" json:"submission"`
	Reference     string `yaml:"reference" json:"reference"`
	PartialCredit bool   `yaml:"partialcredit" json:"partial_credit"`
	Timestamp     string `yaml:"timestamp" json:"timestamp"`
}

// TaskSummary is the outcome of one task
type TaskSummary struct {
	Number  int                     `yaml:"number" json:"number"`
	Name    string                  `yaml:"name" json:"name"`
	Status  string                  `yaml:"status" json:"status"`
	Metrics []metrics.Metric        `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Counts  *metrics.LanguageCounts `yaml:"counts,omitempty" json:"counts,omitempty"`
	Errors  []string                `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Summary is the machine-readable counterpart of the flat report
type Summary struct {
	Config RunConfig     `yaml:"config" json:"config"`
	Tasks  []TaskSummary `yaml:"tasks" json:"tasks"`
}

// NewSummary starts the summary of a run.
func NewSummary(submission, reference string, partialCredit bool) *Summary {
	return &Summary{
		Config: RunConfig{
			RunID:         uuid.NewString(),
			Submission:    submission,
			Reference:     reference,
			PartialCredit: partialCredit,
			Timestamp:     time.Now().Format("2006-01-02_15-04-05"),
		},
	}
}

// AddResult records a scored (or failed) task. Metrics are kept only when
// the flat report would show them.
func (s *Summary) AddResult(number int, r *metrics.Result) {
	ts := TaskSummary{
		Number: number,
		Name:   r.Task,
		Status: StatusScored,
		Counts: r.Counts,
	}
	if r.MetricsReported(s.Config.PartialCredit) {
		ts.Metrics = r.Metrics
	}
	if r.Failed() {
		ts.Status = StatusFailed
		for _, err := range r.Errors {
			ts.Errors = append(ts.Errors, err.Error())
		}
	}
	s.Tasks = append(s.Tasks, ts)
}

// AddNotAttempted records a task without a submission file.
func (s *Summary) AddNotAttempted(number int, name string) {
	s.Tasks = append(s.Tasks, TaskSummary{
		Number: number,
		Name:   name,
		Status: StatusNotAttempted,
	})
}

// SaveSummary writes the summary as YAML to path
func SaveSummary(path string, s *Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}

// LoadSummary reads a summary written by SaveSummary
func LoadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}
	return &s, nil
}
