package results

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
)

func TestSummaryRoundTrip(t *testing.T) {
	s := NewSummary("/sub", "/ref", false)
	if s.Config.RunID == "" {
		t.Error("Expected a run id")
	}

	s.AddResult(1, &metrics.Result{
		Task:    "language detection",
		Metrics: []metrics.Metric{{Name: "language total", Value: 0.75}},
		Counts:  &metrics.LanguageCounts{Total: 4, Language: metrics.LevelCounts{Known: 3}},
	})
	s.AddResult(2, metrics.Failure("ipa transcription", evalerr.Lengths(1, 2)))
	s.AddNotAttempted(3, "orthographic transcription")

	path := filepath.Join(t.TempDir(), "out", "scores.yaml")
	if err := SaveSummary(path, s); err != nil {
		t.Fatalf("SaveSummary failed: %v", err)
	}

	loaded, err := LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary failed: %v", err)
	}

	if diff := cmp.Diff(s, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	wantStatus := []string{StatusScored, StatusFailed, StatusNotAttempted}
	for i, task := range loaded.Tasks {
		if task.Status != wantStatus[i] {
			t.Errorf("task %d: expected status %s, got %s", task.Number, wantStatus[i], task.Status)
		}
	}
	if loaded.Tasks[1].Errors[0] != "The test data length (1) does not match the golden data length (2)" {
		t.Errorf("Unexpected error text %q", loaded.Tasks[1].Errors[0])
	}
}

func TestSummaryDropsMetricsOfFailedTasks(t *testing.T) {
	soft := &metrics.Result{
		Task:    "speaker count",
		Metrics: []metrics.Metric{{Name: "speakers accuracy", Value: 0.5}},
		Errors:  []error{evalerr.Empty(1, "missing number of speakers", "b")},
	}

	tests := []struct {
		name          string
		partialCredit bool
		wantMetrics   int
	}{
		{name: "all or nothing", partialCredit: false, wantMetrics: 0},
		{name: "partial credit", partialCredit: true, wantMetrics: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummary("/sub", "/ref", tt.partialCredit)
			s.AddResult(4, soft)

			task := s.Tasks[0]
			if task.Status != StatusFailed {
				t.Errorf("Expected status %s, got %s", StatusFailed, task.Status)
			}
			if len(task.Metrics) != tt.wantMetrics {
				t.Errorf("Expected %d metrics, got %d", tt.wantMetrics, len(task.Metrics))
			}
		})
	}
}

func TestLoadSummaryMissing(t *testing.T) {
	if _, err := LoadSummary("/nonexistent/scores.yaml"); err == nil {
		t.Error("Expected error for missing summary, got nil")
	}
}
