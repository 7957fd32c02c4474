package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
)

func readReport(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	return string(data)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.25, "0.25"},
		{1, "1"},
		{0, "0"},
		{2.0 / 3.0, "0.6666666666666666"},
		{0.00001, "0.00001"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestWriterAppendsBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("stale content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(path, false)
	if err := w.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	scored := &metrics.Result{Metrics: []metrics.Metric{{Name: "ipa cer", Value: 0.125}}}
	if err := w.WriteResult(scored); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if err := w.WriteNotAttempted([]string{"ortho cer"}); err != nil {
		t.Fatalf("WriteNotAttempted failed: %v", err)
	}

	want := "ipa cer: 0.125\northo cer: -1\n"
	if got := readReport(t, path); got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestWriterErrorsSupersedeMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	w := NewWriter(path, false)

	r := &metrics.Result{
		Metrics: []metrics.Metric{{Name: "speakers accuracy", Value: 0.5}},
		Errors: []error{
			evalerr.IDs(1, "x", "b"),
			evalerr.Empty(2, "missing number of speakers", "c"),
		},
	}
	if err := w.WriteResult(r); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	want := "ERRORS\n" +
		"Line 1: utterance ids do not match (x and b)\n" +
		"Line 2: missing number of speakers for utterance c\n"
	if got := readReport(t, path); got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestWriterPartialCredit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	w := NewWriter(path, true)

	soft := &metrics.Result{
		Metrics: []metrics.Metric{{Name: "speakers accuracy", Value: 0.5}},
		Errors:  []error{evalerr.Empty(2, "missing number of speakers", "c")},
	}
	fatal := metrics.Failure("ipa transcription", evalerr.Lengths(9, 10))

	if err := w.WriteResult(soft); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if err := w.WriteResult(fatal); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	want := "speakers accuracy: 0.5\n" +
		"ERRORS\n" +
		"Line 2: missing number of speakers for utterance c\n" +
		"ERRORS\n" +
		"The test data length (9) does not match the golden data length (10)\n"
	if got := readReport(t, path); got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	w := NewWriter(path, false)

	if err := w.WriteError(evalerr.Malformed("a.tsv", []int{3})); err != nil {
		t.Fatalf("WriteError failed: %v", err)
	}

	want := "ERRORS\nErrors when reading a.tsv : wrong number of parts in line(s): 3\n"
	if got := readReport(t, path); got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestWriterUnwritablePath(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing", "scores.txt"), false)

	if err := w.Reset(); err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
	if err := w.WriteNotAttempted([]string{"x"}); err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}
