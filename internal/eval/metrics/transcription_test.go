package metrics

import (
	"math"
	"testing"

	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

func TestNormalizedDistance(t *testing.T) {
	tests := []struct {
		name string
		sub  string
		ref  string
		want float64
		ok   bool
	}{
		{"identical", "hello", "hello", 0, true},
		{"identical after trim", "  hello\t", "hello ", 0, true},
		{"one deletion", "helo", "hello", 0.25, true},
		{"normalized by submission", "h", "hello", 4, true},
		{"empty", "", "hello", 0, false},
		{"whitespace only", "   ", "hello", 0, false},
		{"multi-byte", "ʃɪp", "ʃip", 1.0 / 3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizedDistance(tt.sub, tt.ref)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScoreTranscriptionIdentical(t *testing.T) {
	ref := []dataset.Record{text("a", "hello"), text("b", "world"), text("c", "ʃɪp")}
	sub := []dataset.Record{text("a", "hello "), text("b", " world"), text("c", "ʃɪp")}

	result := ScoreTranscription("ipa", sub, ref)
	if result.Failed() {
		t.Fatalf("Unexpected errors: %v", result.Errors)
	}

	v, ok := result.value("ipa cer")
	if !ok || v != 0 {
		t.Errorf("Expected ipa cer 0, got (%v, %v)", v, ok)
	}
}

func TestScoreTranscriptionAveragesOverReference(t *testing.T) {
	ref := []dataset.Record{text("a", "hello"), text("b", "world")}
	sub := []dataset.Record{text("a", "helo"), text("b", "world")}

	result := ScoreTranscription("ortho", sub, ref)

	v, _ := result.value(CERKey("ortho"))
	if math.Abs(v-0.125) > 1e-12 {
		t.Errorf("Expected ortho cer 0.125, got %v", v)
	}
}

func TestScoreTranscriptionEmptySubmission(t *testing.T) {
	ref := []dataset.Record{text("a", "hello"), text("b", "world")}
	sub := []dataset.Record{text("a", "helo"), text("b", "  ")}

	result := ScoreTranscription("ipa", sub, ref)

	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", result.Errors)
	}
	if !evalerr.Is(result.Errors[0], evalerr.EmptyField) {
		t.Errorf("Expected EMPTY_FIELD, got %v", result.Errors[0])
	}
	if result.Errors[0].Error() != "Line 1: empty transcription for utterance b" {
		t.Errorf("Unexpected message: %s", result.Errors[0].Error())
	}

	// the empty position is skipped but still in the denominator
	v, _ := result.value("ipa cer")
	if math.Abs(v-0.125) > 1e-12 {
		t.Errorf("Expected ipa cer 0.125, got %v", v)
	}
}

func TestScoreTranscriptionSkipsMismatchedIDs(t *testing.T) {
	ref := []dataset.Record{text("a", "hello"), text("b", "world")}
	sub := []dataset.Record{text("a", "hello"), text("z", "")}

	result := ScoreTranscription("ipa", sub, ref)

	if len(result.Errors) != 1 || !evalerr.Is(result.Errors[0], evalerr.IDMismatch) {
		t.Fatalf("Expected only ID_MISMATCH, got %v", result.Errors)
	}
}

func TestScoreTranscriptionLengthMismatch(t *testing.T) {
	result := ScoreTranscription("ipa", []dataset.Record{text("a", "x")}, nil)

	if !result.Fatal() || len(result.Metrics) != 0 {
		t.Errorf("Expected fatal result without metrics, got %+v", result)
	}
}

func TestScoreTranscriptionEmptyFiles(t *testing.T) {
	result := ScoreTranscription("ipa", nil, nil)

	v, ok := result.value("ipa cer")
	if !ok || v != 0 {
		t.Errorf("Expected ipa cer 0 for empty input, got (%v, %v)", v, ok)
	}
}
