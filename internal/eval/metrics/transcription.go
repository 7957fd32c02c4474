package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

// CERKey returns the metric name of a transcription task, e.g. "ipa cer".
func CERKey(label string) string {
	return label + " cer"
}

// NormalizedDistance is the edit distance between the trimmed texts divided by
// the length of the trimmed submission. ok is false for an empty submission.
func NormalizedDistance(submission, reference string) (distance float64, ok bool) {
	sub := strings.TrimSpace(submission)
	ref := strings.TrimSpace(reference)

	n := utf8.RuneCountInString(sub)
	if n == 0 {
		return 0, false
	}

	return float64(Levenshtein(sub, ref)) / float64(n), true
}

// ScoreTranscription computes the character error rate of a transcription
// task. label names the task in the metric key. The summed per-utterance
// rates are divided by the reference record count, so skipped positions
// still count in the denominator.
func ScoreTranscription(label string, submission, reference []dataset.Record) *Result {
	a, r := align(label+" transcription", submission, reference)
	if a == nil {
		return r
	}

	var sum float64
	for _, p := range a.Pairs {
		if !p.Matched {
			continue
		}

		d, ok := NormalizedDistance(p.Submission.Text, p.Reference.Text)
		if !ok {
			r.addError(evalerr.Empty(p.Line, "empty transcription", p.Submission.ID))
			continue
		}
		sum += d
	}

	if len(reference) == 0 {
		r.add(CERKey(label), 0)
	} else {
		r.add(CERKey(label), sum/float64(len(reference)))
	}

	return r
}
