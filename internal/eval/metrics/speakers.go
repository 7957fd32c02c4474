package metrics

import (
	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

// SpeakersAccuracy is the metric name of the speaker count task.
const SpeakersAccuracy = "speakers accuracy"

// ScoreSpeakers computes exact-match accuracy of the num_speakers field.
// Values are compared as strings. A submission record without the field is
// reported and not counted; a reference record without it matches nothing.
func ScoreSpeakers(submission, reference []dataset.Record) *Result {
	a, r := align("speaker count", submission, reference)
	if a == nil {
		return r
	}

	correct := 0
	for _, p := range a.Pairs {
		if !p.Matched {
			continue
		}

		got, ok := p.Submission.Field(dataset.FieldNumSpeakers)
		if !ok {
			r.addError(evalerr.Empty(p.Line, "missing number of speakers", p.Submission.ID))
			continue
		}

		want, ok := p.Reference.Field(dataset.FieldNumSpeakers)
		if ok && got == want {
			correct++
		}
	}

	r.add(SpeakersAccuracy, ratio(correct, len(reference)))

	return r
}
