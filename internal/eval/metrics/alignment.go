package metrics

import (
	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

// Pair is the submission and reference record at one position.
type Pair struct {
	Line       int
	Submission dataset.Record
	Reference  dataset.Record
	// Matched is false when the identifiers differ; such pairs are not scored.
	Matched bool
}

// Alignment is a position-by-position pairing of two equally long sequences.
type Alignment struct {
	Pairs  []Pair
	Issues []error
}

// Len returns the number of positions, matched or not.
func (a *Alignment) Len() int {
	return len(a.Pairs)
}

// Align pairs submission and reference records by position. Sequences of
// different length fail with a LengthMismatch error; identifier mismatches
// are recorded as issues and do not stop the pairing.
func Align(submission, reference []dataset.Record) (*Alignment, error) {
	if len(submission) != len(reference) {
		return nil, evalerr.Lengths(len(submission), len(reference))
	}

	a := &Alignment{Pairs: make([]Pair, len(submission))}
	for i := range submission {
		sub, ref := submission[i], reference[i]
		matched := sub.ID == ref.ID
		if !matched {
			a.Issues = append(a.Issues, evalerr.IDs(i, sub.ID, ref.ID))
		}
		a.Pairs[i] = Pair{Line: i, Submission: sub, Reference: ref, Matched: matched}
	}

	return a, nil
}

// align runs Align and seeds a result with its diagnostics. It returns a nil
// alignment when scoring cannot proceed.
func align(task string, submission, reference []dataset.Record) (*Alignment, *Result) {
	a, err := Align(submission, reference)
	if err != nil {
		return nil, Failure(task, err)
	}
	r := &Result{Task: task}
	r.Errors = append(r.Errors, a.Issues...)
	return a, r
}
