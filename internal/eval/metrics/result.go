package metrics

import (
	"errors"

	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
)

// Metric is one named ratio of a task result.
type Metric struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// Result holds the metrics of one task in report order, plus every
// diagnostic collected while scoring it.
type Result struct {
	Task    string
	Metrics []Metric
	Errors  []error
	// Counts is set by the language detection scorer once both files align.
	Counts *LanguageCounts
}

// Failure creates a result carrying a single error and no metrics.
func Failure(task string, err error) *Result {
	return &Result{Task: task, Errors: []error{err}}
}

func (r *Result) add(name string, value float64) {
	r.Metrics = append(r.Metrics, Metric{Name: name, Value: value})
}

func (r *Result) addError(err error) {
	r.Errors = append(r.Errors, err)
}

// value returns the metric with the given name.
func (r *Result) value(name string) (float64, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

// Failed reports whether any diagnostic was collected.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// Fatal reports whether an error prevented scoring altogether.
// Errors that are not scoring diagnostics (I/O failures) count as fatal.
func (r *Result) Fatal() bool {
	for _, err := range r.Errors {
		var e *evalerr.Error
		if !errors.As(err, &e) || e.Fatal() {
			return true
		}
	}
	return false
}

// MetricsReported reports whether the metrics of r belong in the report.
// Any diagnostic hides them unless partial credit is given, and a fatal
// error hides them regardless.
func (r *Result) MetricsReported(partialCredit bool) bool {
	if !r.Failed() {
		return true
	}
	return partialCredit && !r.Fatal()
}

// ratio divides two counts, returning 0 for an empty denominator.
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
