package results

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
)

// NotAttempted is written for every key of a task without a submission.
const NotAttempted = -1

// ErrorsHeader opens the diagnostics block of a task.
const ErrorsHeader = "ERRORS"

// Writer appends task blocks to a flat "name: value" report file.
type Writer struct {
	path          string
	partialCredit bool
}

// NewWriter creates a report writer. With partialCredit, metrics of a task
// with record-level errors are written ahead of its ERRORS block instead of
// being dropped.
func NewWriter(path string, partialCredit bool) *Writer {
	return &Writer{path: path, partialCredit: partialCredit}
}

// Path returns the report file path.
func (w *Writer) Path() string {
	return w.path
}

// Reset truncates the report. It is called once at the start of a run.
func (w *Writer) Reset() error {
	if err := os.WriteFile(w.path, nil, 0644); err != nil {
		return fmt.Errorf("failed to truncate report: %w", err)
	}
	return nil
}

// WriteResult appends the block of one task.
func (w *Writer) WriteResult(r *metrics.Result) error {
	return w.appendLines(func(b *bufio.Writer) {
		if r.MetricsReported(w.partialCredit) {
			writeMetrics(b, r.Metrics)
		}
		if r.Failed() {
			writeErrors(b, r.Errors)
		}
	})
}

// WriteNotAttempted appends the sentinel lines of a task without a submission.
func (w *Writer) WriteNotAttempted(keys []string) error {
	return w.appendLines(func(b *bufio.Writer) {
		for _, key := range keys {
			fmt.Fprintf(b, "%s: %d\n", key, NotAttempted)
		}
	})
}

// WriteError appends an ERRORS block for a task that could not be run.
func (w *Writer) WriteError(err error) error {
	return w.appendLines(func(b *bufio.Writer) {
		writeErrors(b, []error{err})
	})
}

func (w *Writer) appendLines(fn func(b *bufio.Writer)) error {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer file.Close()

	b := bufio.NewWriter(file)
	fn(b)
	if err := b.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeMetrics(b *bufio.Writer, ms []metrics.Metric) {
	for _, m := range ms {
		fmt.Fprintf(b, "%s: %s\n", m.Name, FormatValue(m.Value))
	}
}

func writeErrors(b *bufio.Writer, errs []error) {
	b.WriteString(ErrorsHeader + "\n")
	for _, err := range errs {
		b.WriteString(err.Error() + "\n")
	}
}

// FormatValue renders a ratio with the shortest representation that
// round-trips, e.g. 0.25, 1 or 0.6666666666666666.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
