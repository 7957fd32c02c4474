package evalcmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
	"github.com/lehigh-university-libraries/langbench/internal/eval/results"
	"github.com/lehigh-university-libraries/langbench/internal/eval/tasks"
)

func executeReport(out io.Writer, summaryPath, format string) error {
	summary, err := results.LoadSummary(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	switch format {
	case "text":
		return printTextReport(out, summary)
	case "json":
		return printJSONReport(out, summary)
	case "csv":
		return printCSVReport(out, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// reportedMetrics returns the metrics of a task as the flat report shows
// them: sentinel values for a task without a submission.
func reportedMetrics(ts results.TaskSummary) []metrics.Metric {
	if ts.Status != results.StatusNotAttempted {
		return ts.Metrics
	}
	task, ok := tasks.ByNumber(ts.Number)
	if !ok {
		return nil
	}
	ms := make([]metrics.Metric, len(task.Keys))
	for i, key := range task.Keys {
		ms[i] = metrics.Metric{Name: key, Value: results.NotAttempted}
	}
	return ms
}

func printTextReport(out io.Writer, s *results.Summary) error {
	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out, "Benchmark Score Report")
	fmt.Fprintln(out, "========================================")
	fmt.Fprintf(out, "Run:        %s\n", s.Config.RunID)
	fmt.Fprintf(out, "Timestamp:  %s\n", s.Config.Timestamp)
	fmt.Fprintf(out, "Submission: %s\n", s.Config.Submission)
	fmt.Fprintf(out, "Reference:  %s\n", s.Config.Reference)
	if s.Config.PartialCredit {
		fmt.Fprintln(out, "Partial credit: on")
	}

	for _, ts := range s.Tasks {
		fmt.Fprintf(out, "\n[%d] %s (%s)\n", ts.Number, ts.Name, strings.ReplaceAll(ts.Status, "_", " "))

		for _, m := range reportedMetrics(ts) {
			fmt.Fprintf(out, "  %s: %s\n", m.Name, results.FormatValue(m.Value))
		}

		if c := ts.Counts; c != nil {
			fmt.Fprintf(out, "  Records: %d (%d surprise)\n", c.Total, c.Surprise)
			fmt.Fprintf(out, "  Correct: language %d, group %d, family %d\n",
				c.Language.Correct(), c.Group.Correct(), c.Family.Correct())
		}

		for _, e := range ts.Errors {
			fmt.Fprintf(out, "  ❌ %s\n", e)
		}
	}

	return nil
}

func printJSONReport(out io.Writer, s *results.Summary) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

func printCSVReport(out io.Writer, s *results.Summary) error {
	writer := csv.NewWriter(out)

	header := []string{"Task", "Name", "Status", "Metric", "Value", "Errors"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, ts := range s.Tasks {
		number := strconv.Itoa(ts.Number)
		errs := strings.Join(ts.Errors, "; ")

		ms := reportedMetrics(ts)
		if len(ms) == 0 {
			if err := writer.Write([]string{number, ts.Name, ts.Status, "", "", errs}); err != nil {
				return err
			}
			continue
		}

		for _, m := range ms {
			row := []string{number, ts.Name, ts.Status, m.Name, results.FormatValue(m.Value), errs}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
