// Package tasks describes the four benchmark tasks: which files they read,
// which scorer they use and which keys they report.
package tasks

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/evalerr"
	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
)

// Scorer scores an aligned submission against its reference.
type Scorer func(submission, reference []dataset.Record) *metrics.Result

// Task is one benchmark task.
type Task struct {
	Number        int
	Name          string
	ReferenceFile string
	Score         Scorer
	// Keys are written with the not-attempted sentinel when no submission exists.
	Keys []string
}

// SubmissionFile is the expected name of the task's submission file.
func (t Task) SubmissionFile() string {
	return fmt.Sprintf("input_task%d.tsv", t.Number)
}

func transcription(label string) Scorer {
	return func(submission, reference []dataset.Record) *metrics.Result {
		return metrics.ScoreTranscription(label, submission, reference)
	}
}

// All lists the tasks in evaluation order.
var All = []Task{
	{
		Number:        1,
		Name:          "language detection",
		ReferenceFile: "test.tsv",
		Score:         metrics.ScoreLanguage,
		Keys:          metrics.LanguageDetectionKeys,
	},
	{
		Number:        2,
		Name:          "ipa transcription",
		ReferenceFile: "test.tsv",
		Score:         transcription("ipa"),
		Keys:          []string{metrics.CERKey("ipa")},
	},
	{
		Number:        3,
		Name:          "orthographic transcription",
		ReferenceFile: "ortho_test.tsv",
		Score:         transcription("ortho"),
		Keys:          []string{metrics.CERKey("ortho")},
	},
	{
		Number:        4,
		Name:          "speaker count",
		ReferenceFile: "speakers_test.tsv",
		Score:         metrics.ScoreSpeakers,
		Keys:          []string{metrics.SpeakersAccuracy},
	},
}

// ByNumber returns the task with the given number.
func ByNumber(n int) (Task, bool) {
	for _, t := range All {
		if t.Number == n {
			return t, true
		}
	}
	return Task{}, false
}

// Run loads both files and scores them. A file that cannot be loaded turns
// into a result carrying only that error.
func (t Task) Run(submissionPath, referencePath string, layout dataset.Layout) *metrics.Result {
	slog.Debug("Running task", "task", t.Number, "name", t.Name, "submission", submissionPath, "reference", referencePath)

	submission, err := dataset.NewLoader(submissionPath, layout).Load()
	if err != nil {
		logLoadError(t, "submission", err)
		return metrics.Failure(t.Name, err)
	}

	reference, err := dataset.NewLoader(referencePath, layout).Load()
	if err != nil {
		logLoadError(t, "reference", err)
		return metrics.Failure(t.Name, err)
	}

	result := t.Score(submission, reference)
	result.Task = t.Name

	slog.Info("Task scored",
		"task", t.Number,
		"records", len(reference),
		"metrics", len(result.Metrics),
		"errors", len(result.Errors))

	return result
}

// logLoadError logs malformed files as warnings and anything else (I/O,
// unsupported formats) as errors.
func logLoadError(t Task, which string, err error) {
	if evalerr.Is(err, evalerr.MalformedInput) {
		slog.Warn("Malformed "+which+" file", "task", t.Number, "error", err)
		return
	}
	slog.Error("Failed to load "+which, "task", t.Number, "error", err)
}
