package evalcmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/langbench/internal/config"
	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/metrics"
	"github.com/lehigh-university-libraries/langbench/internal/eval/results"
	"github.com/lehigh-university-libraries/langbench/internal/eval/tasks"
)

// ErrNoSubmission is returned when no task file can be found.
var ErrNoSubmission = errors.New("no task submission files found")

func executeSubmission(cfg *config.Config) error {
	slog.Info("Starting submission scoring", "submission", cfg.Submission, "reference", cfg.Reference, "output", cfg.Output)

	submissionDir, err := resolveSubmissionDir(cfg.Submission)
	if err != nil {
		return err
	}
	slog.Debug("Resolved submission directory", "path", submissionDir)

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := results.NewWriter(cfg.ReportPath(), cfg.PartialCredit)
	if err := w.Reset(); err != nil {
		return err
	}

	summary := results.NewSummary(submissionDir, cfg.Reference, cfg.PartialCredit)

	for _, task := range tasks.All {
		submissionPath := filepath.Join(submissionDir, task.SubmissionFile())
		if !fileExists(submissionPath) {
			slog.Info("No submission for task", "task", task.Number, "name", task.Name)
			if err := w.WriteNotAttempted(task.Keys); err != nil {
				return err
			}
			summary.AddNotAttempted(task.Number, task.Name)
			continue
		}

		referencePath := filepath.Join(cfg.Reference, task.ReferenceFile)
		if !fileExists(referencePath) {
			missing := fmt.Errorf("reference file %s not found", referencePath)
			slog.Error("Missing reference file", "task", task.Number, "path", referencePath)
			if err := w.WriteError(missing); err != nil {
				return err
			}
			result := metrics.Failure(task.Name, missing)
			summary.AddResult(task.Number, result)
			printResult(task, result, cfg.PartialCredit)
			continue
		}

		result := task.Run(submissionPath, referencePath, dataset.MultiTaskLayout)

		if err := w.WriteResult(result); err != nil {
			return err
		}
		summary.AddResult(task.Number, result)
		printResult(task, result, cfg.PartialCredit)
	}

	if cfg.Summary {
		if err := results.SaveSummary(cfg.SummaryPath(), summary); err != nil {
			return err
		}
		fmt.Printf("Summary saved to: %s\n", cfg.SummaryPath())
	}

	fmt.Printf("Written results to %s\n", w.Path())

	return nil
}

// resolveSubmissionDir returns the directory holding the task files: dir
// itself, or its only subdirectory that has any of them.
func resolveSubmissionDir(dir string) (string, error) {
	if hasTaskFiles(dir) {
		return dir, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read submission directory: %w", err)
	}

	var candidates []string
	for _, e := range entries {
		// Skip archive metadata such as __MACOSX and dot directories
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "__") {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if hasTaskFiles(sub) {
			candidates = append(candidates, sub)
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w in %s (expected input_task1.tsv to input_task%d.tsv)", ErrNoSubmission, dir, len(tasks.All))
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("ambiguous submission: task files found in %s", strings.Join(candidates, ", "))
	}
}

func hasTaskFiles(dir string) bool {
	for _, task := range tasks.All {
		if fileExists(filepath.Join(dir, task.SubmissionFile())) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// printResult shows on the console what the report file holds for a task.
func printResult(task tasks.Task, result *metrics.Result, partialCredit bool) {
	fmt.Printf("\nTask %d: %s\n", task.Number, task.Name)
	if result.Failed() {
		fmt.Printf("  ❌ %d error(s)\n", len(result.Errors))
		for _, err := range result.Errors[:min(len(result.Errors), 5)] {
			fmt.Printf("    %s\n", err)
		}
	}
	if !result.MetricsReported(partialCredit) {
		return
	}
	for _, m := range result.Metrics {
		fmt.Printf("  %s: %s\n", m.Name, results.FormatValue(m.Value))
	}
}
