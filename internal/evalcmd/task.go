package evalcmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
	"github.com/lehigh-university-libraries/langbench/internal/eval/results"
	"github.com/lehigh-university-libraries/langbench/internal/eval/tasks"
)

func executeTask(number int, testPath, goldenPath string) error {
	task, ok := tasks.ByNumber(number)
	if !ok {
		return fmt.Errorf("unknown task number %d. %s", number, taskUsage)
	}

	// The single-task format carries a free-form comment column for task 1
	layout := dataset.MultiTaskLayout
	if task.Number == 1 {
		layout = dataset.LanguageDetectionLayout
	}

	outPath := testPath + "_out.txt"
	slog.Info("Scoring task", "task", task.Number, "name", task.Name, "output", outPath)

	w := results.NewWriter(outPath, false)
	if err := w.Reset(); err != nil {
		return err
	}

	result := task.Run(testPath, goldenPath, layout)
	if err := w.WriteResult(result); err != nil {
		return err
	}

	printResult(task, result, false)
	fmt.Printf("Written results to %s\n", w.Path())

	return nil
}
