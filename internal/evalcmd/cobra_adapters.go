package evalcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/langbench/internal/config"
)

const taskUsage = "usage: langbench eval task <task N> <test path> <golden file path>"

// NewTaskCmd creates the single-task evaluator command
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task <task N> <test path> <golden file path>",
		Short: "Score one task's submission file against a golden file",
		Long: `Score a single submission file against its golden file.

Task numbers:
  1  language detection (language / group / family accuracy)
  2  IPA transcription (character error rate)
  3  orthographic transcription (character error rate)
  4  speaker count (accuracy)

Results are written next to the submission as <test path>_out.txt.`,
		Example: `  # Score a language detection submission
  langbench eval task 1 ./input_task1.tsv ./reference/test.tsv

  # Score an orthographic transcription submission
  langbench eval task 3 ./input_task3.tsv ./reference/ortho_test.tsv`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("task number must be numeric, got %q. %s", args[0], taskUsage)
			}

			testPath, goldenPath := args[1], args[2]
			if _, err := os.Stat(testPath); os.IsNotExist(err) {
				return fmt.Errorf("%s does not exist. %s", testPath, taskUsage)
			}
			if _, err := os.Stat(goldenPath); os.IsNotExist(err) {
				return fmt.Errorf("%s does not exist. %s", goldenPath, taskUsage)
			}

			return executeTask(number, testPath, goldenPath)
		},
	}

	return cmd
}

// NewSubmissionCmd creates the four-task evaluator command
func NewSubmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submission",
		Short: "Score every task of a benchmark submission",
		Long: `Score a full benchmark submission.

The submission directory (or its only subdirectory, e.g. an unzipped archive)
holds input_task1.tsv to input_task4.tsv. Each task is scored against the
reference directory's test.tsv, ortho_test.tsv or speakers_test.tsv. Tasks
without a submission file are reported as -1.

Settings can also come from LANGBENCH_* environment variables or a YAML file
given with --config.`,
		Example: `  # Score a submission
  langbench eval submission --submission ./input/res --reference ./input/ref --output ./output

  # Keep metrics of tasks with record-level errors and write a YAML summary
  langbench eval submission --submission ./res --reference ./ref --partial-credit --summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return executeSubmission(cfg)
		},
	}

	cmd.Flags().String("submission", "", "Directory holding input_task{1..4}.tsv")
	cmd.Flags().String("reference", "", "Directory holding the golden files")
	cmd.Flags().String("output", ".", "Directory for the score report")
	cmd.Flags().String("report-name", "scores.txt", "File name of the score report")
	cmd.Flags().Bool("summary", false, "Also write a YAML run summary")
	cmd.Flags().String("summary-name", "scores.yaml", "File name of the YAML run summary")
	cmd.Flags().Bool("partial-credit", false, "Report metrics of tasks with record-level errors alongside the errors")
	cmd.Flags().String("config", "", "Path to a YAML config file")

	return cmd
}

// NewConvertCmd creates the convert command
func NewConvertCmd() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "convert <input.tsv> <output.parquet>",
		Short: "Convert a TSV record file to Parquet",
		Long: `Convert a benchmark TSV file to Parquet.

The file is validated exactly as it would be for scoring. The Parquet file can
be scored in place of the TSV file.`,
		Example: `  # Convert a speaker count reference
  langbench eval convert ./ref/speakers_test.tsv ./ref/speakers_test.parquet

  # Convert a single-task file with a comment column
  langbench eval convert ./golden.tsv ./golden.parquet --layout comment`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeConvert(args[0], args[1], layout)
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "multi", "Optional column layout (multi or comment)")

	return cmd
}

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <scores.yaml>",
		Short: "Print a run summary",
		Long: `Print the YAML run summary written by "eval submission --summary".

Formats:
  text  per-task metrics, language detection counts and errors
  json  the summary as JSON
  csv   one row per reported metric`,
		Example: `  # Show a run summary
  langbench eval report ./output/scores.yaml

  # Export it for a spreadsheet
  langbench eval report ./output/scores.yaml --format csv > scores.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")

	return cmd
}
