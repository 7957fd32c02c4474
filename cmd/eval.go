package cmd

import (
	"github.com/lehigh-university-libraries/langbench/internal/evalcmd"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Benchmark scoring tools",
		Long: `Scoring tools for benchmark submissions.

Supports scoring a single task file against its golden file, scoring a full
four-task submission directory into one report, printing a saved run summary,
and converting record files to Parquet.`,
	}

	// Add eval subcommands
	cmd.AddCommand(evalcmd.NewTaskCmd())
	cmd.AddCommand(evalcmd.NewSubmissionCmd())
	cmd.AddCommand(evalcmd.NewConvertCmd())
	cmd.AddCommand(evalcmd.NewReportCmd())

	return cmd
}
