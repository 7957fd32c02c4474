package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/langbench/internal/config"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "langbench",
		Short: "Scoring tool for the spoken/written language benchmark",
		Long: `Langbench scores benchmark submissions against golden files.

It reports hierarchical language identification accuracy, character error rates
for IPA and orthographic transcription, and speaker count accuracy.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if !cmd.Flags().Changed("verbose") {
				if v, err := strconv.ParseBool(os.Getenv(config.EnvPrefix + "_VERBOSE")); err == nil {
					verbose = v
				}
			}
			slog.SetDefault(config.NewLogger(os.Stderr, verbose))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newEvalCmd())

	return cmd
}
