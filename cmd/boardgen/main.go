package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "boardgen",
		Short: "Balanced 19-hex board generator",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(scoreCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a board from board.yaml, or from the standard set when no path is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			flags := cmd.Flags()
			opts.seedSet = flags.Changed("seed")
			opts.workersSet = flags.Changed("workers")
			opts.numbersSet = flags.Changed("number-iterations")
			opts.resourcesSet = flags.Changed("resource-iterations")
			return runGenerate(cmd.Context(), projectPath, opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "parallel restarts (0 uses every CPU)")
	f.IntVar(&opts.numberIterations, "number-iterations", 0, "restarts for number placement")
	f.IntVar(&opts.resourceIterations, "resource-iterations", 0, "restarts for resource placement")
	f.BoolVar(&opts.json, "json", false, "print the board as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a board config without generating",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [board-json]",
		Short: "Score a board previously written by generate --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScore(args[0])
		},
	}
}
