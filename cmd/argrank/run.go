package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/marcelljawhari/ArgRankLab/bench"
)

func runCmd() *cobra.Command {
	var (
		configPath    string
		benchmarkDirs []string
		resultsDir    string
		timeout       int
		seed          int64
		workers       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every semantics over the corpus and write correlation CSVs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, benchmarkDirs, resultsDir)
			if err != nil {
				return err
			}
			if timeout > 0 {
				cfg.TimeoutSeconds = timeout
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			_, err = bench.Run(cmd.Context(), cfg, slog.Default())

			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringSliceVar(&benchmarkDirs, "benchmarks", nil, "benchmark roots (overrides config)")
	cmd.Flags().StringVar(&resultsDir, "results", "", "results directory (overrides config)")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "per-semantics timeout in seconds (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base sampling seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "sampling pool width (0 = half the cores)")

	return cmd
}
