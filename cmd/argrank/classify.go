package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/bench"
)

func classifyCmd() *cobra.Command {
	var (
		configPath    string
		benchmarkDirs []string
		resultsDir    string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Scan the benchmark tree and emit structural metadata per framework",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, benchmarkDirs, resultsDir)
			if err != nil {
				return err
			}

			paths, warnings, err := bench.FindFrameworks(cfg.BenchmarkDirs)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				slog.Warn(w)
			}
			slog.Info("classifying frameworks", "count", len(paths))

			rows := make([]bench.Properties, 0, len(paths))
			for _, path := range paths {
				framework, parseWarnings, parseErr := af.ParseFile(path)
				for _, w := range parseWarnings {
					slog.Warn(w, "path", path)
				}
				if parseErr != nil {
					slog.Error("skipping unparseable framework", "path", path, "err", parseErr)

					continue
				}
				props := bench.Classify(path, framework)
				props.Status = bench.StatusOf(cfg.ResultsDir, props.FrameworkName)
				rows = append(rows, props)
			}

			if err = bench.WriteClassificationCSV(output, rows); err != nil {
				return err
			}
			slog.Info("classification written", "path", output, "rows", len(rows))

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringSliceVar(&benchmarkDirs, "benchmarks", nil, "benchmark roots (overrides config)")
	cmd.Flags().StringVar(&resultsDir, "results", "", "results directory (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "data/framework_properties.csv", "output CSV path")

	return cmd
}
