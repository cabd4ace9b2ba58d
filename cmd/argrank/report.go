package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcelljawhari/ArgRankLab/bench"
)

func reportCmd() *cobra.Command {
	var (
		configPath     string
		resultsDir     string
		classification string
		stratum        string
		chartPath      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate per-framework correlation matrices into summary tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, nil, resultsDir)
			if err != nil {
				return err
			}

			valid := false
			for _, s := range bench.Strata {
				if s == stratum {
					valid = true

					break
				}
			}
			if !valid {
				return fmt.Errorf("%w: unknown stratum %q (want one of %v)", bench.ErrInput, stratum, bench.Strata)
			}

			var classes map[string]bench.Properties
			if stratum != "all" {
				if classification == "" {
					return fmt.Errorf("%w: stratum %q needs --classification", bench.ErrInput, stratum)
				}
				classes, err = bench.ReadClassificationCSV(classification)
				if err != nil {
					return err
				}
			}

			for _, metric := range []string{"kendall", "spearman"} {
				agg, aggErr := bench.BuildAggregate(cfg.ResultsDir, metric, stratum, classes)
				if aggErr != nil {
					return aggErr
				}
				if _, aggErr = agg.WriteTo(os.Stdout); aggErr != nil {
					return aggErr
				}
				if chartPath != "" && metric == "kendall" {
					if aggErr = agg.RenderChart(chartPath); aggErr != nil {
						return aggErr
					}
					slog.Info("chart written", "path", chartPath)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&resultsDir, "results", "", "results directory (overrides config)")
	cmd.Flags().StringVar(&classification, "classification", "", "classification CSV (needed for non-all strata)")
	cmd.Flags().StringVar(&stratum, "stratum", "all", "one of all, cyclic, acyclic, sparse, dense")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a bar chart PNG of mean Kendall correlations")

	return cmd
}
