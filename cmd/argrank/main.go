// Command argrank runs the argumentation-ranking correlation study:
// classify a benchmark corpus, run the semantics over it, and
// aggregate the per-framework correlation matrices into a report.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcelljawhari/ArgRankLab/bench"
)

// exit codes: 0 success, 1 input error, 2 internal error
const (
	exitOK       = 0
	exitInput    = 1
	exitInternal = 2
)

func main() {
	root := &cobra.Command{
		Use:           "argrank",
		Short:         "Ranking-based argumentation semantics benchmark suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() { initLogging(verbose) })

	root.AddCommand(classifyCmd(), runCmd(), reportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "argrank:", err)
		if errors.Is(err, bench.ErrInput) {
			os.Exit(exitInput)
		}
		os.Exit(exitInternal)
	}
	os.Exit(exitOK)
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}

			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the effective configuration: YAML file when
// given, defaults otherwise, benchmark/results overrides applied last.
func loadConfig(configPath string, benchmarkDirs []string, resultsDir string) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if configPath != "" {
		loaded, err := bench.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if len(benchmarkDirs) > 0 {
		cfg.BenchmarkDirs = benchmarkDirs
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}

	return cfg, nil
}
