package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
	"github.com/marcelljawhari/ArgRankLab/runner"
)

// Summary totals one Run invocation.
type Summary struct {
	Processed      int // frameworks with fresh correlation CSVs
	SkippedDone    int // results already present
	SkippedTimeout int // sentinel present, or timed out in this run
	Errored        int // unparseable or too few successful semantics
}

// Run executes the correlation study: every framework under the
// benchmark roots, every applicable semantics under the wall-clock
// bound, one Kendall and one Spearman matrix CSV per framework.
// Timeouts write a sentinel file and the framework is abandoned;
// sentinels and existing results make reruns cheap.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating results dir: %w", err)
	}
	paths, warnings, err := FindFrameworks(cfg.BenchmarkDirs)
	if err != nil {
		return sum, err
	}
	for _, w := range warnings {
		log.Warn(w)
	}
	log.Info("benchmark corpus discovered", "frameworks", len(paths))

	for i, path := range paths {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}

		name := filepath.Base(path)
		base := strings.TrimSuffix(name, ".af")
		kendallPath := filepath.Join(cfg.ResultsDir, base+"_kendall.csv")
		spearmanPath := filepath.Join(cfg.ResultsDir, base+"_spearman.csv")
		sentinelPath := filepath.Join(cfg.ResultsDir, base+".timeout")

		log.Info("checking framework", "index", i+1, "total", len(paths), "name", name)

		if _, statErr := os.Stat(sentinelPath); statErr == nil {
			log.Info("previously timed out, skipping", "name", name)
			sum.SkippedTimeout++

			continue
		}
		if fileExists(kendallPath) && fileExists(spearmanPath) {
			log.Info("result already exists, skipping", "name", name)
			sum.SkippedDone++

			continue
		}

		framework, parseWarnings, parseErr := af.ParseFile(path)
		for _, w := range parseWarnings {
			log.Warn(w, "name", name)
		}
		if parseErr != nil {
			log.Error("could not parse framework, skipping", "name", name, "err", parseErr)
			sum.Errored++

			continue
		}

		semantics := FastSemantics(cfg)
		if strings.Contains(path, "benchmarks_tweety") {
			semantics = AllSemantics(cfg)
		}

		rankings, timedOut := runSemantics(ctx, cfg, log, framework, semantics, name, sentinelPath)
		if timedOut {
			sum.SkippedTimeout++

			continue
		}
		if len(rankings) < 2 {
			log.Info("skipping correlation, not enough successful runs", "name", name)
			sum.Errored++

			continue
		}

		if err = writeCorrelationCSV(kendallPath, rankings, rank.Kendall); err != nil {
			return sum, err
		}
		if err = writeCorrelationCSV(spearmanPath, rankings, rank.Spearman); err != nil {
			return sum, err
		}
		sum.Processed++
	}

	log.Info("run summary",
		"processed", sum.Processed,
		"skipped_done", sum.SkippedDone,
		"skipped_timeout", sum.SkippedTimeout,
		"errored", sum.Errored,
	)

	return sum, nil
}

// runSemantics harnesses each semantics over the framework. The
// returned map holds normalised total orders keyed by semantics name.
func runSemantics(
	ctx context.Context,
	cfg Config,
	log *slog.Logger,
	framework *af.AF,
	semantics []Semantics,
	name, sentinelPath string,
) (map[string][]af.Argument, bool) {
	all := framework.Arguments()
	rankings := make(map[string][]af.Argument, len(semantics))
	for _, sem := range semantics {
		outcome := runner.Run(ctx, framework, sem.Solve, cfg.Timeout())
		switch outcome.Status {
		case runner.Completed:
			log.Info("semantics done", "name", name, "semantics", sem.Name,
				"elapsed", outcome.Elapsed.Round(10*time.Millisecond))
			rankings[sem.Name] = outcome.Ranking.Normalize(all)
		case runner.TimedOut:
			log.Warn("semantics timed out", "name", name, "semantics", sem.Name,
				"elapsed", outcome.Elapsed.Round(time.Second))
			writeSentinel(sentinelPath, sem.Name, log)

			return nil, true
		case runner.Failed:
			log.Error("semantics failed", "name", name, "semantics", sem.Name, "err", outcome.Err)
		}
	}

	return rankings, false
}

// writeSentinel records the timeout so reruns skip the framework.
func writeSentinel(path, semantics string, log *slog.Logger) {
	body := fmt.Sprintf("Timeout occurred on %s with semantics: %s\n",
		time.Now().Format(time.RFC1123), semantics)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		log.Error("could not write timeout sentinel", "path", path, "err", err)
	}
}

// writeCorrelationCSV writes a square matrix CSV of the pairwise
// measure over the rankings, diagonal 1.0, semantics sorted by name.
func writeCorrelationCSV(
	path string,
	rankings map[string][]af.Argument,
	measure func(a, b []af.Argument) (float64, error),
) error {
	names := make([]string, 0, len(rankings))
	for n := range rankings {
		names = append(names, n)
	}
	sort.Strings(names)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err = w.Write(append([]string{""}, names...)); err != nil {
		return err
	}
	for _, row := range names {
		record := make([]string, 0, len(names)+1)
		record = append(record, row)
		for _, col := range names {
			if row == col {
				record = append(record, "1.0")

				continue
			}
			corr, corrErr := measure(rankings[row], rankings[col])
			if corrErr != nil {
				return corrErr
			}
			record = append(record, strconv.FormatFloat(corr, 'f', 6, 64))
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
