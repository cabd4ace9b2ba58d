package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Strata supported by the report aggregation.
var Strata = []string{"all", "cyclic", "acyclic", "sparse", "dense"}

// pairKey identifies an unordered semantics pair, alphabetical.
type pairKey struct{ a, b string }

func makePair(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// Aggregate summarises the per-framework correlation matrices of one
// metric ("kendall" or "spearman") across the results directory.
type Aggregate struct {
	Metric    string
	Stratum   string
	Semantics []string
	// Mean, Median and StdDev hold per-pair summaries; diagonal
	// entries are not stored and render as 1 for mean and median and
	// as 0 for the standard deviation.
	Mean   map[pairKey]float64
	Median map[pairKey]float64
	StdDev map[pairKey]float64
	// Frameworks is the number of matrices aggregated.
	Frameworks int
}

// BuildAggregate reads every "*_<metric>.csv" under resultsDir and
// folds the pairwise correlations into mean, median and standard
// deviation. With a stratum other than "all", only frameworks whose
// classification row matches (Cyclic/Acyclic cyclicity, Sparse/Dense
// density group) contribute; classes defaults to nil which restricts
// "all" only.
func BuildAggregate(resultsDir, metric, stratum string, classes map[string]Properties) (*Aggregate, error) {
	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	suffix := "_" + metric + ".csv"
	samples := make(map[pairKey][]float64)
	semSet := make(map[string]bool)
	frameworks := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		frameworkName := strings.TrimSuffix(entry.Name(), suffix) + ".af"
		if !inStratum(frameworkName, stratum, classes) {
			continue
		}

		names, cells, readErr := readMatrixCSV(filepath.Join(resultsDir, entry.Name()))
		if readErr != nil {
			return nil, readErr
		}
		frameworks++
		for _, n := range names {
			semSet[n] = true
		}
		for i, a := range names {
			for _, b := range names[i+1:] {
				if v, ok := cells[pairKey{a: a, b: b}]; ok && !math.IsNaN(v) {
					key := makePair(a, b)
					samples[key] = append(samples[key], v)
				}
			}
		}
	}

	agg := &Aggregate{
		Metric:     metric,
		Stratum:    stratum,
		Mean:       make(map[pairKey]float64),
		Median:     make(map[pairKey]float64),
		StdDev:     make(map[pairKey]float64),
		Frameworks: frameworks,
	}
	for n := range semSet {
		agg.Semantics = append(agg.Semantics, n)
	}
	sort.Strings(agg.Semantics)

	for key, vals := range samples {
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		agg.Mean[key] = stat.Mean(sorted, nil)
		agg.Median[key] = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		if len(sorted) > 1 {
			agg.StdDev[key] = stat.StdDev(sorted, nil)
		}
	}

	return agg, nil
}

// WriteTo renders the three summary matrices as text tables.
func (a *Aggregate) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, section := range []struct {
		title string
		cells map[pairKey]float64
	}{
		{title: "mean", cells: a.Mean},
		{title: "median", cells: a.Median},
		{title: "stddev", cells: a.StdDev},
	} {
		n, err := fmt.Fprintf(w, "\n%s %s correlation (%s, %d frameworks)\n",
			strings.ToUpper(a.Metric[:1])+a.Metric[1:], section.title, a.Stratum, a.Frameworks)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = writeTextMatrix(w, a.Semantics, section.cells, section.title != "stddev")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// WriteCSV writes one summary matrix (mean, median or stddev).
func (a *Aggregate) WriteCSV(path, which string) error {
	cells, diagOne := a.Mean, true
	switch which {
	case "mean":
	case "median":
		cells = a.Median
	case "stddev":
		cells, diagOne = a.StdDev, false
	default:
		return fmt.Errorf("%w: unknown summary %q", ErrInput, which)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err = w.Write(append([]string{""}, a.Semantics...)); err != nil {
		return err
	}
	for _, row := range a.Semantics {
		record := []string{row}
		for _, col := range a.Semantics {
			record = append(record, formatCell(row, col, cells, diagOne))
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func formatCell(row, col string, cells map[pairKey]float64, diagOne bool) string {
	if row == col {
		if diagOne {
			return "1.0"
		}

		return "0.0"
	}
	v, ok := cells[makePair(row, col)]
	if !ok {
		return ""
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}

func writeTextMatrix(w io.Writer, names []string, cells map[pairKey]float64, diagOne bool) (int, error) {
	total := 0
	n, err := fmt.Fprintf(w, "%14s", "")
	total += n
	if err != nil {
		return total, err
	}
	for _, c := range names {
		n, err = fmt.Fprintf(w, " %12s", c)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintln(w)
	total += n
	if err != nil {
		return total, err
	}
	for _, row := range names {
		n, err = fmt.Fprintf(w, "%14s", row)
		total += n
		if err != nil {
			return total, err
		}
		for _, col := range names {
			n, err = fmt.Fprintf(w, " %12s", formatCell(row, col, cells, diagOne))
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = fmt.Fprintln(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// inStratum filters a framework by the requested stratum using its
// classification row; unknown frameworks only match "all".
func inStratum(frameworkName, stratum string, classes map[string]Properties) bool {
	if stratum == "" || stratum == "all" {
		return true
	}
	props, ok := classes[frameworkName]
	if !ok {
		return false
	}
	switch stratum {
	case "cyclic":
		return props.Cyclicity == "Cyclic"
	case "acyclic":
		return props.Cyclicity == "Acyclic"
	case "sparse":
		return props.DensityGroup == "Sparse"
	case "dense":
		return props.DensityGroup == "Dense"
	default:
		return false
	}
}

// readMatrixCSV parses a square correlation CSV back into cells keyed
// by ordered (row, col) pairs.
func readMatrixCSV(path string) ([]string, map[pairKey]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", ErrInput, path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%w: %s is not a correlation matrix", ErrInput, path)
	}

	names := records[0][1:]
	cells := make(map[pairKey]float64, len(names)*len(names))
	for _, rec := range records[1:] {
		if len(rec) != len(names)+1 {
			continue
		}
		row := rec[0]
		for i, cell := range rec[1:] {
			if cell == "" {
				continue
			}
			v, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				continue
			}
			cells[pairKey{a: row, b: names[i]}] = v
		}
	}

	return names, cells, nil
}
