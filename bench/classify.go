package bench

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marcelljawhari/ArgRankLab/af"
)

// Properties describes one framework's structural classification.
type Properties struct {
	FrameworkName string
	SourceDataset string
	NumArgs       int
	NumAttacks    int
	Cyclicity     string // Cyclic | Acyclic
	SizeGroup     string // Small | Medium | Large
	DensityGroup  string // Sparse | Medium | Dense
	DensityValue  float64
	Connectivity  string // Connected | Disconnected
	NumComponents int
	Status        string // Processed | Timed Out | Not Processed
}

// FindFrameworks walks the benchmark roots and returns every .af file,
// sorted. Roots that do not exist are reported in the warnings; when
// none exists the error is ErrInput.
func FindFrameworks(roots []string) (paths, warnings []string, err error) {
	found := 0
	for _, root := range roots {
		if _, statErr := os.Stat(root); statErr != nil {
			warnings = append(warnings, fmt.Sprintf("benchmark directory not found: %s", root))

			continue
		}
		found++
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".af") {
				paths = append(paths, path)
			}

			return nil
		})
		if walkErr != nil {
			return nil, warnings, fmt.Errorf("%w: walking %s: %v", ErrInput, root, walkErr)
		}
	}
	if found == 0 {
		return nil, warnings, fmt.Errorf("%w: no benchmark directory exists", ErrInput)
	}
	sort.Strings(paths)

	return paths, warnings, nil
}

// Classify computes the structural properties of one framework.
// Status is filled separately via StatusOf.
func Classify(path string, f *af.AF) Properties {
	n, m := f.Len(), f.AttackCount()
	p := Properties{
		FrameworkName: filepath.Base(path),
		SourceDataset: datasetOf(path),
		NumArgs:       n,
		NumAttacks:    m,
	}

	if hasCycle(f) {
		p.Cyclicity = "Cyclic"
	} else {
		p.Cyclicity = "Acyclic"
	}

	switch {
	case n < 25:
		p.SizeGroup = "Small"
	case n <= 75:
		p.SizeGroup = "Medium"
	default:
		p.SizeGroup = "Large"
	}

	maxEdges := n * (n - 1)
	if maxEdges > 0 {
		p.DensityValue = float64(m) / float64(maxEdges)
	}
	switch {
	case p.DensityValue < 0.05:
		p.DensityGroup = "Sparse"
	case p.DensityValue <= 0.15:
		p.DensityGroup = "Medium"
	default:
		p.DensityGroup = "Dense"
	}

	p.NumComponents = weakComponents(f)
	if p.NumComponents == 1 {
		p.Connectivity = "Connected"
	} else {
		p.Connectivity = "Disconnected"
	}

	return p
}

// StatusOf derives the processing status of a framework from the
// results directory: a sentinel beats result files.
func StatusOf(resultsDir, frameworkName string) string {
	base := strings.TrimSuffix(frameworkName, ".af")
	if _, err := os.Stat(filepath.Join(resultsDir, base+".timeout")); err == nil {
		return "Timed Out"
	}
	_, kendallErr := os.Stat(filepath.Join(resultsDir, base+"_kendall.csv"))
	_, spearmanErr := os.Stat(filepath.Join(resultsDir, base+"_spearman.csv"))
	if kendallErr == nil && spearmanErr == nil {
		return "Processed"
	}

	return "Not Processed"
}

// WriteClassificationCSV writes the classification table.
func WriteClassificationCSV(path string, rows []Properties) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{
		"framework_name", "source_dataset", "num_args", "num_attacks",
		"cyclicity", "size_group", "density_group", "density_value",
		"connectivity", "num_components", "status",
	}
	if err = w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.FrameworkName,
			r.SourceDataset,
			strconv.Itoa(r.NumArgs),
			strconv.Itoa(r.NumAttacks),
			r.Cyclicity,
			r.SizeGroup,
			r.DensityGroup,
			strconv.FormatFloat(r.DensityValue, 'f', 6, 64),
			r.Connectivity,
			strconv.Itoa(r.NumComponents),
			r.Status,
		}
		if err = w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// ReadClassificationCSV loads a classification table back, keyed by
// framework name; only the fields report stratification needs are
// parsed.
func ReadClassificationCSV(path string) (map[string]Properties, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInput, path, err)
	}
	out := make(map[string]Properties, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < 11 {
			continue
		}
		density, _ := strconv.ParseFloat(rec[7], 64)
		out[rec[0]] = Properties{
			FrameworkName: rec[0],
			SourceDataset: rec[1],
			Cyclicity:     rec[4],
			SizeGroup:     rec[5],
			DensityGroup:  rec[6],
			DensityValue:  density,
			Connectivity:  rec[8],
			Status:        rec[10],
		}
	}

	return out, nil
}

func datasetOf(path string) string {
	if strings.Contains(path, "benchmarks_tweety") {
		return "tweety"
	}

	return "iccma23"
}

// hasCycle runs an iterative three-colour DFS over the attack
// relation. Self-loops are cycles.
func hasCycle(f *af.AF) bool {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	colour := make([]int, f.Len()+1)

	type frame struct {
		node af.Argument
		next int
	}
	for _, start := range f.Arguments() {
		if colour[start] != white {
			continue
		}
		stack := []frame{{node: start}}
		colour[start] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			attackees := f.Attackees(top.node)
			if top.next < len(attackees) {
				child := attackees[top.next]
				top.next++
				switch colour[child] {
				case grey:
					return true
				case white:
					colour[child] = grey
					stack = append(stack, frame{node: child})
				}

				continue
			}
			colour[top.node] = black
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

// weakComponents counts weakly-connected components by BFS over the
// symmetrised relation.
func weakComponents(f *af.AF) int {
	visited := make([]bool, f.Len()+1)
	count := 0
	for _, start := range f.Arguments() {
		if visited[start] {
			continue
		}
		count++
		queue := []af.Argument{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range f.Attackees(cur) {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
			for _, nbr := range f.Attackers(cur) {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
	}

	return count
}
