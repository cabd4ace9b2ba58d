package bench

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInput marks missing or unreadable user input (directories,
// files, config); the CLI maps it to exit code 1.
var ErrInput = errors.New("bench: input error")

// Defaults mirroring the reference study.
const (
	// DefaultTimeout bounds each solver run.
	DefaultTimeout = 600 * time.Second

	// DefaultSamples is the Monte-Carlo budget for the cheap
	// probabilistic semantics.
	DefaultSamples = 10000

	// DefaultSlowSamples is the reduced budget for the SAT-heavy
	// semantics (complete, preferred, ideal).
	DefaultSlowSamples = 1250
)

// Config collects the orchestration parameters. Field defaults come
// from DefaultConfig; a YAML file may override any subset.
type Config struct {
	// BenchmarkDirs are the corpus roots scanned for .af files.
	BenchmarkDirs []string `yaml:"benchmark_dirs"`

	// ResultsDir receives correlation CSVs and timeout sentinels.
	ResultsDir string `yaml:"results_dir"`

	// TimeoutSeconds bounds each solver run.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Probability is the uniform existence probability p.
	Probability float64 `yaml:"probability"`

	// Samples is the Monte-Carlo budget.
	Samples int `yaml:"samples"`

	// SlowSamples is the budget for SAT-heavy semantics.
	SlowSamples int `yaml:"slow_samples"`

	// Seed is the base RNG seed for sampling.
	Seed int64 `yaml:"seed"`

	// Workers bounds the sampling pool; zero means max(1, cores/2).
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the reference-study parameters.
func DefaultConfig() Config {
	return Config{
		BenchmarkDirs:  []string{"data/benchmarks_tweety", "data/benchmarks2023/main"},
		ResultsDir:     "data/results",
		TimeoutSeconds: int(DefaultTimeout / time.Second),
		Probability:    0.5,
		Samples:        DefaultSamples,
		SlowSamples:    DefaultSlowSamples,
		Seed:           1,
		Workers:        0,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInput, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrInput, path, err)
	}

	return cfg, nil
}

// Timeout returns the solver bound as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
