package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Sentinel errors for harness outcomes.
var (
	// ErrTimeout marks a solver that exceeded its wall-clock bound.
	ErrTimeout = errors.New("runner: solver timed out")

	// ErrSolver wraps internal solver failures, including recovered
	// panics.
	ErrSolver = errors.New("runner: solver failed")
)

// Solver computes a ranking for a framework, honouring ctx.
type Solver func(ctx context.Context, f *af.AF) (rank.Ranking, error)

// Status classifies the outcome of one harnessed run.
type Status int

const (
	// Completed means the solver returned a ranking within the bound.
	Completed Status = iota

	// TimedOut means the deadline expired first.
	TimedOut

	// Failed means the solver returned an error or panicked.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case TimedOut:
		return "timed out"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome reports one harnessed solver run.
type Outcome struct {
	// Status classifies the run.
	Status Status

	// Ranking is valid only when Status is Completed.
	Ranking rank.Ranking

	// Elapsed is the wall-clock time consumed.
	Elapsed time.Duration

	// Err holds ErrTimeout, or the wrapped solver error, when Status
	// is not Completed.
	Err error
}

// result carries a solver's return values across the goroutine.
type result struct {
	ranking rank.Ranking
	err     error
}

// Run executes solve on f with the given wall-clock bound. A
// non-positive timeout means no bound beyond the parent context.
func Run(ctx context.Context, f *af.AF, solve Solver, timeout time.Duration) Outcome {
	runCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	start := time.Now()
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("%w: panic: %v", ErrSolver, r)}
			}
		}()
		ranking, err := solve(runCtx, f)
		ch <- result{ranking: ranking, err: err}
	}()

	select {
	case res := <-ch:
		elapsed := time.Since(start)
		if res.err != nil {
			status := Failed
			err := res.err
			if errors.Is(err, context.DeadlineExceeded) {
				status, err = TimedOut, ErrTimeout
			} else if !errors.Is(err, ErrSolver) {
				err = fmt.Errorf("%w: %v", ErrSolver, err)
			}

			return Outcome{Status: status, Elapsed: elapsed, Err: err}
		}

		return Outcome{Status: Completed, Ranking: res.ranking, Elapsed: elapsed}
	case <-runCtx.Done():
		elapsed := time.Since(start)
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return Outcome{Status: TimedOut, Elapsed: elapsed, Err: ErrTimeout}
		}

		return Outcome{Status: Failed, Elapsed: elapsed, Err: fmt.Errorf("%w: %v", ErrSolver, runCtx.Err())}
	}
}
