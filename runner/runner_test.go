package runner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
	"github.com/marcelljawhari/ArgRankLab/runner"
)

func fixture() *af.AF {
	return af.MustNew(2, []af.Attack{{From: 1, To: 2}})
}

func instantSolver(_ context.Context, f *af.AF) (rank.Ranking, error) {
	return rank.FromClasses([][]af.Argument{{1}, {2}}), nil
}

// slowSolver cooperates with cancellation between "iterations".
func slowSolver(ctx context.Context, _ *af.AF) (rank.Ranking, error) {
	for {
		select {
		case <-ctx.Done():
			return rank.Ranking{}, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRun_Completed(t *testing.T) {
	out := runner.Run(context.Background(), fixture(), instantSolver, time.Second)
	require.Equal(t, runner.Completed, out.Status)
	assert.NoError(t, out.Err)
	assert.Equal(t, []rank.Class{{1}, {2}}, out.Ranking.Classes)
	assert.Greater(t, out.Elapsed, time.Duration(0))
}

func TestRun_Timeout(t *testing.T) {
	out := runner.Run(context.Background(), fixture(), slowSolver, 30*time.Millisecond)
	assert.Equal(t, runner.TimedOut, out.Status)
	assert.ErrorIs(t, out.Err, runner.ErrTimeout)
	assert.Empty(t, out.Ranking.Classes, "partial results are discarded")
}

func TestRun_SolverError(t *testing.T) {
	failing := func(context.Context, *af.AF) (rank.Ranking, error) {
		return rank.Ranking{}, errors.New("boom")
	}
	out := runner.Run(context.Background(), fixture(), failing, time.Second)
	assert.Equal(t, runner.Failed, out.Status)
	assert.ErrorIs(t, out.Err, runner.ErrSolver)
}

func TestRun_PanicIsIsolated(t *testing.T) {
	panicking := func(context.Context, *af.AF) (rank.Ranking, error) {
		panic("solver bug")
	}
	out := runner.Run(context.Background(), fixture(), panicking, time.Second)
	assert.Equal(t, runner.Failed, out.Status)
	assert.ErrorIs(t, out.Err, runner.ErrSolver)
	assert.Contains(t, out.Err.Error(), "solver bug")
}

func TestRun_NoTimeoutMeansParentContextOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan runner.Outcome, 1)
	go func() { done <- runner.Run(ctx, fixture(), slowSolver, 0) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	out := <-done
	assert.Equal(t, runner.Failed, out.Status, "parent cancellation is not a timeout")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "completed", runner.Completed.String())
	assert.Equal(t, "timed out", runner.TimedOut.String())
	assert.Equal(t, "failed", runner.Failed.String())
}
