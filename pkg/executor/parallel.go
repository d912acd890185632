// Package executor computes (and optionally dispatches) the swipes of many
// plans concurrently.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devicelab-dev/swipe-geometry/pkg/flow"
	"github.com/devicelab-dev/swipe-geometry/pkg/logger"
	"github.com/devicelab-dev/swipe-geometry/pkg/report"
	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
)

// DefaultWorkers is used when RunnerConfig.Workers is not positive.
const DefaultWorkers = 4

// RunnerConfig configures a ParallelRunner.
type RunnerConfig struct {
	Workers int

	// Screen is used for plans that do not name their screen size.
	Screen swipe.Size

	// Dispatcher plays each gesture; nil only computes. Setting it forces a
	// single worker.
	Dispatcher swipe.Dispatcher

	Logger *zap.Logger

	// OnFlowEnd is called once per plan, serialized.
	OnFlowEnd func(flowIdx, totalFlows int, result report.Plan)
}

// workItem represents a flow and its index in the original flow list.
type workItem struct {
	flow  *flow.Flow
	index int
}

// RunResult contains the results of all plans.
type RunResult struct {
	Status      report.Status
	TotalFlows  int
	PassedFlows int
	FailedFlows int
	Duration    int64 // wall clock, ms
	FlowResults []report.Plan
}

// ParallelRunner evaluates plans on a shared work queue.
type ParallelRunner struct {
	config      RunnerConfig
	log         *zap.Logger
	outputMutex sync.Mutex
}

// NewParallelRunner creates a runner.
func NewParallelRunner(config RunnerConfig) *ParallelRunner {
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.Dispatcher != nil {
		config.Workers = 1
	}
	return &ParallelRunner{
		config: config,
		log:    logger.OrNop(config.Logger),
	}
}

// Run evaluates flows and returns their results in input order.
// It stops early only if ctx is canceled.
func (pr *ParallelRunner) Run(ctx context.Context, flows []*flow.Flow) (*RunResult, error) {
	if len(flows) == 0 {
		return nil, fmt.Errorf("no plans to run")
	}

	startTime := time.Now()

	workQueue := make(chan workItem, len(flows))
	for i, f := range flows {
		workQueue <- workItem{flow: f, index: i}
	}
	close(workQueue)

	results := make([]report.Plan, len(flows))
	totalFlows := len(flows)

	workers := pr.config.Workers
	if workers > totalFlows {
		workers = totalFlows
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		workerID := w
		g.Go(func() error {
			log := pr.log.With(zap.Int("worker", workerID))
			for item := range workQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				result := pr.executeFlow(ctx, log, item.flow)
				results[item.index] = result
				pr.flowEnded(item.index, totalFlows, result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildRunResult(results, time.Since(startTime).Milliseconds()), nil
}

func (pr *ParallelRunner) flowEnded(idx, total int, result report.Plan) {
	if pr.config.OnFlowEnd == nil {
		return
	}
	pr.outputMutex.Lock()
	defer pr.outputMutex.Unlock()
	pr.config.OnFlowEnd(idx, total, result)
}

// executeFlow computes every swipe of f. A failing swipe does not stop the
// rest of the plan.
func (pr *ParallelRunner) executeFlow(ctx context.Context, log *zap.Logger, f *flow.Flow) report.Plan {
	start := time.Now()
	log = log.With(zap.String("plan", f.Name()))

	result := report.Plan{
		Name:       f.Name(),
		SourceFile: f.SourcePath,
		Status:     report.StatusPassed,
		Swipes:     make([]report.Swipe, 0, len(f.Steps)),
	}

	screen := f.Config.Screen
	if !f.Config.HasScreen() {
		screen = pr.config.Screen
	}

	for i := range f.Steps {
		step := &f.Steps[i]
		sr := pr.executeStep(ctx, step, screen)
		sr.Index = i
		if sr.Status == report.StatusFailed {
			result.Status = report.StatusFailed
			log.Warn("swipe failed", zap.Int("index", i), zap.String("error", sr.Error))
		} else {
			log.Debug("swipe computed", zap.Int("index", i),
				zap.Stringer("start", sr.Gesture.Start), zap.Stringer("end", sr.Gesture.End))
		}
		result.Swipes = append(result.Swipes, sr)
	}

	result.DurationMs = time.Since(start).Milliseconds()
	log.Info("plan finished", zap.String("status", string(result.Status)),
		zap.Int("swipes", len(result.Swipes)))
	return result
}

func (pr *ParallelRunner) executeStep(ctx context.Context, step *flow.SwipeStep, screen swipe.Size) report.Swipe {
	sr := report.Swipe{
		Description: step.Describe(),
		Status:      report.StatusFailed,
	}

	if screen.IsZero() {
		sr.Error = "screen size unknown"
		return sr
	}

	geo := step.Geometry(screen)
	if err := geo.Validate(); err != nil {
		sr.Error = err.Error()
		return sr
	}

	g, err := swipe.Compute(step.Params(), geo)
	if err != nil {
		sr.Error = err.Error()
		return sr
	}
	sr.Gesture = &g

	if pr.config.Dispatcher != nil {
		if err := pr.config.Dispatcher.Dispatch(ctx, g); err != nil {
			sr.Error = err.Error()
			return sr
		}
		sr.Dispatched = true
	}

	sr.Status = report.StatusPassed
	return sr
}

// buildRunResult aggregates flow results into a run result.
func buildRunResult(flowResults []report.Plan, wallClockDuration int64) *RunResult {
	result := &RunResult{
		TotalFlows:  len(flowResults),
		FlowResults: flowResults,
		Duration:    wallClockDuration,
		Status:      report.StatusPassed,
	}

	for _, fr := range flowResults {
		switch fr.Status {
		case report.StatusPassed:
			result.PassedFlows++
		case report.StatusFailed:
			result.FailedFlows++
		}
	}

	if result.FailedFlows > 0 {
		result.Status = report.StatusFailed
	}
	return result
}

// FormatDuration formats milliseconds as human-readable duration
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	secs := int(seconds) % 60
	return fmt.Sprintf("%dm%ds", minutes, secs)
}
