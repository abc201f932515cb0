package scanner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/logger"
	"github.com/robgonnella/netscope/internal/probe"
	"golang.org/x/sync/errgroup"
)

// MaxWorkers caps the number of probes in flight at once
const MaxWorkers = 24

// WorkerCount returns the number of workers used to probe jobs targets
func WorkerCount(jobs, parallelism int) int {
	return min(jobs, MaxWorkers, max(parallelism, 1))
}

// Scanner probes a list of targets in parallel, once each, and reports
// the results in input order
type Scanner struct {
	executor    *probe.Executor
	parallelism int
	log         logger.Logger
}

// Option configures a Scanner
type Option func(s *Scanner)

// WithParallelism overrides the detected hardware parallelism
func WithParallelism(n int) Option {
	return func(s *Scanner) {
		s.parallelism = n
	}
}

// New returns a new instance of Scanner
func New(executor *probe.Executor, opts ...Option) *Scanner {
	s := &Scanner{
		executor:    executor,
		parallelism: runtime.GOMAXPROCS(0),
		log:         logger.With("scanner"),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Scan probes every sanitized target exactly once and blocks until all
// workers have finished. The only error returned is exception.ErrInvalidInput,
// per host failures are reported as unsuccessful results.
func (s *Scanner) Scan(ctx context.Context, targets []string, timeoutMS *int) (*Report, error) {
	jobs, timeout, err := Sanitize(targets, timeoutMS)

	if err != nil {
		return nil, err
	}

	queue := newJobQueue(jobs)
	results := newResultSet(len(jobs))
	workers := WorkerCount(len(jobs), s.parallelism)

	s.log.Info().
		Int("targets", len(jobs)).
		Int("workers", workers).
		Int("timeoutMS", timeout).
		Msg("Starting scan")

	start := time.Now()

	g := new(errgroup.Group)

	for i := 0; i < workers; i++ {
		id := i
		g.Go(func() error {
			s.work(ctx, id, queue, results, timeout)
			return nil
		})
	}

	// workers never return errors, Wait is only the join
	_ = g.Wait()

	report := Aggregate(results.all(), len(jobs))

	s.log.Info().
		Int("sent", report.Sent).
		Int("received", report.Received).
		Float64("loss", report.LossPercent).
		Dur("duration", time.Since(start)).
		Msg("Scan complete")

	return report, nil
}

func (s *Scanner) work(
	ctx context.Context,
	id int,
	queue *jobQueue,
	results *resultSet,
	timeoutMS int,
) {
	for {
		job, ok := queue.pop()

		if !ok {
			return
		}

		s.log.Debug().Int("worker", id).Str("target", job.Target).Msg("probing")

		results.add(job.Index, s.probe(ctx, job, timeoutMS))
	}
}

// probe runs one job, a panic is contained to this job so the worker can
// keep draining the queue
func (s *Scanner) probe(ctx context.Context, job probe.Job, timeoutMS int) (result probe.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("target", job.Target).
				Interface("panic", r).
				Msg("recovered probe panic")

			result = probe.Result{
				Target:    job.Target,
				Success:   false,
				LatencyMS: 0,
				Output:    fmt.Sprintf("%s: %v", exception.ErrProbePanic, r),
			}
		}
	}()

	return s.executor.Execute(ctx, job, timeoutMS)
}
