package probe

import (
	"context"
	"fmt"

	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/logger"
)

// Executor runs exactly one probe per job and turns the raw output into a
// Result. It never returns an error, failures are folded into the Result.
type Executor struct {
	prober Prober
	parser Parser
	log    logger.Logger
}

// NewExecutor returns a new instance of Executor
func NewExecutor(prober Prober, parser Parser) *Executor {
	return &Executor{
		prober: prober,
		parser: parser,
		log:    logger.With("executor"),
	}
}

// Execute probes the job's target once, blocking until the probe completes
func (e *Executor) Execute(ctx context.Context, job Job, timeoutMS int) Result {
	out, err := e.prober.Probe(ctx, job.Target, timeoutMS)

	if err != nil {
		e.log.Debug().Err(err).Str("target", job.Target).Msg("probe invocation failed")

		return Result{
			Target:    job.Target,
			Success:   false,
			LatencyMS: 0,
			Output:    fmt.Sprintf("Ping failed: %s", err),
		}
	}

	if !e.parser.Success(out.Stdout) {
		e.log.Debug().
			Err(exception.ErrProbeUnreachable).
			Str("target", job.Target).
			Msg("no reply")

		return Result{
			Target:    job.Target,
			Success:   false,
			LatencyMS: 0,
			Output:    out.Stdout,
		}
	}

	return Result{
		Target:    job.Target,
		Success:   true,
		LatencyMS: e.parser.Latency(out.Stdout, out.ElapsedMS),
		Output:    out.Stdout,
	}
}
