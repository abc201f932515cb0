package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/logger"
)

// grace added on top of the probe timeout before the ping process is killed
const processGrace = time.Second * 2

// CommandProber is an implementation of the Prober interface using the
// operating system's "ping" command
type CommandProber struct {
	binary string
	goos   string
	count  int
	log    logger.Logger
}

// CommandOption configures a CommandProber
type CommandOption func(p *CommandProber)

// WithBinary overrides the ping executable
func WithBinary(binary string) CommandOption {
	return func(p *CommandProber) {
		p.binary = binary
	}
}

// WithCount sets the number of echo requests sent per probe
func WithCount(count int) CommandOption {
	return func(p *CommandProber) {
		if count > 0 {
			p.count = count
		}
	}
}

// WithOS overrides the OS used to choose ping arguments
func WithOS(goos string) CommandOption {
	return func(p *CommandProber) {
		p.goos = goos
	}
}

// NewCommandProber returns a new instance of CommandProber sending a single
// echo request per probe
func NewCommandProber(opts ...CommandOption) *CommandProber {
	p := &CommandProber{
		binary: "ping",
		goos:   runtime.GOOS,
		count:  1,
		log:    logger.With("probe"),
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Args returns the ping arguments used to probe host
func (p *CommandProber) Args(host string, timeoutMS int) []string {
	count := strconv.Itoa(p.count)

	switch p.goos {
	case "windows":
		return []string{"-n", count, "-w", strconv.Itoa(timeoutMS), host}
	case "darwin", "freebsd":
		// bsd ping takes the wait time in milliseconds
		return []string{"-c", count, "-W", strconv.Itoa(timeoutMS), host}
	default:
		// iputils ping takes whole seconds
		secs := (timeoutMS + 999) / 1000
		return []string{"-c", count, "-W", strconv.Itoa(secs), host}
	}
}

// Probe implements the Prober interface. A ping process that exits with a non
// zero status still counts as a successful invocation, its output tells
// whether the host replied.
func (p *CommandProber) Probe(ctx context.Context, host string, timeoutMS int) (*Output, error) {
	limit := time.Duration(timeoutMS*p.count)*time.Millisecond + processGrace

	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary, p.Args(host, timeoutMS)...)

	p.log.Debug().Str("host", host).Strs("args", cmd.Args).Msg("probing host")

	start := time.Now()
	stdout, err := cmd.Output()
	elapsed := int(time.Since(start).Milliseconds())

	if err != nil {
		var exitErr *exec.ExitError

		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s: %s", exception.ErrProbeInvocation, p.binary, err)
		}

		if len(stdout) == 0 {
			stdout = exitErr.Stderr
		}
	}

	return &Output{
		Stdout:    string(stdout),
		ElapsedMS: elapsed,
	}, nil
}
