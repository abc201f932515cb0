package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ullaakut/nmap/v3"
	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/logger"
)

// NmapProber is an implementation of the Prober interface using an nmap
// host discovery (-sn) scan of a single target. Its output is a summary
// understood by NmapParser.
type NmapProber struct {
	log logger.Logger
}

// NewNmapProber returns a new instance of NmapProber
func NewNmapProber() *NmapProber {
	return &NmapProber{log: logger.With("nmap")}
}

// Probe implements the Prober interface
func (p *NmapProber) Probe(ctx context.Context, host string, timeoutMS int) (*Output, error) {
	start := time.Now()

	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(host),
		nmap.WithPingScan(),
		nmap.WithMaxRetries(0),
		nmap.WithHostTimeout(time.Duration(timeoutMS)*time.Millisecond),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: nmap: %s", exception.ErrProbeInvocation, err)
	}

	result, warnings, err := scanner.Run()

	if warnings != nil && len(*warnings) > 0 {
		fields := map[string]interface{}{}

		for i, warning := range *warnings {
			fields[strconv.Itoa(i)] = warning
		}

		p.log.Warn().
			Fields(fields).
			Str("host", host).
			Msg("encountered nmap warnings")
	}

	if err != nil {
		return nil, fmt.Errorf("%w: nmap: %s", exception.ErrProbeInvocation, err)
	}

	return &Output{
		Stdout:    summarize(host, result),
		ElapsedMS: int(time.Since(start).Milliseconds()),
	}, nil
}

func summarize(target string, result *nmap.Run) string {
	if result == nil || len(result.Hosts) == 0 {
		return fmt.Sprintf("Host %s is down\n", target)
	}

	b := strings.Builder{}

	for _, host := range result.Hosts {
		addr := target

		if len(host.Addresses) > 0 {
			addr = host.Addresses[0].String()
		}

		b.WriteString(fmt.Sprintf("Host %s is %s", addr, host.Status.String()))

		if host.Times.SRTT != "" {
			b.WriteString(fmt.Sprintf(" (srtt=%sus)", host.Times.SRTT))
		}

		b.WriteString("\n")
	}

	return b.String()
}
