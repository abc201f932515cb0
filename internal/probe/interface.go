package probe

import "context"

//go:generate mockgen -destination=../mock/probe/mock_probe.go -package=mock_probe . Prober,Parser

// Prober performs a single echo request against host using some OS level
// primitive and returns its raw textual output
type Prober interface {
	Probe(ctx context.Context, host string, timeoutMS int) (*Output, error)
}

// Parser interprets the raw textual output of a Prober. Marker strings are
// owned by the primitive (and its locale), not by the scanner.
type Parser interface {
	// Success reports whether output indicates the host replied
	Success(output string) bool
	// Latency returns the round trip time in milliseconds, elapsedMS is the
	// wall time of the invocation
	Latency(output string, elapsedMS int) int
}
