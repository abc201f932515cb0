package core

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/util"
)

const (
	// single host pings wait this long for each reply
	pingWaitMS = 2000
	// connectivity checks give up after this long
	checkTimeout = time.Second * 3
)

// ScanOptions represents a request to scan a list of targets. When Profile
// is set its targets come first, followed by Targets.
type ScanOptions struct {
	Profile    string
	Targets    []string
	TimeoutMS  *int
	Backend    string
	ExpandCIDR bool
}

// Scan runs a single parallel scan. Unset options are taken from the named
// profile, then from config.
func (c *Core) Scan(ctx context.Context, opts ScanOptions) (*scanner.Report, error) {
	opts, err := c.withProfile(opts)

	if err != nil {
		return nil, err
	}

	defaultTimeout := c.conf.Scan.TimeoutMS

	defaults := ScanOptions{
		TimeoutMS: &defaultTimeout,
		Backend:   c.conf.Scan.Backend,
	}

	if err := mergo.Merge(&opts, defaults); err != nil {
		return nil, err
	}

	targets := opts.Targets

	if opts.ExpandCIDR {
		expanded, err := util.ExpandTargets(targets, scanner.MaxTargets)

		if err != nil {
			return nil, err
		}

		targets = expanded
	}

	s, err := c.newScanner(opts.Backend)

	if err != nil {
		return nil, err
	}

	return s.Scan(ctx, targets, opts.TimeoutMS)
}

// Ping sends count echo requests to a single target
func (c *Core) Ping(ctx context.Context, target string, count int) (*probe.Result, error) {
	target = strings.TrimSpace(target)

	if target == "" {
		return nil, exception.ErrInvalidInput
	}

	if count <= 0 {
		count = 1
	}

	backend, err := c.backend(c.conf.Scan.Backend)

	if err != nil {
		return nil, err
	}

	executor := probe.NewExecutor(backend.NewProber(count), backend.Parser)

	result := executor.Execute(ctx, probe.Job{Index: 0, Target: target}, pingWaitMS)

	return &result, nil
}

// CheckInternet reports whether the configured check address is reachable
func (c *Core) CheckInternet(ctx context.Context) bool {
	ok := util.CheckInternet(ctx, c.conf.CheckAddress, checkTimeout)

	c.log.Debug().Str("address", c.conf.CheckAddress).Bool("online", ok).Msg("connectivity check")

	return ok
}

func (c *Core) backend(name string) (Backend, error) {
	backend, ok := c.backends[name]

	if !ok {
		return Backend{}, fmt.Errorf("unsupported scan backend: %s", name)
	}

	return backend, nil
}

func (c *Core) newScanner(name string) (*scanner.Scanner, error) {
	backend, err := c.backend(name)

	if err != nil {
		return nil, err
	}

	opts := []scanner.Option{}

	if c.parallelism > 0 {
		opts = append(opts, scanner.WithParallelism(c.parallelism))
	}

	return scanner.New(probe.NewExecutor(backend.NewProber(1), backend.Parser), opts...), nil
}

// withProfile fills opts from the profile it names
func (c *Core) withProfile(opts ScanOptions) (ScanOptions, error) {
	if opts.Profile == "" {
		return opts, nil
	}

	p, err := c.profileService.Find(opts.Profile)

	if err != nil {
		return opts, fmt.Errorf("failed to load profile %s: %w", opts.Profile, err)
	}

	opts.Targets = append(slices.Clone(p.Targets), opts.Targets...)

	defaults := ScanOptions{Backend: p.Backend}

	if p.TimeoutMS > 0 {
		timeout := p.TimeoutMS
		defaults.TimeoutMS = &timeout
	}

	if err := mergo.Merge(&opts, defaults); err != nil {
		return opts, err
	}

	return opts, nil
}
