package scanner

import (
	"strings"

	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/probe"
)

const (
	// MaxTargets hard cap on the number of targets in a single scan
	MaxTargets = 128
	// DefaultTimeoutMS per probe timeout used when none is requested
	DefaultTimeoutMS = 1200
	// MinTimeoutMS lower bound of the per probe timeout
	MinTimeoutMS = 200
	// MaxTimeoutMS upper bound of the per probe timeout
	MaxTimeoutMS = 10000
)

// Sanitize trims and bounds raw targets, assigning each surviving target its
// position in the scan, and returns the effective per probe timeout
func Sanitize(targets []string, timeoutMS *int) ([]probe.Job, int, error) {
	jobs := []probe.Job{}

	for _, t := range targets {
		if len(jobs) == MaxTargets {
			break
		}

		target := strings.TrimSpace(t)

		if target == "" {
			continue
		}

		jobs = append(jobs, probe.Job{Index: len(jobs), Target: target})
	}

	if len(jobs) == 0 {
		return nil, 0, exception.ErrInvalidInput
	}

	return jobs, EffectiveTimeout(timeoutMS), nil
}

// EffectiveTimeout clamps the requested timeout to [MinTimeoutMS, MaxTimeoutMS]
func EffectiveTimeout(timeoutMS *int) int {
	if timeoutMS == nil {
		return DefaultTimeoutMS
	}

	return min(max(*timeoutMS, MinTimeoutMS), MaxTimeoutMS)
}
