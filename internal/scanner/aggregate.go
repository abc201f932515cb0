package scanner

import (
	"sort"

	"github.com/robgonnella/netscope/internal/probe"
)

// Report summary of a single scan
type Report struct {
	Sent        int            `json:"sent"`
	Received    int            `json:"received"`
	LossPercent float64        `json:"loss_percent"`
	MinMS       int            `json:"min_ms"`
	AvgMS       int            `json:"avg_ms"`
	MaxMS       int            `json:"max_ms"`
	Hosts       []probe.Result `json:"hosts"`
}

// Aggregate restores input order and computes loss and latency statistics.
// Latency statistics only consider hosts that replied.
func Aggregate(results []indexedResult, sent int) *Report {
	ordered := make([]indexedResult, len(results))
	copy(ordered, results)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].index < ordered[j].index
	})

	report := &Report{
		Sent:        sent,
		LossPercent: 100.0,
		Hosts:       make([]probe.Result, 0, len(ordered)),
	}

	total := 0

	for _, r := range ordered {
		report.Hosts = append(report.Hosts, r.result)

		if !r.result.Success {
			continue
		}

		latency := r.result.LatencyMS

		if report.Received == 0 || latency < report.MinMS {
			report.MinMS = latency
		}

		if latency > report.MaxMS {
			report.MaxMS = latency
		}

		total += latency
		report.Received++
	}

	if sent > 0 {
		report.LossPercent = float64(sent-report.Received) / float64(sent) * 100.0
	}

	if report.Received > 0 {
		report.AvgMS = total / report.Received
	}

	return report
}
