package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/scanner"
)

var (
	aliveColor   = color.New(color.FgGreen, color.Bold)
	unreachColor = color.New(color.FgRed)
	summaryColor = color.New(color.FgCyan)
)

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderReport(w io.Writer, report *scanner.Report, asJSON bool) error {
	if asJSON {
		return renderJSON(w, report)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "TARGET\tSTATUS\tLATENCY")

	for _, host := range report.Hosts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", host.Target, status(host), latency(host))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	summaryColor.Fprintf(
		w,
		"\n%d sent, %d received, %.1f%% loss, min/avg/max = %d/%d/%d ms\n",
		report.Sent,
		report.Received,
		report.LossPercent,
		report.MinMS,
		report.AvgMS,
		report.MaxMS,
	)

	return nil
}

func renderResult(w io.Writer, result *probe.Result, asJSON bool) error {
	if asJSON {
		return renderJSON(w, result)
	}

	fmt.Fprintf(w, "%s is %s", result.Target, status(*result))

	if result.Success {
		fmt.Fprintf(w, " (%s)", latency(*result))
	}

	fmt.Fprintln(w)

	return nil
}

func status(result probe.Result) string {
	if result.Success {
		return aliveColor.Sprint("alive")
	}

	return unreachColor.Sprint("unreachable")
}

func latency(result probe.Result) string {
	if !result.Success {
		return "-"
	}

	return fmt.Sprintf("%d ms", result.LatencyMS)
}

// readTargets returns one target per line of file, skipping comments
func readTargets(file string) ([]string, error) {
	f, err := os.Open(file)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	targets := []string{}

	s := bufio.NewScanner(f)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		targets = append(targets, line)
	}

	return targets, s.Err()
}
