package probe

import (
	"math"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// MarkerParser implements Parser by substring matching on the output of an
// OS ping command
type MarkerParser struct {
	// ReplyMarkers any of these indicates a reply was received
	ReplyMarkers []string
	// FailureMarkers cancel a reply marker, e.g. an ICMP unreachable reply
	FailureMarkers []string
	// TimeMarker precedes an explicit round trip time, e.g. "time="
	TimeMarker string
	// SubMillisecondMarker indicates a round trip below measurable resolution
	SubMillisecondMarker string
}

// WindowsParser parses output of the windows "ping" command
var WindowsParser = &MarkerParser{
	ReplyMarkers: []string{"Reply from"},
	FailureMarkers: []string{
		"Destination host unreachable",
		"Destination net unreachable",
		"Destination port unreachable",
		"Request timed out",
		"TTL expired in transit",
		"General failure",
	},
	TimeMarker:           "time=",
	SubMillisecondMarker: "time<",
}

// UnixParser parses output of the iputils / bsd "ping" commands
var UnixParser = &MarkerParser{
	ReplyMarkers: []string{"bytes from"},
	FailureMarkers: []string{
		"Destination Host Unreachable",
		"Destination Net Unreachable",
		"Request timeout",
		"Time to live exceeded",
	},
	TimeMarker:           "time=",
	SubMillisecondMarker: "time<",
}

// DefaultParser returns the parser matching the ping command of this OS
func DefaultParser() Parser {
	return ParserFor("auto")
}

// ParserFor returns a parser by name: "windows", "unix", "nmap" or "auto"
func ParserFor(name string) Parser {
	switch name {
	case "windows":
		return WindowsParser
	case "unix":
		return UnixParser
	case "nmap":
		return NmapParser
	}

	if runtime.GOOS == "windows" {
		return WindowsParser
	}

	return UnixParser
}

// Success implements Parser. An explicit round trip time always counts as a
// reply, a reply marker only counts when no failure marker is present.
func (p *MarkerParser) Success(output string) bool {
	if p.TimeMarker != "" && strings.Contains(output, p.TimeMarker) {
		return true
	}

	replied := false

	for _, m := range p.ReplyMarkers {
		if strings.Contains(output, m) {
			replied = true
			break
		}
	}

	if !replied {
		return false
	}

	for _, m := range p.FailureMarkers {
		if strings.Contains(output, m) {
			return false
		}
	}

	return true
}

// Latency implements Parser
func (p *MarkerParser) Latency(output string, elapsedMS int) int {
	if p.TimeMarker != "" && strings.Contains(output, p.TimeMarker) {
		rest := strings.SplitN(output, p.TimeMarker, 2)[1]
		value := strings.TrimSpace(strings.SplitN(rest, "ms", 2)[0])

		ms, err := strconv.ParseFloat(value, 64)

		if err != nil || ms < 0 {
			return max(elapsedMS, 0)
		}

		if ms > 0 && ms < 1 {
			return 1
		}

		return int(math.Floor(ms))
	}

	if p.SubMillisecondMarker != "" &&
		strings.Contains(output, p.SubMillisecondMarker) {
		return 1
	}

	return 0
}

var srttRegexp = regexp.MustCompile(`srtt=(?P<us>\d+)us`)

type nmapParser struct{}

// NmapParser parses the summary lines produced by NmapProber
var NmapParser Parser = nmapParser{}

func (nmapParser) Success(output string) bool {
	return strings.Contains(output, " is up")
}

func (nmapParser) Latency(output string, elapsedMS int) int {
	match := srttRegexp.FindStringSubmatch(output)

	if match == nil {
		return 0
	}

	us, err := strconv.Atoi(match[srttRegexp.SubexpIndex("us")])

	if err != nil {
		return 0
	}

	if us > 0 && us < 1000 {
		return 1
	}

	return us / 1000
}
