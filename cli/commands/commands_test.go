package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/golang/mock/gomock"
	"github.com/robgonnella/netscope/internal/config"
	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/event"
	mock_probe "github.com/robgonnella/netscope/internal/mock/probe"
	mock_profile "github.com/robgonnella/netscope/internal/mock/profile"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/profile"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func testProps(ctrl *gomock.Controller) (*CommandProps, *mock_probe.MockProber, *mock_profile.MockService) {
	props, mockProber, mockProfiles, _ := testPropsWithConfig(ctrl, *config.Default())
	return props, mockProber, mockProfiles
}

// testPropsWithConfig also returns the echo counts probers were created with
func testPropsWithConfig(
	ctrl *gomock.Controller,
	conf config.Config,
) (*CommandProps, *mock_probe.MockProber, *mock_profile.MockService, *[]int) {
	mockProber := mock_probe.NewMockProber(ctrl)
	mockProfiles := mock_profile.NewMockService(ctrl)

	counts := []int{}

	backends := map[string]core.Backend{
		config.BackendPing: {
			NewProber: func(count int) probe.Prober {
				counts = append(counts, count)
				return mockProber
			},
			Parser: probe.UnixParser,
		},
	}

	appCore := core.New(conf, mockProfiles, backends, event.NewEventManager())

	return &CommandProps{Core: appCore}, mockProber, mockProfiles, &counts
}

func TestRender(t *testing.T) {
	t.Run("renders report table and summary", func(st *testing.T) {
		report := &scanner.Report{
			Sent:        2,
			Received:    1,
			LossPercent: 50,
			MinMS:       7,
			AvgMS:       7,
			MaxMS:       7,
			Hosts: []probe.Result{
				{Target: "10.0.0.1", Success: true, LatencyMS: 7},
				{Target: "10.0.0.2"},
			},
		}

		var buf bytes.Buffer

		err := renderReport(&buf, report, false)

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), "TARGET")
		assert.Contains(st, buf.String(), "alive")
		assert.Contains(st, buf.String(), "7 ms")
		assert.Contains(st, buf.String(), "unreachable")
		assert.Contains(st, buf.String(), "2 sent, 1 received, 50.0% loss, min/avg/max = 7/7/7 ms")
	})

	t.Run("renders report as json", func(st *testing.T) {
		report := &scanner.Report{Sent: 1, LossPercent: 100, Hosts: []probe.Result{{Target: "a"}}}

		var buf bytes.Buffer

		err := renderReport(&buf, report, true)

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), `"loss_percent": 100`)
		assert.Contains(st, buf.String(), `"target": "a"`)
	})

	t.Run("renders single result", func(st *testing.T) {
		var buf bytes.Buffer

		err := renderResult(&buf, &probe.Result{Target: "a", Success: true, LatencyMS: 3}, false)

		assert.NoError(st, err)
		assert.Equal(st, "a is alive (3 ms)\n", buf.String())
	})
}

func TestReadTargets(t *testing.T) {
	t.Run("skips blank lines and comments", func(st *testing.T) {
		file := filepath.Join(st.TempDir(), "targets.txt")

		err := os.WriteFile(file, []byte("# office\n10.0.0.1\n\n  10.0.0.2  \n"), 0644)
		assert.NoError(st, err)

		targets, err := readTargets(file)

		assert.NoError(st, err)
		assert.Equal(st, []string{"10.0.0.1", "10.0.0.2"}, targets)
	})

	t.Run("returns error for missing file", func(st *testing.T) {
		_, err := readTargets(filepath.Join(st.TempDir(), "nope"))

		assert.Error(st, err)
	})
}

func TestScanCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("scans targets with timeout flag", func(st *testing.T) {
		props, mockProber, _ := testProps(ctrl)

		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 300).
			Return(&probe.Output{Stdout: "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=4.2 ms"}, nil)

		var buf bytes.Buffer

		cmd := Root(props)
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"scan", "--silent", "--timeout", "300", "--json", "10.0.0.1"})

		err := cmd.ExecuteContext(context.Background())

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), `"received": 1`)
		assert.Contains(st, buf.String(), `"latency_ms": 4`)
	})

	t.Run("scans saved profile", func(st *testing.T) {
		props, mockProber, mockProfiles := testProps(ctrl)

		mockProfiles.EXPECT().Find("office").Return(&profile.Profile{
			Name:      "office",
			Targets:   []string{"10.0.0.9"},
			TimeoutMS: 900,
		}, nil)

		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.9", 900).
			Return(&probe.Output{Stdout: "Request timeout for icmp_seq 0"}, nil)

		var buf bytes.Buffer

		cmd := Root(props)
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"scan", "--silent", "--profile", "office"})

		err := cmd.ExecuteContext(context.Background())

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), "10.0.0.9")
		assert.Contains(st, buf.String(), "1 sent, 0 received, 100.0% loss")
	})

	t.Run("requires targets", func(st *testing.T) {
		props, _, _ := testProps(ctrl)

		cmd := Root(props)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"scan", "--silent"})

		assert.Error(st, cmd.ExecuteContext(context.Background()))
	})
}

func TestPingCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	conf := *config.Default()
	conf.Scan.Count = 3

	reply := &probe.Output{Stdout: "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=2.0 ms"}

	t.Run("uses configured count by default", func(st *testing.T) {
		props, mockProber, _, counts := testPropsWithConfig(ctrl, conf)

		mockProber.EXPECT().Probe(gomock.Any(), "10.0.0.1", 2000).Return(reply, nil)

		var buf bytes.Buffer

		cmd := Root(props)
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"ping", "--silent", "10.0.0.1"})

		err := cmd.ExecuteContext(context.Background())

		assert.NoError(st, err)
		assert.Equal(st, []int{3}, *counts)
		assert.Equal(st, "10.0.0.1 is alive (2 ms)\n", buf.String())
	})

	t.Run("count flag overrides config", func(st *testing.T) {
		props, mockProber, _, counts := testPropsWithConfig(ctrl, conf)

		mockProber.EXPECT().Probe(gomock.Any(), "10.0.0.1", 2000).Return(reply, nil)

		cmd := Root(props)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"ping", "--silent", "--count", "5", "10.0.0.1"})

		err := cmd.ExecuteContext(context.Background())

		assert.NoError(st, err)
		assert.Equal(st, []int{5}, *counts)
	})
}
