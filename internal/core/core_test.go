package core_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/netscope/internal/config"
	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/exception"
	mock_probe "github.com/robgonnella/netscope/internal/mock/probe"
	mock_profile "github.com/robgonnella/netscope/internal/mock/profile"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/profile"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/stretchr/testify/assert"
)

const replyOutput = "Reply from 10.0.0.1: bytes=32 time=12ms TTL=64"

func intPtr(i int) *int {
	return &i
}

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockProber := mock_probe.NewMockProber(ctrl)
	mockProfiles := mock_profile.NewMockService(ctrl)

	counts := []int{}

	backends := map[string]core.Backend{
		config.BackendPing: {
			NewProber: func(count int) probe.Prober {
				counts = append(counts, count)
				return mockProber
			},
			Parser: probe.WindowsParser,
		},
	}

	conf := config.Default()
	conf.Scan.TimeoutMS = 700
	conf.Watch.IntervalSeconds = 1

	coreService := core.New(
		*conf,
		mockProfiles,
		backends,
		event.NewEventManager(),
		core.WithParallelism(2),
	)

	t.Run("returns config", func(st *testing.T) {
		assert.Equal(st, *conf, coreService.Conf())
	})

	t.Run("scans with config defaults", func(st *testing.T) {
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 700).
			Return(&probe.Output{Stdout: replyOutput, ElapsedMS: 15}, nil)

		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Targets: []string{"10.0.0.1"},
		})

		assert.NoError(st, err)
		assert.Equal(st, 1, report.Sent)
		assert.Equal(st, 1, report.Received)
		assert.Equal(st, 12, report.AvgMS)
	})

	t.Run("requested timeout overrides config and is clamped", func(st *testing.T) {
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 200).
			Return(&probe.Output{Stdout: "Request timed out."}, nil)

		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Targets:   []string{"10.0.0.1"},
			TimeoutMS: intPtr(50),
		})

		assert.NoError(st, err)
		assert.Equal(st, 0, report.Received)
		assert.Equal(st, 100.0, report.LossPercent)
	})

	t.Run("returns invalid input for empty targets", func(st *testing.T) {
		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Targets: []string{"", "  "},
		})

		assert.Nil(st, report)
		assert.ErrorIs(st, err, exception.ErrInvalidInput)
	})

	t.Run("returns error for unsupported backend", func(st *testing.T) {
		_, err := coreService.Scan(context.Background(), core.ScanOptions{
			Targets: []string{"10.0.0.1"},
			Backend: "carrier-pigeon",
		})

		assert.Error(st, err)
	})

	t.Run("expands cidr targets", func(st *testing.T) {
		mockProber.EXPECT().
			Probe(gomock.Any(), gomock.Any(), 700).
			Return(&probe.Output{Stdout: replyOutput}, nil).
			MinTimes(2)

		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Targets:    []string{"192.168.50.0/30"},
			ExpandCIDR: true,
		})

		assert.NoError(st, err)
		assert.GreaterOrEqual(st, report.Sent, 2)
		assert.NotEqual(st, "192.168.50.0/30", report.Hosts[0].Target)
	})

	t.Run("scans saved profile", func(st *testing.T) {
		p := &profile.Profile{
			ID:        "id",
			Name:      "office",
			Targets:   []string{"10.0.0.1", "10.0.0.2"},
			TimeoutMS: 900,
		}

		mockProfiles.EXPECT().Find("office").Return(p, nil)
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 900).
			Return(&probe.Output{Stdout: replyOutput}, nil)
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.2", 900).
			Return(&probe.Output{Stdout: "Request timed out."}, nil)

		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Profile: "office",
		})

		assert.NoError(st, err)
		assert.Equal(st, 2, report.Sent)
		assert.Equal(st, 1, report.Received)
		assert.Equal(st, "10.0.0.1", report.Hosts[0].Target)
		assert.Equal(st, "10.0.0.2", report.Hosts[1].Target)
	})

	t.Run("requested options take precedence over profile", func(st *testing.T) {
		p := &profile.Profile{
			ID:        "id",
			Name:      "office",
			Targets:   []string{"10.0.0.1"},
			TimeoutMS: 900,
			Backend:   config.BackendPing,
		}

		mockProfiles.EXPECT().Find("office").Return(p, nil)
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 300).
			Return(&probe.Output{Stdout: replyOutput}, nil)
		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.3", 300).
			Return(&probe.Output{Stdout: replyOutput}, nil)

		report, err := coreService.Scan(context.Background(), core.ScanOptions{
			Profile:   "office",
			Targets:   []string{"10.0.0.3"},
			TimeoutMS: intPtr(300),
		})

		assert.NoError(st, err)
		assert.Equal(st, 2, report.Sent)
		assert.Equal(st, "10.0.0.1", report.Hosts[0].Target)
		assert.Equal(st, "10.0.0.3", report.Hosts[1].Target)
		assert.Equal(st, []string{"10.0.0.1"}, p.Targets)
	})

	t.Run("returns error for unknown profile", func(st *testing.T) {
		mockProfiles.EXPECT().Find("nope").Return(nil, exception.ErrRecordNotFound)

		_, err := coreService.Scan(context.Background(), core.ScanOptions{Profile: "nope"})

		assert.ErrorIs(st, err, exception.ErrRecordNotFound)
	})

	t.Run("pings single host with count", func(st *testing.T) {
		counts = []int{}

		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", 2000).
			Return(&probe.Output{Stdout: replyOutput}, nil)

		result, err := coreService.Ping(context.Background(), " 10.0.0.1 ", 4)

		assert.NoError(st, err)
		assert.True(st, result.Success)
		assert.Equal(st, 12, result.LatencyMS)
		assert.Equal(st, []int{4}, counts)
	})

	t.Run("ping rejects empty target", func(st *testing.T) {
		_, err := coreService.Ping(context.Background(), "  ", 1)

		assert.ErrorIs(st, err, exception.ErrInvalidInput)
	})

	t.Run("manages profiles", func(st *testing.T) {
		p := profile.Profile{Name: "lab", Targets: []string{"10.1.1.1"}}

		mockProfiles.EXPECT().Create(&p).Return(&p, nil)
		mockProfiles.EXPECT().GetAll().Return([]*profile.Profile{&p}, nil)
		mockProfiles.EXPECT().Find("lab").Return(&p, nil)
		mockProfiles.EXPECT().Delete("lab").Return(nil)

		created, err := coreService.CreateProfile(p)
		assert.NoError(st, err)
		assert.Equal(st, "lab", created.Name)

		all, err := coreService.GetProfiles()
		assert.NoError(st, err)
		assert.Equal(st, 1, len(all))

		found, err := coreService.GetProfile("lab")
		assert.NoError(st, err)
		assert.Equal(st, &p, found)

		assert.NoError(st, coreService.DeleteProfile("lab"))
	})
}

func TestCoreWatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockProber := mock_probe.NewMockProber(ctrl)
	mockProfiles := mock_profile.NewMockService(ctrl)

	backends := map[string]core.Backend{
		config.BackendPing: {
			NewProber: func(int) probe.Prober { return mockProber },
			Parser:    probe.WindowsParser,
		},
	}

	conf := config.Default()
	conf.Watch.IntervalSeconds = 1

	t.Run("publishes report events until stopped", func(st *testing.T) {
		coreService := core.New(*conf, mockProfiles, backends, event.NewEventManager())

		mockProber.EXPECT().
			Probe(gomock.Any(), "10.0.0.1", gomock.Any()).
			Return(&probe.Output{Stdout: replyOutput}, nil).
			MinTimes(1)

		listener := make(chan event.Event, 1)
		id := coreService.RegisterEventListener(event.ScanCompleteEventType, listener)

		defer coreService.RemoveEventListener(id)

		done := make(chan error)

		go func() {
			done <- coreService.Watch(core.ScanOptions{Targets: []string{"10.0.0.1"}})
		}()

		evt := <-listener

		coreService.Stop()

		report, ok := evt.Payload.(*scanner.Report)

		assert.True(st, ok)
		assert.Equal(st, 1, report.Received)
		assert.NoError(st, <-done)
	})

	t.Run("stops with fatal error on invalid input", func(st *testing.T) {
		coreService := core.New(*conf, mockProfiles, backends, event.NewEventManager())

		listener := make(chan event.Event, 1)
		coreService.RegisterEventListener(event.FatalErrorEventType, listener)

		err := coreService.Watch(core.ScanOptions{Targets: []string{}})

		assert.ErrorIs(st, err, exception.ErrInvalidInput)

		evt := <-listener

		assert.Equal(st, event.FatalErrorEventType, evt.Type)
	})
}
