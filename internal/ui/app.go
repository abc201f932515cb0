package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/ui/component"
	"github.com/robgonnella/netscope/internal/ui/key"
)

type app struct {
	ctx              context.Context
	cancel           context.CancelFunc
	appCore          *core.Core
	opts             core.ScanOptions
	tvApp            *tview.Application
	root             *tview.Flex
	header           *component.Header
	hostTable        *component.HostTable
	eventTable       *component.EventTable
	eventUpdateChan  chan event.Event
	eventListenerIds []int
	watchErr         chan error
}

func newApp(appCore *core.Core, opts core.ScanOptions) *app {
	ctx, cancel := context.WithCancel(context.Background())

	eventUpdateChan := make(chan event.Event, 100)

	listenerIds := []int{}

	for _, t := range []event.EventType{
		event.ScanCompleteEventType,
		event.ErrorEventType,
		event.FatalErrorEventType,
	} {
		listenerIds = append(listenerIds, appCore.RegisterEventListener(t, eventUpdateChan))
	}

	labels := opts.Targets

	if opts.Profile != "" {
		labels = append([]string{"profile:" + opts.Profile}, labels...)
	}

	header := component.NewHeader(labels, appCore.Conf().Watch.IntervalSeconds)
	hostTable := component.NewHostTable()
	eventTable := component.NewEventTable()

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.AddItem(header.Primitive(), 5, 1, false)
	root.AddItem(hostTable.Primitive(), 0, 2, true)
	root.AddItem(eventTable.Primitive(), 0, 1, false)

	return &app{
		ctx:              ctx,
		cancel:           cancel,
		appCore:          appCore,
		opts:             opts,
		tvApp:            tview.NewApplication(),
		root:             root,
		header:           header,
		hostTable:        hostTable,
		eventTable:       eventTable,
		eventUpdateChan:  eventUpdateChan,
		eventListenerIds: listenerIds,
		watchErr:         make(chan error, 1),
	}
}

func (a *app) bindKeys() {
	a.tvApp.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == key.KeyCtrlC || evt.Key() == key.KeyEsc || evt.Rune() == key.RuneQuit {
			a.stop()
			return nil
		}

		return evt
	})
}

func (a *app) processBackgroundEventUpdates() {
	go func() {
		for {
			select {
			case <-a.ctx.Done():
				return
			case evt := <-a.eventUpdateChan:
				a.tvApp.QueueUpdateDraw(func() {
					if report, ok := evt.Payload.(*scanner.Report); ok {
						a.header.SetSummary(report)
						a.hostTable.UpdateTable(report)
					}

					a.eventTable.UpdateTable(evt)
				})
			}
		}
	}()
}

func (a *app) stop() {
	for _, id := range a.eventListenerIds {
		a.appCore.RemoveEventListener(id)
	}

	a.cancel()
	a.appCore.Stop()
	a.tvApp.Stop()
}

func (a *app) run() error {
	a.bindKeys()
	a.processBackgroundEventUpdates()

	go func() {
		a.watchErr <- a.appCore.Watch(a.opts)
	}()

	if err := a.tvApp.SetRoot(a.root, true).EnableMouse(true).Run(); err != nil {
		return err
	}

	// Stop has already cancelled the watch loop
	return <-a.watchErr
}
