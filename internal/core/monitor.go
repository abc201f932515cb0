package core

import (
	"errors"
	"time"

	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/exception"
)

// Watch repeats a scan on the configured interval, publishing every report
// as a ScanCompleteEventType event until Stop is called. Invalid input stops
// the loop with a fatal error event, other errors are reported and retried.
func (c *Core) Watch(opts ScanOptions) error {
	pollTime := time.Second * time.Duration(c.conf.Watch.IntervalSeconds)

	c.log.Info().Dur("interval", pollTime).Msg("Starting watch")

	for {
		report, err := c.Scan(c.ctx, opts)

		switch {
		case errors.Is(err, exception.ErrInvalidInput):
			c.events.ReportFatalError(err)
			return err
		case err != nil:
			c.events.ReportError(err)
		default:
			c.events.Send(event.Event{
				Type:    event.ScanCompleteEventType,
				Payload: report,
			})
		}

		select {
		case <-c.ctx.Done():
			c.log.Info().Msg("Watch stopped")
			return nil
		case <-time.After(pollTime):
		}
	}
}
