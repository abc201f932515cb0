package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robgonnella/netscope/internal/event"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/robgonnella/netscope/internal/ui"
	"github.com/spf13/cobra"
)

func watch(props *CommandProps) *cobra.Command {
	flags := &scanFlags{}
	var useUI bool

	cmd := &cobra.Command{
		Use:   "watch [targets...]",
		Short: "Repeats a scan on the configured interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)

			if err != nil {
				return err
			}

			if useUI {
				return ui.New(props.Core, opts).Launch()
			}

			events := make(chan event.Event, 10)

			reportID := props.Core.RegisterEventListener(event.ScanCompleteEventType, events)
			errorID := props.Core.RegisterEventListener(event.ErrorEventType, events)

			defer props.Core.RemoveEventListener(reportID)
			defer props.Core.RemoveEventListener(errorID)

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

			defer signal.Stop(signals)

			done := make(chan error, 1)

			go func() {
				done <- props.Core.Watch(opts)
			}()

			out := cmd.OutOrStdout()

			for {
				select {
				case <-signals:
					props.Core.Stop()
				case err := <-done:
					return err
				case evt := <-events:
					switch payload := evt.Payload.(type) {
					case *scanner.Report:
						if err := renderReport(out, payload, flags.json); err != nil {
							return err
						}
						fmt.Fprintln(out)
					case error:
						unreachColor.Fprintf(out, "scan failed: %s\n", payload)
					}
				}
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&useUI, "ui", false, "show a live dashboard")

	return cmd
}
