package commands

import (
	"github.com/robgonnella/netscope/internal/core"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Core *core.Core
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:   "netscope",
		Short: "Parallel host reachability scanner",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.WarnLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.AddCommand(scan(props))
	cmd.AddCommand(ping(props))
	cmd.AddCommand(check(props))
	cmd.AddCommand(watch(props))
	cmd.AddCommand(profileCmd(props))
	cmd.AddCommand(configCmd(props))
	cmd.AddCommand(info(props))
	cmd.AddCommand(version())
	cmd.AddCommand(clear())

	return cmd
}
