package commands

import (
	"github.com/spf13/cobra"
)

func ping(props *CommandProps) *cobra.Command {
	var count int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ping <target>",
		Short: "Pings a single target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = props.Core.Conf().Scan.Count
			}

			result, err := props.Core.Ping(cmd.Context(), args[0], count)

			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), result, asJSON)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 0, "number of echo requests to send (default scan.count from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result as json")

	return cmd
}
