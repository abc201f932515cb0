package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func check(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks internet connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			address := props.Core.Conf().CheckAddress

			if !props.Core.CheckInternet(cmd.Context()) {
				unreachColor.Fprintf(cmd.OutOrStdout(), "offline: %s unreachable\n", address)
				return errors.New("no internet connectivity")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s reachable\n", aliveColor.Sprint("online"), address)

			return nil
		},
	}

	return cmd
}
