package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/netscope/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the current configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := viper.GetString("config-file")

			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Write(props.Core.Conf()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configFile)

			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)

	return cmd
}
