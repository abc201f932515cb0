package commands

import (
	"fmt"
	"os/exec"
	"strings"

	app_info "github.com/robgonnella/netscope/internal/app-info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func info(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s: %s\n\n", app_info.NAME, app_info.VERSION)

			for _, key := range []string{"config-file", "database-file", "profiles-file", "log-file"} {
				fmt.Fprintf(out, "%s: %v\n", key, viper.Get(key))
			}

			for _, bin := range []string{"ping", "nmap"} {
				path, err := exec.LookPath(bin)

				if err != nil {
					path = "not found"
				}

				fmt.Fprintf(out, "%s: %s\n", bin, path)
			}

			conf, err := yaml.Marshal(props.Core.Conf())

			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(string(conf)))

			return nil
		},
	}

	return cmd
}
