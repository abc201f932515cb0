package commands

import (
	"errors"
	"os"

	"github.com/robgonnella/netscope/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/**
 * Command to remove config, profile and log files
 */
func clear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clears config, saved profiles and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			for _, key := range []string{"config-file", "database-file", "profiles-file", "log-file"} {
				file, ok := viper.Get(key).(string)

				if !ok || file == "" {
					continue
				}

				if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}

				log.Info().Str("file", file).Msg("removed " + key)
			}

			return nil
		},
	}

	return cmd
}
