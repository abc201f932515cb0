package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/robgonnella/netscope/cli/commands"
	app_info "github.com/robgonnella/netscope/internal/app-info"
	"github.com/robgonnella/netscope/internal/config"
	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntTimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, app_info.NAME+".log")

	configFile := path.Join(configDir, "config.yml")

	dbFile := path.Join(configDir, app_info.NAME+".db")

	profilesFile := path.Join(configDir, "profiles.json")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("database-file", dbFile)
	viper.Set("profiles-file", profilesFile)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	err := setRuntTimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	conf, err := config.Load(viper.GetString("config-file"))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	appCore, err := core.CreateNewAppCore(*conf)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create app core")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Core: appCore,
	})

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
