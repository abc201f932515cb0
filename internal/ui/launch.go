package ui

import (
	"fmt"
	"os"

	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var originalStdout = os.Stdout
var originalStderr = os.Stderr

func restoreStdout() {
	os.Stdout = originalStdout
	os.Stderr = originalStderr
}

// UI renders a live dashboard for a watch loop
type UI struct {
	appCore *core.Core
	opts    core.ScanOptions
}

// New returns a new instance of UI
func New(appCore *core.Core, opts core.ScanOptions) *UI {
	return &UI{
		appCore: appCore,
		opts:    opts,
	}
}

// Launch redirects logs to the log file, takes over the terminal and
// blocks until the user quits
func (u *UI) Launch() error {
	log := logger.New()

	level := zerolog.GlobalLevel()

	if level != zerolog.Disabled {
		logFile, ok := viper.Get("log-file").(string)

		if !ok || logFile == "" {
			log.Error().Err(
				fmt.Errorf("invalid log file path: %s", logFile),
			).Msg("")
			log.Info().Msg("disabling logs")
			zerolog.SetGlobalLevel(zerolog.Disabled)
		} else {
			file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

			if err != nil {
				log.Error().Err(err).Msg("")
				log.Info().Msg("disabling logs")
				zerolog.SetGlobalLevel(zerolog.Disabled)
			} else {
				defer file.Close()
				logger.GlobalSetLogFile(file)
			}
		}
	}

	a := newApp(u.appCore, u.opts)

	os.Stdout, _ = os.Open(os.DevNull)
	os.Stderr, _ = os.Open(os.DevNull)

	defer restoreStdout()

	return a.run()
}
