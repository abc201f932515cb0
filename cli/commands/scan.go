package commands

import (
	"errors"

	"github.com/robgonnella/netscope/internal/core"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	timeout int
	file    string
	cidr    bool
	profile string
	backend string
	json    bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.timeout, "timeout", "t", scanner.DefaultTimeoutMS, "per host timeout in milliseconds")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read targets from file, one per line")
	cmd.Flags().BoolVar(&f.cidr, "cidr", false, "expand CIDR targets into individual addresses")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "scan targets saved in profile")
	cmd.Flags().StringVarP(&f.backend, "backend", "b", "", "probe backend (ping, nmap)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print results as json")
}

// options builds scan options from args and flags
func (f *scanFlags) options(cmd *cobra.Command, args []string) (core.ScanOptions, error) {
	opts := core.ScanOptions{
		Profile:    f.profile,
		Targets:    args,
		Backend:    f.backend,
		ExpandCIDR: f.cidr,
	}

	if f.file != "" {
		targets, err := readTargets(f.file)

		if err != nil {
			return opts, err
		}

		opts.Targets = append(opts.Targets, targets...)
	}

	if cmd.Flags().Changed("timeout") {
		opts.TimeoutMS = &f.timeout
	}

	if len(opts.Targets) == 0 && opts.Profile == "" {
		return opts, errors.New("no targets given, pass targets as arguments or use --file or --profile")
	}

	return opts, nil
}

func scan(props *CommandProps) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [targets...]",
		Short: "Probes every target once in parallel and prints a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)

			if err != nil {
				return err
			}

			report, err := props.Core.Scan(cmd.Context(), opts)

			if err != nil {
				return err
			}

			return renderReport(cmd.OutOrStdout(), report, flags.json)
		},
	}

	flags.register(cmd)

	return cmd
}
