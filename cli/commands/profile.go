package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/robgonnella/netscope/internal/profile"
	"github.com/spf13/cobra"
)

func profileCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved target lists",
	}

	cmd.AddCommand(profileAdd(props))
	cmd.AddCommand(profileList(props))
	cmd.AddCommand(profileShow(props))
	cmd.AddCommand(profileDelete(props))

	return cmd
}

func profileAdd(props *CommandProps) *cobra.Command {
	var timeout int
	var backend string
	var file string

	cmd := &cobra.Command{
		Use:   "add <name> [targets...]",
		Short: "Saves a named list of targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := args[1:]

			if file != "" {
				fromFile, err := readTargets(file)

				if err != nil {
					return err
				}

				targets = append(targets, fromFile...)
			}

			p, err := props.Core.CreateProfile(profile.Profile{
				Name:      args[0],
				Targets:   targets,
				TimeoutMS: timeout,
				Backend:   backend,
			})

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s (%s)\n", p.Name, p.ID)

			return nil
		},
	}

	cmd.Flags().IntVarP(&timeout, "timeout", "t", 0, "per host timeout in milliseconds, 0 uses config default")
	cmd.Flags().StringVarP(&backend, "backend", "b", "", "probe backend (ping, nmap)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read targets from file, one per line")

	return cmd
}

func profileList(props *CommandProps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := props.Core.GetProfiles()

			if err != nil {
				return err
			}

			if asJSON {
				return renderJSON(cmd.OutOrStdout(), profiles)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

			fmt.Fprintln(tw, "NAME\tID\tTARGETS")

			for _, p := range profiles {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Name, p.ID, len(p.Targets))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print profiles as json")

	return cmd
}

func profileShow(props *CommandProps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name|id>",
		Short: "Shows a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := props.Core.GetProfile(args[0])

			if err != nil {
				return err
			}

			if asJSON {
				return renderJSON(cmd.OutOrStdout(), p)
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "name:    %s\n", p.Name)
			fmt.Fprintf(out, "id:      %s\n", p.ID)
			fmt.Fprintf(out, "timeout: %d\n", p.TimeoutMS)
			fmt.Fprintf(out, "backend: %s\n", p.Backend)
			fmt.Fprintf(out, "targets: %s\n", strings.Join(p.Targets, ", "))

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print profile as json")

	return cmd
}

func profileDelete(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name|id>",
		Short: "Deletes a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := props.Core.DeleteProfile(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted profile %s\n", args[0])

			return nil
		},
	}

	return cmd
}
