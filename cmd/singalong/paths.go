package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekisa-team/singalong/internal/xfs"
)

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the cached home directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), xfs.HomeDir())
		},
	}
}

func newMangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mangle <path>...",
		Short: "Expand a leading ~ in each path",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), xfs.PathMangle(p))
			}
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme <file>",
		Short: "Print the path of a file in the configured theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver(cmd)
			if err != nil {
				return err
			}

			p, err := r.ThemePath(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newDataCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "data <file>",
		Short: "Print the path of a file in the first existing data directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), r.DataPath(args[0]))
			return nil
		},
	}
}
