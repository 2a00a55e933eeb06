package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ekisa-team/singalong/internal/config"
	"github.com/ekisa-team/singalong/internal/resolver"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Print the theme path of a file each time the config changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.load(cmd); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			watcher, err := config.NewWatcher(a.configPath, a.schemaPath, func(cfg *config.Config, err error) {
				if err != nil {
					slog.Error("Failed to reload config", "error", err)
					return
				}
				printThemePath(out, resolver.New(cfg), args[0])
			})
			if err != nil {
				return fmt.Errorf("creating config watcher: %w", err)
			}
			defer watcher.Close()

			printThemePath(out, resolver.New(watcher), args[0])

			slog.Info("Watching config", "config", a.configPath)
			<-ctx.Done()

			return nil
		},
	}
}

func printThemePath(w io.Writer, r *resolver.Resolver, file string) {
	p, err := r.ThemePath(file)
	if err != nil {
		slog.Error("Failed to resolve theme path", "file", file, "error", err)
		return
	}

	fmt.Fprintln(w, p)
}
