package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekisa-team/singalong/internal/config"
	"github.com/ekisa-team/singalong/internal/env"
	"github.com/ekisa-team/singalong/internal/envvar"
	"github.com/ekisa-team/singalong/internal/logger"
	"github.com/ekisa-team/singalong/internal/resolver"
)

type app struct {
	configPath  string
	schemaPath  string
	environment env.Environment
	cfg         *config.Config
	level       slog.LevelVar
	logFile     string
	logCloser   io.Closer
}

// NewRootCmd builds the singalong command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "singalong",
		Short:         "Resolve singalong theme, data and home relative paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.environment = env.FromEnv()
			a.openLog(cmd, os.Getenv(envvar.SingalongLogFile))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.closeLog()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigFile(), "Path to config file")
	root.PersistentFlags().StringVar(&a.schemaPath, "schema", "", "Path to schema file (defaults to the built-in schema)")

	root.AddCommand(
		newHomeCmd(),
		newMangleCmd(),
		newThemeCmd(a),
		newDataCmd(a),
		newWatchCmd(a),
	)

	return root
}

// load reads the config file once and applies its log settings.
func (a *app) load(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := config.LoadAndValidate(a.configPath, a.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", a.configPath, err)
	}
	a.cfg = cfg

	a.level.Set(logger.ParseLevel(cfg.String(config.KeyLogLevel)))
	if a.logFile == "" {
		if file := cfg.String(config.KeyLogFile); file != "" {
			a.openLog(cmd, file)
		}
	}
	slog.Debug("Config loaded successfully", "config", a.configPath)

	return cfg, nil
}

func (a *app) resolver(cmd *cobra.Command) (*resolver.Resolver, error) {
	cfg, err := a.load(cmd)
	if err != nil {
		return nil, err
	}

	return resolver.New(cfg), nil
}

// openLog installs the default logger. The level is shared through a.level,
// so a log file is opened at most once per run.
func (a *app) openLog(cmd *cobra.Command, file string) {
	a.closeLog()

	log, closer := logger.Open(a.environment,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(&a.level),
		logger.WithLogToFile(file != ""),
		logger.WithLogFile(file),
	)
	slog.SetDefault(log)
	a.logFile = file
	a.logCloser = closer
}

func (a *app) closeLog() {
	if a.logCloser == nil {
		return
	}
	if err := a.logCloser.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
	a.logCloser = nil
}
