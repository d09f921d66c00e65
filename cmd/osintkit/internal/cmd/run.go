package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/osintkit/osintkit/internal/cmdlogger"
	"github.com/osintkit/osintkit/internal/config"
	"github.com/osintkit/osintkit/internal/plugin"
	"github.com/osintkit/osintkit/internal/testlogger"
	"github.com/osintkit/osintkit/internal/urlextractor"
	"github.com/osintkit/osintkit/internal/version"
	"github.com/urfave/cli/v3"
)

var (
	commit = "n/a"
	date   = "n/a"
)

// PluginBuilder constructs a plugin for registration with the host.
type PluginBuilder = func() *plugin.Plugin

// DefaultPlugins returns the builders for every plugin that ships with
// osintkit.
func DefaultPlugins() []PluginBuilder {
	return []PluginBuilder{urlextractor.NewPlugin}
}

func Run(args []string, stdout, stderr io.Writer, plugins []PluginBuilder) int {
	// urfave/cli uses a global for its help flag which makes it possible for a nil
	// pointer dereference if running in a parallel setting, which our test suite
	// does, so this is used to hide the help flag so the global won't be used
	// unless a particular env variable is set
	//
	// see https://github.com/urfave/cli/issues/2176
	shouldHideHelp := testing.Testing() && os.Getenv("TEST_SHOW_HELP") != "true"

	// --- Setup Logger ---
	logHandler := cmdlogger.New(stdout, stderr)

	// If in testing mode, set logger via Handler
	// Otherwise, set default global logger
	if testing.Testing() {
		handler, ok := slog.Default().Handler().(*testlogger.Handler)
		if !ok {
			panic("Test failed to initialize default logger with Handler")
		}

		handler.AddInstance(logHandler)
		defer handler.Delete()
	} else {
		slog.SetDefault(slog.New(logHandler))
	}
	// ---

	cfg := loadHostConfig(configPathFromArgs(args))
	applyConfigVerbosity(cfg)

	registry := plugin.NewRegistry()
	for _, build := range plugins {
		p := build()
		if cfg.IsPluginDisabled(p.Name) {
			cmdlogger.Warnf("Skipping disabled plugin %q", p.Name)

			continue
		}

		if err := registry.Register(p); err != nil {
			cmdlogger.Errorf("Failed to load plugin %q: %v", p.Name, err)

			return 127
		}
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		cmdlogger.Infof("osintkit version: %s", cmd.Version)
		cmdlogger.Infof("commit: %s", commit)
		cmdlogger.Infof("built at: %s", date)
	}

	cmds := make([]*cli.Command, 0, len(registry.Commands()))
	for _, command := range registry.Commands() {
		c := commandFromPlugin(command)
		c.HideHelp = shouldHideHelp

		cmds = append(cmds, c)
	}

	app := &cli.Command{
		Name:           "osintkit",
		Version:        version.KitVersion,
		Usage:          "a pluggable toolkit of OSINT commands",
		Suggest:        true,
		HideHelp:       shouldHideHelp,
		Writer:         stdout,
		ErrWriter:      stderr,
		DefaultCommand: defaultCommand(registry),
		Commands:       cmds,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("%q is not an osintkit command - run 'osintkit help' for usage information", cmd.Args().First())
			}

			return errors.New("no command specified - run 'osintkit help' for usage information")
		},

		CustomRootCommandHelpTemplate: getCustomHelpTemplate(),
	}

	// If ExitErrHandler is not set, cli will use the default cli.HandleExitCoder.
	// This is not ideal as cli.HandleExitCoder checks if the error implements cli.ExitCode interface.
	//
	// 99% of the time, this is fine, as we do not implement cli.ExitCode in our errors, so errors pass through
	// that handler untouched.
	// However, because of Go's duck typing, any error that happens to have a ExitCode() function
	// (e.g. *exec.ExitError) will be assumed to implement cli.ExitCode interface and cause the program to exit
	// early without proper error handling.
	//
	// This removes the handler entirely so that behavior will not unexpectedly happen.
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	args = insertDefaultCommand(args, app.Commands, app.DefaultCommand, stderr)

	err := app.Run(context.Background(), args)

	// if the config is invalid, it's possible that is why any other errors
	// happened so that exit code takes priority
	if logHandler.HasErroredBecauseInvalidConfig() {
		return 130
	}

	if err != nil {
		cmdlogger.Errorf("%v", err)
	}

	// if we've been told to print an error, and not already exited with
	// a specific error code, then exit with a generic non-zero code
	if logHandler.HasErrored() {
		return 127
	}

	return 0
}

// defaultCommand returns the name of the command that bare invocations like
// `osintkit notes.txt` should be routed to, which is extract-urls as long as
// the url-extractor plugin has not been disabled.
func defaultCommand(registry *plugin.Registry) string {
	for _, command := range registry.Commands() {
		if command.Name == urlextractor.CommandName {
			return command.Name
		}
	}

	return ""
}

// loadHostConfig reads the host config file, either from the explicit
// override path or from the working directory. An invalid file is reported
// and ignored so that the run continues with defaults.
func loadHostConfig(path string) config.Config {
	var cfg config.Config
	var err error

	if path == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}

	if err != nil {
		if path == "" {
			path = config.KitConfigName
		}
		cmdlogger.Errorf("Ignored invalid config file at %s because: %v", path, err)

		return config.Config{}
	}

	return cfg
}

// applyConfigVerbosity sets the log level from the config file, if present.
// The --verbosity flag runs later and takes priority when set.
func applyConfigVerbosity(cfg config.Config) {
	if cfg.Verbosity == "" {
		return
	}

	lvl, err := cmdlogger.ParseLevel(cfg.Verbosity)
	if err != nil {
		cmdlogger.Errorf("Ignored invalid config file at %s because: %v", cfg.LoadPath, err)

		return
	}

	cmdlogger.SetLevel(lvl)
}
