package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/osintkit/osintkit/internal/cmdlogger"
	"github.com/osintkit/osintkit/internal/plugin"
	"github.com/urfave/cli/v3"
)

// hostGlobalFlags returns the flags shared by every plugin command.
func hostGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "set/override config file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Value: "info",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)

				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}

// commandFromPlugin bridges a registered plugin command into a cli command,
// binding the positional arguments to the command's declared parameters.
func commandFromPlugin(command plugin.Command) *cli.Command {
	return &cli.Command{
		Name:      command.Name,
		Usage:     command.Usage,
		ArgsUsage: argsUsage(command.Parameters),
		Flags:     hostGlobalFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			args, err := bindParameters(command.Name, command.Parameters, cmd.Args().Slice())
			if err != nil {
				return err
			}

			command.Run(plugin.SlogSink{}, args)

			return nil
		},
	}
}

func argsUsage(parameters []plugin.Parameter) string {
	names := make([]string, len(parameters))
	for i, parameter := range parameters {
		names[i] = "<" + parameter.Name + ">"
	}

	return strings.Join(names, " ")
}

// bindParameters maps the raw positional arguments onto the command's
// declared parameters, requiring exactly one argument per parameter.
func bindParameters(command string, parameters []plugin.Parameter, raw []string) (plugin.Args, error) {
	if len(raw) != len(parameters) {
		return nil, fmt.Errorf("command %q requires exactly %d argument(s) (%s), got %d", command, len(parameters), argsUsage(parameters), len(raw))
	}

	args := make(plugin.Args, len(parameters))
	for i, parameter := range parameters {
		args[parameter.Name] = raw[i]
	}

	return args, nil
}
