package main

import (
	"os"
	"sort"

	"github.com/mnikita/scenario-worker/pkg/log"
	"github.com/urfave/cli/v2"

	wcli "github.com/mnikita/scenario-worker/pkg/cli"
)

func main() {
	var configFile string
	var logLevel string

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE` (TOML, YAML or JSON)",
				Destination: &configFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Aliases:     []string{"l"},
				Usage:       "Override the configured log `LEVEL`",
				Destination: &logLevel,
			},
		},
		ArgsUsage: "<namespace> [true|false]",
		Action: func(c *cli.Context) error {
			namespace, autocomplete, err := wcli.ParseArgs(c.Args().Slice())

			if err != nil {
				_ = cli.ShowAppHelp(c)

				return cli.Exit(err.Error(), 1)
			}

			handler := wcli.NewCli(&wcli.Configuration{
				ConfigFile:   configFile,
				LogLevel:     logLevel,
				Namespace:    namespace,
				Autocomplete: autocomplete,
			})

			defer func() {
				if err := handler.Close(); err != nil {
					log.Logger().Error(err)
				}
			}()

			if err = handler.Init(); err != nil {
				return err
			}

			return handler.Start(nil)
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "reports an externally executed HTTP task as Completed",
				ArgsUsage: "<task_instance_id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						_ = cli.ShowSubcommandHelp(c)

						return cli.Exit("missing task instance id", 1)
					}

					handler := wcli.NewCli(&wcli.Configuration{
						ConfigFile: configFile,
						LogLevel:   logLevel,
					})

					defer func() {
						if err := handler.Close(); err != nil {
							log.Logger().Error(err)
						}
					}()

					if err := handler.Init(); err != nil {
						return err
					}

					return handler.Complete(c.Args().First())
				},
			},
			{
				Name:  "default-config",
				Usage: "writes default configuration",
				Action: func(c *cli.Context) error {
					if configFile == "" {
						return wcli.WriteDefaultConfiguration(os.Stdout)
					}

					return wcli.WriteDefaultConfigurationToFile(configFile)
				},
			},
			{
				Name:      "catalog",
				Usage:     "prints the task catalog of a namespace",
				ArgsUsage: "<namespace>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						_ = cli.ShowSubcommandHelp(c)

						return cli.Exit("missing namespace", 1)
					}

					return wcli.WriteCatalog(os.Stdout, c.Args().First())
				},
			},
		},
		Name: "Scenario Worker",
		Description: "Worker polls the Scenario server for task instances of one namespace, " +
			"executes them with the registered Go handlers and reports their status.",
		Usage:    "Scenario task worker",
		HelpName: "worker",
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	err := app.Run(os.Args)
	if err != nil {
		log.Logger().Fatal(err)
	}
}
