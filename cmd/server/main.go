package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/iliyamo/festival-manager/internal/logging"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.New(os.Stderr, false).Fatal("festival exited", "err", err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "festival",
		Usage:     "Run the festival manager web site",
		UsageText: "festival [--debug] [--threaded] [HOST] [PORT]",
		// root flags are inherited, so "festival --debug consume" and
		// "festival consume --debug" both reach the subcommand
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable echo debug mode, debug logging and request argument logging",
			},
			&cli.BoolFlag{
				Name:  "threaded",
				Usage: "Serve requests concurrently instead of one at a time",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "host"},
			&cli.StringArg{Name: "port"},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "consume",
				Usage:  "Append record_created events from RabbitMQ to the activity log",
				Action: consume,
			},
			{
				Name:   "migrate",
				Usage:  "Create the schema and seed the demo table, then exit",
				Action: migrate,
			},
		},
	}
}
