package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("smallvolume")

func main() {
	app := &cli.App{
		Name:  "smallvolume",
		Usage: "loads Anvil regions into sparse voxel volumes and reports on them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level for every subsystem (debug, info, warn, error)",
				EnvVars: []string{"SMALLVOLUME_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := logging.LevelFromString(c.String("log-level"))
			if err != nil {
				return err
			}
			logging.SetAllLoggers(lvl)
			return nil
		},
		Commands: []*cli.Command{inspectCommand},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
