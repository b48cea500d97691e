package main

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	log := logrus.New()

	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	app := newApp(cfg, log, os.Stdin, os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(cfg config, log logrus.FieldLogger, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "heaptool",
		Usage:  "order text entries through a binary heap",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "read \"priority: payload\" lines and print payloads by priority",
				UsageText: "heaptool sort [options] < entries.txt",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return sortEntries(ctx, cmd, log, in, out)
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "order",
						Value: cfg.Order,
						Usage: "max pops the highest priority first, min the lowest",
					},
					&cli.UintFlag{
						Name:  "limit",
						Usage: "print at most this many entries",
					},
					&cli.BoolFlag{
						Name:  "with-priority",
						Usage: "print each entry as \"priority: payload\"",
					},
					&cli.BoolFlag{
						Name:  "ids",
						Usage: "prefix each entry with a random UUID assigned on input",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "fail on the first malformed line instead of skipping it",
					},
				},
			},
		},
	}
}
