package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mpm/graphio"
)

// newLogger writes text logs to the app's error stream at the level
// chosen by --log-level.
func newLogger(ctx *cli.Context) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log := logrus.New()
	log.SetOutput(ctx.App.ErrWriter)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	return log, nil
}

// readInstance loads --input, or decodes stdin with --input-format.
func readInstance(ctx *cli.Context) (*graphio.Instance, error) {
	if path := ctx.String(InputFlag.Name); path != "" {
		return graphio.LoadInstance(path)
	}
	f, err := graphio.ParseFormat(ctx.String(InputFormatFlag.Name))
	if err != nil {
		return nil, err
	}

	return graphio.DecodeInstance(ctx.App.Reader, f)
}

// writeOut encodes to --output, or to the app writer with --output-format.
func writeOut(ctx *cli.Context, encode func(io.Writer, graphio.Format) error) error {
	path := ctx.String(OutputFlag.Name)
	if path == "" {
		f, err := graphio.ParseFormat(ctx.String(OutputFormatFlag.Name))
		if err != nil {
			return err
		}
		return encode(ctx.App.Writer, f)
	}

	f, err := graphio.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = encode(file, f); err != nil {
		file.Close()
		return err
	}

	return errors.Wrapf(file.Close(), "close %s", path)
}
