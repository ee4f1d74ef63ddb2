package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mpm/graphio"
	"github.com/katalvlaran/mpm/matching"
)

var solveCommand = cli.Command{
	Name:   "solve",
	Usage:  "compute a maximum priority matching of an instance",
	Action: solve,
	Flags: []cli.Flag{
		&InputFlag,
		&OutputFlag,
		&InputFormatFlag,
		&OutputFormatFlag,
		&PriorityKeyFlag,
		&TableFlag,
	},
}

func solve(ctx *cli.Context) error {
	log, err := newLogger(ctx)
	if err != nil {
		return err
	}
	inst, err := readInstance(ctx)
	if err != nil {
		return err
	}
	key := ctx.String(PriorityKeyFlag.Name)
	g, err := inst.Graph()
	if err != nil {
		return err
	}

	res, err := matching.MaximumPriorityMatching(g, matching.WithPriorityKey(key), matching.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "solve")
	}
	log.WithFields(logrus.Fields{
		"pairs":         len(res.Pairs),
		"score":         res.Score.String(),
		"augmentations": res.Stats.Augmentations,
		"blossoms":      res.Stats.Blossoms,
	}).Info("matching computed")

	if ctx.Bool(TableFlag.Name) {
		renderResult(ctx.App.Writer, res)
		return nil
	}
	sol := graphio.NewSolution(res)

	return writeOut(ctx, func(w io.Writer, f graphio.Format) error {
		return graphio.EncodeSolution(w, f, sol)
	})
}
