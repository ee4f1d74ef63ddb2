package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mpm/graphio"
	"github.com/katalvlaran/mpm/matching"
)

var scoreCommand = cli.Command{
	Name:   "score",
	Usage:  "score a given matching and compare it with the optimum",
	Action: score,
	Flags: []cli.Flag{
		&InputFlag,
		&SolutionFlag,
		&InputFormatFlag,
		&PriorityKeyFlag,
	},
}

func score(ctx *cli.Context) error {
	log, err := newLogger(ctx)
	if err != nil {
		return err
	}
	inst, err := readInstance(ctx)
	if err != nil {
		return err
	}
	sol, err := graphio.LoadSolution(ctx.String(SolutionFlag.Name))
	if err != nil {
		return err
	}
	pairs, err := sol.MatchingPairs()
	if err != nil {
		return err
	}
	key := ctx.String(PriorityKeyFlag.Name)
	g, err := inst.Graph()
	if err != nil {
		return err
	}

	given, err := matching.PriorityScore(g, pairs, matching.WithPriorityKey(key))
	if err != nil {
		return errors.Wrap(err, "score")
	}
	best, err := matching.MaximumPriorityMatching(g, matching.WithPriorityKey(key), matching.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "solve")
	}
	if sol.Score != "" && sol.Score != given.String() {
		log.WithField("recorded", sol.Score).Warn("recorded score does not match the pairs")
	}
	renderComparison(ctx.App.Writer, given, best.Score)

	return nil
}
