package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mpm/builder"
	"github.com/katalvlaran/mpm/graphio"
	"github.com/katalvlaran/mpm/matching"
)

var randomCommand = cli.Command{
	Name:   "random",
	Usage:  "generate a random G(n, p) instance with uniform priorities",
	Action: random,
	Flags: []cli.Flag{
		&VerticesFlag,
		&ProbabilityFlag,
		&ClassesFlag,
		&SeedFlag,
		&OutputFlag,
		&OutputFormatFlag,
	},
}

func random(ctx *cli.Context) error {
	log, err := newLogger(ctx)
	if err != nil {
		return err
	}
	classes := ctx.Int(ClassesFlag.Name)
	if classes < 1 {
		classes = 1
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(ctx.Int64(SeedFlag.Name)),
			builder.WithPriorityFn(builder.UniformPriorityFn(classes)),
		},
		builder.RandomSparse(ctx.Int(VerticesFlag.Name), ctx.Float64(ProbabilityFlag.Name)),
		builder.Priorities(),
	)
	if err != nil {
		return err
	}
	inst, err := graphio.FromGraph(g, matching.WithPriorityKey(builder.DefaultPriorityKey))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"vertices": len(inst.Vertices), "edges": len(inst.Edges)}).Info("instance generated")

	return writeOut(ctx, func(w io.Writer, f graphio.Format) error {
		return graphio.EncodeInstance(w, f, inst)
	})
}
