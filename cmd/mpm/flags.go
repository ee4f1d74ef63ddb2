package main

import "github.com/urfave/cli/v2"

var (
	InputFlag = cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "instance file (.yaml, .yml or .json); stdin when empty",
	}
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result to this file; the extension selects the format",
	}
	InputFormatFlag = cli.StringFlag{
		Name:  "input-format",
		Usage: "encoding of an instance read from stdin: yaml or json",
		Value: "yaml",
	}
	OutputFormatFlag = cli.StringFlag{
		Name:  "output-format",
		Usage: "encoding of the result written to stdout: yaml or json",
		Value: "yaml",
	}
	PriorityKeyFlag = cli.StringFlag{
		Name:  "priority-key",
		Usage: "vertex attribute ranking the vertices: \"priority\" or a name under a vertex's attrs",
		Value: "priority",
	}
	SolutionFlag = cli.StringFlag{
		Name:     "solution",
		Aliases:  []string{"s"},
		Usage:    "solution file to score",
		Required: true,
	}
	TableFlag = cli.BoolFlag{
		Name:  "table",
		Usage: "print a summary table instead of the encoded solution",
	}
	LogLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "panic, fatal, error, warn, info, debug or trace",
		Value:   "info",
	}
	VerticesFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of vertices",
		Value: 10,
	}
	ProbabilityFlag = cli.Float64Flag{
		Name:  "p",
		Usage: "edge probability of the G(n, p) graph",
		Value: 0.3,
	}
	ClassesFlag = cli.IntFlag{
		Name:  "classes",
		Usage: "number of priority classes, drawn uniformly from [1, classes]",
		Value: 3,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed",
		Value: 1,
	}
)
