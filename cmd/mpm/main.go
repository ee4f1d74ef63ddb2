// Command mpm solves, scores and generates maximum priority matching
// instances stored as YAML or JSON.
//
//	mpm random --n 12 --p 0.3 --seed 7 -o inst.yaml
//	mpm solve -i inst.yaml --table
//	mpm score -i inst.yaml -s sol.yaml
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "Maximum Priority Matching",
		HelpName: "mpm",
		Usage:    "match vertices of an undirected graph, favouring high-priority vertices",
		Flags: []cli.Flag{
			&LogLevelFlag,
		},
		Commands: []*cli.Command{
			&solveCommand,
			&scoreCommand,
			&randomCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
