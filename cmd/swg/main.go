// SPDX-License-Identifier: MIT

// Command swg inspects and converts persisted weighted graphs.
//
// Usage:
//
//	swg stats <file>
//	swg convert [--to-directed|--to-undirected] [--compress] <in> <out>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/swgraph/core"
	"github.com/katalvlaran/swgraph/graphio"
)

const usage = `swg - weighted graph inspection and conversion

Usage:
  swg stats <file>
  swg convert [--to-directed|--to-undirected] [--compress] <in> <out>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "stats":
		err = runStats(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "swg: unknown command %q\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "swg: %v\n", err)
		os.Exit(1)
	}
}

// runStats prints the structural summary of a persisted graph.
func runStats(args []string) error {
	fs := pflag.NewFlagSet("stats", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("stats expects exactly one file argument")
	}

	g, err := graphio.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	n, m := g.VertexCount(), g.EdgeCount()
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}

	fmt.Printf("kind:      %s\n", kind)
	fmt.Printf("vertices:  %d\n", n)
	fmt.Printf("edges:     %d\n", m)
	fmt.Printf("density:   %.6f\n", density(g))

	if n > 0 {
		minDeg, maxDeg, err := degreeRange(g)
		if err != nil {
			return err
		}
		fmt.Printf("degree:    min %d, max %d\n", minDeg, maxDeg)
	}

	return nil
}

// runConvert rewrites a persisted graph, optionally switching variant
// and compression.
func runConvert(args []string) error {
	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	toDirected := fs.Bool("to-directed", false, "produce a directed graph")
	toUndirected := fs.Bool("to-undirected", false, "produce an undirected graph (opposite weights summed)")
	compress := fs.Bool("compress", false, "lz4-compress the edge section")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("convert expects <in> and <out> file arguments")
	}
	if *toDirected && *toUndirected {
		return errors.New("--to-directed and --to-undirected are mutually exclusive")
	}

	g, err := graphio.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	switch {
	case *toDirected && !g.Directed():
		if g, err = core.NewDirectedFromUndirected(g); err != nil {
			return err
		}
	case *toUndirected && g.Directed():
		if g, err = core.NewUndirectedFromDirected(g); err != nil {
			return err
		}
	}

	var opts []graphio.Option
	if *compress {
		opts = append(opts, graphio.WithCompression())
	}

	return graphio.WriteFile(fs.Arg(1), g, opts...)
}

// density is non-loop edges over possible non-loop edges, so a loopy
// graph never reports a density above 1. Zero for graphs too small to
// hold a non-loop edge.
func density(g *core.Graph) float64 {
	n := float64(g.VertexCount())
	if n < 2 {
		return 0
	}
	possible := n * (n - 1)
	if !g.Directed() {
		possible /= 2
	}
	edges := float64(g.EdgeCount() - g.Matrix().DiagonalNNZ())

	return edges / possible
}

// degreeRange scans all vertices for the minimum and maximum degree.
func degreeRange(g *core.Graph) (minDeg, maxDeg int, err error) {
	for v := 1; v <= g.VertexCount(); v++ {
		d, dErr := g.Degree(v)
		if dErr != nil {
			return 0, 0, dErr
		}
		if v == 1 || d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
	}

	return minDeg, maxDeg, nil
}
