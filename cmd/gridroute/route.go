package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoctools/chain"
	"github.com/katalvlaran/aoctools/dijkstra"
	"github.com/katalvlaran/aoctools/gridgraph"
)

var (
	ErrMarkerNotFound = errors.New("marker not found in grid")
	ErrNoRoute        = errors.New("target is unreachable from start")
)

// Result is the outcome of a route query.
type Result struct {
	Distance  int
	Path      []gridgraph.Pos // every cell, or only junctions when the graph was reduced
	Nodes     int             // nodes in the searched graph
	Collapsed int             // corridor cells removed before searching
}

// Solve reads a grid from r and finds the shortest route between the start
// and target markers.
func Solve(r io.Reader, cfg Config, logger zerolog.Logger) (Result, error) {
	grid, err := gridgraph.ParseRunes(r)
	if err != nil {
		return Result{}, fmt.Errorf("parsing grid: %w", err)
	}

	start, ok := grid.Find(func(c rune) bool { return c == cfg.StartRune() })
	if !ok {
		return Result{}, fmt.Errorf("start %q: %w", cfg.Start, ErrMarkerNotFound)
	}
	target, ok := grid.Find(func(c rune) bool { return c == cfg.TargetRune() })
	if !ok {
		return Result{}, fmt.Errorf("target %q: %w", cfg.Target, ErrMarkerNotFound)
	}

	conn := gridgraph.Conn4
	if cfg.Diagonal {
		conn = gridgraph.Conn8
	}
	passable := func(c rune) bool { return !strings.ContainsRune(cfg.Walls, c) }
	g := grid.ToGraph(passable, conn)
	logger.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("grid loaded")

	var res Result
	if cfg.Reduce {
		keep := func(p gridgraph.Pos) bool { return p == start || p == target }
		res.Collapsed = len(chain.Reduce(g, keep, chain.WithLogger(logger)))
	}
	res.Nodes = g.NodeCount()

	dist, path, ok := dijkstra.ShortestPath(g, start, target,
		dijkstra.WithTieBreak(readingOrder),
		dijkstra.WithLogger(logger),
	)
	if !ok {
		logger.Warn().
			Int("regions", len(grid.ConnectedComponents(passable, conn))).
			Msg("start and target lie in different regions")
		return res, fmt.Errorf("from %v to %v: %w", start, target, ErrNoRoute)
	}
	res.Distance, res.Path = dist, path
	logger.Info().Int("distance", dist).Int("waypoints", len(path)).Msg("route found")

	return res, nil
}

// readingOrder orders positions top to bottom, then left to right.
func readingOrder(a, b gridgraph.Pos) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func writeResult(w io.Writer, res Result) error {
	waypoints := make([]string, len(res.Path))
	for i, p := range res.Path {
		waypoints[i] = p.String()
	}
	_, err := fmt.Fprintf(w, "distance: %d\npath: %s\nsearched: %s nodes, %s corridor cells collapsed\n",
		res.Distance, strings.Join(waypoints, " -> "),
		humanize.Comma(int64(res.Nodes)), humanize.Comma(int64(res.Collapsed)))
	return err
}
