// Package dijkstra implements a single-source, single-target shortest-path
// search over a core.Graph whose edge payloads are numeric weights.
//
// Notes on implementation choices:
//
//   - Pending nodes live in buckets keyed by tentative Distance; the smallest
//     bucket is extracted whole and every member is finalized together.
//   - All nodes start in the Infinity bucket and the start node in the Min
//     bucket. Extracting the Infinity bucket means the target is unreachable.
//   - The search stops as soon as the target's bucket is extracted.
//   - Predecessors are recorded on strict improvement during relaxation and
//     the path is rebuilt by walking them back from the target.
//   - Negative edge weights are not rejected; results may be incorrect when
//     they are present.
package dijkstra

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoctools/core"
)

// ShortestPath returns the length of a shortest path from start to target in
// g and the path itself, ordered start→target inclusive.
//
// Returns:
//
//   - dist: total edge weight along the path (zero when start == target).
//   - path: node IDs from start to target.
//   - ok:   false if target is unreachable from start.
//
// Panics (wrapping core.ErrPreconditionViolated) if g is nil or if start or
// target is not a node of g, and (wrapping core.ErrInvariantViolated) if the
// predecessor chain cannot be walked back to start.
//
// Complexity:
//
//   - Time:  O(V + E log B) where B is the number of distinct distances.
//   - Space: O(V).
func ShortestPath[ID comparable, N any, E core.Weight](g *core.Graph[ID, N, E], start, target ID, opts ...Option) (dist E, path []ID, ok bool) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		panic(fmt.Errorf("%w: %w", core.ErrPreconditionViolated, ErrNilGraph))
	}
	if !g.HasNode(start) {
		panic(fmt.Errorf("%w: dijkstra: start node %v does not exist", core.ErrPreconditionViolated, start))
	}
	if !g.HasNode(target) {
		panic(fmt.Errorf("%w: dijkstra: target node %v does not exist", core.ErrPreconditionViolated, target))
	}
	var less func(a, b ID) bool
	if cfg.TieBreak != nil {
		fn, isFn := cfg.TieBreak.(func(a, b ID) bool)
		if !isFn {
			panic(fmt.Errorf("%w: %w: got %T", core.ErrPreconditionViolated, ErrTieBreakType, cfg.TieBreak))
		}
		less = fn
	}

	// 3) Run.
	r := &runner[ID, N, E]{
		g:         g,
		start:     start,
		target:    target,
		less:      less,
		log:       cfg.Logger,
		visited:   make(map[ID]Distance[E], g.NodeCount()),
		unvisited: make(map[ID]Distance[E], g.NodeCount()),
		prev:      make(map[ID]ID, g.NodeCount()),
		queue:     newBucketQueue[ID, E](g.NodeCount()),
	}
	r.init()
	if !r.process() {
		return dist, nil, false
	}

	// 4) Rebuild the path.
	dist, _ = r.visited[target].Value()

	return dist, r.path(), true
}

// runner holds the mutable state for a single search.
type runner[ID comparable, N any, E core.Weight] struct {
	g      *core.Graph[ID, N, E]
	start  ID
	target ID
	less   func(a, b ID) bool
	log    zerolog.Logger

	visited   map[ID]Distance[E] // finalized distances
	unvisited map[ID]Distance[E] // tentative distances
	prev      map[ID]ID          // predecessor on the best known route
	queue     *bucketQueue[ID, E]
}

// init files every node under Infinity and the start node under Min.
func (r *runner[ID, N, E]) init() {
	inf := Infinity[E]()
	for id := range r.g.Nodes() {
		if id == r.start {
			continue
		}
		r.unvisited[id] = inf
		r.queue.add(id, inf)
	}
	r.unvisited[r.start] = Min[E]()
	r.queue.add(r.start, Min[E]())
}

// process extracts buckets in distance order until the target is finalized
// (true) or the remaining nodes are unreachable (false).
func (r *runner[ID, N, E]) process() bool {
	for {
		d, bucket, ok := r.queue.popMin()
		if !ok || d.IsInfinite() {
			r.log.Debug().Int("visited", len(r.visited)).Msg("target unreachable")
			return false
		}
		r.log.Debug().Stringer("distance", d).Int("size", len(bucket)).Msg("bucket")

		for id := range bucket {
			r.visited[id] = d
			delete(r.unvisited, id)
		}
		if _, hit := bucket[r.target]; hit {
			return true
		}
		for id := range bucket {
			r.relax(id, d)
		}
	}
}

// relax offers every unvisited neighbor of u the route through u.
func (r *runner[ID, N, E]) relax(u ID, du Distance[E]) {
	for v, w := range r.g.EdgesFor(u) {
		if _, done := r.visited[v]; done {
			continue
		}
		cur := r.unvisited[v]
		cand := du.Add(*w)
		switch c := cand.Compare(cur); {
		case c < 0:
			r.queue.remove(v, cur)
			r.queue.add(v, cand)
			r.unvisited[v] = cand
			r.prev[v] = u
		case c == 0 && r.less != nil && r.less(u, r.prev[v]):
			r.prev[v] = u
		}
	}
}

// path walks the predecessor chain from target back to start.
func (r *runner[ID, N, E]) path() []ID {
	path := []ID{r.target}
	for cur := r.target; cur != r.start; {
		p, ok := r.prev[cur]
		if !ok {
			panic(fmt.Errorf("%w: dijkstra: no predecessor recorded for %v", core.ErrInvariantViolated, cur))
		}
		if len(path) > len(r.visited) {
			panic(fmt.Errorf("%w: dijkstra: predecessor cycle through %v", core.ErrInvariantViolated, cur))
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}
