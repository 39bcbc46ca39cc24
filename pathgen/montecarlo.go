// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathgen

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/kortschak/scara/scaraconfig"
	"github.com/kortschak/scara/scgraph"
)

// MonteCarlo repeatedly samples random walks, each starting at a
// uniformly chosen anchor with outgoing edges and at every step
// choosing an outgoing edge with probability proportional to its OS,
// until the pool holds at least max(cfg.MinMCPaths, existing)
// successful paths (spec.md §4.3(c)). Sampling is driven by
// gonum.org/v1/gonum/stat/sampleuv.Weighted, seeded from cfg.RNGSeed
// so that repeated runs with the same seed are reproducible (spec.md
// §8 S6).
func MonteCarlo(anchors map[string]*scgraph.Node, existing int, cfg scaraconfig.Config) []Path {
	starts := sortedAnchors(anchors)
	if len(starts) == 0 {
		return nil
	}

	target := cfg.MinMCPaths
	if existing > target {
		target = existing
	}

	rng := rand.New(rand.NewSource(cfg.RNGSeed))

	var paths []Path
	// A failed sample (dead-end, cycle, length cap) is discarded and
	// does not count toward target; runaway inputs are bounded by the
	// same MaxWalkNodes cap each individual walk already enforces, so
	// this loop always terminates in practice, bounded by a generous
	// multiple of target to guard pathological all-isolated graphs.
	maxAttempts := (target + len(starts)) * 64
	for attempt := 0; len(paths) < target && attempt < maxAttempts; attempt++ {
		start := starts[rng.Intn(len(starts))]
		if p, ok := mcWalk(start, rng, cfg); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

func mcWalk(start *scgraph.Node, rng *rand.Rand, cfg scaraconfig.Config) (p Path, ok bool) {
	visited := map[*scgraph.Node]bool{start: true}
	n := start
	for len(p)+1 < cfg.MaxWalkNodes {
		if len(n.OutEdges) == 0 {
			return nil, false
		}
		e := sampleEdge(n.OutEdges, rng)
		if visited[e.EndNode] {
			return nil, false
		}
		p = append(p, e)
		n = e.EndNode
		visited[n] = true
		if n.Kind == scgraph.AnchorKind {
			return p, true
		}
	}
	return nil, false
}

// sampleEdge picks one of edges with probability proportional to OS.
// Edges are sorted by end-node name first so that, for a fixed rng
// state, the sample is a deterministic function of that state (spec.md
// §5 "Ordering guarantees").
func sampleEdge(edges []*scgraph.Edge, rng *rand.Rand) *scgraph.Edge {
	if len(edges) == 1 {
		return edges[0]
	}
	ordered := append([]*scgraph.Edge(nil), edges...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].EndNode.Name < ordered[j].EndNode.Name })

	weights := make([]float64, len(ordered))
	var total float64
	for i, e := range ordered {
		w := e.OS
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		return ordered[rng.Intn(len(ordered))]
	}

	w := sampleuv.NewWeighted(weights, rng)
	i, ok := w.Take()
	if !ok {
		return ordered[rng.Intn(len(ordered))]
	}
	return ordered[i]
}
