// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathgen

import (
	"sort"

	"github.com/kortschak/scara/scaraconfig"
	"github.com/kortschak/scara/scgraph"
)

// rank picks the preferred outgoing edge among a node's candidates,
// implementing the tie-break chain of spec.md §4.3(a)/(b): primary
// score, then secondary score, then smaller end-node name.
type rank func(edges []*scgraph.Edge) *scgraph.Edge

func byOS(edges []*scgraph.Edge) *scgraph.Edge {
	return best(edges, func(e *scgraph.Edge) float64 { return e.OS }, func(e *scgraph.Edge) float64 { return e.ES })
}

func byES(edges []*scgraph.Edge) *scgraph.Edge {
	return best(edges, func(e *scgraph.Edge) float64 { return e.ES }, func(e *scgraph.Edge) float64 { return e.OS })
}

func best(edges []*scgraph.Edge, primary, secondary func(*scgraph.Edge) float64) *scgraph.Edge {
	choice := edges[0]
	for _, e := range edges[1:] {
		switch {
		case primary(e) > primary(choice):
			choice = e
		case primary(e) < primary(choice):
			continue
		case secondary(e) > secondary(choice):
			choice = e
		case secondary(e) < secondary(choice):
			continue
		case e.EndNode.Name < choice.EndNode.Name:
			choice = e
		}
	}
	return choice
}

// walk runs a single deterministic greedy walk from start, following
// pick at every step, guarding against cycles with a per-walk visited
// set (spec.md §9 "Cycle guard"), and capping length at
// cfg.MaxWalkNodes. It returns ok == false if the walk dead-ends
// before reaching an ANCHOR, revisits a node, or exceeds the cap.
func walk(start *scgraph.Node, pick rank, cfg scaraconfig.Config) (p Path, ok bool) {
	visited := map[*scgraph.Node]bool{start: true}
	n := start
	for len(p)+1 < cfg.MaxWalkNodes {
		if len(n.OutEdges) == 0 {
			return nil, false
		}
		e := pick(n.OutEdges)
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

// sortedAnchors returns anchor nodes with outgoing edges, in stable
// name order (spec.md §5 "Ordering guarantees").
func sortedAnchors(anchors map[string]*scgraph.Node) []*scgraph.Node {
	var names []string
	for name, n := range anchors {
		if len(n.OutEdges) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	nodes := make([]*scgraph.Node, len(names))
	for i, name := range names {
		nodes[i] = anchors[name]
	}
	return nodes
}

// MaxOS runs the deterministic max-overlap-score greedy walk from
// every anchor node with outgoing edges (spec.md §4.3(a)).
func MaxOS(anchors map[string]*scgraph.Node, cfg scaraconfig.Config) []Path {
	return walkAll(anchors, byOS, cfg)
}

// MaxES runs the deterministic max-extension-score greedy walk from
// every anchor node with outgoing edges (spec.md §4.3(b)).
func MaxES(anchors map[string]*scgraph.Node, cfg scaraconfig.Config) []Path {
	return walkAll(anchors, byES, cfg)
}

func walkAll(anchors map[string]*scgraph.Node, pick rank, cfg scaraconfig.Config) []Path {
	var paths []Path
	for _, n := range sortedAnchors(anchors) {
		if p, ok := walk(n, pick, cfg); ok {
			paths = append(paths, p)
		}
	}
	return paths
}
