// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathgen walks the overlap graph to produce anchor-to-anchor
// paths, by deterministic max-OS and max-ES greedy walks and by a
// Monte-Carlo stochastic walk (spec.md §4.3, C4).
package pathgen

import "github.com/kortschak/scara/scgraph"

// Path is a non-empty ordered sequence of edges such that for every
// adjacent pair (e[i], e[i+1]), e[i].EndNode == e[i+1].StartNode
// (spec.md §3).
type Path []*scgraph.Edge

// StartNode is the first edge's start node.
func (p Path) StartNode() *scgraph.Node { return p[0].StartNode }

// EndNode is the last edge's end node.
func (p Path) EndNode() *scgraph.Node { return p[len(p)-1].EndNode }

// Reverse returns the path walked on the opposite strand: the edge
// list inverted, with each edge replaced by its reverse-complement
// Mirror (spec.md §3 "Reversed path"). Reversing twice returns a path
// equal edge-for-edge to the original, since Mirror is its own
// inverse.
func (p Path) Reverse() Path {
	r := make(Path, len(p))
	for i, e := range p {
		r[len(p)-1-i] = e.Mirror
	}
	return r
}

// Direction is RIGHT iff QES2 > QES1 on the path's first edge
// (spec.md §3 PathInfo); LEFT paths are normalised to RIGHT form
// before grouping (spec.md §4.4 step 1).
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Right {
		return "RIGHT"
	}
	return "LEFT"
}

func (p Path) direction() Direction {
	first := p[0]
	if first.QES2 > first.QES1 {
		return Right
	}
	return Left
}
