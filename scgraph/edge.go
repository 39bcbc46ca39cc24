// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scgraph

import (
	"gonum.org/v1/gonum/graph"

	"github.com/kortschak/scara/overlap"
	"github.com/kortschak/scara/scaraconfig"
)

// Edge is a directed connection from StartNode to EndNode carrying the
// alignment geometry needed to splice sequence between them (spec.md
// §3). Edges are owned by their start node's OutEdges list; the
// originating Overlap is not retained (spec.md §3 Data model).
type Edge struct {
	StartNode, EndNode *Node

	// SStart, SEnd are the aligned interval on StartNode; EStart, EEnd
	// are the aligned interval on EndNode, both in each node's own
	// sequence coordinates (accounting for the node's strand).
	SStart, SEnd int
	EStart, EEnd int

	// SLen, ELen are the full lengths of StartNode's and EndNode's
	// sequences.
	SLen, ELen int

	// QES1, QES2 are the left/right extension lengths of StartNode:
	// the distance from its aligned interval to each of its own ends.
	QES1, QES2 int

	OS, ES, SI float64

	// Mirror is this edge's reverse-complement counterpart: the edge
	// induced by the same overlap when both endpoints are walked on
	// their opposite strand. Set by Build; nil only for edges created
	// outside it (e.g. in tests). Reversing a path maps each of its
	// edges to its Mirror in reverse order (spec.md §3 "Reversed
	// path"), rather than mutating an edge's own geometry in place.
	Mirror *Edge
}

// Class mirrors overlap.Class; edges are classified independently of
// their originating Overlap (spec.md §4.2 step 3), using the same
// taxonomy.
type Class = overlap.Class

const (
	Usable    = overlap.Usable
	Contained = overlap.Contained
	Short     = overlap.Short
	LowQual   = overlap.LowQual
	ZeroExt   = overlap.ZeroExt
)

// PrefixLen returns the portion of StartNode that precedes the region
// shared with EndNode: the slice of StartNode's sequence to emit
// before splicing in EndNode (spec.md §4.5).
func (e *Edge) PrefixLen() int { return e.SStart - e.EStart }

// Classify re-tests the edge against the configured thresholds,
// independently of the classification its originating overlap
// received (spec.md §4.2 step 3): an edge may reclassify to ZeroExt
// even when the source overlap was Usable, because SStart-EStart is
// computed after strand assignment.
func (e *Edge) Classify(cfg scaraconfig.Config) Class {
	// Containment and block-length/identity were already enforced at
	// the overlap level before any edge was considered a candidate;
	// only the directional extension can change sign here.
	if e.PrefixLen() <= 0 {
		return ZeroExt
	}
	return Usable
}

// From satisfies gonum.org/v1/gonum/graph.Edge.
func (e *Edge) From() graph.Node { return e.StartNode }

// To satisfies gonum.org/v1/gonum/graph.Edge.
func (e *Edge) To() graph.Node { return e.EndNode }

// ReversedEdge satisfies gonum.org/v1/gonum/graph.Edge.
func (e *Edge) ReversedEdge() graph.Edge {
	r := *e
	r.StartNode, r.EndNode = e.EndNode, e.StartNode
	r.SStart, r.SEnd, r.EStart, r.EEnd = e.EStart, e.EEnd, e.SStart, e.SEnd
	r.SLen, r.ELen = e.ELen, e.SLen
	return &r
}

// Weight satisfies gonum.org/v1/gonum/graph.WeightedEdge, reporting
// the overlap score as the edge weight.
func (e *Edge) Weight() float64 { return e.OS }
