// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scgraph builds the directed overlap graph of anchor (contig)
// and read nodes, materialising usable overlaps into edges (spec.md
// §3, §4.2, C3).
package scgraph

import "github.com/kortschak/scara/seqstore"

// Kind distinguishes an anchor (contig) node from a read node.
type Kind int

const (
	AnchorKind Kind = iota
	ReadKind
)

func (k Kind) String() string {
	if k == AnchorKind {
		return "ANCHOR"
	}
	return "READ"
}

// Strand is the orientation a Node represents: the sequence as
// originally given, or its reverse complement.
type Strand int

const (
	Fwd Strand = iota
	RC
)

func (s Strand) String() string {
	if s == Fwd {
		return "FWD"
	}
	return "RC"
}

// Node is a graph vertex wrapping one strand of one sequence (spec.md
// §3). Every contig and every read produces exactly two nodes.
type Node struct {
	id int64

	Kind   Kind
	Strand Strand
	Seq    *seqstore.Sequence
	// Name is the node's display name: the sequence ID, with "_RC"
	// appended for the reverse-complement node.
	Name string

	// OutEdges holds this node's outgoing edges, populated by Build.
	// A node with no outgoing edges is isolated.
	OutEdges []*Edge
}

// ID satisfies gonum.org/v1/gonum/graph.Node.
func (n *Node) ID() int64 { return n.id }

// Isolated reports whether n has no outgoing edges.
func (n *Node) Isolated() bool { return len(n.OutEdges) == 0 }

// RCName returns the name of n's reverse-complement counterpart: it
// strips the "_RC" suffix if present, or appends it otherwise.
func RCName(name string) string {
	const suffix = "_RC"
	if len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name + suffix
}
