// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathgen

import (
	"testing"

	"github.com/kortschak/scara/scgraph"
)

// chain builds a simple two-edge path A->B->C with reciprocal mirror
// edges C_RC->B_RC->A_RC, mimicking the strand-doubled shape Build
// produces.
func chain(t *testing.T) Path {
	t.Helper()
	a := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "A"}
	b := &scgraph.Node{Kind: scgraph.ReadKind, Name: "B"}
	c := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "C"}
	aRC := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "A_RC"}
	bRC := &scgraph.Node{Kind: scgraph.ReadKind, Name: "B_RC"}
	cRC := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "C_RC"}

	ab := &scgraph.Edge{StartNode: a, EndNode: b, QES1: 10, QES2: 0}
	bc := &scgraph.Edge{StartNode: b, EndNode: c, QES1: 5, QES2: 0}
	cbRC := &scgraph.Edge{StartNode: cRC, EndNode: bRC}
	baRC := &scgraph.Edge{StartNode: bRC, EndNode: aRC}
	ab.Mirror, baRC.Mirror = baRC, ab
	bc.Mirror, cbRC.Mirror = cbRC, bc

	return Path{ab, bc}
}

func TestPathStartEndNode(t *testing.T) {
	p := chain(t)
	if p.StartNode().Name != "A" {
		t.Errorf("StartNode() = %q, want A", p.StartNode().Name)
	}
	if p.EndNode().Name != "C" {
		t.Errorf("EndNode() = %q, want C", p.EndNode().Name)
	}
}

func TestPathReverse(t *testing.T) {
	p := chain(t)
	r := p.Reverse()
	if len(r) != len(p) {
		t.Fatalf("Reverse() length = %d, want %d", len(r), len(p))
	}
	if r.StartNode().Name != "C_RC" || r.EndNode().Name != "A_RC" {
		t.Errorf("Reverse() endpoints = %q -> %q, want C_RC -> A_RC", r.StartNode().Name, r.EndNode().Name)
	}
}

func TestPathReverseInvolution(t *testing.T) {
	p := chain(t)
	rr := p.Reverse().Reverse()
	if len(rr) != len(p) {
		t.Fatalf("double Reverse() length = %d, want %d", len(rr), len(p))
	}
	for i := range p {
		if rr[i] != p[i] {
			t.Errorf("double Reverse()[%d] = %v, want %v (edge-for-edge equal to original)", i, rr[i], p[i])
		}
	}
}

func TestPathDirection(t *testing.T) {
	p := chain(t)
	if p.direction() != Left {
		t.Errorf("direction() = %v, want Left when the first edge's QES1 (10) > QES2 (0)", p.direction())
	}

	right := Path{&scgraph.Edge{StartNode: p[0].StartNode, EndNode: p[0].EndNode, QES1: 0, QES2: 10}}
	if right.direction() != Right {
		t.Errorf("direction() = %v, want Right when QES2 > QES1", right.direction())
	}
}
