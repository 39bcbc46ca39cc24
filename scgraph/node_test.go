// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scgraph

import "testing"

func TestRCName(t *testing.T) {
	for _, test := range []struct{ in, want string }{
		{"C1", "C1_RC"},
		{"C1_RC", "C1"},
		{"", "_RC"},
	} {
		if got := RCName(test.in); got != test.want {
			t.Errorf("RCName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestRCNameInvolution(t *testing.T) {
	for _, name := range []string{"C1", "read_42", "C1_RC"} {
		if got := RCName(RCName(name)); got != name {
			t.Errorf("RCName(RCName(%q)) = %q, want %q", name, got, name)
		}
	}
}

func TestNodeIsolated(t *testing.T) {
	n := &Node{id: 0, Kind: AnchorKind, Strand: Fwd, Name: "C1"}
	if !n.Isolated() {
		t.Error("new node should be isolated")
	}
	n.OutEdges = append(n.OutEdges, &Edge{StartNode: n})
	if n.Isolated() {
		t.Error("node with an outgoing edge should not be isolated")
	}
}

func TestKindAndStrandString(t *testing.T) {
	if AnchorKind.String() != "ANCHOR" || ReadKind.String() != "READ" {
		t.Errorf("Kind.String() = %q/%q, want ANCHOR/READ", AnchorKind, ReadKind)
	}
	if Fwd.String() != "FWD" || RC.String() != "RC" {
		t.Errorf("Strand.String() = %q/%q, want FWD/RC", Fwd, RC)
	}
}
