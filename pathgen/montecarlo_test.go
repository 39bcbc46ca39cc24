// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathgen

import (
	"math/rand"
	"testing"

	"github.com/kortschak/scara/scaraconfig"
	"github.com/kortschak/scara/scgraph"
)

func TestMonteCarloNoAnchorsReturnsNil(t *testing.T) {
	cfg := scaraconfig.Default()
	if got := MonteCarlo(map[string]*scgraph.Node{}, 0, cfg); got != nil {
		t.Errorf("MonteCarlo() = %v, want nil", got)
	}
}

func TestMonteCarloReachesTarget(t *testing.T) {
	cfg := scaraconfig.Default()
	cfg.MinMCPaths = 5
	cfg.MaxWalkNodes = 8

	start := &scgraph.Node{Kind: scgraph.ReadKind, Name: "R1"}
	end := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "C1"}
	e := &scgraph.Edge{StartNode: start, EndNode: end, OS: 1, ES: 1}
	start.OutEdges = []*scgraph.Edge{e}

	anchors := map[string]*scgraph.Node{"R1": start}
	paths := MonteCarlo(anchors, 0, cfg)
	if len(paths) != cfg.MinMCPaths {
		t.Fatalf("MonteCarlo() returned %d paths, want %d", len(paths), cfg.MinMCPaths)
	}
	for _, p := range paths {
		if len(p) != 1 || p[0] != e {
			t.Errorf("MonteCarlo() path = %v, want [%v]", p, e)
		}
	}
}

func TestMonteCarloRespectsExistingFloor(t *testing.T) {
	cfg := scaraconfig.Default()
	cfg.MinMCPaths = 2

	start := &scgraph.Node{Kind: scgraph.ReadKind, Name: "R1"}
	end := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "C1"}
	e := &scgraph.Edge{StartNode: start, EndNode: end, OS: 1, ES: 1}
	start.OutEdges = []*scgraph.Edge{e}

	anchors := map[string]*scgraph.Node{"R1": start}
	paths := MonteCarlo(anchors, 10, cfg)
	if len(paths) != 10 {
		t.Fatalf("MonteCarlo() returned %d paths, want 10 (existing count exceeds MinMCPaths)", len(paths))
	}
}

func TestMonteCarloReproducibleWithFixedSeed(t *testing.T) {
	cfg := scaraconfig.Default()
	cfg.MinMCPaths = 20
	cfg.RNGSeed = 7

	a := &scgraph.Node{Kind: scgraph.ReadKind, Name: "A"}
	b := &scgraph.Node{Kind: scgraph.ReadKind, Name: "B"}
	end := &scgraph.Node{Kind: scgraph.AnchorKind, Name: "C1"}
	toEnd := &scgraph.Edge{StartNode: a, EndNode: end, OS: 3, ES: 3}
	toB := &scgraph.Edge{StartNode: a, EndNode: b, OS: 1, ES: 1}
	bToEnd := &scgraph.Edge{StartNode: b, EndNode: end, OS: 1, ES: 1}
	a.OutEdges = []*scgraph.Edge{toEnd, toB}
	b.OutEdges = []*scgraph.Edge{bToEnd}

	anchors := map[string]*scgraph.Node{"A": a, "B": b}

	run := func() []Path { return MonteCarlo(anchors, 0, cfg) }
	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("path counts differ across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("path %d length differs: %d vs %d", i, len(first[i]), len(second[i]))
		}
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("path %d edge %d differs between runs with the same seed", i, j)
			}
		}
	}
}

func TestSampleEdgeSingleEdgeShortCircuits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	end := &scgraph.Node{Name: "C1"}
	e := &scgraph.Edge{EndNode: end, OS: 0}
	if got := sampleEdge([]*scgraph.Edge{e}, rng); got != e {
		t.Errorf("sampleEdge() = %v, want the only edge", got)
	}
}

func TestSampleEdgeZeroWeightFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e1 := &scgraph.Edge{EndNode: &scgraph.Node{Name: "A"}, OS: 0}
	e2 := &scgraph.Edge{EndNode: &scgraph.Node{Name: "B"}, OS: 0}
	got := sampleEdge([]*scgraph.Edge{e1, e2}, rng)
	if got != e1 && got != e2 {
		t.Errorf("sampleEdge() = %v, want one of the candidate edges", got)
	}
}
