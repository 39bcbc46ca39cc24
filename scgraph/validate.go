// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scgraph

import "gonum.org/v1/gonum/graph/topo"

// Cycles reports the directed cycles present in g. The overlap graph
// is allowed to contain cycles (a walk's own per-walk visited set is
// what guards against looping, not graph acyclicity), so this is a
// diagnostic used at VERBOSE logging and by tests checking that the
// strand-mirror construction in Build does not introduce cycles
// beyond what the input overlaps themselves imply.
func (g *Graph) Cycles() [][]int64 {
	cycles := topo.DirectedCyclesIn(g)
	out := make([][]int64, len(cycles))
	for i, c := range cycles {
		ids := make([]int64, len(c))
		for j, n := range c {
			ids[j] = n.ID()
		}
		out[i] = ids
	}
	return out
}
