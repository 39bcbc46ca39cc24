// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathgen

// Info is a cached derived view over a Path (spec.md §3 PathInfo).
type Info struct {
	Path Path

	StartNodeName, EndNodeName string
	Direction                  Direction
	NumNodes                   int

	// Length is the sum of each edge's prefix contribution: the bases
	// the path actually adds before its final anchor (spec.md §3
	// "total bases").
	Length int

	// Length2 is an alternate length computed from each edge's
	// end-side aligned extent. It is diagnostic only and never used
	// for tie-breaking (spec.md §9 Open questions).
	Length2 int

	AvgSI float64
}

// NewInfo computes the PathInfo for p, normalising direction to RIGHT
// (spec.md §4.4 step 1): a LEFT path is reversed before its fields are
// derived, so every Info returned by this function is RIGHT-oriented.
func NewInfo(p Path) Info {
	if p.direction() == Left {
		p = p.Reverse()
	}
	info := Info{
		Path:          p,
		StartNodeName: p.StartNode().Name,
		EndNodeName:   p.EndNode().Name,
		Direction:     Right,
		NumNodes:      len(p) + 1,
	}
	var siSum float64
	for _, e := range p {
		info.Length += e.PrefixLen()
		info.Length2 += e.EEnd - e.EStart
		siSum += e.SI
	}
	info.AvgSI = siSum / float64(len(p))
	return info
}
