// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffold buckets paths sharing endpoints into groups, picks
// a winning group per start anchor, chains winners into scaffolds,
// eliminates reverse-complement duplicate scaffolds, and selects the
// best PathInfo per group for materialisation (spec.md §4.4, C5).
package scaffold

import "github.com/kortschak/scara/pathgen"

// Group is a bucket of PathInfos sharing (StartNodeName, EndNodeName)
// within a length tolerance (spec.md §3 PathGroup).
type Group struct {
	StartNodeName, EndNodeName string

	Infos    []pathgen.Info
	NumPaths int

	// Length is the running mean of member infos' Length.
	Length float64

	// AvgSI is the running mean of member infos' AvgSI, used to break
	// ties during per-start-anchor winner selection (spec.md §4.4
	// step 4).
	AvgSI float64
}

// addPathInfo accepts info into g iff it shares g's endpoints and its
// Length lies within tol of g's running-mean Length, updating the
// running means on acceptance (spec.md §4.4 step 2).
func (g *Group) addPathInfo(info pathgen.Info, tol int) bool {
	if info.StartNodeName != g.StartNodeName || info.EndNodeName != g.EndNodeName {
		return false
	}
	if g.NumPaths > 0 {
		diff := info.Length - int(g.Length)
		if diff < 0 {
			diff = -diff
		}
		if diff > tol {
			return false
		}
	}
	n := float64(g.NumPaths)
	g.Length = (g.Length*n + float64(info.Length)) / (n + 1)
	g.AvgSI = (g.AvgSI*n + info.AvgSI) / (n + 1)
	g.NumPaths++
	g.Infos = append(g.Infos, info)
	return true
}

// Best returns the member Info with the highest AvgSI, ties broken by
// longer Length, then smaller EndNodeName (spec.md §4.4 step 7).
func (g *Group) Best() pathgen.Info {
	best := g.Infos[0]
	for _, info := range g.Infos[1:] {
		switch {
		case info.AvgSI > best.AvgSI:
			best = info
		case info.AvgSI < best.AvgSI:
			continue
		case info.Length > best.Length:
			best = info
		case info.Length < best.Length:
			continue
		case info.EndNodeName < best.EndNodeName:
			best = info
		}
	}
	return best
}
