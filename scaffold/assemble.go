// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"sort"

	"github.com/kortschak/scara/pathgen"
	"github.com/kortschak/scara/scaraconfig"
)

// Bucket sequentially assigns each info to the first existing group
// that accepts it, opening a new group when none does (spec.md §4.4
// step 2). Input order is the order the path generators produced
// infos in; Bucket does not reorder it.
func Bucket(infos []pathgen.Info, cfg scaraconfig.Config) []*Group {
	var groups []*Group
	for _, info := range infos {
		placed := false
		for _, g := range groups {
			if g.addPathInfo(info, cfg.LengthTolerance) {
				placed = true
				break
			}
		}
		if !placed {
			g := &Group{StartNodeName: info.StartNodeName, EndNodeName: info.EndNodeName}
			g.addPathInfo(info, cfg.LengthTolerance)
			groups = append(groups, g)
		}
	}
	return groups
}

// DiscardWeak drops groups with fewer than cfg.MinPathsinGroup member
// infos (spec.md §4.4 step 3).
func DiscardWeak(groups []*Group, cfg scaraconfig.Config) []*Group {
	var kept []*Group
	for _, g := range groups {
		if g.NumPaths >= cfg.MinPathsinGroup {
			kept = append(kept, g)
		}
	}
	return kept
}

// Winners keeps, for each distinct StartNodeName, the one group with
// the largest NumPaths, ties broken by higher AvgSI then smaller
// EndNodeName (spec.md §4.4 step 4).
func Winners(groups []*Group) []*Group {
	byStart := make(map[string]*Group)
	var starts []string
	for _, g := range groups {
		cur, ok := byStart[g.StartNodeName]
		if !ok {
			byStart[g.StartNodeName] = g
			starts = append(starts, g.StartNodeName)
			continue
		}
		if better(g, cur) {
			byStart[g.StartNodeName] = g
		}
	}
	sort.Strings(starts)
	winners := make([]*Group, len(starts))
	for i, s := range starts {
		winners[i] = byStart[s]
	}
	return winners
}

func better(a, b *Group) bool {
	switch {
	case a.NumPaths != b.NumPaths:
		return a.NumPaths > b.NumPaths
	case a.AvgSI != b.AvgSI:
		return a.AvgSI > b.AvgSI
	default:
		return a.EndNodeName < b.EndNodeName
	}
}

// Scaffold is an ordered chain of groups: group[k].EndNodeName ==
// group[k+1].StartNodeName (spec.md §3 Scaffold).
type Scaffold []*Group

// Chain sorts winners by NumPaths descending (ties by StartNodeName,
// for determinism) and greedily seeds and extends scaffolds from them
// (spec.md §4.4 step 5).
func Chain(winners []*Group) []Scaffold {
	ordered := append([]*Group(nil), winners...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].NumPaths != ordered[j].NumPaths {
			return ordered[i].NumPaths > ordered[j].NumPaths
		}
		return ordered[i].StartNodeName < ordered[j].StartNodeName
	})

	used := make(map[string]bool)
	placed := make(map[*Group]bool)

	var scaffolds []Scaffold
	for _, seed := range ordered {
		if placed[seed] {
			continue
		}
		if used[seed.StartNodeName] || used[seed.EndNodeName] {
			continue
		}
		s := Scaffold{seed}
		placed[seed] = true
		used[seed.StartNodeName] = true
		used[seed.EndNodeName] = true

		for {
			extended := false
			for _, w := range ordered {
				if placed[w] {
					continue
				}
				back := s[len(s)-1]
				front := s[0]
				switch {
				case w.StartNodeName == back.EndNodeName && !used[w.EndNodeName]:
					s = append(s, w)
					placed[w] = true
					used[w.EndNodeName] = true
					extended = true
				case w.EndNodeName == front.StartNodeName && !used[w.StartNodeName]:
					s = append(Scaffold{w}, s...)
					placed[w] = true
					used[w.StartNodeName] = true
					extended = true
				}
			}
			if !extended {
				break
			}
		}
		scaffolds = append(scaffolds, s)
	}
	return scaffolds
}

// Finalize replaces each group in each scaffold with its single best
// PathInfo (spec.md §4.4 step 7).
func Finalize(scaffolds []Scaffold) [][]pathgen.Info {
	out := make([][]pathgen.Info, len(scaffolds))
	for i, s := range scaffolds {
		infos := make([]pathgen.Info, len(s))
		for j, g := range s {
			infos[j] = g.Best()
		}
		out[i] = infos
	}
	return out
}
