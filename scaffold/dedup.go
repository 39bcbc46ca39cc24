// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"strings"

	"github.com/kortschak/scara/scaraerr"
	"github.com/kortschak/scara/scgraph"
)

// Dedup eliminates reverse-complement duplicate scaffolds, keeping the
// first-seen representative of each equivalence class (spec.md §4.4
// step 6). It returns an error if two distinct, non-twin scaffolds
// both claim the same anchor, whether under its FWD or its RC name.
func Dedup(scaffolds []Scaffold) ([]Scaffold, error) {
	var kept []Scaffold
	claimedBy := make(map[string]int) // bare anchor name -> index into kept

	for _, s := range scaffolds {
		if len(s) == 0 {
			return nil, &scaraerr.EmptyScaffold{Index: len(kept)}
		}

		dupOf := -1
		for i, k := range kept {
			if scaffoldsEqual(s, k) {
				dupOf = i
				break
			}
		}
		if dupOf >= 0 {
			continue
		}

		for _, g := range s {
			for _, name := range [...]string{g.StartNodeName, g.EndNodeName} {
				bare := bareName(name)
				if idx, ok := claimedBy[bare]; ok {
					if !scaffoldsEqual(s, kept[idx]) {
						return nil, &scaraerr.InvariantBreach{
							Reason: "anchor " + bare + " claimed by two distinct, non-twin scaffolds",
							Fatal:  true,
						}
					}
				}
			}
		}

		idx := len(kept)
		kept = append(kept, s)
		for _, g := range s {
			claimedBy[bareName(g.StartNodeName)] = idx
			claimedBy[bareName(g.EndNodeName)] = idx
		}
	}
	return kept, nil
}

// scaffoldsEqual implements spec.md §4.4 step 6's RC-twin test: S1 and
// S2 are equal iff they are the same length and, walked front-to-back
// on S1 and back-to-front on S2, each pair of groups are RC
// counterparts of one another with start/end swapped.
func scaffoldsEqual(s1, s2 Scaffold) bool {
	if len(s1) != len(s2) {
		return false
	}
	n := len(s1)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if s1[i].StartNodeName != scgraph.RCName(s2[j].EndNodeName) {
			return false
		}
		if s1[i].EndNodeName != scgraph.RCName(s2[j].StartNodeName) {
			return false
		}
	}
	return true
}

func bareName(name string) string {
	return strings.TrimSuffix(name, "_RC")
}
