// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package materialize traverses each scaffold's winning path and
// splices the bases it names into a FASTA record, strand-corrected,
// then emits every contig that no scaffold touched verbatim (spec.md
// §4.5, C6).
package materialize

import (
	"fmt"
	"io"
	"sort"

	"github.com/kortschak/scara/pathgen"
	"github.com/kortschak/scara/scaraerr"
	"github.com/kortschak/scara/scgraph"
	"github.com/kortschak/scara/seqstore"
)

// Write emits one FASTA record per scaffold in scaffolds (each the
// concatenation of its groups' winning PathInfos, in order), followed
// by one record for every contig in contigs that no scaffold touched.
func Write(w io.Writer, scaffolds [][]pathgen.Info, contigs *seqstore.Store) error {
	used := make(map[string]bool)

	for k, infos := range scaffolds {
		path := concat(infos)
		if len(path) == 0 {
			continue
		}
		names, bases, err := splice(path)
		if err != nil {
			return err
		}
		markUsed(used, path)

		fmt.Fprintf(w, ">Scaffold_%d", k+1)
		for _, n := range names {
			fmt.Fprintf(w, " %s", n)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, bases)
	}

	var ids []string
	contigs.Range(func(s *seqstore.Sequence) { ids = append(ids, s.ID) })
	sort.Strings(ids)
	for _, id := range ids {
		if used[id] {
			continue
		}
		s, _ := contigs.Get(id)
		fmt.Fprintf(w, ">%s\n%s\n", s.ID, s.Bases)
	}
	return nil
}

// concat joins consecutive groups' winning paths into one long path
// spanning the whole scaffold: group[k].EndNodeName ==
// group[k+1].StartNodeName guarantees the edge lists are adjacent.
func concat(infos []pathgen.Info) pathgen.Path {
	var path pathgen.Path
	for _, info := range infos {
		path = append(path, info.Path...)
	}
	return path
}

// splice walks path, returning the ordered list of node names touched
// (start node of the first edge, then each edge's end node) and the
// concatenated, strand-corrected bases (spec.md §4.5).
func splice(path pathgen.Path) (names []string, bases string, err error) {
	names = append(names, path[0].StartNode.Name)
	var buf []byte
	for _, e := range path {
		prefixLen := e.PrefixLen()
		if prefixLen <= 0 {
			return nil, "", &scaraerr.ClassificationMismatch{
				StartNode: e.StartNode.Name, EndNode: e.EndNode.Name, PrefixLen: prefixLen,
			}
		}
		buf = append(buf, strandSlice(e.StartNode, 0, prefixLen)...)
		names = append(names, e.EndNode.Name)
	}
	last := path[len(path)-1].EndNode
	buf = append(buf, strandFull(last)...)
	return names, string(buf), nil
}

// strandSlice returns bases [start, end) of n's sequence as n's strand
// would read them: the literal slice if FWD, or the reverse complement
// of the corresponding region counted from the tail if RC (spec.md
// §4.5 "Per-edge slice").
func strandSlice(n *scgraph.Node, start, end int) []byte {
	if n.Strand == scgraph.Fwd {
		return []byte(n.Seq.Bases[start:end])
	}
	l := n.Seq.Len()
	return []byte(seqstore.ReverseComplement(n.Seq.Bases[l-end : l-start]))
}

// strandFull returns the node's entire sequence as its strand would
// read it (spec.md §4.5 "Final anchor").
func strandFull(n *scgraph.Node) []byte {
	if n.Strand == scgraph.Fwd {
		return []byte(n.Seq.Bases)
	}
	return []byte(seqstore.ReverseComplement(n.Seq.Bases))
}

// markUsed records the bare (FWD) name of every anchor node touched by
// path, whichever strand it was touched on, so the final unused-contig
// pass does not re-emit contigs already placed in a scaffold (spec.md
// §4.5 "Used-contig accounting"). Read nodes are not recorded.
func markUsed(used map[string]bool, path pathgen.Path) {
	mark := func(n *scgraph.Node) {
		if n.Kind != scgraph.AnchorKind {
			return
		}
		bare := n.Name
		if n.Strand == scgraph.RC {
			bare = scgraph.RCName(n.Name)
		}
		used[bare] = true
	}
	mark(path[0].StartNode)
	for _, e := range path {
		mark(e.EndNode)
	}
}
