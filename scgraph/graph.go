// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scgraph

import (
	"sort"

	"github.com/biogo/store/interval"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/kortschak/scara/overlap"
	"github.com/kortschak/scara/scaraconfig"
	"github.com/kortschak/scara/seqstore"
)

// Stats counts nodes and edges by category as the graph is built,
// mirroring the load/graph summary counters the original C++
// scaffolder prints after each phase (SBridger::printData,
// SBridger::printGraph).
type Stats struct {
	NumAnchors, NumReads int

	// NumAREdges, NumRREdges count usable anchor-read and read-read
	// edges respectively, after deduplication.
	NumAREdges, NumRREdges int

	NumContained, NumShort, NumLowQual, NumZeroExt int

	NumIsolatedAnchors, NumIsolatedReads int
}

// Graph is the directed overlap graph of anchor and read nodes
// (spec.md §3, C3). It embeds a gonum weighted directed graph so it
// can be walked and sanity-checked with gonum.org/v1/gonum/graph/topo,
// following the thresholdGraph embedding pattern used by
// github.com/kortschak/loopy's cmd/press; unlike thresholdGraph, scara
// never filters edges by weight at traversal time, so no method
// override is needed here.
type Graph struct {
	*simple.WeightedDirectedGraph

	AnchorNodes map[string]*Node
	ReadNodes   map[string]*Node

	Stats Stats

	nextID int64
}

// SortedNodes returns every node in g ordered by name, for diagnostics
// and tests that need a stable traversal order (spec.md §5 "Ordering
// guarantees"). It follows the same iterator.NewOrderedNodes approach
// github.com/kortschak/loopy's cmd/press uses in thresholdGraph.From
// to hand back a graph.Nodes in a chosen order rather than the
// backing map's nondeterministic one.
func (g *Graph) SortedNodes() graph.Nodes {
	all := make(map[string]*Node, len(g.AnchorNodes)+len(g.ReadNodes))
	for name, n := range g.AnchorNodes {
		all[name] = n
	}
	for name, n := range g.ReadNodes {
		all[name] = n
	}
	var names []string
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	nodes := make([]graph.Node, len(names))
	for i, name := range names {
		nodes[i] = all[name]
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *Graph) newNode(kind Kind, strand Strand, seq *seqstore.Sequence, name string) *Node {
	n := &Node{id: g.nextID, Kind: kind, Strand: strand, Seq: seq, Name: name}
	g.nextID++
	g.AddNode(n)
	return n
}

// Build constructs the overlap graph from the contig and read stores
// and the two PAF-derived overlap sets (read-to-contig, read-to-read),
// per spec.md §4.2.
//
// Every sequence in contigs and reads produces two nodes, one per
// strand (step 1). Each Usable overlap is turned into a directed edge
// via createEdgesFromOverlap, re-classified at the edge level (step
// 3), and deduplicated against other edges sharing the same
// (StartNode, EndNode) pair whose aligned source intervals physically
// overlap, keeping only the highest-OS edge among them (step 4) using
// github.com/biogo/store/interval's IntTree, the same structure
// github.com/kortschak/loopy's cmd/press-global uses to deduplicate
// overlapping reefer-event intervals. Isolated nodes are counted but
// not removed (step 5): a node with no outgoing edges can still be the
// end node of a path in C4, though no walk starts from it.
//
// Build does not retain the input Overlap slices or Store contents
// beyond what Node.Seq and Edge geometry need; callers may discard
// their own references afterward. Go's garbage collector reclaims
// anything Build does not keep reachable, so there is no explicit
// release step analogous to the original C++ implementation's freeing
// of its per-phase buffers.
func Build(contigs, reads *seqstore.Store, r2c, r2r []*overlap.Overlap, cfg scaraconfig.Config) (*Graph, error) {
	g := &Graph{
		WeightedDirectedGraph: simple.NewWeightedDirectedGraph(0, 0),
		AnchorNodes:           make(map[string]*Node),
		ReadNodes:             make(map[string]*Node),
	}

	addPair := func(store *seqstore.Store, kind Kind, dst map[string]*Node, counter *int) {
		var ids []string
		store.Range(func(s *seqstore.Sequence) { ids = append(ids, s.ID) })
		sort.Strings(ids)
		for _, id := range ids {
			s, _ := store.Get(id)
			fwd := g.newNode(kind, Fwd, s, id)
			rc := g.newNode(kind, RC, s, RCName(id))
			dst[fwd.Name] = fwd
			dst[rc.Name] = rc
			*counter++
		}
	}
	addPair(contigs, AnchorKind, g.AnchorNodes, &g.Stats.NumAnchors)
	addPair(reads, ReadKind, g.ReadNodes, &g.Stats.NumReads)

	type candidate struct {
		e   *Edge
		key string
	}
	var candidates []candidate

	process := func(ov *overlap.Overlap, queryNodes, targetNodes map[string]*Node) {
		class := ov.Classify(cfg)
		switch class {
		case overlap.Contained:
			g.Stats.NumContained++
			return
		case overlap.Short:
			g.Stats.NumShort++
			return
		case overlap.LowQual:
			g.Stats.NumLowQual++
			return
		case overlap.ZeroExt:
			g.Stats.NumZeroExt++
			return
		}

		for _, e := range createEdgesFromOverlap(ov, queryNodes, targetNodes) {
			if e.Classify(cfg) != Usable {
				g.Stats.NumZeroExt++
				continue
			}
			key := e.StartNode.Name + "\x00" + e.EndNode.Name
			candidates = append(candidates, candidate{e: e, key: key})
		}
	}

	for _, ov := range r2c {
		process(ov, g.ReadNodes, g.AnchorNodes)
	}
	for _, ov := range r2r {
		process(ov, g.ReadNodes, g.ReadNodes)
	}

	// Deduplicate: within each (StartNode, EndNode) key, candidates
	// whose aligned source intervals overlap are competing
	// descriptions of the same join; keep only the highest-OS one.
	byKey := make(map[string][]*Edge)
	for _, c := range candidates {
		byKey[c.key] = append(byKey[c.key], c.e)
	}

	var keys []string
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		edges := byKey[k]
		kept := dedupEdges(edges)
		sort.Slice(kept, func(i, j int) bool { return kept[i].OS > kept[j].OS })
		for _, e := range kept {
			g.SetWeightedEdge(e)
			e.StartNode.OutEdges = append(e.StartNode.OutEdges, e)
			if e.StartNode.Kind == AnchorKind || e.EndNode.Kind == AnchorKind {
				g.Stats.NumAREdges++
			} else {
				g.Stats.NumRREdges++
			}
		}
	}

	for _, n := range g.AnchorNodes {
		if n.Isolated() {
			g.Stats.NumIsolatedAnchors++
		}
	}
	for _, n := range g.ReadNodes {
		if n.Isolated() {
			g.Stats.NumIsolatedReads++
		}
	}

	return g, nil
}

// createEdgesFromOverlap turns a Usable overlap into the one or two
// directed edges it induces (spec.md §4.2 step 2): the edge in the
// direction Overlap.Direction names, and, when both endpoints have
// strand twins present (always true here, since every sequence has
// both a FWD and RC node), that edge's reverse-complement mirror -
// the same edge walked from the other pair of strands.
//
// queryNodes and targetNodes are the node maps the overlap's QName and
// TName are looked up in respectively (for a read-to-contig overlap,
// queryNodes is the read map and targetNodes the anchor map; for
// read-to-read, both are the read map). Direction decides which side
// becomes the edge's start, independent of which was query or target.
func createEdgesFromOverlap(ov *overlap.Overlap, queryNodes, targetNodes map[string]*Node) []*Edge {
	fromQuery, prefix, ok := ov.Direction()
	if !ok || prefix <= 0 {
		return nil
	}

	// A reverse alignment matches the query against the target's
	// reverse complement, so the target side is the target's RC node,
	// with its aligned interval in that strand's coordinates.
	tName, tb, te := ov.TName, ov.TB, ov.TE
	if ov.Reverse {
		tName, tb, te = RCName(ov.TName), ov.TLen-ov.TE, ov.TLen-ov.TB
	}

	var (
		startName, endName   string
		sStart, sEnd         int
		eStart, eEnd         int
		sLen, eLen           int
		qes1, qes2           int
		startNodes, endNodes map[string]*Node
	)
	if fromQuery {
		startName, sStart, sEnd, sLen = ov.QName, ov.QB, ov.QE, ov.QLen
		endName, eStart, eEnd, eLen = tName, tb, te, ov.TLen
		qes1, qes2 = ov.QES1, ov.QES2
		startNodes, endNodes = queryNodes, targetNodes
	} else {
		startName, sStart, sEnd, sLen = tName, tb, te, ov.TLen
		endName, eStart, eEnd, eLen = ov.QName, ov.QB, ov.QE, ov.QLen
		qes1, qes2 = ov.TES1, ov.TES2
		startNodes, endNodes = targetNodes, queryNodes
	}

	start, sok := startNodes[startName]
	end, eok := endNodes[endName]
	if !sok || !eok {
		return nil
	}

	direct := &Edge{
		StartNode: start, EndNode: end,
		SStart: sStart, SEnd: sEnd,
		EStart: eStart, EEnd: eEnd,
		SLen: sLen, ELen: eLen,
		QES1: qes1, QES2: qes2,
		OS: ov.OS(), ES: ov.ES(), SI: ov.SI,
	}

	// Every overlap also induces a mirror edge walked from the far
	// node's RC strand back to the near node's RC strand: reverse
	// complementing both sequences swaps which end is which but
	// describes the identical join (spec.md §4.2 step 2, "one or two
	// directed edges per overlap").
	startRC, sok := startNodes[RCName(startName)]
	endRC, eok := endNodes[RCName(endName)]
	if !sok || !eok {
		return []*Edge{direct}
	}
	mirror := &Edge{
		StartNode: endRC, EndNode: startRC,
		SStart: eLen - eEnd, SEnd: eLen - eStart,
		EStart: sLen - sEnd, EEnd: sLen - sStart,
		SLen: eLen, ELen: sLen,
		QES1: qes2, QES2: qes1,
		OS: ov.OS(), ES: ov.ES(), SI: ov.SI,
	}
	direct.Mirror, mirror.Mirror = mirror, direct
	return []*Edge{direct, mirror}
}

// dedupEdges keeps, among edges sharing a (StartNode, EndNode) pair,
// only the highest-OS edge from each cluster of mutually overlapping
// source intervals, using an interval tree over StartNode coordinates
// exactly as github.com/kortschak/loopy's cmd/press-global deduplicates
// overlapping annotation intervals.
func dedupEdges(edges []*Edge) []*Edge {
	if len(edges) <= 1 {
		return edges
	}

	t := &interval.IntTree{}
	for i, e := range edges {
		t.Insert(edgeInterval{id: uintptr(i), edge: e}, true)
	}
	t.AdjustRanges()

	seen := make([]bool, len(edges))
	var kept []*Edge
	for i, e := range edges {
		if seen[i] {
			continue
		}
		hits := t.Get(edgeInterval{edge: e})
		best := e
		for _, h := range hits {
			j := int(h.(edgeInterval).id)
			seen[j] = true
			if edges[j].OS > best.OS {
				best = edges[j]
			}
		}
		kept = append(kept, best)
	}
	return kept
}

type edgeInterval struct {
	id   uintptr
	edge *Edge
}

func (i edgeInterval) ID() uintptr { return i.id }
func (i edgeInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.edge.SStart, End: i.edge.SEnd}
}
func (i edgeInterval) Overlap(b interval.IntRange) bool {
	return i.edge.SEnd > b.Start && i.edge.SStart < b.End
}
