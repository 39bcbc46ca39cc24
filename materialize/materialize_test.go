// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package materialize

import (
	"strings"
	"testing"

	"github.com/kortschak/scara/pathgen"
	"github.com/kortschak/scara/scaraerr"
	"github.com/kortschak/scara/scgraph"
	"github.com/kortschak/scara/seqstore"
)

func TestWriteTrivialChain(t *testing.T) {
	contigs := seqstore.NewStore()
	contigs.Put("C1", "AAAACCCC")
	contigs.Put("C2", "GGGGTTTT")

	c1 := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.Fwd, Name: "C1", Seq: &seqstore.Sequence{ID: "C1", Bases: "AAAACCCC"}}
	c2 := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.Fwd, Name: "C2", Seq: &seqstore.Sequence{ID: "C2", Bases: "GGGGTTTT"}}

	e := &scgraph.Edge{StartNode: c1, EndNode: c2, SStart: 4, EStart: 0}
	info := pathgen.Info{Path: pathgen.Path{e}, StartNodeName: "C1", EndNodeName: "C2"}

	var buf strings.Builder
	if err := Write(&buf, [][]pathgen.Info{{info}}, contigs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := ">Scaffold_1 C1 C2\nAAAAGGGGTTTT\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteEmitsUnusedContigsVerbatim(t *testing.T) {
	contigs := seqstore.NewStore()
	contigs.Put("C1", "ACGT")
	contigs.Put("C2", "TTTT")

	var buf strings.Builder
	if err := Write(&buf, nil, contigs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := ">C1\nACGT\n>C2\nTTTT\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteSkipsContigsPlacedInAScaffold(t *testing.T) {
	contigs := seqstore.NewStore()
	contigs.Put("C1", "AAAA")
	contigs.Put("C2", "TTTT")
	contigs.Put("C3", "GGGG")

	c1 := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.Fwd, Name: "C1", Seq: &seqstore.Sequence{ID: "C1", Bases: "AAAA"}}
	c2 := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.Fwd, Name: "C2", Seq: &seqstore.Sequence{ID: "C2", Bases: "TTTT"}}
	e := &scgraph.Edge{StartNode: c1, EndNode: c2, SStart: 4, EStart: 0}
	info := pathgen.Info{Path: pathgen.Path{e}, StartNodeName: "C1", EndNodeName: "C2"}

	var buf strings.Builder
	if err := Write(&buf, [][]pathgen.Info{{info}}, contigs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), ">C1\n") || strings.Contains(buf.String(), ">C2\n") {
		t.Error("Write() re-emitted a contig already placed in a scaffold")
	}
	if !strings.Contains(buf.String(), ">C3\nGGGG\n") {
		t.Error("Write() did not pass through the untouched contig C3")
	}
}

func TestWriteReverseComplementStrand(t *testing.T) {
	contigs := seqstore.NewStore()
	contigs.Put("C1", "AAAACCCC")
	contigs.Put("C2", "GGGGTTTT")
	seq1 := &seqstore.Sequence{ID: "C1", Bases: "AAAACCCC"}
	seq2 := &seqstore.Sequence{ID: "C2", Bases: "GGGGTTTT"}

	c1rc := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.RC, Name: "C1_RC", Seq: seq1}
	c2rc := &scgraph.Node{Kind: scgraph.AnchorKind, Strand: scgraph.RC, Name: "C2_RC", Seq: seq2}
	// On the RC strand, the sequence reads as its reverse complement;
	// a 4-base prefix is the reverse complement of the ORIGINAL
	// sequence's trailing 4 bases.
	e := &scgraph.Edge{StartNode: c1rc, EndNode: c2rc, SStart: 4, EStart: 0}
	info := pathgen.Info{Path: pathgen.Path{e}, StartNodeName: "C1_RC", EndNodeName: "C2_RC"}

	var buf strings.Builder
	if err := Write(&buf, [][]pathgen.Info{{info}}, contigs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	wantPrefix := seqstore.ReverseComplement("CCCC")
	wantSuffix := seqstore.ReverseComplement("GGGGTTTT")
	want := ">Scaffold_1 C1_RC C2_RC\n" + wantPrefix + wantSuffix + "\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestSpliceZeroPrefixIsClassificationMismatch(t *testing.T) {
	c1 := &scgraph.Node{Name: "C1", Strand: scgraph.Fwd, Seq: &seqstore.Sequence{ID: "C1", Bases: "ACGT"}}
	c2 := &scgraph.Node{Name: "C2", Strand: scgraph.Fwd, Seq: &seqstore.Sequence{ID: "C2", Bases: "TTTT"}}
	e := &scgraph.Edge{StartNode: c1, EndNode: c2, SStart: 0, EStart: 0}

	_, _, err := splice(pathgen.Path{e})
	if err == nil {
		t.Fatal("splice: got nil error for a non-positive prefix, want error")
	}
	if _, ok := err.(*scaraerr.ClassificationMismatch); !ok {
		t.Errorf("error type = %T, want *scaraerr.ClassificationMismatch", err)
	}
}

func TestConcatJoinsGroupsInOrder(t *testing.T) {
	c1 := &scgraph.Node{Name: "C1"}
	c2 := &scgraph.Node{Name: "C2"}
	c3 := &scgraph.Node{Name: "C3"}
	e1 := &scgraph.Edge{StartNode: c1, EndNode: c2}
	e2 := &scgraph.Edge{StartNode: c2, EndNode: c3}

	path := concat([]pathgen.Info{
		{Path: pathgen.Path{e1}},
		{Path: pathgen.Path{e2}},
	})
	if len(path) != 2 || path[0] != e1 || path[1] != e2 {
		t.Errorf("concat() = %v, want [e1, e2]", path)
	}
}
