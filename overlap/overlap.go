// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlap normalises a pairwise alignment between two
// sequences into the attributes the graph builder needs, and
// classifies it (spec.md §3, §4.1, C2).
package overlap

import (
	"github.com/kortschak/scara/pafio"
	"github.com/kortschak/scara/scaraconfig"
)

// Class is the outcome of testing an Overlap (or, after strand
// assignment, an Edge) against the configured thresholds. Values are
// numeric only for sort/compare convenience; there is no ordering
// significance beyond that.
type Class int

const (
	Usable Class = iota
	Contained
	Short
	LowQual
	ZeroExt
)

func (c Class) String() string {
	switch c {
	case Usable:
		return "USABLE"
	case Contained:
		return "CONTAINED"
	case Short:
		return "SHORT"
	case LowQual:
		return "LOWQUAL"
	case ZeroExt:
		return "ZERO_EXT"
	default:
		return "UNKNOWN"
	}
}

// Overlap is a normalised pairwise alignment between a query and
// target sequence (spec.md §3).
type Overlap struct {
	QName string
	QLen  int
	QB, QE int

	TName string
	TLen  int
	TB, TE int

	// Reverse is true when the alignment is on the reverse-complement
	// strand.
	Reverse bool

	NMatch int
	AlnLen int

	// SI is the sequence identity, matches/block-length.
	SI float64

	// QES1, QES2 are the query's left/right extension lengths: the
	// distance from the aligned interval to each end of the query
	// sequence.
	QES1, QES2 int

	// TES1, TES2 are the target's left/right extension lengths,
	// adjusted for orientation: for a reverse alignment the roles of
	// the target's natural left/right ends are swapped, since walking
	// the target on its complementary strand reverses direction.
	TES1, TES2 int
}

// FromPAF normalises a decoded PAF record into an Overlap.
func FromPAF(r pafio.Record) *Overlap {
	o := &Overlap{
		QName: r.QName, QLen: r.QLen, QB: r.QStart, QE: r.QEnd,
		TName: r.TName, TLen: r.TLen, TB: r.TStart, TE: r.TEnd,
		Reverse: r.Reverse,
		NMatch:  r.NMatch, AlnLen: r.AlnLen,
	}
	if o.AlnLen > 0 {
		o.SI = float64(o.NMatch) / float64(o.AlnLen)
	}
	o.QES1 = o.QB
	o.QES2 = o.QLen - o.QE
	if !o.Reverse {
		o.TES1 = o.TB
		o.TES2 = o.TLen - o.TE
	} else {
		o.TES1 = o.TLen - o.TE
		o.TES2 = o.TB
	}
	return o
}

// Direction reports which side of the overlap would become the start
// node of the edge this overlap induces, and the prefix length that
// edge would carry: the portion of the start sequence that precedes
// the region shared with the other sequence. fromQuery is true when
// the query sequence is the start node. ok is false when the two
// sides' left extensions are equal, in which case there is no usable
// direction (both sequences have the same amount of unaligned sequence
// before the shared region, so neither extends the other).
//
// This mirrors the dovetail-overlap convention used by standard
// long-read layout algorithms: whichever sequence has more unaligned
// sequence before the shared region keeps that unique prefix, and the
// other sequence's suffix (or, after reverse-complementing, its
// remainder) is what gets appended after it.
func (o *Overlap) Direction() (fromQuery bool, prefix int, ok bool) {
	switch {
	case o.QES1 > o.TES1:
		return true, o.QES1 - o.TES1, true
	case o.TES1 > o.QES1:
		return false, o.TES1 - o.QES1, true
	default:
		return false, 0, false
	}
}

// overhang is the magnitude of non-colinearity between the two
// sequences' far ends: how much the extension lengths disagree on the
// side opposite the chosen direction. It is used to penalise OS/ES
// for alignments that look chimeric.
func (o *Overlap) overhang() float64 {
	d := o.QES2 - o.TES2
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// OS is the overlap score: monotone in aligned-block length and
// sequence identity, penalised by the overhang between the two
// sequences' unaligned far ends (spec.md §3).
func (o *Overlap) OS() float64 {
	return float64(o.AlnLen)*o.SI - o.overhang()
}

// ES is the extension score: monotone in the usable extension length
// (the prefix this overlap would contribute to a path) and sequence
// identity, penalised the same way as OS (spec.md §3).
func (o *Overlap) ES() float64 {
	_, prefix, ok := o.Direction()
	if !ok {
		return -o.overhang()
	}
	return float64(prefix)*o.SI - o.overhang()
}

// Classify applies the policy of spec.md §4.1 to the overlap.
func (o *Overlap) Classify(cfg scaraconfig.Config) Class {
	if o.QLen > 0 && float64(o.QE-o.QB) >= cfg.ContainedFrac*float64(o.QLen) {
		return Contained
	}
	if o.TLen > 0 && float64(o.TE-o.TB) >= cfg.ContainedFrac*float64(o.TLen) {
		return Contained
	}
	if o.AlnLen < cfg.MinBlock {
		return Short
	}
	if o.SI < cfg.MinSI {
		return LowQual
	}
	_, prefix, ok := o.Direction()
	if !ok || prefix <= 0 {
		return ZeroExt
	}
	return Usable
}
