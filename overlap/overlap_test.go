// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import (
	"testing"

	"github.com/kortschak/scara/pafio"
	"github.com/kortschak/scara/scaraconfig"
)

func TestClassifyContained(t *testing.T) {
	cfg := scaraconfig.Default()
	// R1 fully contained within C1: aligned interval covers 96/100.
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 100, QStart: 2, QEnd: 98,
		TName: "C1", TLen: 1000, TStart: 100, TEnd: 196,
		NMatch: 90, AlnLen: 96,
	})
	if got := ov.Classify(cfg); got != Contained {
		t.Errorf("Classify() = %v, want Contained", got)
	}
}

func TestClassifyShort(t *testing.T) {
	cfg := scaraconfig.Default()
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 0, QEnd: 100,
		TName: "C1", TLen: 1000, TStart: 900, TEnd: 1000,
		NMatch: 95, AlnLen: 100,
	})
	if got := ov.Classify(cfg); got != Short {
		t.Errorf("Classify() = %v, want Short (got block length 100 < min_block 500)", got)
	}
}

func TestClassifyLowQual(t *testing.T) {
	cfg := scaraconfig.Default()
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 0, QEnd: 600,
		TName: "C1", TLen: 1600, TStart: 900, TEnd: 1500,
		NMatch: 300, AlnLen: 600,
	})
	if got := ov.Classify(cfg); got != LowQual {
		t.Errorf("Classify() = %v, want LowQual (SI 0.5 < min_si 0.75)", got)
	}
}

func TestClassifyZeroExt(t *testing.T) {
	cfg := scaraconfig.Default()
	// Equal left extensions on both sides: no usable direction.
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 100, QEnd: 700,
		TName: "C1", TLen: 1000, TStart: 100, TEnd: 700,
		NMatch: 570, AlnLen: 600,
	})
	if got := ov.Classify(cfg); got != ZeroExt {
		t.Errorf("Classify() = %v, want ZeroExt", got)
	}
}

func TestClassifyUsable(t *testing.T) {
	cfg := scaraconfig.Default()
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 500, QEnd: 1000,
		TName: "C1", TLen: 1000, TStart: 0, TEnd: 500,
		NMatch: 490, AlnLen: 500,
	})
	if got := ov.Classify(cfg); got != Usable {
		t.Errorf("Classify() = %v, want Usable", got)
	}
	fromQuery, prefix, ok := ov.Direction()
	if !ok || !fromQuery || prefix != 500 {
		t.Errorf("Direction() = (%v, %v, %v), want (true, 500, true)", fromQuery, prefix, ok)
	}
}

func TestClassifyReverseComplementSymmetry(t *testing.T) {
	cfg := scaraconfig.Default()
	fwd := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 500, QEnd: 1000,
		TName: "C1", TLen: 1000, TStart: 0, TEnd: 500,
		NMatch: 490, AlnLen: 500,
	})
	// The exact reverse-complement alignment: target interval is
	// expressed from the other end since the query now maps to C1's
	// reverse strand.
	rc := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 500, QEnd: 1000,
		TName: "C1", TLen: 1000, TStart: 500, TEnd: 1000,
		Reverse: true,
		NMatch:  490, AlnLen: 500,
	})
	if fwd.Classify(cfg) != rc.Classify(cfg) {
		t.Errorf("forward and reverse-complement overlaps classified differently: %v vs %v",
			fwd.Classify(cfg), rc.Classify(cfg))
	}
}

func TestZeroExtNeverProducesPositivePrefix(t *testing.T) {
	cfg := scaraconfig.Default()
	ov := FromPAF(pafio.Record{
		QName: "R1", QLen: 1000, QStart: 100, QEnd: 700,
		TName: "C1", TLen: 1000, TStart: 100, TEnd: 700,
		NMatch: 570, AlnLen: 600,
	})
	_, prefix, ok := ov.Direction()
	if ok && prefix > 0 {
		t.Errorf("Direction() on a zero-extension overlap returned usable prefix %d", prefix)
	}
}
