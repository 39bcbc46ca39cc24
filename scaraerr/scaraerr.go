// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaraerr defines the fatal and recoverable error kinds used
// across the scara scaffolding pipeline.
package scaraerr

import "fmt"

// ParseError reports a failure decoding an input file.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("scara: parse error in %s at line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("scara: parse error in %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ClassificationMismatch reports an edge that classified as usable but
// whose computed prefix length was non-positive during materialisation.
// This indicates a bug in the classifier or graph builder, not bad input.
type ClassificationMismatch struct {
	StartNode, EndNode string
	PrefixLen          int
}

func (e *ClassificationMismatch) Error() string {
	return fmt.Sprintf("scara: edge %s->%s classified usable but has non-positive prefix length %d",
		e.StartNode, e.EndNode, e.PrefixLen)
}

// EmptyScaffold reports a zero-length scaffold reaching the
// RC-duplicate comparison of §4.4 step 6, which should never happen.
type EmptyScaffold struct {
	Index int
}

func (e *EmptyScaffold) Error() string {
	return fmt.Sprintf("scara: scaffold %d is empty", e.Index)
}

// InvariantBreach reports a violated structural invariant: a cycle
// encountered during a walk, a duplicate node within a path, or a
// missing reverse-complement twin during scaffold deduplication.
// Fatal distinguishes a global breach (abort) from a walk-local one
// (discard the offending walk and continue), per spec.md §7.
type InvariantBreach struct {
	Reason string
	Fatal  bool
}

func (e *InvariantBreach) Error() string {
	return fmt.Sprintf("scara: invariant breach: %s", e.Reason)
}

// EmptyOutput reports that no scaffolds survived all phases. It is
// non-fatal: the driver still emits the unused-contig pass-through.
type EmptyOutput struct{}

func (e *EmptyOutput) Error() string { return "scara: no scaffolds produced" }
