// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaraconfig collects the tunable constants that govern
// overlap classification, path generation and grouping, as described
// in spec.md §6.
package scaraconfig

// DebugLevel gates the verbosity of diagnostic output to stderr.
type DebugLevel int

const (
	Silent DebugLevel = iota
	Info
	Verbose
	Debug
)

func (d DebugLevel) String() string {
	switch d {
	case Silent:
		return "SILENT"
	case Info:
		return "INFO"
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Config holds the configuration constants recognised by the scara
// pipeline (spec.md §6).
type Config struct {
	// ContainedFrac is the minimum fractional coverage of either
	// sequence's length by the aligned interval for the overlap to be
	// classified CONTAINED.
	ContainedFrac float64

	// MinBlock is the minimum aligned-block length for an overlap to
	// avoid classification as SHORT.
	MinBlock int

	// MinSI is the minimum sequence identity for an overlap to avoid
	// classification as LOWQUAL.
	MinSI float64

	// MinMCPaths is the floor on the number of Monte Carlo paths
	// generated, regardless of how many deterministic paths exist.
	MinMCPaths int

	// MinPathsinGroup is the minimum number of member paths a
	// PathGroup must retain to avoid being discarded as weak.
	MinPathsinGroup int

	// LengthTolerance is the maximum allowed deviation, in bases,
	// between a PathInfo's length and its PathGroup's running mean
	// length for the PathInfo to be accepted into the group.
	LengthTolerance int

	// MaxWalkNodes caps the number of nodes a single walk may visit,
	// guarding against runaway chains.
	MaxWalkNodes int

	// RNGSeed seeds the Monte Carlo path sampler. Fixing it makes runs
	// reproducible (spec.md §5, §8 S6).
	RNGSeed int64

	// DebugLevel gates diagnostic verbosity.
	DebugLevel DebugLevel
}

// Default returns the configuration defaults named in spec.md §6.
func Default() Config {
	return Config{
		ContainedFrac:   0.90,
		MinBlock:        500,
		MinSI:           0.75,
		MinMCPaths:      100,
		MinPathsinGroup: 3,
		LengthTolerance: 200,
		MaxWalkNodes:    64,
		RNGSeed:         1,
		DebugLevel:      Info,
	}
}
