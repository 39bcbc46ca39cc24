// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minimap2 provides interaction with the minimap2 long-read
// aligner, as an optional upstream step producing the PAF overlaps
// scara otherwise expects as pre-computed input files (spec.md §6
// lists PAF decoding as an external collaborator; this package is the
// supplemental feature of generating that PAF instead of requiring
// it, grounded on github.com/kortschak/loopy's blasr package, which
// builds an aligner exec.Cmd the same way).
package minimap2

import (
	"errors"
	"os/exec"
	"text/template"

	"github.com/biogo/external"
)

// ErrMissingRequired is returned by BuildCommand when a required
// parameter is unset.
var ErrMissingRequired = errors.New("minimap2: missing required argument")

// Preset names the minimap2 -x preset to use.
type Preset string

const (
	// AvaPB is the all-vs-all PacBio preset, used for read-to-read
	// overlap generation.
	AvaPB Preset = "ava-pb"
	// MapPB is the read-to-reference preset, used for read-to-contig
	// overlap generation.
	MapPB Preset = "map-pb"
)

// Minimap2 defines parameters for the minimap2 aligner, following the
// buildarg-tag convention of github.com/kortschak/loopy's blasr.BLASR.
type Minimap2 struct {
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}minimap2{{end}}"` // minimap2

	Preset  string `buildarg:"{{if .}}-x{{split}}{{.}}{{end}}"` // -x: preset
	Threads int    `buildarg:"{{if .}}-t{{split}}{{.}}{{end}}"` // -t: number of threads

	Out string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o: PAF output file

	Target string `buildarg:"{{.}}"` // target/reference sequences
	Query  string `buildarg:"{{.}}"` // query sequences
}

// BuildCommand returns an exec.Cmd built from the parameters in m.
func (m Minimap2) BuildCommand() (*exec.Cmd, error) {
	if m.Target == "" || m.Query == "" {
		return nil, ErrMissingRequired
	}
	cl := external.Must(external.Build(m, template.FuncMap{}))
	return exec.Command(cl[0], cl[1:]...), nil
}
