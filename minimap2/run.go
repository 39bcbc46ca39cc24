// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimap2

import (
	"os"

	"github.com/kortschak/scara/pafio"
)

// GenerateOverlaps runs minimap2 with the given preset over query
// against target, writing PAF output to outPath and returning the
// decoded records. It mirrors github.com/kortschak/loopy's
// hitSetFrom: build the command, run it with its own stderr
// forwarded, then open and decode the output file it wrote rather
// than parsing its stdout pipe directly.
func GenerateOverlaps(binary, query, target, outPath string, preset Preset, threads int) ([]pafio.Record, error) {
	m := Minimap2{
		Cmd:     binary,
		Preset:  string(preset),
		Threads: threads,
		Target:  target,
		Query:   query,
		Out:     outPath,
	}
	cmd, err := m.BuildCommand()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, err
	}

	f, err := os.Open(outPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return pafio.NewReader(f, outPath).ReadAll()
}
