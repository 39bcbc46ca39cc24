// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"fmt"
	"io"

	"github.com/kortschak/scara/pathgen"
	"github.com/kortschak/scara/scaraconfig"
)

// DumpPathInfos writes one line per info to w, mirroring the original
// implementation's before/after-processing path dump. It writes
// nothing unless cfg.DebugLevel >= scaraconfig.Debug.
func DumpPathInfos(w io.Writer, infos []pathgen.Info, cfg scaraconfig.Config) {
	if cfg.DebugLevel < scaraconfig.Debug {
		return
	}
	for i, info := range infos {
		fmt.Fprintf(w, "path[%d]: %s -> %s dir=%s nodes=%d length=%d length2=%d avgSI=%.4f\n",
			i, info.StartNodeName, info.EndNodeName, info.Direction, info.NumNodes, info.Length, info.Length2, info.AvgSI)
	}
}

// DumpGroups writes one line per group to w. It writes nothing unless
// cfg.DebugLevel >= scaraconfig.Debug.
func DumpGroups(w io.Writer, groups []*Group, cfg scaraconfig.Config) {
	if cfg.DebugLevel < scaraconfig.Debug {
		return
	}
	for i, g := range groups {
		fmt.Fprintf(w, "group[%d]: %s -> %s numPaths=%d length=%.1f avgSI=%.4f\n",
			i, g.StartNodeName, g.EndNodeName, g.NumPaths, g.Length, g.AvgSI)
	}
}
