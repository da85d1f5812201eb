// Copyright 2024 The Tensegrity-Lab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/io"
)

// ReadCustom parses a tiny key=value text file into a fifth, custom
// Profile. This is the one piece of file I/O the core itself owns; it has
// nothing to do with persisting simulation state and is never required,
// since profiles can always be built as Go literals via BuildCustom.
//
// Recognised keys: name, gravity, drag, global_stiffness, pretenst,
// surface (absent|frozen|bouncy), viscosity, time_scale.
func ReadCustom(fn string) (prof Profile, err error) {
	buf, err := io.ReadFile(fn)
	if err != nil {
		return prof, fmt.Errorf("profile: cannot read %q: %w", fn, err)
	}
	prof.GlobalStiffness = 1 // default before overrides, matching BuildCustom's invariant
	for _, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			return prof, fmt.Errorf("profile: malformed line %q in %q", line, fn)
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		switch key {
		case "name":
			prof.Name = val
		case "gravity":
			prof.Gravity = io.Atof(val)
		case "drag":
			prof.Drag = io.Atof(val)
		case "global_stiffness":
			prof.GlobalStiffness = io.Atof(val)
		case "pretenst":
			prof.Pretenst = io.Atof(val)
		case "viscosity":
			prof.Viscosity = io.Atof(val)
		case "time_scale":
			prof.TimeScale = io.Atof(val)
		case "surface":
			switch strings.ToLower(val) {
			case "absent":
				prof.Surface = Absent
			case "frozen":
				prof.Surface = Frozen
			case "bouncy":
				prof.Surface = Bouncy
			default:
				return prof, fmt.Errorf("profile: unknown surface %q in %q", val, fn)
			}
		default:
			return prof, fmt.Errorf("profile: unknown key %q in %q", key, fn)
		}
	}
	if prof.GlobalStiffness <= 0 {
		return prof, fmt.Errorf("profile: global_stiffness must be positive in %q", fn)
	}
	return prof, nil
}
