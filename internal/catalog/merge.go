// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package catalog

// DeepMerge overlays override onto base, recursing only into values that are
// maps on both sides. Override values win at every level. Neither input is
// modified; the result is a fresh map.
//
// This is the merge the API layer applies when a per-image sidecar config
// overrides the application's animation defaults. The scanner itself never
// merges; it attaches the sidecar verbatim.
func DeepMerge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		ov, overrideIsMap := v.(map[string]any)
		bv, baseIsMap := out[k].(map[string]any)
		if overrideIsMap && baseIsMap {
			out[k] = DeepMerge(bv, ov)
			continue
		}
		out[k] = v
	}
	return out
}
