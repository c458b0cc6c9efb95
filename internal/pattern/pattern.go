// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package pattern generates deterministic image sequences from seed strings.
//
// A pattern is the display order the animation engine walks through. The same
// (seed, image id set) pair must produce a bit-identical sequence on every
// call, across restarts, and across machines, so the generator is a fixed
// linear congruential generator seeded from an MD5 digest rather than
// anything from math/rand, whose stream is not stable across Go releases.
package pattern

import (
	"crypto/md5" //nolint:gosec // non-cryptographic use: stable seed derivation
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// DefaultLength is the sequence length served when the caller does not ask
// for a specific one.
const DefaultLength = 100

// LCG constants (Numerical Recipes). Changing these breaks every previously
// issued seed, so they are effectively part of the wire format.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// ErrNoImages is returned when the image id list is empty. An empty catalog
// must surface as a client error, never as an empty-but-successful pattern.
var ErrNoImages = errors.New("no images available")

// Generate produces a deterministic sequence of image ids for the given seed.
//
// The ids are sorted into lexicographic order internally, so callers may pass
// them in any scan order and still obtain the same sequence for the same set.
// The input slice is not modified.
func Generate(seed string, imageIDs []string, length int) ([]string, error) {
	if len(imageIDs) == 0 {
		return nil, ErrNoImages
	}
	if length < 0 {
		return nil, fmt.Errorf("invalid pattern length %d", length)
	}

	ids := make([]string, len(imageIDs))
	copy(ids, imageIDs)
	sort.Strings(ids)

	state := seedHash(seed)
	out := make([]string, length)
	for i := range out {
		state = state*lcgMultiplier + lcgIncrement // mod 2^32 by uint32 wrap
		out[i] = ids[index(state, len(ids))]
	}
	return out, nil
}

// seedHash reduces an arbitrary seed string to the 32-bit LCG start state:
// the MD5 digest of the UTF-8 seed bytes, modulo 2^32.
func seedHash(seed string) uint32 {
	sum := md5.Sum([]byte(seed)) //nolint:gosec // stable seed derivation only
	return binary.BigEndian.Uint32(sum[12:])
}

// index maps a 32-bit LCG state onto [0, n): floor(state / 2^32 * n).
// Computed in integer space to avoid float rounding differences.
func index(state uint32, n int) int {
	return int((uint64(state) * uint64(n)) >> 32)
}
