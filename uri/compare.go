/*
Copyright 2026 Triton Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"math/big"
	"strings"
)

// Compare orders two URIs lexicographically over their components:
// scheme and host case-insensitively, an undefined component before a
// defined one, and ports numerically, with ports beyond int32 compared as
// big integers. A defined-but-empty port orders before any non-empty one.
// Equal URIs compare as 0. The converse does not hold for ports, which
// compare by numeric value: ":080" and ":80" compare as 0 but are not Equal.
func (u *Uri) Compare(that *Uri) int {
	if c := compareFoldASCII(u.raw.scheme, that.raw.scheme); c != 0 {
		return c
	}
	if c := compareOptional(toLowerASCII(u.raw.host), u.raw.hasHost, toLowerASCII(that.raw.host), that.raw.hasHost); c != 0 {
		return c
	}
	if c := comparePorts(u, that); c != 0 {
		return c
	}
	if c := compareOptional(u.raw.userInfo, u.raw.hasUserInfo, that.raw.userInfo, that.raw.hasUserInfo); c != 0 {
		return c
	}
	if c := strings.Compare(u.raw.path, that.raw.path); c != 0 {
		return c
	}
	if c := compareOptional(u.raw.query, u.raw.hasQuery, that.raw.query, that.raw.hasQuery); c != 0 {
		return c
	}
	return compareOptional(u.raw.fragment, u.raw.hasFragment, that.raw.fragment, that.raw.hasFragment)
}

// compareFoldASCII compares two strings under ASCII case folding.
func compareFoldASCII(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := toLowerASCIIByte(a[i]), toLowerASCIIByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// compareOptional compares two optional components, an undefined one
// ordering first.
func compareOptional(a string, hasA bool, b string, hasB bool) int {
	switch {
	case !hasA && !hasB:
		return 0
	case !hasA:
		return -1
	case !hasB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// comparePorts orders ports: undefined first, then defined-but-empty,
// then numerically. PortInt maps empty to -1, which sorts it below every
// numeric port; a port that overflows an int32 orders above any that
// fits, and two oversized ports compare as big integers.
func comparePorts(a, b *Uri) int {
	_, hasA := a.Port()
	_, hasB := b.Port()
	switch {
	case !hasA && !hasB:
		return 0
	case !hasA:
		return -1
	case !hasB:
		return 1
	}

	ia, errA := a.PortInt()
	ib, errB := b.PortInt()
	switch {
	case errA == nil && errB == nil:
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		default:
			return 0
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}

	pa, _ := a.Port()
	pb, _ := b.Port()
	ba, _ := new(big.Int).SetString(pa, 10)
	bb, _ := new(big.Int).SetString(pb, 10)
	return ba.Cmp(bb)
}
