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

import "fmt"

// Mask is a set of US-ASCII characters stored as a 128-bit bitmask, split
// across two 64-bit words. It provides constant-time membership tests and is
// the building block for all RFC 3986 character-class checks in this package.
//
// The zero Mask is empty. Mask is a value type and is safe to share and copy.
type Mask struct {
	low  uint64
	high uint64
}

// AllowMask builds a Mask containing exactly the characters of s.
// It returns an *ArgumentError if s contains a byte outside the US-ASCII
// range.
func AllowMask(s string) (Mask, error) {
	var m Mask
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return Mask{}, &ArgumentError{Reason: fmt.Sprintf("mask character at index %d is not US-ASCII", i)}
		}
		if c < 64 {
			m.low |= 1 << c
		} else {
			m.high |= 1 << (c & 63)
		}
	}
	return m, nil
}

// CombineMask returns the union of the given masks.
func CombineMask(masks ...Mask) Mask {
	var m Mask
	for _, other := range masks {
		m.low |= other.low
		m.high |= other.high
	}
	return m
}

// mustMask is AllowMask for the package's constant tables; the literals are
// ASCII by construction.
func mustMask(s string) Mask {
	m, err := AllowMask(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether c is in the mask. Bytes outside the US-ASCII range
// are never in any mask.
func (m Mask) Match(c byte) bool {
	if c < 64 {
		return m.low&(1<<c) != 0
	}
	if c < 0x80 {
		return m.high&(1<<(c&63)) != 0
	}
	return false
}

// MatchString returns the count of leading bytes of s that are in the mask.
func (m Mask) MatchString(s string) int {
	for i := 0; i < len(s); i++ {
		if !m.Match(s[i]) {
			return i
		}
	}
	return len(s)
}

// Contains reports whether every character of that is also in m.
func (m Mask) Contains(that Mask) bool {
	return m.low|that.low == m.low && m.high|that.high == m.high
}
