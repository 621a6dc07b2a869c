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

import "strings"

const (
	singleDotSegment = "."
	doubleDotSegment = ".."
)

// Path is the path component of a URI-reference, modelled as an ordered
// sequence of segments plus an absolute flag. It is immutable: methods
// that change a path return a new one, and a Path is safe to share across
// goroutines.
//
// The segment list is never empty; the empty path is a single empty
// segment with absolute unset. Two consecutive slashes in the serialized
// form correspond to an empty interior segment, and a leading slash
// corresponds to the absolute flag rather than an empty leading segment.
type Path struct {
	value      string
	segments   []string
	absolute   bool
	normalized bool
}

// ParsePath validates s against the path grammar of RFC 3986, Section 3.3
// and parses it into a Path. All trailing empty segments are preserved.
func ParsePath(s string) (*Path, error) {
	if err := checkComponent("path", PathMask, s, true); err != nil {
		return nil, err
	}
	return parsePathValue(s), nil
}

// parsePathValue splits an already validated path string.
func parsePathValue(s string) *Path {
	absolute := strings.HasPrefix(s, "/")
	if absolute {
		s = s[1:]
	}
	return newPath(absolute, strings.Split(s, "/"))
}

// newPath wraps a segment list the caller owns and will not mutate.
func newPath(absolute bool, segments []string) *Path {
	if len(segments) == 0 {
		segments = []string{""}
	}
	var b strings.Builder
	if absolute {
		b.WriteByte('/')
	}
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	return &Path{value: b.String(), segments: segments, absolute: absolute}
}

// Value returns the path component as a whole string, which may be empty.
func (p *Path) Value() string {
	return p.value
}

// String returns the string representation of the path, i.e. Value.
func (p *Path) String() string {
	return p.value
}

// Segments returns a copy of the segments of this path. The returned slice
// is never empty, though any segment may be.
func (p *Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Size returns the number of segments.
func (p *Path) Size() int {
	return len(p.segments)
}

// IsEmpty reports whether the path is empty, i.e. its value has zero
// length.
func (p *Path) IsEmpty() bool {
	return p.value == ""
}

// IsAbsolute reports whether the path starts with a slash.
func (p *Path) IsAbsolute() bool {
	return p.absolute
}

// Equal reports whether this path and that serialize to the same value.
func (p *Path) Equal(that *Path) bool {
	if p == that {
		return true
	}
	return that != nil && p.value == that.value
}

// Mutate returns a PathBuilder seeded with the segments of this path.
func (p *Path) Mutate() *PathBuilder {
	return &PathBuilder{absolute: p.absolute, segments: p.Segments()}
}

// Resolve resolves that against this path as per the reference-resolution
// mechanism of RFC 3986, Section 5.2.2: an absolute reference path wins
// outright; otherwise it is merged onto this path's directory. The result
// is in normalized form.
func (p *Path) Resolve(that *Path) *Path {
	if that.absolute {
		return that.Normalize()
	}
	merged := make([]string, 0, len(p.segments)-1+len(that.segments))
	merged = append(merged, p.segments[:len(p.segments)-1]...)
	merged = append(merged, that.segments...)
	return finishNormalize(p.absolute, removeDotSegments(merged, p.absolute))
}

// Normalize removes dot-segments as per RFC 3986, Section 5.2.4 and
// applies the segment normalization of Section 6.2.2: percent-encoding
// triplets are uppercased and triplets of unreserved characters are
// decoded. Normalize is idempotent, and O(1) on a path it has produced.
func (p *Path) Normalize() *Path {
	if p.normalized {
		return p
	}
	out := finishNormalize(p.absolute, removeDotSegments(p.segments, p.absolute))
	if out.value == p.value {
		q := *p
		q.normalized = true
		return &q
	}
	return out
}

// finishNormalize applies the syntactic guards and the per-segment triplet
// normalization, returning a Path already marked normalized.
func finishNormalize(absolute bool, segments []string) *Path {
	segments = applyNormalizeGuards(absolute, segments)
	for i, seg := range segments {
		segments[i] = normalizePct(seg)
	}
	out := newPath(absolute, segments)
	out.normalized = true
	return out
}

// removeDotSegments implements the algorithm of RFC 3986, Section 5.2.4 on
// the segment sequence: "." segments are dropped and ".." segments pop
// their predecessor. On an absolute path, leading ".." segments cannot
// escape the root and are stripped afterwards.
func removeDotSegments(segments []string, absolute bool) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case singleDotSegment:
			// drop
		case doubleDotSegment:
			if n := len(out); n == 0 || out[n-1] == doubleDotSegment {
				out = append(out, seg)
			} else {
				out = out[:n-1]
			}
		default:
			out = append(out, seg)
		}
	}
	if absolute {
		for len(out) > 0 && out[0] == doubleDotSegment {
			out = out[1:]
		}
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// applyNormalizeGuards prepends a "." segment where the serialized form
// would otherwise be misread: an absolute path whose first segment is
// empty would start with "//", and a relative path whose first segment
// contains a colon would be taken for a scheme.
func applyNormalizeGuards(absolute bool, segments []string) []string {
	switch {
	case absolute && len(segments) >= 2 && segments[0] == "":
		return append([]string{singleDotSegment}, segments...)
	case !absolute && len(segments) >= 1 && strings.Contains(segments[0], ":"):
		return append([]string{singleDotSegment}, segments...)
	}
	return segments
}

// normalizePct uppercases the hex digits of every percent-encoding triplet
// in s and decodes triplets that name an unreserved character. The input
// is returned unchanged, without allocation, when already normal.
func normalizePct(s string) string {
	var b strings.Builder
	mutated := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' || !isTriplet(s, i) {
			if mutated {
				b.WriteByte(c)
			}
			continue
		}
		h, l := s[i+1], s[i+2]
		v := hexToByte(h, l)
		unreserved := UnreservedMask.Match(v)
		if !mutated && (unreserved || isLowerHexDigit(h) || isLowerHexDigit(l)) {
			b.WriteString(s[:i])
			mutated = true
		}
		if mutated {
			if unreserved {
				b.WriteByte(v)
			} else {
				b.WriteByte('%')
				b.WriteByte(upperHexDigit(h))
				b.WriteByte(upperHexDigit(l))
			}
		}
		i += 2
	}
	if !mutated {
		return s
	}
	return b.String()
}
