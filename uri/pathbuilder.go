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
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
)

// PathBuilder is the mutable companion of Path. A fresh builder starts
// absolute with zero segments; Path.Mutate seeds one from an existing
// path. Builders are single-owner: concurrent mutation is undefined.
//
// String segments are validated against the segment grammar when Build
// runs; the raw and text forms percent-encode their input immediately and
// therefore always build cleanly.
type PathBuilder struct {
	absolute bool
	segments []string
}

// NewPathBuilder returns an empty, absolute PathBuilder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{absolute: true}
}

// Append adds the given segments at the end of the path.
func (b *PathBuilder) Append(segments ...string) *PathBuilder {
	b.segments = append(b.segments, segments...)
	return b
}

// Insert adds the given segments at increasing positions starting at
// index. An *IndexError is returned unless 0 <= index <= Size().
func (b *PathBuilder) Insert(index int, segments ...string) error {
	if index < 0 || index > len(b.segments) {
		return &IndexError{Index: index, Size: len(b.segments)}
	}
	b.segments = append(b.segments[:index], append(append([]string{}, segments...), b.segments[index:]...)...)
	return nil
}

// Set overwrites segments starting at index; elements beyond the current
// size are appended. An *IndexError is returned unless 0 <= index < Size().
func (b *PathBuilder) Set(index int, segments ...string) error {
	if index < 0 || index >= len(b.segments) {
		return &IndexError{Index: index, Size: len(b.segments)}
	}
	for _, seg := range segments {
		if index < len(b.segments) {
			b.segments[index] = seg
		} else {
			b.segments = append(b.segments, seg)
		}
		index++
	}
	return nil
}

// AppendRaw percent-encodes each byte-slice segment with the segment
// encoder and appends it. Nil entries are skipped.
func (b *PathBuilder) AppendRaw(segments ...[]byte) *PathBuilder {
	b.segments = append(b.segments, encodeRawSegments(segments)...)
	return b
}

// InsertRaw is Insert for byte-slice segments; nil entries are skipped.
func (b *PathBuilder) InsertRaw(index int, segments ...[]byte) error {
	return b.Insert(index, encodeRawSegments(segments)...)
}

// SetRaw is Set for byte-slice segments; nil entries are skipped and
// consume no index.
func (b *PathBuilder) SetRaw(index int, segments ...[]byte) error {
	return b.Set(index, encodeRawSegments(segments)...)
}

// AppendUTF8 encodes each segment as UTF-8, percent-encodes it with the
// segment encoder, and appends it.
func (b *PathBuilder) AppendUTF8(segments ...string) *PathBuilder {
	b.segments = append(b.segments, encodeTextSegments(nil, segments)...)
	return b
}

// InsertUTF8 is Insert for UTF-8 text segments.
func (b *PathBuilder) InsertUTF8(index int, segments ...string) error {
	return b.Insert(index, encodeTextSegments(nil, segments)...)
}

// SetUTF8 is Set for UTF-8 text segments.
func (b *PathBuilder) SetUTF8(index int, segments ...string) error {
	return b.Set(index, encodeTextSegments(nil, segments)...)
}

// AppendText encodes each segment to bytes in the given character
// encoding, percent-encodes it with the segment encoder, and appends it.
// Unmappable code points become the encoding's replacement bytes.
func (b *PathBuilder) AppendText(enc encoding.Encoding, segments ...string) *PathBuilder {
	b.segments = append(b.segments, encodeTextSegments(enc, segments)...)
	return b
}

// Paths appends whole path strings: each is split on "/" without
// consuming a leading slash, so "/a/b" and "a/b" contribute the same
// segments. A trailing empty segment of the builder is dropped before the
// split segments are appended, merging directory-shaped paths naturally.
// Empty entries are ignored.
func (b *PathBuilder) Paths(paths ...string) *PathBuilder {
	for _, p := range paths {
		if p == "" {
			continue
		}
		parts := strings.Split(p, "/")
		if parts[0] == "" {
			parts = parts[1:]
		}
		b.appendPathParts(parts)
	}
	return b
}

// RawPaths is Paths for byte-slice paths: each is split on '/', every
// segment is percent-encoded with the segment encoder, and the results
// are merged as in Paths. Nil and empty entries are ignored.
func (b *PathBuilder) RawPaths(paths ...[]byte) *PathBuilder {
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		parts := bytes.Split(p, []byte{'/'})
		if len(parts[0]) == 0 {
			parts = parts[1:]
		}
		encoded := make([]string, len(parts))
		for i, part := range parts {
			encoded[i] = SegmentEncoder.EncodeToString(part)
		}
		b.appendPathParts(encoded)
	}
	return b
}

// UTF8Paths is Paths for text paths: each is split on "/" and every
// segment is UTF-8 percent-encoded before the merge.
func (b *PathBuilder) UTF8Paths(paths ...string) *PathBuilder {
	for _, p := range paths {
		if p == "" {
			continue
		}
		parts := strings.Split(p, "/")
		if parts[0] == "" {
			parts = parts[1:]
		}
		encoded := make([]string, len(parts))
		for i, part := range parts {
			encoded[i] = encodeTextSegment(nil, part)
		}
		b.appendPathParts(encoded)
	}
	return b
}

// appendPathParts drops a trailing empty segment and appends parts.
func (b *PathBuilder) appendPathParts(parts []string) {
	if len(b.segments) == 0 {
		b.segments = append(b.segments, "")
	}
	if n := len(b.segments); b.segments[n-1] == "" {
		b.segments = b.segments[:n-1]
	}
	b.segments = append(b.segments, parts...)
}

// Strip removes the first n segments. n is clamped to [0, Size()].
func (b *PathBuilder) Strip(n int) *PathBuilder {
	n = clampSize(n, len(b.segments))
	b.segments = append(b.segments[:0], b.segments[n:]...)
	return b
}

// Tear removes the last n segments. n is clamped to [0, Size()].
func (b *PathBuilder) Tear(n int) *PathBuilder {
	n = clampSize(n, len(b.segments))
	b.segments = b.segments[:len(b.segments)-n]
	return b
}

// Truncate keeps only the first n segments. n is clamped to [0, Size()].
func (b *PathBuilder) Truncate(n int) *PathBuilder {
	b.segments = b.segments[:clampSize(n, len(b.segments))]
	return b
}

// Trim removes all trailing empty segments.
func (b *PathBuilder) Trim() *PathBuilder {
	for n := len(b.segments); n > 0 && b.segments[n-1] == ""; n = len(b.segments) {
		b.segments = b.segments[:n-1]
	}
	return b
}

// Prune removes all empty segments, except that when the final segment is
// empty a single trailing empty segment is kept.
func (b *PathBuilder) Prune() *PathBuilder {
	n := len(b.segments)
	keepTrailing := n > 0 && b.segments[n-1] == ""
	out := b.segments[:0]
	for _, seg := range b.segments {
		if seg != "" {
			out = append(out, seg)
		}
	}
	if keepTrailing {
		out = append(out, "")
	}
	b.segments = out
	return b
}

// Remove deletes the segment at index. An *IndexError is returned unless
// 0 <= index < Size().
func (b *PathBuilder) Remove(index int) error {
	if index < 0 || index >= len(b.segments) {
		return &IndexError{Index: index, Size: len(b.segments)}
	}
	b.segments = append(b.segments[:index], b.segments[index+1:]...)
	return nil
}

// Clear removes all segments.
func (b *PathBuilder) Clear() *PathBuilder {
	b.segments = b.segments[:0]
	return b
}

// Absolute sets whether the built path starts with a slash.
func (b *PathBuilder) Absolute(absolute bool) *PathBuilder {
	b.absolute = absolute
	return b
}

// Segments returns a copy of the current segments.
func (b *PathBuilder) Segments() []string {
	out := make([]string, len(b.segments))
	copy(out, b.segments)
	return out
}

// Size returns the number of segments currently in the builder.
func (b *PathBuilder) Size() int {
	return len(b.segments)
}

// Build validates every segment against the segment grammar and returns
// the immutable Path. A builder with no segments yields a single empty
// segment: "/" when absolute, the empty path otherwise. Build never
// mutates the builder, so a failed build leaves it unchanged and usable.
func (b *PathBuilder) Build() (*Path, error) {
	return b.build(false, false)
}

// build is Build with scheme/authority context: the colon guard applies
// only when the serialized path could be mistaken for a scheme, which a
// known scheme or authority rules out.
func (b *PathBuilder) build(hasScheme, hasAuthority bool) (*Path, error) {
	segments := make([]string, 0, len(b.segments)+1)
	segments = append(segments, b.segments...)
	if len(segments) == 0 {
		segments = append(segments, "")
	}

	for _, seg := range segments {
		if n := checkMask(SegmentMask, seg, true); n != len(seg) {
			return nil, &SyntaxError{Component: "segment", Offset: n, Input: seg}
		}
	}

	if !b.absolute && len(segments) >= 2 && segments[0] == "" && segments[1] == "" {
		segments = append([]string{singleDotSegment}, segments...)
	}
	if !hasScheme && !hasAuthority && !b.absolute && strings.Contains(segments[0], ":") {
		segments = append([]string{singleDotSegment}, segments...)
	}

	return newPath(b.absolute, segments), nil
}

// clampSize clamps n to [0, size].
func clampSize(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

// encodeRawSegments percent-encodes byte-slice segments, skipping nils.
func encodeRawSegments(segments [][]byte) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == nil {
			continue
		}
		out = append(out, SegmentEncoder.EncodeToString(seg))
	}
	return out
}

// encodeTextSegments text-encodes then percent-encodes segments. A nil
// encoding means UTF-8.
func encodeTextSegments(enc encoding.Encoding, segments []string) []string {
	out := make([]string, len(segments))
	for i, seg := range segments {
		out[i] = encodeTextSegment(enc, seg)
	}
	return out
}

func encodeTextSegment(enc encoding.Encoding, segment string) string {
	var b strings.Builder
	_ = SegmentEncoder.EncodeText(&b, segment, enc, false) // a strings.Builder sink cannot fail
	return b.String()
}
