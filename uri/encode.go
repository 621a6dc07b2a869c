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
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoder percent-encodes bytes and text into URI components. An Encoder
// is configured with a single Mask of characters that pass through
// literally; every other byte is written as an uppercase "%HH" triplet.
// Encoders are stateless and safe to share across goroutines.
type Encoder struct {
	mask Mask
}

// The preset encoders, one per component grammar of RFC 3986. They are
// constant after package initialization and freely shareable.
var (
	// DataEncoder passes only unreserved characters; everything else,
	// reserved characters included, is percent-encoded.
	DataEncoder = mustEncoder(UnreservedMask)
	// UserInfoEncoder encodes for the userinfo subcomponent.
	UserInfoEncoder = mustEncoder(UserInfoMask)
	// HostEncoder encodes for a registered-name host.
	HostEncoder = mustEncoder(RegNameMask)
	// PathEncoder encodes for a whole path; slashes pass through.
	PathEncoder = mustEncoder(PathMask)
	// SegmentEncoder encodes for a single path segment; slashes are
	// percent-encoded.
	SegmentEncoder = mustEncoder(SegmentMask)
	// QueryEncoder encodes for the query component.
	QueryEncoder = mustEncoder(QueryMask)
	// FragmentEncoder encodes for the fragment component.
	FragmentEncoder = mustEncoder(FragmentMask)
	// URIEncoder passes every character a URI may contain literally.
	URIEncoder = mustEncoder(URICMask)
)

// NewEncoder returns an Encoder that passes exactly the characters of mask
// through literally. The mask must be a subset of the URIC set; otherwise
// an *ArgumentError is returned.
func NewEncoder(mask Mask) (*Encoder, error) {
	if !URICMask.Contains(mask) {
		return nil, &ArgumentError{Reason: "encoder mask contains a character not allowed by RFC 3986"}
	}
	return &Encoder{mask: mask}, nil
}

// ExtraEncoder returns an Encoder that passes the unreserved characters
// plus the characters of chars, which must all be in the URIC set.
func ExtraEncoder(chars string) (*Encoder, error) {
	m, err := AllowMask(chars)
	if err != nil {
		return nil, err
	}
	return NewEncoder(CombineMask(UnreservedMask, m))
}

func mustEncoder(mask Mask) *Encoder {
	e, err := NewEncoder(mask)
	if err != nil {
		panic(err)
	}
	return e
}

// Encode writes p to dst, percent-encoding every byte that is not matched
// by the encoder's mask. A failure of dst is wrapped once as *SinkError.
func (e *Encoder) Encode(dst io.Writer, p []byte) error {
	buf := make([]byte, 0, len(p)+len(p)/2)
	for _, b := range p {
		if b < 0x80 && e.mask.Match(b) {
			buf = append(buf, b)
		} else {
			buf = appendPct(buf, b)
		}
	}
	if _, err := dst.Write(buf); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}

// EncodeToString returns the percent-encoded form of p.
func (e *Encoder) EncodeToString(p []byte) string {
	var b strings.Builder
	_ = e.Encode(&b, p) // a strings.Builder sink cannot fail
	return b.String()
}

// EncodeText encodes s to bytes in the given character encoding and
// percent-encodes the result into dst. Malformed input and unmappable code
// points are replaced with the encoding's replacement bytes.
//
// When mixed is set, percent-encoding triplets already present in s are
// written through verbatim with their hex digits uppercased, and are not
// passed to the text encoder.
func (e *Encoder) EncodeText(dst io.Writer, s string, enc encoding.Encoding, mixed bool) error {
	if enc == nil || enc == unicode.UTF8 {
		return e.EncodeUTF8(dst, s, mixed)
	}
	te := encoding.ReplaceUnsupported(enc.NewEncoder())

	if !mixed {
		return e.encodeChunk(dst, s, te)
	}

	start := 0
	for i := 0; i < len(s); {
		if !isTriplet(s, i) {
			i++
			continue
		}
		if start < i {
			if err := e.encodeChunk(dst, s[start:i], te); err != nil {
				return err
			}
		}
		trip := [3]byte{'%', upperHexDigit(s[i+1]), upperHexDigit(s[i+2])}
		if _, err := dst.Write(trip[:]); err != nil {
			return &SinkError{Err: err}
		}
		i += 3
		start = i
	}
	if start < len(s) {
		return e.encodeChunk(dst, s[start:], te)
	}
	return nil
}

// encodeChunk converts one triplet-free run of text and percent-encodes
// the resulting bytes.
func (e *Encoder) encodeChunk(dst io.Writer, chunk string, te *encoding.Encoder) error {
	b, err := te.Bytes([]byte(strings.ToValidUTF8(chunk, "�")))
	if err != nil {
		return err
	}
	return e.Encode(dst, b)
}

// EncodeUTF8 is EncodeText for UTF-8, with the text conversion inlined:
// the UTF-8 bytes of each code point outside the mask are percent-encoded
// directly, and invalid byte sequences become the replacement character.
func (e *Encoder) EncodeUTF8(dst io.Writer, s string, mixed bool) error {
	buf := make([]byte, 0, len(s)+len(s)/2)
	for i := 0; i < len(s); {
		if c := s[i]; c < 0x80 {
			switch {
			case e.mask.Match(c):
				buf = append(buf, c)
				i++
			case mixed && isTriplet(s, i):
				buf = append(buf, '%', upperHexDigit(s[i+1]), upperHexDigit(s[i+2]))
				i += 3
			default:
				buf = appendPct(buf, c)
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		var rb [utf8.UTFMax]byte
		n := utf8.EncodeRune(rb[:], r)
		for j := 0; j < n; j++ {
			buf = appendPct(buf, rb[j])
		}
		i += size
	}
	if _, err := dst.Write(buf); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}
