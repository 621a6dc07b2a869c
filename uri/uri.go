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

// Package uri provides types and functions for working with URIs and URI
// references as defined by RFC 3986.
//
// The package offers two main value types:
//   - Ref: a URI reference, which can be either absolute (e.g.,
//     "http://example.com/a") or relative (e.g., "/a", "b", "#c").
//   - Uri: a guaranteed absolute URI, which always includes a scheme.
//
// Key features include:
//   - Strict parsing and validation against RFC 3986, with errors naming
//     the offending component and offset.
//   - Reference resolution (Resolve) to compute an absolute URI from a
//     base and a relative reference, and its inverse (Relativize).
//   - Syntax-based normalization (Normalize) per RFC 3986, Section 6.2.2.
//   - Percent-encoding and decoding under configurable allowed character
//     sets and character encodings (Encoder, Decode).
//   - Mutable builders (Builder, PathBuilder) for constructing references
//     component by component.
//   - Support for JSON marshalling and unmarshalling.
//
// All value types are immutable and safe to share across goroutines.
package uri

import (
	"encoding/json"
	"hash/fnv"
	"math"
	"strings"
)

// Ref is a validated URI reference, either absolute or relative. It is
// immutable; mutation goes through the Builder returned by Mutate.
type Ref struct {
	raw        rawURI
	path       *Path
	str        string
	normalized bool
}

// Parse parses and validates s as a URI reference. The input is stored
// exactly as provided; use Normalize on an absolute reference for the
// canonical comparison form.
func Parse(s string) (*Ref, error) {
	raw := splitRef(s)
	if err := validateRef(raw); err != nil {
		return nil, err
	}
	return newRef(raw), nil
}

// newRef wraps an already validated rawURI.
func newRef(raw rawURI) *Ref {
	return &Ref{raw: raw, path: parsePathValue(raw.path), str: raw.String()}
}

// Scheme returns the scheme component and whether it is defined.
func (r *Ref) Scheme() (string, bool) {
	return r.raw.scheme, r.raw.hasScheme
}

// IsAbsolute reports whether the reference has a scheme.
func (r *Ref) IsAbsolute() bool {
	return r.raw.hasScheme
}

// UserInfo returns the userinfo subcomponent and whether it is defined.
func (r *Ref) UserInfo() (string, bool) {
	return r.raw.userInfo, r.raw.hasUserInfo
}

// Host returns the host subcomponent and whether it is defined. The host
// is defined whenever the authority is, but may be empty.
func (r *Ref) Host() (string, bool) {
	return r.raw.host, r.raw.hasHost
}

// Port returns the port subcomponent and whether it is defined. A defined
// port may be empty.
func (r *Ref) Port() (string, bool) {
	return r.raw.port, r.raw.hasPort
}

// PortInt returns the port as an int. An undefined or empty port yields
// -1. When the port does not fit in an int32, an *OverflowError is
// returned and the port string remains accessible through Port.
func (r *Ref) PortInt() (int, error) {
	if !r.raw.hasPort || r.raw.port == "" {
		return -1, nil
	}
	v := int64(0)
	for i := 0; i < len(r.raw.port); i++ {
		v = v*10 + int64(r.raw.port[i]-'0')
		if v > math.MaxInt32 {
			return 0, &OverflowError{Port: r.raw.port}
		}
	}
	return int(v), nil
}

// Authority returns the authority component, without the leading "//",
// and whether it is defined.
func (r *Ref) Authority() (string, bool) {
	if !r.raw.hasHost {
		return "", false
	}
	return r.raw.authority(), true
}

// Path returns the path component, which is always present though
// possibly empty.
func (r *Ref) Path() *Path {
	return r.path
}

// Query returns the query component and whether it is defined.
func (r *Ref) Query() (string, bool) {
	return r.raw.query, r.raw.hasQuery
}

// Fragment returns the fragment component and whether it is defined.
func (r *Ref) Fragment() (string, bool) {
	return r.raw.fragment, r.raw.hasFragment
}

// String returns the reference recomposed as per RFC 3986, Section 5.3.
// For a parsed reference this is the original input.
func (r *Ref) String() string {
	return r.str
}

// Mutate returns a Builder seeded with the components of this reference.
func (r *Ref) Mutate() *Builder {
	b := &Builder{path: &PathBuilder{absolute: r.path.absolute, segments: r.path.Segments()}}
	b.scheme, b.hasScheme = r.raw.scheme, r.raw.hasScheme
	b.userInfo, b.hasUserInfo = r.raw.userInfo, r.raw.hasUserInfo
	b.host, b.hasHost = r.raw.host, r.raw.hasHost
	b.port, b.hasPort = r.raw.port, r.raw.hasPort
	b.query, b.hasQuery = r.raw.query, r.raw.hasQuery
	b.fragment, b.hasFragment = r.raw.fragment, r.raw.hasFragment
	return b
}

// Equal reports whether the two references are component-wise equal.
// Scheme and host compare ASCII-case-insensitively, every other component
// byte-wise; an undefined component equals only an undefined one. A
// reference with a scheme is never equal to one without.
func (r *Ref) Equal(that *Ref) bool {
	if r == that {
		return true
	}
	if that == nil {
		return false
	}
	a, b := r.raw, that.raw
	if a.hasScheme != b.hasScheme || (a.hasScheme && !equalFoldASCII(a.scheme, b.scheme)) {
		return false
	}
	if a.hasHost != b.hasHost || (a.hasHost && !equalFoldASCII(a.host, b.host)) {
		return false
	}
	return a.hasUserInfo == b.hasUserInfo && a.userInfo == b.userInfo &&
		a.hasPort == b.hasPort && a.port == b.port &&
		a.path == b.path &&
		a.hasQuery == b.hasQuery && a.query == b.query &&
		a.hasFragment == b.hasFragment && a.fragment == b.fragment
}

// Hash returns a hash consistent with Equal.
func (r *Ref) Hash() uint64 {
	h := fnv.New64a()
	write := func(defined bool, s string) {
		if defined {
			h.Write([]byte{1})
			h.Write([]byte(s))
		} else {
			h.Write([]byte{0})
		}
		h.Write([]byte{0})
	}
	write(r.raw.hasScheme, toLowerASCII(r.raw.scheme))
	write(r.raw.hasUserInfo, r.raw.userInfo)
	write(r.raw.hasHost, toLowerASCII(r.raw.host))
	write(r.raw.hasPort, r.raw.port)
	write(true, r.raw.path)
	write(r.raw.hasQuery, r.raw.query)
	write(r.raw.hasFragment, r.raw.fragment)
	return h.Sum64()
}

// MarshalJSON implements the json.Marshaler interface, encoding the Ref
// as a JSON string.
func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.str)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string into a Ref, performing validation in the process.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// Uri is a guaranteed absolute URI. It embeds a Ref and provides the
// operations that only make sense with a scheme present.
type Uri struct {
	Ref
}

// ParseURI parses and validates a string, ensuring it is an absolute URI.
// A relative reference is rejected.
func ParseURI(s string) (*Uri, error) {
	ref, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return NewURIFromRef(ref)
}

// NewURIFromRef attempts to create an absolute Uri from an existing Ref.
// It returns an error if the reference has no scheme.
func NewURIFromRef(ref *Ref) (*Uri, error) {
	if !ref.IsAbsolute() {
		return nil, &SyntaxError{Component: "scheme", Input: ref.String()}
	}
	return &Uri{Ref: *ref}, nil
}

// Scheme returns the scheme component, which is guaranteed to be present.
func (u *Uri) Scheme() string {
	return u.raw.scheme
}

// Equal reports whether the two URIs are component-wise equal, with
// scheme and host compared ASCII-case-insensitively.
func (u *Uri) Equal(that *Uri) bool {
	if that == nil {
		return false
	}
	return u.Ref.Equal(&that.Ref)
}

// MarshalJSON implements the json.Marshaler interface.
func (u *Uri) MarshalJSON() ([]byte, error) {
	return u.Ref.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface, ensuring the
// decoded reference is absolute.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var ref Ref
	if err := ref.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewURIFromRef(&ref)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// equalFoldASCII reports whether a and b are equal under ASCII case
// folding. Components are validated to ASCII before this runs.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCIIByte(a[i]) != toLowerASCIIByte(b[i]) {
			return false
		}
	}
	return true
}

// toLowerASCII lowercases the ASCII letters of s.
func toLowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return strings.Map(func(r rune) rune {
				if 'A' <= r && r <= 'Z' {
					return r + ('a' - 'A')
				}
				return r
			}, s)
		}
	}
	return s
}

func toLowerASCIIByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
