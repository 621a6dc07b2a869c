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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		segments []string
		absolute bool
		empty    bool
	}{
		{name: "empty path", input: "", segments: []string{""}, empty: true},
		{name: "root", input: "/", segments: []string{""}, absolute: true},
		{name: "absolute", input: "/a/b", segments: []string{"a", "b"}, absolute: true},
		{name: "relative", input: "a/b", segments: []string{"a", "b"}},
		{name: "trailing slash", input: "/a/", segments: []string{"a", ""}, absolute: true},
		{name: "double slash inside", input: "/a//b", segments: []string{"a", "", "b"}, absolute: true},
		{name: "trailing empties preserved", input: "a//", segments: []string{"a", "", ""}},
		{name: "dot segments kept verbatim", input: "../a/./b", segments: []string{"..", "a", ".", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePath(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.segments, p.Segments())
			assert.Equal(t, tc.absolute, p.IsAbsolute())
			assert.Equal(t, tc.empty, p.IsEmpty())
			assert.Equal(t, tc.input, p.Value(), "serialization reproduces the input")
		})
	}

	_, err := ParsePath("/a b")
	assert.Error(t, err)
}

func TestRemoveDotSegments(t *testing.T) {
	testCases := []struct {
		name     string
		segments []string
		absolute bool
		want     []string
	}{
		{name: "single dot dropped", segments: []string{"a", ".", "b"}, absolute: true, want: []string{"a", "b"}},
		{name: "double dot pops", segments: []string{"a", "b", "..", "c"}, absolute: true, want: []string{"a", "c"}},
		{name: "leading double dots stripped when absolute", segments: []string{"..", "..", "g"}, absolute: true, want: []string{"g"}},
		{name: "leading double dots kept when relative", segments: []string{"..", "g"}, absolute: false, want: []string{"..", "g"}},
		{name: "double dots accumulate when relative", segments: []string{"..", "..", "g"}, absolute: false, want: []string{"..", "..", "g"}},
		{name: "pop then accumulate", segments: []string{"a", "..", "..", "g"}, absolute: false, want: []string{"..", "g"}},
		{name: "everything removed", segments: []string{"a", ".."}, absolute: true, want: []string{""}},
		{name: "empty segment survives", segments: []string{"a", "", "b"}, absolute: true, want: []string{"a", "", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, removeDotSegments(tc.segments, tc.absolute))
		})
	}
}

func TestPathNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dot removal", input: "/a/./b/../c", want: "/a/c"},
		{name: "triplet case", input: "/a%2fb", want: "/a%2Fb"},
		{name: "unreserved triplet decoded", input: "/%7efoo", want: "/~foo"},
		{name: "reserved triplet kept", input: "/a%2Fb", want: "/a%2Fb"},
		{name: "absolute empty-first guard", input: "/a/..//b", want: "/.//b"},
		{name: "relative colon guard", input: "a/../b:c", want: "./b:c"},
		{name: "already normal", input: "/a/b", want: "/a/b"},
		{name: "empty", input: "", want: ""},
		{name: "escape above root", input: "/../a", want: "/a"},
		{name: "trailing dot collapses", input: "/a/.", want: "/a"},
		{name: "trailing slash kept", input: "/a/./", want: "/a/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePath(tc.input)
			require.NoError(t, err)
			n := p.Normalize()
			assert.Equal(t, tc.want, n.Value())

			// Idempotence: a normalized path is a fixed point, and the
			// marker makes the second call return the receiver.
			assert.Same(t, n, n.Normalize())
		})
	}
}

func TestPathResolve(t *testing.T) {
	testCases := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{name: "sibling", base: "/b/c/d", ref: "g", want: "/b/c/g"},
		{name: "down", base: "/b/c/d", ref: "g/h", want: "/b/c/g/h"},
		{name: "up", base: "/b/c/d", ref: "../g", want: "/b/g"},
		{name: "up past root", base: "/b/c/d", ref: "../../../../g", want: "/g"},
		{name: "absolute wins", base: "/b/c/d", ref: "/g", want: "/g"},
		{name: "absolute with dots wins normalized", base: "/b/c/d", ref: "/./g", want: "/g"},
		{name: "relative bases merge", base: "a/b", ref: "c", want: "a/c"},
		{name: "dot slash", base: "/b/c/d", ref: "./", want: "/b/c/"},
		{name: "empty base", base: "", ref: "g", want: "g"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base, err := ParsePath(tc.base)
			require.NoError(t, err)
			ref, err := ParsePath(tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.want, base.Resolve(ref).Value())
		})
	}
}

// An absolute reference path resolves to its own normalized form, whatever
// the base.
func TestPathResolveAbsoluteReference(t *testing.T) {
	bases := []string{"", "/", "/a/b", "x/y", "/a/"}
	refs := []string{"/g", "/a/./b", "/%7e", "/.."}
	for _, b := range bases {
		for _, r := range refs {
			base, err := ParsePath(b)
			require.NoError(t, err)
			ref, err := ParsePath(r)
			require.NoError(t, err)
			assert.True(t, base.Resolve(ref).Equal(ref.Normalize()))
		}
	}
}

func TestPathEqualAndMutate(t *testing.T) {
	a, err := ParsePath("/x/y")
	require.NoError(t, err)
	b, err := ParsePath("/x/y")
	require.NoError(t, err)
	c, err := ParsePath("x/y")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	// Mutating a builder seeded from a path never changes the path.
	pb := a.Mutate()
	pb.Append("z")
	built, err := pb.Build()
	require.NoError(t, err)
	assert.Equal(t, "/x/y/z", built.Value())
	assert.Equal(t, "/x/y", a.Value())
}
