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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Ref {
	t.Helper()
	ref, err := Parse(s)
	require.NoError(t, err)
	return ref
}

func mustParseURI(t *testing.T, s string) *Uri {
	t.Helper()
	u, err := ParseURI(s)
	require.NoError(t, err)
	return u
}

func TestParseAccessors(t *testing.T) {
	ref := mustParse(t, "http://user@example.com:8080/a/b?q=1#frag")

	scheme, ok := ref.Scheme()
	assert.True(t, ok)
	assert.Equal(t, "http", scheme)
	assert.True(t, ref.IsAbsolute())

	userInfo, ok := ref.UserInfo()
	assert.True(t, ok)
	assert.Equal(t, "user", userInfo)

	host, ok := ref.Host()
	assert.True(t, ok)
	assert.Equal(t, "example.com", host)

	port, ok := ref.Port()
	assert.True(t, ok)
	assert.Equal(t, "8080", port)

	n, err := ref.PortInt()
	require.NoError(t, err)
	assert.Equal(t, 8080, n)

	authority, ok := ref.Authority()
	assert.True(t, ok)
	assert.Equal(t, "user@example.com:8080", authority)

	assert.Equal(t, "/a/b", ref.Path().Value())

	query, ok := ref.Query()
	assert.True(t, ok)
	assert.Equal(t, "q=1", query)

	fragment, ok := ref.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "frag", fragment)

	assert.Equal(t, "http://user@example.com:8080/a/b?q=1#frag", ref.String())
}

func TestParseRelative(t *testing.T) {
	ref := mustParse(t, "a/b?q")

	_, ok := ref.Scheme()
	assert.False(t, ok)
	assert.False(t, ref.IsAbsolute())
	_, ok = ref.Host()
	assert.False(t, ok)
	assert.Equal(t, "a/b", ref.Path().Value())

	_, err := ParseURI("a/b?q")
	assert.Error(t, err, "a relative reference is not an absolute URI")
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, s := range []string{"http://h/a b", "http://h:8x/", "://x", "a:b:c^", "#fr ag", "http://[2001:db8:::1]/"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"http://example.com",
		"HTTP://EXAMPLE.com/%7efoo",
		"//host/path",
		"?query",
		"#frag",
		"mailto:fred@example.com",
		"http://h/a//b//",
		"http://[2001:db8::1]:8080/",
	}
	for _, s := range inputs {
		assert.Equal(t, s, mustParse(t, s).String(), "parsing preserves the input")
	}
}

func TestPortInt(t *testing.T) {
	n, err := mustParse(t, "http://h/").PortInt()
	require.NoError(t, err)
	assert.Equal(t, -1, n, "undefined port")

	n, err = mustParse(t, "http://h:/").PortInt()
	require.NoError(t, err)
	assert.Equal(t, -1, n, "defined-but-empty port")

	n, err = mustParse(t, "http://h:2147483647/").PortInt()
	require.NoError(t, err)
	assert.Equal(t, 2147483647, n)

	ref := mustParse(t, "http://h:2147483648/")
	_, err = ref.PortInt()
	require.Error(t, err)
	var ovfErr *OverflowError
	require.True(t, errors.As(err, &ovfErr))
	assert.Equal(t, "2147483648", ovfErr.Port, "the port string stays accessible")

	port, ok := ref.Port()
	assert.True(t, ok)
	assert.Equal(t, "2147483648", port)
}

func TestRefEqual(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical", a: "http://h/a", b: "http://h/a", want: true},
		{name: "scheme case-insensitive", a: "HTTP://h/a", b: "http://h/a", want: true},
		{name: "host case-insensitive", a: "http://EXAMPLE.com/", b: "http://example.com/", want: true},
		{name: "path case-sensitive", a: "http://h/A", b: "http://h/a", want: false},
		{name: "query case-sensitive", a: "http://h/?Q", b: "http://h/?q", want: false},
		{name: "absent vs empty query", a: "http://h/", b: "http://h/?", want: false},
		{name: "absent vs empty fragment", a: "http://h/", b: "http://h/#", want: false},
		{name: "absent vs empty port", a: "http://h/", b: "http://h:/", want: false},
		{name: "relative equal", a: "a/b?q", b: "a/b?q", want: true},
		{name: "uri never equals relative ref", a: "http://h/a", b: "//h/a", want: false},
		{name: "triplet case matters without normalization", a: "/%7e", b: "/%7E", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			assert.Equal(t, tc.want, a.Equal(b))
			assert.Equal(t, tc.want, b.Equal(a))
			if tc.want {
				assert.Equal(t, a.Hash(), b.Hash(), "equal references hash equally")
			}
		})
	}
}

func TestUriEqualConsistentWithCompare(t *testing.T) {
	pairs := [][2]string{
		{"http://h/a", "HTTP://H/a"},
		{"http://h/a?q#f", "http://h/a?q#f"},
	}
	for _, pair := range pairs {
		a, b := mustParseURI(t, pair[0]), mustParseURI(t, pair[1])
		require.True(t, a.Equal(b))
		assert.Equal(t, 0, a.Compare(b))
		assert.Equal(t, a.Hash(), b.Hash())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ref := mustParse(t, "http://h/a?q")
	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.Equal(t, `"http://h/a?q"`, string(data))

	var back Ref
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ref.Equal(&back))

	var u Uri
	require.NoError(t, json.Unmarshal(data, &u))
	assert.Equal(t, "http", u.Scheme())

	assert.Error(t, json.Unmarshal([]byte(`"http://h/a b"`), &back), "validation runs on unmarshal")
	assert.Error(t, json.Unmarshal([]byte(`"//relative"`), &u), "a Uri requires a scheme")
}

func TestMutateRoundTrip(t *testing.T) {
	ref := mustParse(t, "http://user@h:8080/a/b?q#f")
	built, err := ref.Mutate().Build()
	require.NoError(t, err)
	assert.True(t, ref.Equal(built))
	assert.Equal(t, ref.String(), built.String())
}

func TestBuilder(t *testing.T) {
	u, err := NewBuilder().
		Scheme("https").
		Host("example.com").
		PortInt(8443).
		EditPath(func(p *PathBuilder) { p.Absolute(true).Append("a", "b") }).
		Query("q=1").
		BuildURI()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8443/a/b?q=1", u.String())

	// Authority splits into its parts.
	ref, err := NewBuilder().Authority("u@h:80").Build()
	require.NoError(t, err)
	assert.Equal(t, "//u@h:80", ref.String())
	host, _ := ref.Host()
	assert.Equal(t, "h", host)

	ref, err = NewBuilder().Authority("[::1]:80").Build()
	require.NoError(t, err)
	host, _ = ref.Host()
	assert.Equal(t, "[::1]", host)

	// Clearing restores the undefined state.
	ref, err = NewBuilder().Query("q").ClearQuery().Build()
	require.NoError(t, err)
	_, ok := ref.Query()
	assert.False(t, ok)

	// A rootless path cannot coexist with an authority.
	b := NewBuilder().Host("h").EditPath(func(p *PathBuilder) { p.Absolute(false).Append("a") })
	_, err = b.Build()
	require.Error(t, err)
	var corrErr *CorrelationError
	assert.True(t, errors.As(err, &corrErr))

	// The failed build leaves the builder usable.
	b.EditPath(func(p *PathBuilder) { p.Absolute(true) })
	ref, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, "//h/a", ref.String())

	_, err = NewBuilder().BuildURI()
	assert.Error(t, err, "BuildURI requires a scheme")
}

func TestBuilderColonGuard(t *testing.T) {
	// Without scheme or authority the colon guard protects the first
	// segment.
	ref, err := NewBuilder().EditPath(func(p *PathBuilder) { p.Append("a:b") }).Build()
	require.NoError(t, err)
	assert.Equal(t, "./a:b", ref.String())

	// With a scheme the segment is unambiguous.
	ref, err = NewBuilder().Scheme("s").EditPath(func(p *PathBuilder) { p.Append("a:b") }).Build()
	require.NoError(t, err)
	assert.Equal(t, "s:a:b", ref.String())
}
