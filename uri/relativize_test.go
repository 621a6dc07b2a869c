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

func TestRelativize(t *testing.T) {
	testCases := []struct {
		name   string
		base   string
		target string
		want   string
	}{
		{name: "sibling", base: "http://h/a/b", target: "http://h/a/c", want: "c"},
		{name: "child", base: "http://h/a/b", target: "http://h/a/b/c", want: "b/c"},
		{name: "parent directory", base: "http://h/a/b/c", target: "http://h/a/d", want: "../d"},
		{name: "same uri", base: "http://h/a?q", target: "http://h/a?q", want: ""},
		{name: "fragment only", base: "http://h/a?q", target: "http://h/a?q#f", want: "#f"},
		{name: "query changes", base: "http://h/a?q", target: "http://h/a?r", want: "?r"},
		{name: "query dropped", base: "http://h/a/b?q", target: "http://h/a/b", want: "b"},
		{name: "directory target", base: "http://h/a/b", target: "http://h/a/", want: "./"},
		{name: "different scheme", base: "http://h/a", target: "ftp://h/b", want: "ftp://h/b"},
		{name: "different authority", base: "http://h/a", target: "http://other/b", want: "//other/b"},
		{name: "root target", base: "http://h/a/b", target: "http://h/", want: "../"},
		{name: "colon segment guarded", base: "http://h/x", target: "http://h/a:b", want: "./a:b"},
		{name: "no authorities", base: "mailto:a/b", target: "mailto:a/c", want: "c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base := mustParseURI(t, tc.base)
			target := mustParseURI(t, tc.target)

			rel, err := base.Relativize(target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rel.String())

			// The inverse property: resolving the result against the
			// base reproduces the target.
			resolved, err := base.Resolve(rel)
			require.NoError(t, err)
			assert.Equal(t, target.Normalize().String(), resolved.String())
		})
	}
}

func TestRelativizeRejectsDotSegments(t *testing.T) {
	base := mustParseURI(t, "http://h/a")

	for _, target := range []string{"http://h/a/../b", "http://h/./b"} {
		_, err := base.Relativize(mustParseURI(t, target))
		assert.ErrorIs(t, err, ErrRelativize)
	}
}
