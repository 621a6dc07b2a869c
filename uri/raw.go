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
	"regexp"
	"strings"
)

// refPattern is the generic URI-reference pattern of RFC 3986, Appendix B,
// with the authority component subdivided into its userinfo, host and port
// parts. It matches any string, so splitting never fails; validation is a
// separate pass.
var refPattern = regexp.MustCompile(`(?s)^(?:([^:/?#]+):)?(?://(?:([^@/?#]*)@)?(\[[^\]/?#]*\]|[^:/?#]*)(?::([^/?#]*))?)?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)

// rawURI is the tagged split of a URI-reference into its seven optional
// component strings. The path is always present, possibly empty; for the
// other six components, absent is distinct from empty.
type rawURI struct {
	scheme   string
	userInfo string
	host     string
	port     string
	path     string
	query    string
	fragment string

	hasScheme   bool
	hasUserInfo bool
	hasHost     bool
	hasPort     bool
	hasQuery    bool
	hasFragment bool
}

// splitRef splits s into its raw components. It succeeds on any input
// because every alternative of the pattern may be empty.
func splitRef(s string) rawURI {
	m := refPattern.FindStringSubmatchIndex(s)

	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return s[m[2*i]:m[2*i+1]], true
	}

	var r rawURI
	r.scheme, r.hasScheme = group(1)
	r.userInfo, r.hasUserInfo = group(2)
	r.host, r.hasHost = group(3)
	r.port, r.hasPort = group(4)
	r.path, _ = group(5)
	r.query, r.hasQuery = group(6)
	r.fragment, r.hasFragment = group(7)
	return r
}

// hasAuthority reports whether the authority component is defined, which
// for a validated rawURI is equivalent to the host being defined.
func (r rawURI) hasAuthority() bool {
	return r.hasUserInfo || r.hasHost || r.hasPort
}

// authority recomposes the userinfo, host and port subcomponents.
func (r rawURI) authority() string {
	var b strings.Builder
	if r.hasUserInfo {
		b.WriteString(r.userInfo)
		b.WriteByte('@')
	}
	b.WriteString(r.host)
	if r.hasPort {
		b.WriteByte(':')
		b.WriteString(r.port)
	}
	return b.String()
}

// String recomposes the components as per RFC 3986, Section 5.3.
func (r rawURI) String() string {
	var b strings.Builder
	if r.hasScheme {
		b.WriteString(r.scheme)
		b.WriteByte(':')
	}
	if r.hasAuthority() {
		b.WriteString("//")
		b.WriteString(r.authority())
	}
	b.WriteString(r.path)
	if r.hasQuery {
		b.WriteByte('?')
		b.WriteString(r.query)
	}
	if r.hasFragment {
		b.WriteByte('#')
		b.WriteString(r.fragment)
	}
	return b.String()
}
