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

// Normalize applies the syntax-based normalization of RFC 3986, Section
// 6.2.2: the scheme and host are lowercased, percent-encoding triplets
// are uppercased and decoded where they name unreserved characters, a
// defined-but-empty port is dropped, and the path is normalized with
// dot-segments removed. The result carries a normalization marker, so
// repeated calls are O(1).
func (u *Uri) Normalize() *Uri {
	if u.normalized {
		return u
	}

	raw := u.raw
	raw.scheme = toLowerASCII(raw.scheme)
	if raw.hasUserInfo {
		raw.userInfo = normalizePct(raw.userInfo)
	}
	if raw.hasHost {
		raw.host = normalizePct(toLowerASCII(raw.host))
	}
	if raw.hasPort && raw.port == "" {
		raw.hasPort = false
	}

	p := u.path.Normalize()
	// Inside an absolute URI the guard "." segment is redundant: with an
	// authority a "/.//" path cannot be misread as a network-path, and
	// with a scheme a leading "a:" segment cannot be misread as one.
	if (strings.HasPrefix(p.Value(), "/.//") && raw.hasHost) || strings.HasPrefix(p.Value(), "./") {
		pb := p.Mutate()
		pb.Strip(1)
		p, _ = pb.build(true, raw.hasHost)
	}
	raw.path = p.Value()

	if raw.hasQuery {
		raw.query = normalizePct(raw.query)
	}
	if raw.hasFragment {
		raw.fragment = normalizePct(raw.fragment)
	}

	out := &Uri{Ref: *newRef(raw)}
	out.normalized = true
	out.path.normalized = true
	return out
}
