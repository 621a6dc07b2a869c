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
	"net"
	"strings"
)

// validateRef checks every component of r against the RFC 3986 grammar and
// then the cross-component correlation rules. It returns nil or the first
// violation found.
func validateRef(r rawURI) error {
	if r.hasScheme {
		if err := validateScheme(r.scheme); err != nil {
			return err
		}
	}
	if r.hasUserInfo {
		if err := checkComponent("userinfo", UserInfoMask, r.userInfo, true); err != nil {
			return err
		}
	}
	if r.hasHost {
		if err := validateHost(r.host); err != nil {
			return err
		}
	}
	if r.hasPort {
		if err := checkComponent("port", PortMask, r.port, false); err != nil {
			return err
		}
	}
	if err := checkComponent("path", PathMask, r.path, true); err != nil {
		return err
	}
	if r.hasQuery {
		if err := checkComponent("query", QueryMask, r.query, true); err != nil {
			return err
		}
	}
	if r.hasFragment {
		if err := checkComponent("fragment", FragmentMask, r.fragment, true); err != nil {
			return err
		}
	}
	return validateCorrelations(r)
}

// validateScheme checks the scheme component: non-empty, first character
// ALPHA, remaining characters in the scheme set.
func validateScheme(scheme string) error {
	if scheme == "" {
		return &SyntaxError{Component: "scheme", Offset: 0, Input: scheme}
	}
	if !SchemeFirstMask.Match(scheme[0]) {
		return &SyntaxError{Component: "scheme", Offset: 0, Input: scheme}
	}
	if n := SchemeMask.MatchString(scheme[1:]); n != len(scheme)-1 {
		return &SyntaxError{Component: "scheme", Offset: n + 1, Input: scheme}
	}
	return nil
}

// validateHost decides structurally between the three host alternatives of
// RFC 3986, Section 3.2.2: IP-literal (IPvFuture or IPv6address) when the
// host is bracketed, reg-name otherwise.
func validateHost(host string) error {
	if len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']' {
		if len(host) > 2 && (host[1] == 'v' || host[1] == 'V') {
			return validateIPvFuture(host)
		}
		return validateIPv6(host)
	}
	return checkComponent("host", RegNameMask, host, true)
}

// validateIPvFuture checks "[" "v" 1*HEXDIG "." 1*(unreserved / sub-delims
// / ":") "]". The offset of a reported error is relative to the whole host
// string, brackets included.
func validateIPvFuture(host string) error {
	inner := host[2 : len(host)-1] // strip "[v" and "]"
	vlen := HexDigMask.MatchString(inner)
	if vlen == 0 || vlen == len(inner) || inner[vlen] != '.' {
		return &SyntaxError{Component: "host", Offset: 2 + vlen, Input: host}
	}
	data := inner[vlen+1:]
	if dlen := ipvFutureMask.MatchString(data); dlen == 0 || dlen != len(data) {
		return &SyntaxError{Component: "host", Offset: 3 + vlen + dlen, Input: host}
	}
	return nil
}

// validateIPv6 checks a bracketed IPv6 address literal: a mask pre-check
// bounds the character set, then the numeric recognizer must accept the
// interior. Scope-ID suffixes are rejected by both steps.
func validateIPv6(host string) error {
	inner := host[1 : len(host)-1]
	if n := ipv6AddressMask.MatchString(inner); n != len(inner) {
		return &SyntaxError{Component: "host", Offset: n + 1, Input: host}
	}
	if ip := net.ParseIP(inner); ip == nil || !strings.Contains(inner, ":") {
		return &SyntaxError{Component: "host", Offset: 1, Input: host}
	}
	return nil
}

// validateCorrelations enforces the cross-component rules of RFC 3986,
// Sections 3 and 4.2.
func validateCorrelations(r rawURI) error {
	// When any authority subcomponent is present, the host must be defined.
	if r.hasAuthority() && !r.hasHost {
		return &CorrelationError{
			SyntaxError: SyntaxError{Component: "host", Input: r.String()},
			Reason:      "when authority is present, the host must be defined",
		}
	}

	// When authority is not present, the path cannot begin with "//".
	if !r.hasAuthority() && strings.HasPrefix(r.path, "//") {
		return &CorrelationError{
			SyntaxError: SyntaxError{Component: "path", Input: r.path},
			Reason:      `when authority is not present, the path cannot begin with "//"`,
		}
	}

	// When authority is present, the path must be empty or begin with "/".
	if r.hasAuthority() && r.path != "" && !strings.HasPrefix(r.path, "/") {
		return &CorrelationError{
			SyntaxError: SyntaxError{Component: "path", Input: r.path},
			Reason:      `when authority is present, the path must either be empty or begin with "/"`,
		}
	}

	// A segment containing a colon cannot be the first segment of a
	// relative-path reference.
	if !r.hasScheme && !r.hasAuthority() && r.path != "" {
		if i := strings.IndexByte(r.path, ':'); i != -1 && !strings.Contains(r.path[:i], "/") {
			return &CorrelationError{
				SyntaxError: SyntaxError{Component: "path", Offset: i, Input: r.path},
				Reason:      "a segment containing a colon cannot start a relative-path reference",
			}
		}
	}
	return nil
}

// checkComponent validates every character of s against mask, admitting
// complete percent-encoding triplets when allowPct is set.
func checkComponent(component string, mask Mask, s string, allowPct bool) error {
	if n := checkMask(mask, s, allowPct); n != len(s) {
		return &SyntaxError{Component: component, Offset: n, Input: s}
	}
	return nil
}

// checkMask returns the count of leading valid characters of s.
func checkMask(mask Mask, s string, allowPct bool) int {
	for i := 0; i < len(s); i++ {
		if mask.Match(s[i]) {
			continue
		}
		if allowPct && isTriplet(s, i) {
			i += 2
			continue
		}
		return i
	}
	return len(s)
}
