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
	"strconv"
	"strings"
)

// Builder is the mutable companion of Ref and Uri. Components are set or
// cleared individually; an undefined component is distinct from an empty
// one. Build validates the assembled reference as a whole, so setters
// never fail and a failed Build leaves the builder unchanged and usable.
//
// Builders are single-owner: concurrent mutation is undefined.
type Builder struct {
	scheme   string
	userInfo string
	host     string
	port     string
	query    string
	fragment string

	hasScheme   bool
	hasUserInfo bool
	hasHost     bool
	hasPort     bool
	hasQuery    bool
	hasFragment bool

	path *PathBuilder
}

// NewBuilder returns an empty Builder whose path starts relative.
func NewBuilder() *Builder {
	return &Builder{path: &PathBuilder{}}
}

// Scheme sets the scheme component.
func (b *Builder) Scheme(scheme string) *Builder {
	b.scheme, b.hasScheme = scheme, true
	return b
}

// ClearScheme removes the scheme component, making the built reference
// relative.
func (b *Builder) ClearScheme() *Builder {
	b.scheme, b.hasScheme = "", false
	return b
}

// UserInfo sets the userinfo subcomponent.
func (b *Builder) UserInfo(userInfo string) *Builder {
	b.userInfo, b.hasUserInfo = userInfo, true
	return b
}

// ClearUserInfo removes the userinfo subcomponent.
func (b *Builder) ClearUserInfo() *Builder {
	b.userInfo, b.hasUserInfo = "", false
	return b
}

// Host sets the host subcomponent.
func (b *Builder) Host(host string) *Builder {
	b.host, b.hasHost = host, true
	return b
}

// ClearHost removes the host subcomponent.
func (b *Builder) ClearHost() *Builder {
	b.host, b.hasHost = "", false
	return b
}

// Port sets the port subcomponent from its string form, which may be
// empty.
func (b *Builder) Port(port string) *Builder {
	b.port, b.hasPort = port, true
	return b
}

// PortInt sets the port subcomponent from an int. A negative value clears
// the port.
func (b *Builder) PortInt(port int) *Builder {
	if port < 0 {
		return b.ClearPort()
	}
	return b.Port(strconv.Itoa(port))
}

// ClearPort removes the port subcomponent.
func (b *Builder) ClearPort() *Builder {
	b.port, b.hasPort = "", false
	return b
}

// Authority splits the given authority string into its userinfo, host and
// port subcomponents and sets them. The pieces are validated by Build.
func (b *Builder) Authority(authority string) *Builder {
	userInfo, hasUserInfo, host, port, hasPort := splitAuthority(authority)
	if hasUserInfo {
		b.UserInfo(userInfo)
	} else {
		b.ClearUserInfo()
	}
	b.Host(host)
	if hasPort {
		b.Port(port)
	} else {
		b.ClearPort()
	}
	return b
}

// ClearAuthority removes the userinfo, host and port subcomponents.
func (b *Builder) ClearAuthority() *Builder {
	return b.ClearUserInfo().ClearHost().ClearPort()
}

// Query sets the query component.
func (b *Builder) Query(query string) *Builder {
	b.query, b.hasQuery = query, true
	return b
}

// ClearQuery removes the query component.
func (b *Builder) ClearQuery() *Builder {
	b.query, b.hasQuery = "", false
	return b
}

// Fragment sets the fragment component.
func (b *Builder) Fragment(fragment string) *Builder {
	b.fragment, b.hasFragment = fragment, true
	return b
}

// ClearFragment removes the fragment component.
func (b *Builder) ClearFragment() *Builder {
	b.fragment, b.hasFragment = "", false
	return b
}

// Path replaces the path with a builder seeded from p.
func (b *Builder) Path(p *Path) *Builder {
	b.path = p.Mutate()
	return b
}

// EditPath applies fn to the current path builder.
func (b *Builder) EditPath(fn func(*PathBuilder)) *Builder {
	fn(b.path)
	return b
}

// Build assembles and validates the reference. The path is built with the
// builder's scheme/authority context, then every component and the
// cross-component rules are checked. The result is a *Ref; it is absolute
// exactly when a scheme is set.
func (b *Builder) Build() (*Ref, error) {
	hasAuthority := b.hasUserInfo || b.hasHost || b.hasPort
	p, err := b.path.build(b.hasScheme, hasAuthority)
	if err != nil {
		return nil, err
	}

	raw := rawURI{
		scheme: b.scheme, hasScheme: b.hasScheme,
		userInfo: b.userInfo, hasUserInfo: b.hasUserInfo,
		host: b.host, hasHost: b.hasHost,
		port: b.port, hasPort: b.hasPort,
		path:  p.Value(),
		query: b.query, hasQuery: b.hasQuery,
		fragment: b.fragment, hasFragment: b.hasFragment,
	}
	if err := validateRef(raw); err != nil {
		return nil, err
	}
	return &Ref{raw: raw, path: p, str: raw.String()}, nil
}

// BuildURI is Build for callers that require an absolute URI.
func (b *Builder) BuildURI() (*Uri, error) {
	ref, err := b.Build()
	if err != nil {
		return nil, err
	}
	return NewURIFromRef(ref)
}

// splitAuthority splits an authority string into its userinfo, host and
// port parts. The userinfo ends at the last "@"; the port starts after
// the last ":" outside a bracketed IP literal. Splitting never fails;
// invalid pieces surface when the reference is validated.
func splitAuthority(authority string) (userInfo string, hasUserInfo bool, host, port string, hasPort bool) {
	hostPort := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		userInfo, hasUserInfo = authority[:at], true
		hostPort = authority[at+1:]
	}

	if strings.HasPrefix(hostPort, "[") {
		end := strings.LastIndex(hostPort, "]")
		if end == -1 {
			host = hostPort
			return
		}
		host = hostPort[:end+1]
		if len(hostPort) > end+1 && hostPort[end+1] == ':' {
			port, hasPort = hostPort[end+2:], true
		}
		return
	}

	if colon := strings.LastIndex(hostPort, ":"); colon != -1 {
		host = hostPort[:colon]
		port, hasPort = hostPort[colon+1:], true
		return
	}
	host = hostPort
	return
}
