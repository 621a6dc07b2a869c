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

// Resolve resolves ref against this URI as per the strict transform of
// RFC 3986, Section 5.2.2 and returns the normalized target. The target's
// fragment is always the reference's fragment; a base fragment never
// survives resolution.
func (u *Uri) Resolve(ref *Ref) (*Uri, error) {
	return u.resolve(ref, true)
}

// ResolveLax is Resolve in backwards-compatibility mode: a reference
// whose scheme equals the base's, ASCII-case-insensitively, is treated as
// if it had no scheme.
func (u *Uri) ResolveLax(ref *Ref) (*Uri, error) {
	return u.resolve(ref, false)
}

func (u *Uri) resolve(ref *Ref, strict bool) (*Uri, error) {
	if scheme, ok := ref.Scheme(); ok && (strict || !equalFoldASCII(scheme, u.Scheme())) {
		target, err := NewURIFromRef(ref)
		if err != nil {
			return nil, err
		}
		return target.Normalize(), nil
	}

	b := u.Mutate()
	b.ClearFragment()

	if authority, ok := ref.Authority(); ok {
		b.Authority(authority)
		b.Path(ref.Path())
		setOrClearQuery(b, ref)
	} else if ref.Path().IsEmpty() {
		if query, ok := ref.Query(); ok {
			b.Query(query)
		}
	} else {
		switch {
		case ref.Path().IsAbsolute():
			b.Path(ref.Path())
		case u.raw.hasHost && u.path.IsEmpty():
			// A base with an authority but an empty path resolves the
			// reference path from the root.
			b.Path(ref.Path())
			b.EditPath(func(pb *PathBuilder) { pb.Absolute(true) })
		default:
			b.Path(u.path.Resolve(ref.Path()))
		}
		setOrClearQuery(b, ref)
	}

	if fragment, ok := ref.Fragment(); ok {
		b.Fragment(fragment)
	}

	built, err := b.BuildURI()
	if err != nil {
		return nil, err
	}
	return built.Normalize(), nil
}

func setOrClearQuery(b *Builder, ref *Ref) {
	if query, ok := ref.Query(); ok {
		b.Query(query)
	} else {
		b.ClearQuery()
	}
}
