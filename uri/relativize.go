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
	"errors"
	"strings"
)

// ErrRelativize is returned by Relativize when the target URI's path
// contains dot-segments ("." or ".."). Such paths must be normalized
// before relativization.
var ErrRelativize = errors.New("cannot relativize a target whose path contains '.' or '..' segments")

// Relativize computes a relative reference that, when resolved against
// this URI, results in the target URI. This is the inverse of Resolve.
//
// The method returns the full target or a scheme-relative reference when
// the schemes or authorities differ. It returns ErrRelativize when the
// target path contains dot-segments.
func (u *Uri) Relativize(target *Uri) (*Ref, error) {
	for _, seg := range target.path.segments {
		if seg == singleDotSegment || seg == doubleDotSegment {
			return nil, ErrRelativize
		}
	}

	if u.Scheme() != target.Scheme() {
		return refOf(target), nil
	}

	baseAuthority, hasBaseAuthority := u.Authority()
	targetAuthority, hasTargetAuthority := target.Authority()
	if hasBaseAuthority != hasTargetAuthority || (hasBaseAuthority && baseAuthority != targetAuthority) {
		if !hasTargetAuthority {
			return refOf(target), nil
		}
		return schemeRelative(target)
	}

	basePath := u.path.Value()
	targetPath := target.path.Value()

	if targetPath == "" && basePath != "" {
		if !hasTargetAuthority {
			return refOf(target), nil
		}
		return schemeRelative(target)
	}

	if basePath == targetPath {
		return u.relativizeSamePath(target)
	}
	if !hasBaseAuthority {
		return u.relativizeNoAuthority(target)
	}
	return u.relativizeWithAuthority(target)
}

// refOf returns the target as a plain reference.
func refOf(target *Uri) *Ref {
	ref := target.Ref
	return &ref
}

// schemeRelative rebuilds the target as a network-path reference
// ("//authority/path?query#fragment").
func schemeRelative(target *Uri) (*Ref, error) {
	authority, _ := target.Authority()
	var b strings.Builder
	b.WriteString("//")
	b.WriteString(authority)
	b.WriteString(target.path.Value())
	appendQueryFragment(&b, target)
	return Parse(b.String())
}

// relativizeSamePath handles a target whose path equals the base path:
// only the query and fragment can differ.
func (u *Uri) relativizeSamePath(target *Uri) (*Ref, error) {
	baseQuery, hasBaseQuery := u.Query()
	targetQuery, hasTargetQuery := target.Query()
	targetFragment, hasTargetFragment := target.Fragment()

	if hasBaseQuery == hasTargetQuery && baseQuery == targetQuery {
		if hasTargetFragment {
			return Parse("#" + targetFragment)
		}
		return Parse("")
	}

	if !hasTargetQuery && hasBaseQuery {
		// An empty reference would inherit the base query; the target
		// must be re-identified by its last path segment instead.
		return u.relativizeSamePathNoTargetQuery(target)
	}

	var b strings.Builder
	appendQueryFragment(&b, target)
	return Parse(b.String())
}

// relativizeSamePathNoTargetQuery handles the edge case where the paths
// match but the base has a query and the target has none.
func (u *Uri) relativizeSamePathNoTargetQuery(target *Uri) (*Ref, error) {
	_, hasTargetAuthority := target.Authority()
	if !hasTargetAuthority {
		return refOf(target), nil
	}

	targetPath := target.path.Value()
	if targetPath != "" {
		rel := targetPath[strings.LastIndex(targetPath, "/")+1:]
		if rel == "" {
			// A directory target needs the trailing slash to survive
			// resolution.
			rel = "./"
		}
		return buildRelativeRef(rel, target)
	}
	return schemeRelative(target)
}

// relativizeNoAuthority relativizes two URIs that both lack an authority.
func (u *Uri) relativizeNoAuthority(target *Uri) (*Ref, error) {
	basePath := u.path.Value()
	targetPath := target.path.Value()

	baseSegs := strings.Split(basePath, "/")
	targetSegs := strings.Split(targetPath, "/")

	// The directory of the base is everything up to its last slash.
	baseDirSegs := baseSegs[:len(baseSegs)-1]

	common := 0
	for common < len(baseDirSegs) && common < len(targetSegs) && baseDirSegs[common] == targetSegs[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(baseDirSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))

	rel := b.String()
	if rel == "" && basePath != targetPath {
		rel = relativeDirSegment(targetPath)
	}
	return buildRelativeRef(rel, target)
}

// relativeDirSegment picks the self-reference for a target that coincides
// with the base directory: "./" keeps a directory target's trailing
// slash through resolution, "." resolves to the slashless form.
func relativeDirSegment(targetPath string) string {
	if strings.HasSuffix(targetPath, "/") {
		return "./"
	}
	return singleDotSegment
}

// relativizeWithAuthority relativizes two URIs that share an authority by
// walking out of the base directory and back down into the target path.
func (u *Uri) relativizeWithAuthority(target *Uri) (*Ref, error) {
	basePath := u.path.Value()
	targetPath := target.path.Value()

	// An empty path under an authority means the root.
	if basePath == "" {
		basePath = "/"
	}
	if targetPath == "" {
		targetPath = "/"
	}

	baseDir := basePath[:strings.LastIndex(basePath, "/")+1]

	baseSegs := strings.Split(strings.Trim(baseDir, "/"), "/")
	if baseDir == "/" {
		baseSegs = nil
	}
	targetSegs := strings.Split(strings.TrimPrefix(targetPath, "/"), "/")
	if targetPath == "/" {
		targetSegs = nil
	}

	common := 0
	for common < len(baseSegs) && common < len(targetSegs) && baseSegs[common] == targetSegs[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(baseSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))

	rel := b.String()
	if rel == "" {
		// The target is the directory the base "file" lives in.
		rel = relativeDirSegment(targetPath)
	}
	return buildRelativeRef(rel, target)
}

// buildRelativeRef assembles the final reference from a relative path and
// the target's query and fragment, guarding a first segment that could be
// misread as a scheme.
func buildRelativeRef(rel string, target *Uri) (*Ref, error) {
	var b strings.Builder
	if rel != "" && rel[0] != '.' && rel[0] != '/' {
		if colon := strings.IndexByte(rel, ':'); colon != -1 {
			if slash := strings.IndexByte(rel, '/'); slash == -1 || colon < slash {
				b.WriteString("./")
			}
		}
	}
	b.WriteString(rel)
	appendQueryFragment(&b, target)
	return Parse(b.String())
}

func appendQueryFragment(b *strings.Builder, target *Uri) {
	if query, ok := target.Query(); ok {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if fragment, ok := target.Fragment(); ok {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
}
