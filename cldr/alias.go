// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

// maxAliasHops bounds alias chasing so a cycle is detected as
// MalformedData rather than looping forever (spec §4.2 resolve_alias:
// "chase transitively (bounded by cycle detection...)").
const maxAliasHops = 64

// ResolveAlias traverses path in dict, chasing any Alias values
// transitively until a non-Alias value is found. When the resolved target
// is itself a Dict, it is merged *under* any sibling entries already
// present at that path in dict, per spec §4.2 ("merge resolved data under
// any sibling entries already present").
//
// A cycle (more than maxAliasHops indirections) returns a
// MalformedDataError.
func ResolveAlias(locale string, root Dict, path []string) (Value, error) {
	v, ok := root.GetPath(path...)
	if !ok {
		return nil, nil
	}
	return resolveAliasValue(locale, root, path, v, 0)
}

func resolveAliasValue(locale string, root Dict, path []string, v Value, depth int) (Value, error) {
	alias, ok := v.(Alias)
	if !ok {
		return v, nil
	}
	if depth >= maxAliasHops {
		return nil, &MalformedDataError{Locale: locale, Reason: "alias cycle"}
	}
	target, ok := root.GetPath(alias.Path...)
	if !ok {
		return nil, nil
	}
	resolved, err := resolveAliasValue(locale, root, alias.Path, target, depth+1)
	if err != nil {
		return nil, err
	}
	// Merge resolved Dict data under any sibling entries already present
	// at the original path.
	if origDict, ok := v.(Dict); ok {
		if resolvedDict, ok := resolved.(Dict); ok {
			return Merge(resolvedDict, origDict), nil
		}
	}
	if siblingDict, ok := root.GetPath(path...); ok {
		if sd, ok := siblingDict.(Dict); ok {
			if _, isAlias := siblingDict.(Alias); !isAlias {
				if resolvedDict, ok := resolved.(Dict); ok {
					return Merge(resolvedDict, sd), nil
				}
			}
		}
	}
	return resolved, nil
}
