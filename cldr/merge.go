// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

// Merge deep-merges child over parent: for each key in child, if both
// values are Dicts the merge recurses, else child's value replaces
// parent's (spec §4.2 merge). A NoInherit value in child deletes the key
// from the result entirely, even though parent defines it.
func Merge(parent, child Dict) Dict {
	if parent == nil {
		parent = Dict{}
	}
	out := make(Dict, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		if _, isNoInherit := v.(NoInherit); isNoInherit {
			delete(out, k)
			continue
		}
		if childDict, ok := v.(Dict); ok {
			if parentDict, ok := out[k].(Dict); ok {
				out[k] = Merge(parentDict, childDict)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// MergeChain merges a parent chain ordered root-first (chain[0] is the
// most distant ancestor, chain[len-1] the most specific child); each
// successive entry overrides the previous per Merge's child-wins rule.
func MergeChain(chain []Dict) Dict {
	var out Dict
	for _, d := range chain {
		out = Merge(out, d)
	}
	return out
}
