// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import "strings"

// MissingLikelyTagsData indicates no information was available to expand
// the likely subtags of the given locale.
var MissingLikelyTagsData = errorString("language: missing likely tags data")

type errorString string

func (e errorString) Error() string { return string(e) }

// Expand sets t's script and region to their most likely values, given the
// language and whatever subtags are already specified. It tries, in order,
// "lang_script_region", "lang_region", "lang_script", "lang" against the
// likely-subtags table (spec §3 "Likely-subtag expansion") and takes the
// first match. The language subtag is taken from the match (so "no"
// expands to "nb_Latn_NO"); a script or region already present in t is
// kept.
func (t Tag) Expand() (Tag, error) {
	if t.IsRoot() {
		return t, MissingLikelyTagsData
	}
	keys := []string{
		keyOf(t.lang, t.script, t.region),
		keyOf(t.lang, "", t.region),
		keyOf(t.lang, t.script, ""),
		keyOf(t.lang, "", ""),
	}
	for _, k := range keys {
		if k == "" {
			continue
		}
		max, ok := likelySubtags[k]
		if !ok {
			continue
		}
		m, err := Parse(max)
		if err != nil {
			continue
		}
		if t.script == "" {
			t.script = m.script
		}
		if t.region == "" {
			t.region = m.region
		}
		t.lang = m.lang
		return t, nil
	}
	return t, MissingLikelyTagsData
}

func keyOf(lang, script, region string) string {
	if lang == "" {
		return ""
	}
	parts := []string{lang}
	if script != "" {
		parts = append(parts, script)
	}
	if region != "" {
		parts = append(parts, region)
	}
	return strings.Join(parts, "_")
}

// noNbEquivalent reports whether a and b are the Norwegian "no"/"nb" pair,
// which spec §4.1 treats as mutually compatible for negotiation purposes.
func noNbEquivalent(a, b string) bool {
	return (a == "no" && b == "nb") || (a == "nb" && b == "no")
}

// matchTag reports whether want matches have, either exactly (after
// case-insensitive normalization) or via the no/nb exception, comparing
// only the components present in want.
func matchTag(want, have Tag) bool {
	if want.lang != have.lang && !noNbEquivalent(want.lang, have.lang) {
		return false
	}
	if want.script != "" && want.script != have.script {
		return false
	}
	if want.region != "" && want.region != have.region {
		return false
	}
	if want.variant != "" && want.variant != have.variant {
		return false
	}
	return true
}

// Negotiate returns the first element of preferred that matches any
// element of available, either exactly or after progressively dropping
// preferred's rightmost components (spec §4.1 negotiate). It reports
// ok=false if nothing matches.
func Negotiate(preferred, available []Tag) (match Tag, ok bool) {
	for _, want := range preferred {
		for cur := want; ; {
			for _, have := range available {
				if matchTag(cur, have) {
					return have, true
				}
			}
			if cur.IsRoot() {
				break
			}
			cur = cur.Parent()
		}
	}
	return Tag{}, false
}

// NegotiateStrings is a convenience wrapper around Negotiate that parses
// string tag lists using the given separator.
func NegotiateStrings(preferred, available []string, sep byte) (Tag, bool) {
	p := make([]Tag, 0, len(preferred))
	for _, s := range preferred {
		if t, err := ParseSep(s, sep); err == nil {
			p = append(p, t)
		}
	}
	a := make([]Tag, 0, len(available))
	for _, s := range available {
		if t, err := ParseSep(s, sep); err == nil {
			a = append(a, t)
		}
	}
	return Negotiate(p, a)
}
