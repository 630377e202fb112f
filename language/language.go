// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import "strings"

// Tag represents a CLDR-style locale identifier. All Tag values returned by
// Parse are well-formed, but are not canonicalized or expanded unless
// Canonicalize or Expand is called explicitly.
type Tag struct {
	lang     string // lowercase, 2-3 letters
	script   string // title case, 4 letters
	region   string // uppercase 2 letters or 3 digits
	variant  string // uppercase alphanumeric
	modifier string // trailing @modifier, without the '@'
}

// Und is the undetermined tag, also used as the root of the inheritance
// tree (see cldr.Store).
var Und = Tag{}

// Common default tags, analogous to the teacher's predefined Tag vars.
var (
	En    = Tag{lang: "en"}
	En_US = Tag{lang: "en", region: "US"}
	De    = Tag{lang: "de"}
	De_DE = Tag{lang: "de", region: "DE"}
	Root  = Tag{}
)

// Language returns the language subtag.
func (t Tag) Language() string { return t.lang }

// Script returns the script subtag, or "" if unspecified.
func (t Tag) Script() string { return t.script }

// Region returns the territory subtag, or "" if unspecified.
func (t Tag) Region() string { return t.region }

// Variant returns the variant subtag, or "" if unspecified.
func (t Tag) Variant() string { return t.variant }

// Modifier returns the trailing @modifier, without the leading '@'.
func (t Tag) Modifier() string { return t.modifier }

// IsRoot reports whether t is the "und" root tag.
func (t Tag) IsRoot() bool {
	return t.lang == "" && t.script == "" && t.region == "" && t.variant == ""
}

// Equal reports whether t and o have identical components. This is the
// "equivalent" relation of spec §3: all four identifying components must
// match (the modifier is not part of locale-data identity).
func (t Tag) Equal(o Tag) bool {
	return t.lang == o.lang && t.script == o.script && t.region == o.region && t.variant == o.variant
}

// String returns the canonical string form, joining non-empty components
// with '_'.
func (t Tag) String() string {
	parts := make([]string, 0, 5)
	if t.lang != "" {
		parts = append(parts, t.lang)
	} else {
		parts = append(parts, "und")
	}
	if t.script != "" {
		parts = append(parts, t.script)
	}
	if t.region != "" {
		parts = append(parts, t.region)
	}
	if t.variant != "" {
		parts = append(parts, t.variant)
	}
	s := strings.Join(parts, "_")
	if t.modifier != "" {
		s += "@" + t.modifier
	}
	return s
}

// WithRegion returns a copy of t with the region replaced.
func (t Tag) WithRegion(region string) Tag {
	t.region = region
	return t
}

// WithScript returns a copy of t with the script replaced.
func (t Tag) WithScript(script string) Tag {
	t.script = script
	return t
}

// WithVariant returns a copy of t with the variant replaced.
func (t Tag) WithVariant(variant string) Tag {
	t.variant = variant
	return t
}

// Parent computes the default parent of t by stripping the rightmost
// component, per spec §3 "Inheritance chain". It does not consult the
// parent-exceptions table; callers that need the CLDR-accurate parent
// chain (which can bypass this default) should use
// cldr.GlobalData.DefaultParent, which layers the global parent-exceptions table over this default.
func (t Tag) Parent() Tag {
	switch {
	case t.variant != "":
		t.variant = ""
	case t.region != "":
		t.region = ""
	case t.script != "":
		t.script = ""
	case t.lang != "":
		t.lang = ""
	default:
		return t
	}
	return t
}

// CanonType controls which canonicalizations Canonicalize applies.
type CanonType int

const (
	// Deprecated replaces deprecated language/region/script/variant
	// subtags with their preferred replacements.
	Deprecated CanonType = 1 << iota
	// Legacy applies a small set of hard-coded legacy mappings (e.g. the
	// mutual no/nb relationship used for negotiation is handled
	// separately; this flag governs tag rewriting such as mo -> ro).
	Legacy
	// All applies every canonicalization this package knows about.
	All = Deprecated | Legacy
	// Default is the canonicalization applied by Make.
	Default = All
)

// Canonicalize returns the canonicalized equivalent of t: deprecated
// subtags are replaced by their preferred form via the alias tables (spec
// §4.1 canonicalize).
func (t Tag) Canonicalize(c CanonType) Tag {
	if c&Deprecated != 0 {
		if v, ok := languageAliases[t.lang]; ok {
			t.lang = v
		}
		if t.region != "" {
			if v, ok := territoryAliases[t.region]; ok {
				t.region = v
			}
		}
		if t.script != "" {
			if v, ok := scriptAliases[t.script]; ok {
				t.script = v
			}
		}
		if t.variant != "" {
			if v, ok := variantAliases[t.variant]; ok {
				t.variant = v
			}
		}
	}
	if c&Legacy != 0 {
		switch t.lang {
		case "mo":
			t.lang = "ro"
		case "in":
			t.lang = "id"
		case "iw":
			t.lang = "he"
		case "ji":
			t.lang = "yi"
		}
	}
	return t
}

// Make calls Parse and Canonicalize and returns the resulting Tag,
// ignoring any error (returning Und on failure). In most cases locale tags
// used as map keys or comparison targets should be created with Make.
func Make(id string) Tag {
	t, err := Parse(id)
	if err != nil {
		return Und
	}
	return t.Canonicalize(Default)
}
