// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// Symbols holds the locale-specific glyphs a pattern's digit placeholders
// and separators are rendered with (spec §4.4.1 "symbols: decimal,
// group, percentSign, minusSign, plusSign, perMille, exponential,
// infinity, nan"). The digits themselves (Latin "0123456789" unless the
// locale uses another numbering system) are ASCII "0"-"9" plus 10 runes
// for the numbering system's digit glyphs.
type Symbols struct {
	Decimal     string
	Group       string
	PercentSign string
	MinusSign   string
	PlusSign    string
	PerMille    string
	Exponential string
	Infinity    string
	NaN         string
	// Digits holds the ten digit glyphs for the active numbering system,
	// in ascending order; Digits[0] is empty to mean "use ASCII 0-9".
	Digits [10]rune
}

// LatinSymbols is the root/ASCII numbering system's symbol set, used when
// a locale's data supplies no numbers/symbols overrides.
var LatinSymbols = Symbols{
	Decimal:     ".",
	Group:       ",",
	PercentSign: "%",
	MinusSign:   "-",
	PlusSign:    "+",
	PerMille:    "‰",
	Exponential: "E",
	Infinity:    "∞",
	NaN:         "NaN",
}

// digit returns the glyph for decimal digit d (0-9) under s's numbering
// system, defaulting to ASCII when Digits is unset.
func (s Symbols) digit(d int) rune {
	if s.Digits[0] != 0 {
		return s.Digits[d]
	}
	return rune('0' + d)
}
