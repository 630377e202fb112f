// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// PadPosition identifies where a pattern's '*' padding directive applies
// (spec §4.4.1 "pad position: beforePrefix, afterPrefix, beforeSuffix,
// afterSuffix").
type PadPosition int

const (
	PadNone PadPosition = iota
	PadBeforePrefix
	PadAfterPrefix
	PadBeforeSuffix
	PadAfterSuffix
)

// Pattern is the parsed form of a CLDR number pattern string, e.g.
// "#,##0.00;(#,##0.00)" or "@@@#". It holds everything Format and Parse
// need and nothing else; ParsePattern builds one from a pattern string.
type Pattern struct {
	PositivePrefix string
	PositiveSuffix string
	NegativePrefix string
	NegativeSuffix string

	MinIntegerDigits int

	MaxFractionDigits int
	MinFractionDigits int

	// MinSignificantDigits and MaxSignificantDigits are both nonzero when
	// the pattern used '@' significant-digit syntax; in that mode the
	// Min/MaxFractionDigits fields above are ignored by Format.
	MinSignificantDigits int
	MaxSignificantDigits int

	GroupingSize          int // primary (rightmost) grouping, 0 = no grouping
	SecondaryGroupingSize int // 0 = same as GroupingSize

	Multiplier int // 1, 100 (percent) or 1000 (per mille)

	MinExponentDigits int  // >0 for scientific notation patterns
	ExponentPlusSign  bool // whether to always show a '+' on positive exponents

	PadChar     rune
	PadPosition PadPosition

	// HasExplicitRounding and RoundingIncrement capture an explicit
	// rounding-increment pattern such as "#,##0.05" (round to the nearest
	// 0.05); when unset, Min/MaxFractionDigits alone govern rounding.
	HasExplicitRounding bool
	RoundingIncrement   Decimal
}

// usesSignificantDigits reports whether p was written with '@' syntax.
func (p *Pattern) usesSignificantDigits() bool {
	return p.MinSignificantDigits > 0 || p.MaxSignificantDigits > 0
}

// prefixSuffix returns the prefix/suffix pair to use for a value whose
// sign is neg.
func (p *Pattern) prefixSuffix(neg bool) (prefix, suffix string) {
	if neg && (p.NegativePrefix != "" || p.NegativeSuffix != "") {
		return p.NegativePrefix, p.NegativeSuffix
	}
	if neg {
		return "-" + p.PositivePrefix, p.PositiveSuffix
	}
	return p.PositivePrefix, p.PositiveSuffix
}
