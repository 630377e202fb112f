// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"errors"
	"strings"
)

// ErrNoMatch is returned when the input's prefix/suffix does not match
// either of the pattern's two subpatterns (spec §4.4.3, §7 ParseFailure).
var ErrNoMatch = errors.New("pattern: input does not match the pattern's affixes")

// ErrInvalidGrouping is returned in strict mode when a grouping separator
// appears somewhere the pattern's grouping sizes do not allow (see
// stripGrouping) (spec §4.4.3 "strict mode rejects misplaced grouping separators").
var ErrInvalidGrouping = errors.New("pattern: misplaced grouping separator")

// ParseOptions controls ParseNumber's leniency (spec §4.4.3).
type ParseOptions struct {
	// Strict rejects misplaced grouping separators and a decimal point
	// with the wrong glyph; lenient mode (the default) ignores all
	// grouping separators and accepts either '.' or the locale's Decimal
	// glyph.
	Strict bool
}

// ParseNumber parses s, formatted (or loosely formatted) under p and sym,
// into an exact Decimal (spec §4.4.3: "parsing returns an exact decimal;
// never a binary float"). Suggestions for common near-misses (wrong
// decimal glyph, stray grouping separator) are folded into lenient mode
// rather than surfaced separately, since there is no structured-error
// channel for them in this API.
func ParseNumber(s string, p *Pattern, sym Symbols, opts ParseOptions) (Decimal, error) {
	body, neg, err := stripAffixes(s, p, sym)
	if err != nil {
		return Decimal{}, err
	}
	body = untranslateDigits(body, sym)

	decimalGlyph := sym.Decimal
	if !opts.Strict && decimalGlyph != "." && !strings.Contains(body, decimalGlyph) && strings.Contains(body, ".") {
		decimalGlyph = "."
	}

	intPart, fracPart := body, ""
	if i := strings.Index(body, decimalGlyph); i >= 0 {
		intPart, fracPart = body[:i], body[i+len(decimalGlyph):]
	}

	intPart, err = stripGrouping(intPart, p, sym, opts.Strict)
	if err != nil {
		return Decimal{}, err
	}

	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return Decimal{}, ErrNoMatch
		}
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return Decimal{}, ErrNoMatch
		}
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, ErrNoMatch
	}

	literal := intPart
	if literal == "" {
		literal = "0"
	}
	if fracPart != "" {
		literal += "." + fracPart
	}
	if neg {
		literal = "-" + literal
	}
	d, err := ParseDecimalString(literal)
	if err != nil {
		return Decimal{}, ErrNoMatch
	}
	if p.Multiplier != 1 {
		d = d.Scaled(-multiplierShift(p.Multiplier))
	}
	return d, nil
}

func stripAffixes(s string, p *Pattern, sym Symbols) (body string, neg bool, err error) {
	posPrefix := renderAffix(p.PositivePrefix, sym, false)
	posSuffix := renderAffix(p.PositiveSuffix, sym, false)
	negPrefix, negSuffix := p.NegativePrefix, p.NegativeSuffix
	if negPrefix == "" && negSuffix == "" {
		negPrefix = "-" + p.PositivePrefix
		negSuffix = p.PositiveSuffix
	}
	negPrefix = renderAffix(negPrefix, sym, true)
	negSuffix = renderAffix(negSuffix, sym, true)
	// The negative affixes are tried first: empty positive affixes would
	// otherwise match a negative input too and leave its sign in the body.
	if strings.HasPrefix(s, negPrefix) && strings.HasSuffix(s, negSuffix) && len(s) >= len(negPrefix)+len(negSuffix) {
		return s[len(negPrefix) : len(s)-len(negSuffix)], true, nil
	}
	if strings.HasPrefix(s, posPrefix) && strings.HasSuffix(s, posSuffix) && len(s) >= len(posPrefix)+len(posSuffix) {
		return s[len(posPrefix) : len(s)-len(posSuffix)], false, nil
	}
	return "", false, ErrNoMatch
}

func untranslateDigits(s string, sym Symbols) string {
	if sym.Digits[0] == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range s {
		found := false
		for d := 0; d < 10; d++ {
			if c == sym.digit(d) {
				b.WriteByte(byte('0' + d))
				found = true
				break
			}
		}
		if !found {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// stripGrouping removes the pattern's Group separator glyphs from
// intPart. In strict mode, the rightmost group must have exactly
// GroupingSize digits, each inner group exactly SecondaryGroupingSize
// digits (GroupingSize when that is 0), and the leftmost group between 1
// and GroupingSize digits; any other placement is rejected.
func stripGrouping(intPart string, p *Pattern, sym Symbols, strict bool) (string, error) {
	if !strings.Contains(intPart, sym.Group) {
		return intPart, nil
	}
	if !strict || p.GroupingSize <= 0 {
		return strings.ReplaceAll(intPart, sym.Group, ""), nil
	}
	segments := strings.Split(intPart, sym.Group)
	for i := len(segments) - 1; i >= 0; i-- {
		want := p.GroupingSize
		if i > 0 && p.SecondaryGroupingSize > 0 {
			want = p.SecondaryGroupingSize
		}
		if i == len(segments)-1 {
			want = p.GroupingSize
		}
		if i == 0 {
			if len(segments[i]) == 0 || len(segments[i]) > want {
				return "", ErrInvalidGrouping
			}
			continue
		}
		if len(segments[i]) != want {
			return "", ErrInvalidGrouping
		}
	}
	return strings.Join(segments, ""), nil
}
