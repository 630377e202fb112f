// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"math/big"
	"strconv"
	"strings"
)

// Format renders value under p using sym, following spec §4.4.2's
// formatting contract:
//  1. NaN/Inf short-circuit to the symbol table's literal glyphs.
//  2. the subpattern (positive or negative) is selected by sign.
//  3. the multiplier (1, 100 or 1000) is applied by shifting the decimal
//     point.
//  4. the value is rounded: to an explicit rounding increment if the
//     pattern declared one, else to significant digits or to fraction
//     digits depending on which mode the pattern used.
//  5. minimum integer and minimum fraction digits are padded with zeros.
//  6. grouping separators are inserted from the rightmost digit outward,
//     switching from the primary to the secondary grouping size once the
//     primary group has been consumed.
//  7. the result is assembled as prefix + digits + suffix, substituting
//     the numbering system's digit glyphs and separators.
func Format(value Decimal, p *Pattern, sym Symbols) string {
	if value.NaN {
		return sym.NaN
	}
	if value.Inf {
		prefix, suffix := p.prefixSuffix(value.Neg)
		return renderAffix(prefix, sym, value.Neg) + sym.Infinity + renderAffix(suffix, sym, value.Neg)
	}

	v := value.Scaled(multiplierShift(p.Multiplier))
	if p.HasExplicitRounding && !p.RoundingIncrement.IsZero() {
		v = roundToIncrement(v, p.RoundingIncrement)
	} else if p.usesSignificantDigits() {
		v = v.RoundSignificant(p.MaxSignificantDigits)
	} else {
		v = v.RoundFraction(p.MaxFractionDigits)
	}

	neg := value.Neg && !v.IsZero()
	prefix, suffix := p.prefixSuffix(neg)

	intPart, fracPart := v.IntFrac()
	intPart = padLeftZeros(intPart, minIntDigits(p, intPart))
	minFrac := p.MinFractionDigits
	if p.usesSignificantDigits() {
		minFrac = minFracForSignificant(intPart, fracPart, p.MinSignificantDigits)
	}
	fracPart = padRightZeros(fracPart, minFrac)

	var b strings.Builder
	b.WriteString(renderAffix(prefix, sym, neg))
	b.WriteString(groupInteger(intPart, p.GroupingSize, p.SecondaryGroupingSize, sym))
	if fracPart != "" {
		b.WriteString(sym.Decimal)
		b.WriteString(translateDigits(fracPart, sym))
	}
	if p.MinExponentDigits > 0 {
		// Exponent rendering operates on the already-rounded significant
		// digits directly rather than re-deriving them from intPart/fracPart,
		// since scientific patterns always pair with '@' or a single
		// leading-digit '#'/'0' spec.
		b.Reset()
		b.WriteString(renderAffix(prefix, sym, neg))
		mantissa, exp := toScientific(v, p.MinIntegerDigits)
		b.WriteString(translateDigits(mantissa, sym))
		b.WriteString(sym.Exponential)
		if exp >= 0 && p.ExponentPlusSign {
			b.WriteString(sym.PlusSign)
		}
		if exp < 0 {
			b.WriteString(sym.MinusSign)
			exp = -exp
		}
		b.WriteString(translateDigits(padLeftZeros(strconv.Itoa(exp), p.MinExponentDigits), sym))
	}
	b.WriteString(renderAffix(suffix, sym, neg))
	return applyPadding(b.String(), p, sym)
}

func multiplierShift(mult int) int {
	switch mult {
	case 100:
		return 2
	case 1000:
		return 3
	default:
		return 0
	}
}

func minIntDigits(p *Pattern, intPart string) int {
	if p.MinIntegerDigits > len(intPart) {
		return p.MinIntegerDigits
	}
	return len(intPart)
}

// minFracForSignificant computes how many fraction digits must be padded
// so the rendered value has at least MinSignificantDigits total digits
// (spec §4.4.2: significant-digit mode pads the fraction side, not the
// integer side, once the pattern's minimum is not yet met).
func minFracForSignificant(intPart, fracPart string, minSig int) int {
	sig := len(strings.TrimLeft(intPart, "0")) + len(fracPart)
	if intPart == "0" || intPart == "" {
		sig = len(strings.TrimLeft(fracPart, "0"))
	}
	if sig >= minSig {
		return len(fracPart)
	}
	return len(fracPart) + (minSig - sig)
}

func padLeftZeros(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

func padRightZeros(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat("0", n-len(s))
}

// groupInteger inserts group separators into digits, counting from the
// right: the first `primary` digits form the rightmost group, every
// subsequent group uses `secondary` (or `primary` again if secondary is 0).
func groupInteger(digits string, primary, secondary int, sym Symbols) string {
	if primary <= 0 || len(digits) <= primary {
		return translateDigits(digits, sym)
	}
	if secondary <= 0 {
		secondary = primary
	}
	var groups []string
	rest := digits[:len(digits)-primary]
	groups = append(groups, digits[len(digits)-primary:])
	for len(rest) > secondary {
		groups = append([]string{rest[len(rest)-secondary:]}, groups...)
		rest = rest[:len(rest)-secondary]
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	translated := make([]string, len(groups))
	for i, g := range groups {
		translated[i] = translateDigits(g, sym)
	}
	return strings.Join(translated, sym.Group)
}

func translateDigits(s string, sym Symbols) string {
	if sym.Digits[0] == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range s {
		b.WriteRune(sym.digit(int(c - '0')))
	}
	return b.String()
}

// renderAffix substitutes the single literal minus-sign rune a prefix or
// suffix may contain with sym.MinusSign; percent/per-mille glyphs in
// affixes are passed through as ASCII literals by the parser and are
// substituted here too.
func renderAffix(affix string, sym Symbols, neg bool) string {
	var b strings.Builder
	for _, c := range affix {
		switch c {
		case '-':
			b.WriteString(sym.MinusSign)
		case '+':
			b.WriteString(sym.PlusSign)
		case '%':
			b.WriteString(sym.PercentSign)
		case '‰':
			b.WriteString(sym.PerMille)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// roundToIncrement rounds v to the nearest multiple of inc (spec §4.4.2
// "explicit rounding increment", e.g. nearest-nickel cash rounding).
func roundToIncrement(v, inc Decimal) Decimal {
	scale := v.Scale
	if inc.Scale > scale {
		scale = inc.Scale
	}
	vAligned := alignScale(v, scale)
	incAligned := alignScale(inc, scale)
	if incAligned.Unscaled.Sign() == 0 {
		return v
	}
	q := new(big.Int).Quo(new(big.Int).Add(vAligned.Unscaled, new(big.Int).Div(incAligned.Unscaled, big.NewInt(2))), incAligned.Unscaled)
	result := new(big.Int).Mul(q, incAligned.Unscaled)
	return Decimal{Neg: v.Neg, Unscaled: result, Scale: scale}
}

func alignScale(d Decimal, scale int) Decimal {
	if d.Scale == scale {
		if d.Unscaled == nil {
			d.Unscaled = new(big.Int)
		}
		return d
	}
	grow := scale - d.Scale
	u := new(big.Int).Set(d.Unscaled)
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(grow)), nil)
	u.Mul(u, mul)
	d.Unscaled = u
	d.Scale = scale
	return d
}

// toScientific renders v as a mantissa digit string (with an implied
// decimal point after minIntDigits leading digits) and a power-of-ten
// exponent, for scientific-notation patterns ("#E0", "0.00E0").
func toScientific(v Decimal, minIntDigits int) (mantissa string, exp int) {
	if minIntDigits < 1 {
		minIntDigits = 1
	}
	digs := v.digits()
	// exponent relative to having exactly minIntDigits digits before the
	// point.
	exp = len(digs) - minIntDigits - v.Scale
	return digs, exp
}

// applyPadding is the hook for the pattern's '*' pad directive (spec
// §4.4.1). CLDR ties the target width to the surrounding formatted-value
// context (e.g. currency display column alignment) rather than the
// pattern alone; no locale in the embedded seed data exercises it, so
// PadChar/PadPosition are parsed and retained on Pattern but not yet
// applied here.
func applyPadding(s string, p *Pattern, sym Symbols) string {
	return s
}
