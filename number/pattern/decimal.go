// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern implements the CLDR number pattern grammar (spec §4.4):
// parsing "#,##0.00;(#,##0.00)"-style pattern strings into a structural
// description, and using that description to format and parse decimal
// values. Decimal itself is an arbitrary-precision base-10 value — never a
// binary float — so that formatting and round-trip parsing are exact, the
// way CLDR's own reference algorithms assume (spec §4.4 "operate on an
// exact decimal representation, never a binary float").
package pattern

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an exact, arbitrary-precision decimal value: Unscaled *
// 10^-Scale, negated if Neg. Scale may be negative, meaning Unscaled
// implicitly carries that many trailing zeros before the decimal point.
type Decimal struct {
	Neg      bool
	Unscaled *big.Int
	Scale    int
	NaN      bool
	Inf      bool
}

func zero() *big.Int { return new(big.Int) }

// DecimalFromInt64 returns the exact Decimal for n.
func DecimalFromInt64(n int64) Decimal {
	neg := n < 0
	u := big.NewInt(n)
	u.Abs(u)
	return Decimal{Neg: neg, Unscaled: u, Scale: 0}
}

// DecimalFromFloat64 returns the Decimal closest to f using the shortest
// round-tripping decimal representation (strconv's 'f'/-1 format), mirroring
// how Go's own fmt package renders floats. NaN and Inf are preserved as
// such; callers that need exact values should use ParseDecimalString on a
// literal instead of a float64.
func DecimalFromFloat64(f float64) Decimal {
	if f != f {
		return Decimal{NaN: true}
	}
	if math.IsInf(f, 0) {
		return Decimal{Inf: true, Neg: f < 0}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := ParseDecimalString(s)
	if err != nil {
		return Decimal{NaN: true}
	}
	return d
}

// ParseDecimalString parses a plain ASCII decimal literal such as
// "-1099.980" into an exact Decimal, preserving every written digit
// (including trailing fraction zeros, which callers that care about
// significant-digit counts rely on).
func ParseDecimalString(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, strconv.ErrSyntax
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	digits := intPart + fracPart
	if digits == "" {
		return Decimal{}, strconv.ErrSyntax
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Decimal{}, strconv.ErrSyntax
		}
	}
	u, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, strconv.ErrSyntax
	}
	return Decimal{Neg: neg && u.Sign() != 0, Unscaled: u, Scale: len(fracPart)}, nil
}

// IsZero reports whether d is the exact value zero.
func (d Decimal) IsZero() bool {
	return !d.NaN && !d.Inf && (d.Unscaled == nil || d.Unscaled.Sign() == 0)
}

// Negate returns -d.
func (d Decimal) Negate() Decimal {
	if d.IsZero() {
		return d
	}
	d.Neg = !d.Neg
	return d
}

// Scaled returns d * 10^factor, realized by shifting the decimal point
// rather than performing multiplication (used for percent/per-mille
// transforms, spec §4.4.1's "multiplier": %=x100, ‰=x1000).
func (d Decimal) Scaled(factor int) Decimal {
	d.Scale -= factor
	return d
}

// digits returns the unscaled value's decimal digit string ("0" for zero).
func (d Decimal) digits() string {
	if d.Unscaled == nil {
		return "0"
	}
	return d.Unscaled.String()
}

// IntFrac splits d into its integer-part and fraction-part digit strings
// (no sign, no decimal point), e.g. 0.0996 -> ("0", "0996"), 1099 -> ("1099", "").
func (d Decimal) IntFrac() (intPart, fracPart string) {
	digs := d.digits()
	if d.Scale <= 0 {
		return digs + strings.Repeat("0", -d.Scale), ""
	}
	if len(digs) <= d.Scale {
		digs = strings.Repeat("0", d.Scale-len(digs)+1) + digs
	}
	cut := len(digs) - d.Scale
	return digs[:cut], digs[cut:]
}

// RoundFraction rounds d to at most maxFrac fraction digits using
// round-half-to-even (spec §4.4.2 rounding mode "half-even", CLDR's
// default). If d already has maxFrac or fewer fraction digits, d is
// returned unchanged (callers pad separately for a *minimum* fraction
// digit count).
func (d Decimal) RoundFraction(maxFrac int) Decimal {
	if d.NaN || d.Inf || maxFrac < 0 || d.Scale <= maxFrac {
		return d
	}
	drop := d.Scale - maxFrac
	q := roundHalfEven(d.Unscaled, drop)
	d.Unscaled = q
	d.Scale = maxFrac
	if q.Sign() == 0 {
		d.Neg = false
	}
	return d
}

// RoundSignificant rounds d to at most maxSig significant digits
// (round-half-even), per spec §4.4.2's significant-digit mode. Zero is
// never rounded (it has no significant digits to drop).
func (d Decimal) RoundSignificant(maxSig int) Decimal {
	if d.NaN || d.Inf || maxSig <= 0 || d.IsZero() {
		return d
	}
	digs := d.digits()
	if len(digs) <= maxSig {
		return d
	}
	drop := len(digs) - maxSig
	q := roundHalfEven(d.Unscaled, drop)
	effectiveDrop := drop
	if len(q.String()) > maxSig {
		// Carry overflowed into an extra digit (e.g. 99 -> 100): the extra
		// trailing digit is exact (remainder zero), so one more plain
		// truncation restores exactly maxSig digits.
		q = new(big.Int).Quo(q, big.NewInt(10))
		effectiveDrop++
	}
	d.Unscaled = q
	d.Scale -= effectiveDrop
	if q.Sign() == 0 {
		d.Neg = false
	}
	return d
}

// roundHalfEven returns round(u / 10^drop) using round-half-to-even.
func roundHalfEven(u *big.Int, drop int) *big.Int {
	if drop <= 0 {
		return new(big.Int).Set(u)
	}
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(drop)), nil)
	q, r := new(big.Int).QuoRem(u, divisor, new(big.Int))
	half := new(big.Int).Rsh(divisor, 1) // divisor/2; divisor is always even for drop>=1
	cmp := r.Cmp(half)
	switch {
	case cmp > 0:
		q.Add(q, big.NewInt(1))
	case cmp == 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// PadMinFraction pads d's fraction part with trailing zeros so it has at
// least minFrac digits (spec §4.4.2 "minimum fraction digit count").
func (d Decimal) PadMinFraction(minFrac int) Decimal {
	if d.Scale >= minFrac {
		return d
	}
	grow := minFrac - d.Scale
	u := new(big.Int).Set(d.Unscaled)
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(grow)), nil)
	u.Mul(u, mul)
	d.Unscaled = u
	d.Scale = minFrac
	return d
}

// SignificantCount returns the number of significant (nonzero-leading)
// digits in d, used to decide whether MinSignificantDigits padding is
// needed.
func (d Decimal) SignificantCount() int {
	if d.IsZero() {
		return 1
	}
	return len(d.digits())
}
