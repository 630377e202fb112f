// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed number pattern (spec §7 InvalidPattern).
type ParseError struct {
	Pattern string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pattern: cannot parse %q: %s", e.Pattern, e.Msg)
}

// ParsePattern parses a CLDR number pattern string (spec §4.4.1) into a
// Pattern. A hand-written scanner is used rather than regexp: the grammar
// is a single left-to-right pass over a handful of special runes
// ('#','0','@','.',',','%','‰','¤','*','\'',';') with no backtracking,
// which a scanner expresses far more directly and efficiently than a
// regular expression would.
func ParsePattern(s string) (*Pattern, error) {
	subpatterns, err := splitSubpatterns(s)
	if err != nil {
		return nil, &ParseError{Pattern: s, Msg: err.Error()}
	}
	pos, err := parseSubpattern(subpatterns[0])
	if err != nil {
		return nil, &ParseError{Pattern: s, Msg: err.Error()}
	}
	p := &Pattern{
		PositivePrefix:        pos.prefix,
		PositiveSuffix:        pos.suffix,
		MinIntegerDigits:      pos.minInt,
		MaxFractionDigits:     pos.maxFrac,
		MinFractionDigits:     pos.minFrac,
		MinSignificantDigits:  pos.minSig,
		MaxSignificantDigits:  pos.maxSig,
		GroupingSize:          pos.group1,
		SecondaryGroupingSize: pos.group2,
		Multiplier:            pos.multiplier,
		MinExponentDigits:     pos.expDigits,
		ExponentPlusSign:      pos.expPlus,
		PadChar:               pos.padChar,
		PadPosition:           pos.padPos,
	}
	if pos.hasRounding {
		p.HasExplicitRounding = true
		p.RoundingIncrement = pos.rounding
	}
	if len(subpatterns) > 1 {
		neg, err := parseSubpattern(subpatterns[1])
		if err != nil {
			return nil, &ParseError{Pattern: s, Msg: err.Error()}
		}
		p.NegativePrefix = neg.prefix
		p.NegativeSuffix = neg.suffix
	}
	return p, nil
}

// splitSubpatterns splits s on an unquoted ';', respecting '\''-delimited
// literal runs in which ';' is not a separator.
func splitSubpatterns(s string) ([]string, error) {
	var parts []string
	var b strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == ';' && !inQuote:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	parts = append(parts, b.String())
	if len(parts) > 2 {
		return nil, fmt.Errorf("too many subpatterns")
	}
	return parts, nil
}

type subpattern struct {
	prefix, suffix string
	minInt         int
	maxFrac        int
	minFrac        int
	minSig         int
	maxSig         int
	group1         int
	group2         int
	multiplier     int
	expDigits      int
	expPlus        bool
	padChar        rune
	padPos         PadPosition
	hasRounding    bool
	rounding       Decimal
}

// parseSubpattern parses one ';'-delimited half of a pattern: an affix, a
// number specification, and a trailing affix.
func parseSubpattern(s string) (subpattern, error) {
	sp := subpattern{multiplier: 1}
	runes := []rune(s)
	i := 0

	// literal affix text runs until a digit-spec rune or a pad marker.
	readAffix := func() (string, error) {
		var b strings.Builder
		for i < len(runes) {
			c := runes[i]
			switch c {
			case '#', '0', '@', '.', ',':
				return b.String(), nil
			case '\'':
				i++
				for i < len(runes) && runes[i] != '\'' {
					b.WriteRune(runes[i])
					i++
				}
				if i >= len(runes) {
					return "", fmt.Errorf("unterminated quote in affix")
				}
				i++
			case '*':
				i++
				if i >= len(runes) {
					return "", fmt.Errorf("dangling pad marker")
				}
				sp.padChar = runes[i]
				if b.Len() == 0 {
					sp.padPos = PadBeforePrefix
				} else {
					sp.padPos = PadAfterPrefix
				}
				i++
			case '%':
				sp.multiplier = 100
				b.WriteRune(c)
				i++
			case '‰':
				sp.multiplier = 1000
				b.WriteRune(c)
				i++
			default:
				b.WriteRune(c)
				i++
			}
		}
		return b.String(), nil
	}

	prefix, err := readAffix()
	if err != nil {
		return sp, err
	}
	sp.prefix = prefix

	// number spec: runs of '#', '0', '@', ',', '.', digits (exponent width),
	// optionally followed by 'E' + digits for scientific notation.
	digitsStart := i
	sawAt := false
	for i < len(runes) {
		c := runes[i]
		if c == '#' || c == '0' || c == '@' || c == ',' || c == '.' {
			if c == '@' {
				sawAt = true
			}
			i++
			continue
		}
		break
	}
	numSpec := string(runes[digitsStart:i])

	if i < len(runes) && runes[i] == 'E' {
		i++
		plus := false
		if i < len(runes) && runes[i] == '+' {
			plus = true
			i++
		}
		start := i
		for i < len(runes) && runes[i] == '0' {
			i++
		}
		if i == start {
			return sp, fmt.Errorf("exponent marker with no digits")
		}
		sp.expDigits = i - start
		sp.expPlus = plus
	}

	if sawAt {
		parseSignificantSpec(&sp, numSpec)
	} else {
		parseDigitSpec(&sp, numSpec)
	}

	// trailing pad marker, then suffix.
	if i < len(runes) && runes[i] == '*' {
		i++
		if i >= len(runes) {
			return sp, fmt.Errorf("dangling pad marker")
		}
		sp.padChar = runes[i]
		sp.padPos = PadBeforeSuffix
		i++
	}

	var b strings.Builder
	for i < len(runes) {
		c := runes[i]
		switch c {
		case '\'':
			i++
			for i < len(runes) && runes[i] != '\'' {
				b.WriteRune(runes[i])
				i++
			}
			if i >= len(runes) {
				return sp, fmt.Errorf("unterminated quote in suffix")
			}
			i++
		case '%':
			sp.multiplier = 100
			b.WriteRune(c)
			i++
		case '‰':
			sp.multiplier = 1000
			b.WriteRune(c)
			i++
		case '*':
			i++
			if i >= len(runes) {
				return sp, fmt.Errorf("dangling pad marker")
			}
			sp.padChar = runes[i]
			sp.padPos = PadAfterSuffix
			i++
		default:
			b.WriteRune(c)
			i++
		}
	}
	sp.suffix = b.String()
	return sp, nil
}

// parseDigitSpec interprets a '#'/'0'/','/'.' run, e.g. "#,##0.00" or
// "#,##0.05" (the latter an explicit rounding increment).
func parseDigitSpec(sp *subpattern, spec string) {
	intPart, fracPart := spec, ""
	if i := strings.IndexByte(spec, '.'); i >= 0 {
		intPart, fracPart = spec[:i], spec[i+1:]
	}

	groups := strings.Split(intPart, ",")
	last := groups[len(groups)-1]
	sp.minInt = countZeros(last)
	sp.group1 = len(last)
	if len(groups) >= 3 {
		sp.group2 = len(groups[len(groups)-2])
	}

	sp.maxFrac = len(fracPart)
	sp.minFrac = countZeros(fracPart)

	// An explicit rounding increment is any fractional spec containing a
	// nonzero digit, e.g. "05" in "#,##0.05".
	if hasNonZeroDigit(fracPart) || hasNonZeroDigit(last) {
		lit := strings.TrimLeft(last, "#")
		if lit == "" {
			lit = "0"
		}
		incLiteral := lit
		if fracPart != "" {
			incLiteral += "." + fracPart
		}
		if d, err := ParseDecimalString(incLiteral); err == nil && !d.IsZero() {
			sp.hasRounding = true
			sp.rounding = d
		}
	}
}

// parseSignificantSpec interprets an '@'/'#' run such as "@@@" or "@@##".
func parseSignificantSpec(sp *subpattern, spec string) {
	min, max := 0, 0
	for _, c := range spec {
		switch c {
		case '@':
			min++
			max++
		case '#':
			max++
		}
	}
	if min == 0 {
		min = 1
	}
	sp.minSig = min
	sp.maxSig = max
}

func countZeros(s string) int {
	n := 0
	for _, c := range s {
		if c == '0' {
			n++
		}
	}
	return n
}

func hasNonZeroDigit(s string) bool {
	for _, c := range s {
		if c >= '1' && c <= '9' {
			return true
		}
	}
	return false
}
