// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"
	"strings"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
	"github.com/gocldr/gocldr/plural"
)

// CompactLength selects which length of a locale's compact_decimal_formats
// table FormatCompact reads from (spec §4.4.2 "Compact form"): "short"
// buckets render "1K"/"1M", "long" renders "1 thousand"/"1 million".
type CompactLength int

const (
	CompactShort CompactLength = iota
	CompactLong
)

func (l CompactLength) key() string {
	if l == CompactLong {
		return "long"
	}
	return "short"
}

// compactEntry is one parsed compact_decimal_formats[length][bucket][category]
// string such as "0K" or "00 thousand": the run of '0' placeholders fixes
// how many integer digits of the scaled value the bucket displays (and so
// its divisor), and whatever surrounds the run is the literal affix.
type compactEntry struct {
	prefix string
	zeros  int
	suffix string
}

func parseCompactEntry(raw string) compactEntry {
	i := strings.IndexByte(raw, '0')
	if i < 0 {
		return compactEntry{suffix: raw}
	}
	j := i
	for j < len(raw) && raw[j] == '0' {
		j++
	}
	return compactEntry{prefix: raw[:i], zeros: j - i, suffix: raw[j:]}
}

// trimWholeFraction drops d's fraction part entirely when it rounded to all
// zeros, so an exact bucket multiple reads "2M" rather than "2.0M" (CLDR
// compact forms never show a trailing zero fraction the way a plain decimal
// pattern would).
func trimWholeFraction(d pattern.Decimal) pattern.Decimal {
	intPart, fracPart := d.IntFrac()
	if fracPart == "" || strings.TrimRight(fracPart, "0") != "" {
		return d
	}
	u, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return d
	}
	d.Unscaled = u
	d.Scale = 0
	return d
}

// greatestBucket returns the largest key of table that is a power of ten
// not exceeding v's integer part, per spec §4.4.2's bucket-selection rule.
func greatestBucket(table cldr.Dict, v pattern.Decimal) (string, bool) {
	intPart, _ := v.IntFrac()
	iv, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return "", false
	}
	var best string
	var bestVal *big.Int
	for k := range table {
		bv, ok := new(big.Int).SetString(k, 10)
		if !ok || bv.Cmp(iv) > 0 {
			continue
		}
		if bestVal == nil || bv.Cmp(bestVal) > 0 {
			bestVal, best = bv, k
		}
	}
	if bestVal == nil {
		return "", false
	}
	return best, true
}

// FormatCompact renders v in f's locale using the bucket/category
// selection spec §4.4.2 "Compact form" describes: the greatest bucket
// (power of ten) not exceeding v's integer part picks the row of
// compact_decimal_formats[length], the cardinal plural category of the
// scaled value picks the column, and that entry's run of zeros fixes the
// divisor the value is scaled by before the literal affix is appended.
//
// Values below the smallest published bucket fall back to f's plain
// Decimal-style Format, matching CLDR's own compact tables, which never
// publish a bucket under 1000.
func (f *Formatter) FormatCompact(v pattern.Decimal, length CompactLength, global *cldr.GlobalData, opts Options) (string, error) {
	d, err := f.store.Load(f.Locale)
	if err != nil {
		return "", err
	}
	table := d.DictAt("numbers", "compact_decimal_formats", length.key())
	if table == nil || v.NaN || v.Inf {
		return f.Format(v, Decimal, opts)
	}
	bucketKey, ok := greatestBucket(table, v)
	if !ok {
		return f.Format(v, Decimal, opts)
	}
	magnitude := len(bucketKey) - 1

	cats := table.DictAt(bucketKey)
	probeRaw := cats.String("other")
	if probeRaw == "" {
		for k := range cats {
			probeRaw = cats.String(k)
			break
		}
	}
	if probeRaw == "" {
		return f.Format(v, Decimal, opts)
	}
	probe := parseCompactEntry(probeRaw)

	exponent := magnitude - probe.zeros + 1
	maxFrac := 0
	if probe.zeros <= 1 {
		maxFrac = 1
	}

	scaled := v.Scaled(-exponent).RoundFraction(maxFrac)
	scaled = trimWholeFraction(scaled)

	cat := plural.Other
	if rules, ok := global.PluralRules[f.Locale].(*plural.RuleSet); ok {
		intPart, fracPart := scaled.IntFrac()
		opStr := intPart
		if fracPart != "" {
			opStr += "." + fracPart
		}
		if ops, err := plural.FromString(opStr); err == nil {
			cat = rules.Select(ops.WithExponent(exponent))
		}
	}

	raw := cats.String(string(cat))
	if raw == "" {
		raw = probeRaw
	}
	entry := parseCompactEntry(raw)

	sym, err := f.Symbols()
	if err != nil {
		return "", err
	}
	p := &pattern.Pattern{
		MinIntegerDigits:  1,
		MaxFractionDigits: maxFrac,
		PositivePrefix:    entry.prefix,
		PositiveSuffix:    entry.suffix,
	}
	p = applyOverrides(p, opts)
	return pattern.Format(scaled, p, sym), nil
}
