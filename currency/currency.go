// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package currency implements ISO 4217 currency codes, their CLDR
// rounding rules, and locale-aware display-name and amount formatting
// (spec §4.6, C6).
package currency

import (
	"errors"
	"strings"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/plural"
)

// Kind determines the rounding properties of a currency value: Standard
// for everyday display, Cash for the smallest denomination actually
// tendered (e.g. Swiss rounding). Accounting is the same value as
// Standard: FormatAmount renders it with the locale's standard currency
// pattern, and the locale's accounting pattern is not consulted.
type Kind struct {
	cash bool
}

var (
	Standard   Kind = Kind{}
	Cash       Kind = Kind{cash: true}
	Accounting Kind = Kind{}
)

// Rounding reports scale (fraction digits) and increment (units of
// 10^-scale to round to) for c under k, from global's currency_fractions
// table (spec §4.6 "CurrencyFraction {digits, rounding, cash_digits,
// cash_rounding}").
func Rounding(global *cldr.GlobalData, c Currency, k Kind) (scale, increment int) {
	f := global.Fraction(c.code)
	if k.cash {
		if f.CashDigits == 0 && f.CashRounding == 0 {
			return f.Digits, maxInt(f.Rounding, 1)
		}
		return f.CashDigits, maxInt(f.CashRounding, 1)
	}
	return f.Digits, maxInt(f.Rounding, 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Currency is an ISO 4217 currency designator, e.g. "USD".
type Currency struct {
	code string
}

// String returns the ISO code of c, or "XXX" for the zero value.
func (c Currency) String() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

var errSyntax = errors.New("currency: code is not well-formed")

// ParseISO parses a 3-letter ISO 4217 code. It returns an error if s is
// not exactly 3 ASCII letters; unlike the teacher's compact-table
// implementation this does not validate s against a fixed currency list,
// since which codes are "recognized" is locale-data-dependent and not a
// static property of the package.
func ParseISO(s string) (Currency, error) {
	if len(s) != 3 {
		return Currency{}, errSyntax
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return Currency{}, errSyntax
		}
	}
	return Currency{code: strings.ToUpper(s)}, nil
}

// MustParseISO is like ParseISO but panics on error.
func MustParseISO(s string) Currency {
	c, err := ParseISO(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DisplayName returns the plural-aware display name for c in locale
// (spec's SUPPLEMENTED FEATURES "currency plural-aware name fallback
// chain"): it selects pluralNames[category] falling back to
// pluralNames["other"], then to the single displayName, then to the ISO
// code itself.
func DisplayName(store *cldr.Store, global *cldr.GlobalData, locale string, c Currency, count plural.Operands) (string, error) {
	d, err := store.Load(locale)
	if err != nil {
		return "", err
	}
	cur := d.DictAt("numbers", "currencies", c.code)
	if cur == nil {
		return c.code, nil
	}
	cat := plural.Other
	if rs, ok := global.PluralRules[locale].(*plural.RuleSet); ok {
		cat = rs.Select(count)
	}
	if plurals := cur.DictAt("pluralNames"); plurals != nil {
		if name := plurals.String(string(cat)); name != "" {
			return name, nil
		}
		if name := plurals.String("other"); name != "" {
			return name, nil
		}
	}
	if name := cur.String("displayName"); name != "" {
		return name, nil
	}
	return c.code, nil
}

// Symbol returns c's display symbol for locale (e.g. "$" for USD in
// en_US), falling back to the ISO code.
func Symbol(store *cldr.Store, locale string, c Currency) (string, error) {
	d, err := store.Load(locale)
	if err != nil {
		return "", err
	}
	if s := d.String("numbers", "currencies", c.code, "symbol"); s != "" {
		return s, nil
	}
	return c.code, nil
}
