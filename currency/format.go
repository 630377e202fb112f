// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package currency

import (
	"strings"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number"
	"github.com/gocldr/gocldr/number/pattern"
)

// FormatAmount renders amount as a currency value in locale, using the
// locale's currency pattern and symbol with c's CLDR rounding rule
// substituted in for the pattern's own fraction-digit count (spec §4.6
// "currency composition": the number pattern supplies layout, the
// currency's own digits/rounding override the pattern's fraction
// digits).
func FormatAmount(store *cldr.Store, global *cldr.GlobalData, locale string, c Currency, amount pattern.Decimal, kind Kind) (string, error) {
	f := number.NewFormatter(store, locale)
	d, err := store.Load(locale)
	if err != nil {
		return "", err
	}
	raw := d.String("numbers", "patterns", "currency")
	if raw == "" {
		raw = "¤#,##0.00"
	}
	p, err := pattern.ParsePattern(raw)
	if err != nil {
		return "", err
	}
	sym, err := f.Symbols()
	if err != nil {
		return "", err
	}

	scale, increment := Rounding(global, c, kind)
	minFrac := scale
	p.MinFractionDigits = minFrac
	p.MaxFractionDigits = minFrac
	if increment > 1 {
		incLiteral := "0"
		if scale > 0 {
			incLiteral = "0." + strings.Repeat("0", scale-1) + itoa(increment)
		} else {
			incLiteral = itoa(increment)
		}
		if inc, err := pattern.ParseDecimalString(incLiteral); err == nil {
			p.HasExplicitRounding = true
			p.RoundingIncrement = inc
		}
	}

	out := pattern.Format(amount, p, sym)
	symbolGlyph, err := Symbol(store, locale, c)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(out, "¤", symbolGlyph), nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
