// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number"
	"github.com/gocldr/gocldr/number/pattern"
)

// Options gates the optional currency formatting behaviors this package
// adds beyond FormatAmount's plain pattern rendering.
type Options struct {
	// Compact requests babel.numbers.format_compact_currency-style
	// formatting: amount is reduced to a compact bucket (e.g. "1.2K")
	// the same way number.Formatter.FormatCompact does, with c's symbol
	// prepended rather than a full currency pattern applied.
	Compact       bool
	CompactLength number.CompactLength
}

// FormatAmountOpts renders amount as a currency value in locale, applying
// opts on top of FormatAmount's plain behavior.
func FormatAmountOpts(store *cldr.Store, global *cldr.GlobalData, locale string, c Currency, amount pattern.Decimal, kind Kind, opts Options) (string, error) {
	if opts.Compact {
		return FormatAmountCompact(store, global, locale, c, amount, opts.CompactLength)
	}
	return FormatAmount(store, global, locale, c, amount, kind)
}

// FormatAmountCompact renders amount using the locale's compact
// bucket/category selection (spec SUPPLEMENTED FEATURES,
// babel.numbers.format_compact_currency): the numeric body comes from the
// same bucket/category machinery number.Formatter.FormatCompact uses for
// plain numbers, and c's short symbol is prepended to it, e.g. "$1.2K".
func FormatAmountCompact(store *cldr.Store, global *cldr.GlobalData, locale string, c Currency, amount pattern.Decimal, length number.CompactLength) (string, error) {
	f := number.NewFormatter(store, locale)
	body, err := f.FormatCompact(amount, length, global, number.Options{})
	if err != nil {
		return "", err
	}
	symbolGlyph, err := Symbol(store, locale, c)
	if err != nil {
		return "", err
	}
	return symbolGlyph + body, nil
}
