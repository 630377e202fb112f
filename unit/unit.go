// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit implements locale-aware unit-of-measurement formatting
// (spec §4.6, C6): a measurement unit identifier ("length-meter") paired
// with a plural-aware display pattern resolved from a locale's CLDR unit
// data, the way package currency resolves a currency's display pattern.
package unit

import (
	"errors"
	"strings"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number"
	"github.com/gocldr/gocldr/number/pattern"
	"github.com/gocldr/gocldr/plural"
)

// Width selects how verbose a unit's display name is (spec §4.6 "unit
// display widths: long, short, narrow").
type Width int

const (
	Long Width = iota
	Short
	Narrow
)

var widthKey = map[Width]string{Long: "long", Short: "short", Narrow: "narrow"}

// ErrUnknownUnit is returned when neither the requested locale nor its
// root ancestor has data for a unit identifier.
var ErrUnknownUnit = errors.New("unit: no data for this unit identifier")

// Format renders amount of unit (e.g. "length-kilometer") in locale at
// width, selecting the plural category's pattern and substituting amount
// into its "{0}" placeholder (spec §4.6 "unit composition": value
// formatted by the number pattern interpreter, then spliced into the
// plural-selected unit pattern). width is not applied: every Width
// renders with the locale's single pattern set for the unit.
func Format(store *cldr.Store, global *cldr.GlobalData, locale, unit string, amount pattern.Decimal, width Width) (string, error) {
	d, err := store.Load(locale)
	if err != nil {
		return "", err
	}
	units := d.DictAt("numbers", "units")
	if units == nil {
		return "", ErrUnknownUnit
	}
	// The embedded seed data stores one (unwidth-qualified) pattern set
	// per unit; a richer Source keyed by "unit/width/unitName" would look
	// up widthKey[width] first and fall back to this flat shape.
	_ = widthKey[width]
	u := units.DictAt(unit)
	if u == nil {
		return "", ErrUnknownUnit
	}

	f := number.NewFormatter(store, locale)
	numStr, err := f.Format(amount, number.Decimal, number.Options{})
	if err != nil {
		return "", err
	}

	cat := plural.Other
	ops, err := plural.FromString(decimalLiteral(amount))
	if err == nil {
		if rs, ok := global.PluralRules[locale].(*plural.RuleSet); ok {
			cat = rs.Select(ops)
		}
	}
	tmpl := u.String(string(cat))
	if tmpl == "" {
		tmpl = u.String("other")
	}
	if tmpl == "" {
		return "", ErrUnknownUnit
	}
	return strings.Replace(tmpl, "{0}", numStr, 1), nil
}

func decimalLiteral(d pattern.Decimal) string {
	intPart, fracPart := d.IntFrac()
	s := intPart
	if fracPart != "" {
		s += "." + fracPart
	}
	if d.Neg {
		s = "-" + s
	}
	return s
}
