// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number is the public, locale-aware face of the number pattern
// interpreter (spec §4.4, C4): it resolves a locale's symbols and pattern
// strings out of a cldr.Store and drives package pattern's Format/Parse
// against them. Callers who already have a pattern.Pattern and
// pattern.Symbols in hand (e.g. currency/unit formatting reusing a
// decimal pattern) may use package pattern directly instead.
package number

import (
	"errors"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
)

// Style selects which of a locale's number pattern families to use.
type Style int

const (
	Decimal Style = iota
	Percent
	Scientific
	Accounting
)

// Options adjusts a Format/Parse call's behavior beyond the locale's
// default pattern (spec §4.4.2's "caller-supplied overrides": min/max
// fraction and significant digit counts, and parse strictness).
type Options struct {
	MinFractionDigits   *int
	MaxFractionDigits   *int
	MinSignificantDigits *int
	MaxSignificantDigits *int
	Strict              bool
}

// ErrNoPattern is returned when a locale's data has no pattern for the
// requested Style.
var ErrNoPattern = errors.New("number: locale has no pattern for this style")

// Formatter formats and parses decimal numbers for one locale, sourced
// from a cldr.Store.
type Formatter struct {
	store *cldr.Store
	Locale string
}

// NewFormatter returns a Formatter for locale, backed by store.
func NewFormatter(store *cldr.Store, locale string) *Formatter {
	return &Formatter{store: store, Locale: locale}
}

// Symbols resolves f's locale's number symbols, falling back to
// pattern.LatinSymbols for anything the locale data does not override.
func (f *Formatter) Symbols() (pattern.Symbols, error) {
	d, err := f.store.Load(f.Locale)
	if err != nil {
		return pattern.Symbols{}, err
	}
	sym := pattern.LatinSymbols
	syms := d.DictAt("numbers", "symbols")
	if syms == nil {
		return sym, nil
	}
	setIf := func(dst *string, key string) {
		if v := syms.String(key); v != "" {
			*dst = v
		}
	}
	setIf(&sym.Decimal, "decimal")
	setIf(&sym.Group, "group")
	setIf(&sym.PercentSign, "percentSign")
	setIf(&sym.MinusSign, "minusSign")
	setIf(&sym.PlusSign, "plusSign")
	setIf(&sym.PerMille, "perMille")
	setIf(&sym.Exponential, "exponential")
	setIf(&sym.Infinity, "infinity")
	setIf(&sym.NaN, "nan")
	return sym, nil
}

func (f *Formatter) patternFor(style Style) (*pattern.Pattern, error) {
	d, err := f.store.Load(f.Locale)
	if err != nil {
		return nil, err
	}
	key := map[Style]string{
		Decimal:    "decimal",
		Percent:    "percent",
		Scientific: "scientific",
		Accounting: "accounting",
	}[style]
	raw := d.String("numbers", "patterns", key)
	if raw == "" {
		if style == Accounting {
			raw = d.String("numbers", "patterns", "currency")
		}
		if raw == "" {
			return nil, ErrNoPattern
		}
	}
	return pattern.ParsePattern(raw)
}

func applyOverrides(p *pattern.Pattern, opts Options) *pattern.Pattern {
	cp := *p
	if opts.MinFractionDigits != nil {
		cp.MinFractionDigits = *opts.MinFractionDigits
	}
	if opts.MaxFractionDigits != nil {
		cp.MaxFractionDigits = *opts.MaxFractionDigits
	}
	if opts.MinSignificantDigits != nil {
		cp.MinSignificantDigits = *opts.MinSignificantDigits
	}
	if opts.MaxSignificantDigits != nil {
		cp.MaxSignificantDigits = *opts.MaxSignificantDigits
	}
	return &cp
}

// Format renders v under style using f's locale's pattern and symbols.
func (f *Formatter) Format(v pattern.Decimal, style Style, opts Options) (string, error) {
	p, err := f.patternFor(style)
	if err != nil {
		return "", err
	}
	p = applyOverrides(p, opts)
	sym, err := f.Symbols()
	if err != nil {
		return "", err
	}
	return pattern.Format(v, p, sym), nil
}

// Parse parses s under style using f's locale's pattern and symbols.
func (f *Formatter) Parse(s string, style Style, opts Options) (pattern.Decimal, error) {
	p, err := f.patternFor(style)
	if err != nil {
		return pattern.Decimal{}, err
	}
	sym, err := f.Symbols()
	if err != nil {
		return pattern.Decimal{}, err
	}
	return pattern.ParseNumber(s, p, sym, pattern.ParseOptions{Strict: opts.Strict})
}
