// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbnf

import (
	"errors"
	"strings"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/plural"
)

// ErrNoSpelloutData is returned when a locale (and its root ancestor)
// carries no rbnf ruleset data at all.
var ErrNoSpelloutData = errors.New("rbnf: locale has no spellout rules")

// ErrConflictingEntryPoint is returned when Options requests both an
// ordinal and a year rendering (spec §4.7: "error to request both").
var ErrConflictingEntryPoint = errors.New("rbnf: ordinal and year entry points are mutually exclusive")

// Options selects which public entry-point ruleset a Spellout call uses
// (spec §4.7 "Entry-point selection"). The zero value renders the default
// cardinal spellout-numbering ruleset.
type Options struct {
	Ordinal bool
	Year    bool
}

const (
	entryNumbering      = "spellout-numbering"
	entryOrdinal        = "spellout-ordinal"
	entryOrdinalPrefix  = entryOrdinal + "-"
	entryNumberingYear  = "spellout-numbering-year"
)

// entryPoint resolves Options against the rulesets a locale actually
// ships: by default spellout-numbering; Year picks spellout-numbering-year;
// Ordinal picks spellout-ordinal, or the first "spellout-ordinal-*"
// variant present when a plain spellout-ordinal is absent (some CLDR
// locales only publish gendered variants, e.g. spellout-ordinal-masculine).
func entryPoint(named map[string][]string, opts Options) (string, error) {
	if opts.Ordinal && opts.Year {
		return "", ErrConflictingEntryPoint
	}
	if opts.Year {
		return entryNumberingYear, nil
	}
	if opts.Ordinal {
		if _, ok := named[entryOrdinal]; ok {
			return entryOrdinal, nil
		}
		for name := range named {
			if strings.HasPrefix(name, entryOrdinalPrefix) {
				return name, nil
			}
		}
		return entryOrdinal, nil
	}
	return entryNumbering, nil
}

// Spellout renders n as words in locale using its CLDR rbnf rule data
// (spec §4.7), entering at the ruleset Options selects. It builds a fresh
// Group on every call; callers formatting many values from the same
// locale should call LoadGroup once and reuse the result.
func Spellout(store *cldr.Store, locale string, n int64, opts Options) (string, error) {
	g, named, err := LoadGroup(store, locale)
	if err != nil {
		return "", err
	}
	entry, err := entryPoint(named, opts)
	if err != nil {
		return "", err
	}
	return g.Format(entry, n)
}

// LoadGroup builds a Group from locale's rbnf dictionary, wiring the
// locale's cardinal/ordinal plural rule sets in for
// "$(cardinal,…)$"/"$(ordinal,…)$" substitutions (spec §4.7 "Plural
// substitution"), and returns the named line lists LoadGroup parsed them
// from (entryPoint needs the name set to pick an ordinal variant).
func LoadGroup(store *cldr.Store, locale string) (*Group, map[string][]string, error) {
	d, err := store.Load(locale)
	if err != nil {
		return nil, nil, err
	}
	rbnfDict := d.DictAt("rbnf")
	if len(rbnfDict) == 0 {
		return nil, nil, ErrNoSpelloutData
	}
	named := make(map[string][]string, len(rbnfDict))
	for name, v := range rbnfDict {
		seq, ok := v.(cldr.Seq)
		if !ok {
			continue
		}
		lines := make([]string, 0, len(seq))
		for _, item := range seq {
			if s, ok := item.(cldr.Str); ok {
				lines = append(lines, string(s))
			}
		}
		named[name] = lines
	}
	cardinal, _ := store.Global.PluralRules[locale].(*plural.RuleSet)
	ordinal, _ := store.Global.OrdinalRules[locale].(*plural.RuleSet)
	g, err := NewGroup(named, cardinal, ordinal)
	if err != nil {
		return nil, nil, err
	}
	return g, named, nil
}
