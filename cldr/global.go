// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

import "github.com/gocldr/gocldr/language"

// CurrencyFraction holds the digits/rounding data CLDR publishes per
// currency (spec §6 "currency_fractions (digits, rounding, cash_digits,
// cash_rounding)").
type CurrencyFraction struct {
	Digits      int
	Rounding    int
	CashDigits  int
	CashRounding int
}

// TerritoryCurrency is one entry of a territory's currency history (spec
// §4.6 "territory_currencies with validity windows {from, to, tender}").
// From and To are "YYYY-MM-DD" or "" for unbounded.
type TerritoryCurrency struct {
	Code   string
	From   string
	To     string
	Tender bool
}

// TerritoryLanguage records a language spoken in a territory along with
// its approximate population share and official status (spec §6
// "territory languages with population/official status").
type TerritoryLanguage struct {
	Language   string
	Population float64
	Official   bool
}

// MetaZone is a named group of time zones sharing display names during a
// time range (GLOSSARY "Metazone").
type MetaZone struct {
	Name string
	From string
	To   string
}

// GlobalData holds the cross-locale tables spec §3/§6 describe: zone
// aliases, currency fractions, territory-language associations,
// likely-subtag maps (delegated to the language package) and parent-locale
// exceptions. It is constructed once and never mutated afterward (spec §5).
type GlobalData struct {
	// ParentExceptions overrides the default parent (rightmost-component
	// strip) for specific locales, e.g. "zh_Hant_HK" -> "zh_Hant" (spec §3
	// "Inheritance chain").
	ParentExceptions map[string]string

	// ZoneAliases maps a deprecated/alternate zone id to its canonical id.
	ZoneAliases map[string]string

	// ZoneTerritory maps an IANA zone id to its territory code.
	ZoneTerritory map[string]string

	// WindowsZones maps a "Windows zone name/territory" key to an IANA id.
	WindowsZones map[string]string

	// MetaZones maps an IANA zone id to the ordered list of metazone
	// periods that apply to it.
	MetaZones map[string][]MetaZone

	// CurrencyFractions maps an ISO 4217 code to its rounding data. The
	// "DEFAULT" key supplies the fallback used by currencies absent from
	// the table (CLDR's own convention).
	CurrencyFractions map[string]CurrencyFraction

	// TerritoryCurrencies maps a territory code to its currency history,
	// ordered oldest-first.
	TerritoryCurrencies map[string][]TerritoryCurrency

	// TerritoryLanguages maps a territory code to the languages spoken
	// there.
	TerritoryLanguages map[string][]TerritoryLanguage

	// PluralRules and OrdinalRules map a locale id to its compiled plural
	// rule set. Declared as `any` here to avoid an import cycle with the
	// plural package; callers type-assert to *plural.RuleSet.
	PluralRules  map[string]any
	OrdinalRules map[string]any
}

// NewGlobalData returns an empty, ready-to-populate GlobalData.
func NewGlobalData() *GlobalData {
	return &GlobalData{
		ParentExceptions:    map[string]string{},
		ZoneAliases:         map[string]string{},
		ZoneTerritory:       map[string]string{},
		WindowsZones:        map[string]string{},
		MetaZones:           map[string][]MetaZone{},
		CurrencyFractions:   map[string]CurrencyFraction{},
		TerritoryCurrencies: map[string][]TerritoryCurrency{},
		TerritoryLanguages:  map[string][]TerritoryLanguage{},
		PluralRules:         map[string]any{},
		OrdinalRules:        map[string]any{},
	}
}

// DefaultParent computes the parent locale id for id: the explicit
// ParentExceptions entry if one exists (spec §3's "explicit overrides from
// a parent-exceptions map... e.g. zh_Hant_HK -> zh_Hant, bypassing
// zh_HK"), otherwise language.Tag.Parent's rightmost-component strip.
func (g *GlobalData) DefaultParent(id string) string {
	if p, ok := g.ParentExceptions[id]; ok {
		return p
	}
	tag := language.Make(id)
	return tag.Parent().String()
}

// ResolveZone follows ZoneAliases to the canonical zone id.
func (g *GlobalData) ResolveZone(id string) string {
	seen := map[string]bool{}
	for {
		if seen[id] {
			return id
		}
		seen[id] = true
		canon, ok := g.ZoneAliases[id]
		if !ok || canon == id {
			return id
		}
		id = canon
	}
}

// CurrencyForTerritory selects the latest currency whose validity window
// covers date and whose Tender flag is set (spec §4.6 "select the latest
// currency whose from <= date <= (to or infinity) and tender=true"). date
// is a "YYYY-MM-DD" string; lexical comparison is valid for that format.
func (g *GlobalData) CurrencyForTerritory(territory, date string) (string, bool) {
	list := g.TerritoryCurrencies[territory]
	best := ""
	bestFrom := ""
	for _, c := range list {
		if !c.Tender {
			continue
		}
		if c.From != "" && date < c.From {
			continue
		}
		if c.To != "" && date > c.To {
			continue
		}
		if c.From >= bestFrom {
			best, bestFrom = c.Code, c.From
		}
	}
	return best, best != ""
}

// Fraction returns the rounding data for code, falling back to the
// "DEFAULT" entry.
func (g *GlobalData) Fraction(code string) CurrencyFraction {
	if f, ok := g.CurrencyFractions[code]; ok {
		return f
	}
	return g.CurrencyFractions["DEFAULT"]
}
