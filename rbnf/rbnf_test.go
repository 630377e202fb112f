// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbnf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/plural"
)

func testStore(t *testing.T) *cldr.Store {
	t.Helper()
	return cldr.NewStore(cldr.NewSeedSource(), cldr.NewSeedGlobalData())
}

func TestSpelloutBasics(t *testing.T) {
	store := testStore(t)
	cases := map[int64]string{
		0:    "zero",
		7:    "seven",
		15:   "fifteen",
		21:   "twenty-one",
		100:  "one hundred",
		123:  "one hundred twenty-three",
		1000: "one thousand",
		1234: "one thousand two hundred thirty-four",
		-5:   "minus five",
	}
	for n, want := range cases {
		got, err := Spellout(store, "en", n, Options{})
		require.NoErrorf(t, err, "Spellout(%d)", n)
		require.Equalf(t, want, got, "Spellout(%d)", n)
	}
}

func TestSpelloutOrdinalEnglish(t *testing.T) {
	store := testStore(t)
	cases := map[int64]string{
		1:   "first",
		3:   "third",
		21:  "twenty-first",
		123: "one hundred twenty-third",
	}
	for n, want := range cases {
		got, err := Spellout(store, "en", n, Options{Ordinal: true})
		require.NoErrorf(t, err, "Spellout(%d, ordinal)", n)
		require.Equalf(t, want, got, "Spellout(%d, ordinal)", n)
	}
}

func TestSpelloutYearEntryPoint(t *testing.T) {
	store := testStore(t)
	got, err := Spellout(store, "en", 1999, Options{Year: true})
	require.NoError(t, err)
	require.Equal(t, "one thousand nine hundred ninety-nine", got)
}

func TestSpelloutConflictingEntryPoint(t *testing.T) {
	store := testStore(t)
	_, err := Spellout(store, "en", 5, Options{Ordinal: true, Year: true})
	require.ErrorIs(t, err, ErrConflictingEntryPoint)
}

func TestSpelloutHungarianOrdinalScenario(t *testing.T) {
	store := testStore(t)
	got, err := Spellout(store, "hu", 1950, Options{Ordinal: true})
	require.NoError(t, err)
	require.Equal(t, "ezerkilencszázötvenedik", got)
}

func TestSpelloutHungarianCardinal(t *testing.T) {
	store := testStore(t)
	got, err := Spellout(store, "hu", 1950, Options{})
	require.NoError(t, err)
	require.Equal(t, "ezerkilencszázötven", got)
}

func TestParseRulesRejectsDescendingBase(t *testing.T) {
	_, err := ParseRules([]string{"10: ten;", "5: five;"})
	require.Error(t, err)
}

func TestParseRulesRejectsUnbalancedBracket(t *testing.T) {
	_, err := ParseRules([]string{"20: twenty[->>;"})
	require.Error(t, err)
}

func TestNoSpelloutDataForLocaleWithoutRules(t *testing.T) {
	store := testStore(t)
	_, err := Spellout(store, "de", 5, Options{})
	require.ErrorIs(t, err, ErrNoSpelloutData)
}

func TestGroupFormatUnknownRuleset(t *testing.T) {
	g, err := NewGroup(map[string][]string{"main": {"0: zero;"}}, nil, nil)
	require.NoError(t, err)
	_, err = g.Format("missing", 1)
	require.ErrorIs(t, err, ErrRulesetNotFound)
}

func TestGroupFormatNamedPrivateReference(t *testing.T) {
	g, err := NewGroup(map[string][]string{
		"main":     {"0: <%%helper<!;"},
		"%%helper": {"0: zero;", "1: one;", "2: two;"},
	}, nil, nil)
	require.NoError(t, err)
	got, err := g.Format("main", 2)
	require.NoError(t, err)
	require.Equal(t, "two!", got)
}

func TestGroupFormatDecimalPatternReference(t *testing.T) {
	g, err := NewGroup(map[string][]string{
		"year": {"0: =#,##0=;"},
	}, nil, nil)
	require.NoError(t, err)
	got, err := g.Format("year", 1999)
	require.NoError(t, err)
	require.Equal(t, "1,999", got)
}

func TestGroupFormatPreviousRuleBackReference(t *testing.T) {
	g, err := NewGroup(map[string][]string{
		"main": {
			"0: zero;",
			"1: one;",
			"2: two;",
			"3: three;",
			"10: ten;",
			"11: ten->>>;",
		},
	}, nil, nil)
	require.NoError(t, err)
	// For 15, >>> renders the remainder (5) through rule 10, the rule
	// preceding 11, instead of normal dispatch (which would pick rule 3).
	got, err := g.Format("main", 15)
	require.NoError(t, err)
	require.Equal(t, "ten-ten", got)
}

func TestGroupFormatPluralSubstitution(t *testing.T) {
	store := testStore(t)
	ordinal, ok := store.Global.OrdinalRules["en"].(*plural.RuleSet)
	require.True(t, ok)

	g, err := NewGroup(map[string][]string{
		"digit-ordinal": {"0: =#,##0=$(ordinal,one{st}two{nd}few{rd}other{th})$;"},
	}, nil, ordinal)
	require.NoError(t, err)

	cases := map[int64]string{
		1: "1st",
		2: "2nd",
		3: "3rd",
		4: "4th",
	}
	for n, want := range cases {
		got, err := g.Format("digit-ordinal", n)
		require.NoErrorf(t, err, "Format(%d)", n)
		require.Equalf(t, want, got, "Format(%d)", n)
	}
}

func TestGroupFormatRuleNotFoundForPluralSubstitution(t *testing.T) {
	g, err := NewGroup(map[string][]string{
		"digit": {"0: =#,##0=$(cardinal,one{st})$;"},
	}, nil, nil)
	require.NoError(t, err)
	_, err = g.Format("digit", 1)
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func TestBaseValueDivisorFallback(t *testing.T) {
	g, err := NewGroup(map[string][]string{
		"main": {
			"0: zero;",
			"1: one;",
			"2: two;",
			"3: three;",
			"4: four;",
			"5/2: <<->>;",
		},
	}, nil, nil)
	require.NoError(t, err)

	// 9 % divisor(4) != 0, so the rule at base 5 applies normally.
	got, err := g.Format("main", 9)
	require.NoError(t, err)
	require.Equal(t, "two-one", got)

	// 8 % divisor(4) == 0 and base 5 isn't an even multiple of its own
	// divisor, so the two-substitution fallback reuses the preceding rule.
	got, err = g.Format("main", 8)
	require.NoError(t, err)
	require.Equal(t, "four", got)
}

func TestFormatFloat(t *testing.T) {
	named := map[string][]string{
		"decimal": {
			"0: zero;",
			"1: one;",
			"2: two;",
			"3: three;",
			"4: four;",
			"5: five;",
			"6: six;",
			"7: seven;",
			"8: eight;",
			"9: nine;",
			"x.x: << point >>;",
			"0.x: point >>;",
		},
	}
	g, err := NewGroup(named, nil, nil)
	require.NoError(t, err)

	got, err := g.FormatFloat("decimal", 1.25)
	require.NoError(t, err)
	require.Equal(t, "one point two five", got)

	got, err = g.FormatFloat("decimal", 0.5)
	require.NoError(t, err)
	require.Equal(t, "point five", got)
}

func TestChooseFractionRule(t *testing.T) {
	rules, err := ParseRules([]string{"2: half;", "3: third;", "4: quarter;"})
	require.NoError(t, err)
	rule, ok := ChooseFractionRule(rules, 0.5)
	require.True(t, ok)
	require.Equal(t, int64(2), rule.Base)
}

func TestChooseFractionRuleTieBreak(t *testing.T) {
	rules, err := ParseRules([]string{"2: half;", "2: halves;"})
	require.NoError(t, err)

	rule, ok := ChooseFractionRule(rules, 0.5)
	require.True(t, ok)
	require.Equal(t, "half", rule.Body[0].Text)

	rule, ok = ChooseFractionRule(rules, 1.5)
	require.True(t, ok)
	require.Equal(t, "halves", rule.Body[0].Text)
}
