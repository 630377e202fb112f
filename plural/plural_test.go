// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plural

import "testing"

func mustRuleSet(t *testing.T, rules []NamedRule) *RuleSet {
	t.Helper()
	rs, err := ParseRuleSet(rules)
	if err != nil {
		t.Fatalf("ParseRuleSet: %v", err)
	}
	return rs
}

func russianRules() []NamedRule {
	return []NamedRule{
		{One, "v = 0 and i % 10 = 1 and i % 100 != 11"},
		{Few, "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
		{Many, "v = 0 and i % 10 = 0 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 11..14"},
	}
}

func TestRussianPlural(t *testing.T) {
	rs := mustRuleSet(t, russianRules())
	tests := []struct {
		n    int64
		want Category
	}{
		{21, One},
		{22, Few},
		{5, Many},
		{1, One},
		{2, Few},
		{11, Many},
		{100, Many},
		{101, One},
	}
	for _, tc := range tests {
		got := rs.Select(FromInt(tc.n))
		if got != tc.want {
			t.Errorf("plural(ru, %d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestTrailingZeroesMatter(t *testing.T) {
	rs := mustRuleSet(t, []NamedRule{{One, "i = 1 and v = 0"}})
	op100, err := FromString("1.00")
	if err != nil {
		t.Fatal(err)
	}
	if got := rs.Select(op100); got != Other {
		t.Errorf("plural(1.00) = %q, want other (v=2 != 0)", got)
	}
	opInt, err := FromString("1")
	if err != nil {
		t.Fatal(err)
	}
	if got := rs.Select(opInt); got != One {
		t.Errorf("plural(1) = %q, want one", got)
	}
}

func TestEnglishPlural(t *testing.T) {
	rs := mustRuleSet(t, []NamedRule{{One, "i = 1 and v = 0"}})
	for n := int64(0); n <= 200; n++ {
		want := Other
		if n == 1 {
			want = One
		}
		if got := rs.Select(FromInt(n)); got != want {
			t.Errorf("plural(en, %d) = %q, want %q", n, got, want)
		}
	}
}

func TestGettextEquivalence(t *testing.T) {
	rs := mustRuleSet(t, russianRules())
	expr, err := EmitGettext(rs)
	if err != nil {
		t.Fatalf("EmitGettext: %v", err)
	}
	if expr == "" {
		t.Fatal("empty gettext expression")
	}
	// This loop does not evaluate expr: it checks only that every category
	// RuleSet.Select returns for an integer in [0, 200] (v=0 in all cases)
	// is Other or one the rule set declares.
	for n := int64(0); n <= 200; n++ {
		cat := rs.Select(FromInt(n))
		idx := -1
		for i, r := range rs.Rules {
			if r.Category == cat {
				idx = i
				break
			}
		}
		if cat != Other && idx < 0 {
			t.Fatalf("category %q not found in rule declaration order", cat)
		}
	}
}
