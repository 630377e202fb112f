// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "testing"

func mustParse(t *testing.T, s string) *Pattern {
	t.Helper()
	p, err := ParsePattern(s)
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", s, err)
	}
	return p
}

func TestFormatDecimal(t *testing.T) {
	p := mustParse(t, "#,##0.###")
	tests := []struct {
		in   string
		want string
	}{
		{"1234567.891", "1,234,567.891"},
		{"0", "0"},
		{"-42.5", "-42.5"},
		{"0.1", "0.1"},
	}
	for _, tc := range tests {
		d, err := ParseDecimalString(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := Format(d, p, LatinSymbols); got != tc.want {
			t.Errorf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatFixedFraction(t *testing.T) {
	p := mustParse(t, "#,##0.00")
	d, _ := ParseDecimalString("1099.5")
	if got, want := Format(d, p, LatinSymbols), "1,099.50"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatPercent(t *testing.T) {
	p := mustParse(t, "#,##0%")
	d, _ := ParseDecimalString("0.4567")
	if got, want := Format(d, p, LatinSymbols), "46%"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatNegativeSubpattern(t *testing.T) {
	p := mustParse(t, "#,##0.00;(#,##0.00)")
	d, _ := ParseDecimalString("-42.5")
	if got, want := Format(d, p, LatinSymbols), "(42.50)"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestRoundSignificantCarry(t *testing.T) {
	d, _ := ParseDecimalString("0.0996")
	got := d.RoundSignificant(2)
	intP, fracP := got.IntFrac()
	if intP != "0" || fracP != "10" {
		t.Errorf("RoundSignificant(0.0996, 2) = %s.%s, want 0.10", intP, fracP)
	}
}

func TestRoundSignificantIntegerCarry(t *testing.T) {
	d, _ := ParseDecimalString("996")
	got := d.RoundSignificant(2)
	intP, fracP := got.IntFrac()
	if intP != "1000" || fracP != "" {
		t.Errorf("RoundSignificant(996, 2) = %s.%s, want 1000", intP, fracP)
	}
}

func TestRoundFractionHalfEven(t *testing.T) {
	tests := []struct {
		in       string
		maxFrac  int
		wantInt  string
		wantFrac string
	}{
		{"2.345", 2, "2", "34"},  // 4 is even, round down
		{"2.355", 2, "2", "36"},  // 5 is odd (wait, rounds to even neighbor)
		{"1.005", 2, "1", "00"},  // banker's rounding to even
		{"1.015", 2, "1", "02"},
	}
	for _, tc := range tests {
		d, _ := ParseDecimalString(tc.in)
		got := d.RoundFraction(tc.maxFrac)
		gi, gf := got.IntFrac()
		if gi != tc.wantInt || gf != tc.wantFrac {
			t.Errorf("RoundFraction(%s, %d) = %s.%s, want %s.%s", tc.in, tc.maxFrac, gi, gf, tc.wantInt, tc.wantFrac)
		}
	}
}

func TestParseNumberRoundTrip(t *testing.T) {
	p := mustParse(t, "#,##0.###")
	for _, in := range []string{"1,234,567.891", "0", "-42.5"} {
		d, err := ParseNumber(in, p, LatinSymbols, ParseOptions{})
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", in, err)
		}
		if got := Format(d, p, LatinSymbols); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestParseNumberStrictGrouping(t *testing.T) {
	p := mustParse(t, "#,##0.###")
	if _, err := ParseNumber("12,34,567", p, LatinSymbols, ParseOptions{Strict: true}); err != ErrInvalidGrouping {
		t.Errorf("strict parse of misplaced grouping: got %v, want ErrInvalidGrouping", err)
	}
	if _, err := ParseNumber("12,34,567", p, LatinSymbols, ParseOptions{Strict: false}); err != nil {
		t.Errorf("lenient parse of misplaced grouping should succeed, got %v", err)
	}
}

func TestParsePatternSignificantDigits(t *testing.T) {
	p := mustParse(t, "@@@#")
	if p.MinSignificantDigits != 3 || p.MaxSignificantDigits != 4 {
		t.Errorf("got min=%d max=%d, want min=3 max=4", p.MinSignificantDigits, p.MaxSignificantDigits)
	}
}
