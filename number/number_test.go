// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"testing"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
)

func testStore(t *testing.T) *cldr.Store {
	t.Helper()
	return cldr.NewStore(cldr.NewSeedSource(), cldr.NewSeedGlobalData())
}

func TestFormatDecimalEn(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	d, _ := pattern.ParseDecimalString("1234567.891")
	got, err := f.Format(d, Decimal, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1,234,567.891"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatDecimalDeUsesCommaDecimal(t *testing.T) {
	f := NewFormatter(testStore(t), "de_DE")
	d, _ := pattern.ParseDecimalString("1234.5")
	got, err := f.Format(d, Decimal, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1.234,5"; got != want {
		t.Errorf("Format = %q, want %q (German uses '.' for grouping and ',' for the decimal point)", got, want)
	}
}

func TestParseRoundTripFrench(t *testing.T) {
	f := NewFormatter(testStore(t), "fr")
	sym, err := f.Symbols()
	if err != nil {
		t.Fatal(err)
	}
	if sym.Group != " " {
		t.Fatalf("expected fr group separator to be a space, got %q", sym.Group)
	}
	d, err := f.Parse("1 234,5", Decimal, Options{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.Format(d, Decimal, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 234,5"; got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestFormatOptionsOverrideFraction(t *testing.T) {
	f := NewFormatter(testStore(t), "en")
	d, _ := pattern.ParseDecimalString("1.5")
	two := 2
	got, err := f.Format(d, Decimal, Options{MinFractionDigits: &two, MaxFractionDigits: &two})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1.50"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
