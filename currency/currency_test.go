// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package currency

import (
	"testing"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
	"github.com/gocldr/gocldr/plural"
)

func testStore(t *testing.T) (*cldr.Store, *cldr.GlobalData) {
	t.Helper()
	g := cldr.NewSeedGlobalData()
	return cldr.NewStore(cldr.NewSeedSource(), g), g
}

func TestParseISO(t *testing.T) {
	c, err := ParseISO("usd")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "USD" {
		t.Errorf("String() = %q, want USD", c.String())
	}
	if _, err := ParseISO("US"); err == nil {
		t.Error("expected error for short code")
	}
}

func TestFormatAmountUSD(t *testing.T) {
	store, global := testStore(t)
	d, _ := pattern.ParseDecimalString("19.99")
	got, err := FormatAmount(store, global, "en_US", MustParseISO("USD"), d, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if want := "$19.99"; got != want {
		t.Errorf("FormatAmount = %q, want %q", got, want)
	}
}

func TestFormatAmountJPYNoFraction(t *testing.T) {
	store, global := testStore(t)
	d, _ := pattern.ParseDecimalString("1500.4")
	got, err := FormatAmount(store, global, "en_US", MustParseISO("JPY"), d, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if want := "¥1,500"; got != want {
		t.Errorf("FormatAmount = %q, want %q", got, want)
	}
}

func TestDisplayNamePluralSelection(t *testing.T) {
	store, global := testStore(t)
	rub := MustParseISO("RUB")
	one, err := DisplayName(store, global, "ru", rub, plural.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := "российский рубль"; one != want {
		t.Errorf("DisplayName(1) = %q, want %q", one, want)
	}
	few, err := DisplayName(store, global, "ru", rub, plural.FromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := "российских рубля"; few != want {
		t.Errorf("DisplayName(2) = %q, want %q", few, want)
	}
}

func TestDisplayNameFallsBackToCode(t *testing.T) {
	store, global := testStore(t)
	xau := MustParseISO("XAU")
	got, err := DisplayName(store, global, "en", xau, plural.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := "XAU"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
}
