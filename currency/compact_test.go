// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package currency

import (
	"testing"

	"github.com/gocldr/gocldr/number"
	"github.com/gocldr/gocldr/number/pattern"
)

func TestFormatAmountCompactShort(t *testing.T) {
	store, global := testStore(t)
	d, _ := pattern.ParseDecimalString("1500")
	got, err := FormatAmountCompact(store, global, "en_US", MustParseISO("USD"), d, number.CompactShort)
	if err != nil {
		t.Fatal(err)
	}
	if want := "$1.5K"; got != want {
		t.Errorf("FormatAmountCompact = %q, want %q", got, want)
	}
}

func TestFormatAmountOptsGatesCompact(t *testing.T) {
	store, global := testStore(t)
	d, _ := pattern.ParseDecimalString("19.99")
	usd := MustParseISO("USD")

	plain, err := FormatAmountOpts(store, global, "en_US", usd, d, Standard, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "$19.99"; plain != want {
		t.Errorf("FormatAmountOpts(plain) = %q, want %q", plain, want)
	}

	amount, _ := pattern.ParseDecimalString("2000000")
	compact, err := FormatAmountOpts(store, global, "en_US", usd, amount, Standard, Options{Compact: true, CompactLength: number.CompactShort})
	if err != nil {
		t.Fatal(err)
	}
	if want := "$2M"; compact != want {
		t.Errorf("FormatAmountOpts(compact) = %q, want %q", compact, want)
	}
}
