// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"testing"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/number/pattern"
)

func TestFormatCompactShort(t *testing.T) {
	global := cldr.NewSeedGlobalData()
	store := cldr.NewStore(cldr.NewSeedSource(), global)
	f := NewFormatter(store, "en_US")

	cases := map[string]string{
		"1500":    "1.5K",
		"12345":   "12K",
		"2000000": "2M",
	}
	for in, want := range cases {
		d, err := pattern.ParseDecimalString(in)
		if err != nil {
			t.Fatalf("ParseDecimalString(%q): %v", in, err)
		}
		got, err := f.FormatCompact(d, CompactShort, global, Options{})
		if err != nil {
			t.Fatalf("FormatCompact(%s): %v", in, err)
		}
		if got != want {
			t.Errorf("FormatCompact(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCompactLong(t *testing.T) {
	global := cldr.NewSeedGlobalData()
	store := cldr.NewStore(cldr.NewSeedSource(), global)
	f := NewFormatter(store, "en_US")

	d, _ := pattern.ParseDecimalString("1000")
	got, err := f.FormatCompact(d, CompactLong, global, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 thousand"; got != want {
		t.Errorf("FormatCompact(1000, long) = %q, want %q", got, want)
	}
}

func TestFormatCompactBelowSmallestBucketFallsBackToPlain(t *testing.T) {
	global := cldr.NewSeedGlobalData()
	store := cldr.NewStore(cldr.NewSeedSource(), global)
	f := NewFormatter(store, "en_US")

	d, _ := pattern.ParseDecimalString("42")
	got, err := f.FormatCompact(d, CompactShort, global, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "42"; got != want {
		t.Errorf("FormatCompact(42) = %q, want %q", got, want)
	}
}
