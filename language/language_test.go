// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import "testing"

func TestParentChain(t *testing.T) {
	tag := MustParse("zh_Hant_TW")
	want := []string{"zh_Hant_TW", "zh_Hant", "zh", "und"}
	var got []string
	for cur := tag; ; {
		got = append(got, cur.String())
		if cur.IsRoot() {
			break
		}
		cur = cur.Parent()
	}
	if len(got) != len(want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct{ in, want string }{
		{"zh_TW", "zh_Hant_TW"},
		{"zh", "zh_Hans_CN"},
		{"en", "en_Latn_US"},
		{"no", "nb_Latn_NO"},
	}
	for _, tc := range tests {
		tag := MustParse(tc.in)
		got, err := tag.Expand()
		if err != nil {
			t.Errorf("Expand(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Expand(%q) = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestNegotiate(t *testing.T) {
	available := []Tag{MustParse("en"), MustParse("en_US"), MustParse("de_DE"), MustParse("fr")}
	tests := []struct {
		preferred []string
		want      string
		ok        bool
	}{
		{[]string{"en_US"}, "en_US", true},
		{[]string{"en_GB"}, "en", true},
		{[]string{"no"}, "", false},
		{[]string{"pt", "de"}, "de_DE", true},
	}
	for _, tc := range tests {
		pref := make([]Tag, len(tc.preferred))
		for i, s := range tc.preferred {
			pref[i] = MustParse(s)
		}
		got, ok := Negotiate(pref, available)
		if ok != tc.ok {
			t.Errorf("Negotiate(%v) ok = %v, want %v", tc.preferred, ok, tc.ok)
			continue
		}
		if ok && got.String() != tc.want {
			t.Errorf("Negotiate(%v) = %q, want %q", tc.preferred, got.String(), tc.want)
		}
	}
}

func TestNegotiateNoNb(t *testing.T) {
	available := []Tag{MustParse("nb")}
	got, ok := Negotiate([]Tag{MustParse("no")}, available)
	if !ok || got.String() != "nb" {
		t.Errorf("Negotiate(no) = %q, %v, want nb, true", got.String(), ok)
	}
}
