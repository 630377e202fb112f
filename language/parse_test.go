// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"en", "en", false},
		{"en_US", "en_US", false},
		{"en-US", "en_US", false},
		{"zh_Hant_TW", "zh_Hant_TW", false},
		{"zh_hant_tw", "zh_Hant_TW", false},
		{"de_DE", "de_DE", false},
		{"ca_ES_VALENCIA", "ca_ES_VALENCIA", false},
		{"root", "und", false},
		{"und", "und", false},
		{"de_DE.UTF-8", "de_DE", false},
		{"de_DE@euro", "de_DE@euro", false},
		{"1", "", true},
		{"english", "", true},
		{"e", "", true},
		{"en_123_EXTRA_BOGUS", "", true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got.String(), tc.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"iw", "he"},
		{"in_ID", "id_ID"},
		{"mo", "ro"},
		{"sh", "sr"},
		{"en_US", "en_US"},
	}
	for _, tc := range tests {
		tag, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		got := tag.Canonicalize(Default).String()
		if got != tc.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
