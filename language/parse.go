// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"strings"
)

// ErrInvalidIdentifier is returned by Parse when the language subtag is not
// 2-3 alphabetic characters or another component fails its shape
// constraint (spec §7 InvalidIdentifier).
var ErrInvalidIdentifier = errors.New("language: invalid identifier")

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlphaNum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func toLower(s string) string { return strings.ToLower(s) }

func toTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func toUpper(s string) string { return strings.ToUpper(s) }

// Parse parses a locale identifier of the form
//
//	language[_script][_territory][_variant][.charset][@modifier]
//
// accepting both '_' and '-' as subtag separators. Per spec §4.1, a
// trailing ".charset@modifier" suffix is stripped down to just the
// modifier (the charset portion, e.g. ".UTF-8", carries no locale-data
// meaning for this library and is discarded).
func Parse(id string) (Tag, error) {
	return ParseSep(id, '_')
}

// ParseSep is Parse with an explicit expected separator. The separator
// argument is informational only: both '-' and '_' are always accepted.
func ParseSep(id string, sep byte) (Tag, error) {
	var modifier string
	if i := strings.IndexByte(id, '@'); i >= 0 {
		modifier = id[i+1:]
		id = id[:i]
	}
	if i := strings.IndexByte(id, '.'); i >= 0 {
		id = id[:i]
	}
	if id == "" || id == "root" || id == "und" {
		return Tag{modifier: modifier}, nil
	}

	norm := strings.Map(func(r rune) rune {
		if r == '-' {
			return '_'
		}
		return r
	}, id)
	parts := strings.FieldsFunc(norm, func(r rune) bool { return r == '_' })

	var t Tag
	t.modifier = modifier

	if len(parts) == 0 || parts[0] == "" {
		return Tag{}, ErrInvalidIdentifier
	}
	lang := parts[0]
	if n := len(lang); n < 2 || n > 3 || !isAlphaAll(lang) {
		return Tag{}, ErrInvalidIdentifier
	}
	t.lang = toLower(lang)
	parts = parts[1:]

	if len(parts) > 0 && len(parts[0]) == 4 && isAlphaAll(parts[0]) {
		t.script = toTitle(parts[0])
		parts = parts[1:]
	}

	if len(parts) > 0 && isRegion(parts[0]) {
		t.region = normalizeRegion(parts[0])
		parts = parts[1:]
	}

	if len(parts) > 0 {
		v := parts[0]
		if len(v) < 4 || len(v) > 8 || !isAlphaNum(v) {
			return Tag{}, ErrInvalidIdentifier
		}
		t.variant = toUpper(v)
		parts = parts[1:]
	}

	if len(parts) > 0 {
		return Tag{}, ErrInvalidIdentifier
	}
	return t, nil
}

func isAlphaAll(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

func isDigitAll(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isRegion reports whether s has the shape of a territory subtag: a
// 2-letter region or a 3-digit UN M.49 code.
func isRegion(s string) bool {
	if len(s) == 2 {
		return isAlphaAll(s)
	}
	if len(s) == 3 {
		return isDigitAll(s)
	}
	return false
}

func normalizeRegion(s string) string {
	if isDigitAll(s) {
		return s
	}
	return toUpper(s)
}

// MustParse is like Parse but panics on error. It is intended for use in
// program initialization.
func MustParse(id string) Tag {
	t, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return t
}
