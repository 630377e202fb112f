// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package language implements CLDR-style locale identifiers: parsing,
// canonicalization, likely-subtag expansion and negotiation.
//
// A Tag records the five components a CLDR locale id can carry: language,
// script, territory, variant and a trailing modifier. It is loosely based
// on BCP 47 but scoped to what CLDR locale data keys on rather than the
// full generality of RFC 5646: language is a required 2-3 letter tag,
// script a 4-letter tag, territory a 2-letter region or 3-digit UN code,
// variant an uppercase alphanumeric tag. The canonical string form joins
// non-empty components with '_', e.g. "zh_Hant_TW".
//
// Tag values need not be fully specified: Expand applies the CLDR
// likely-subtags table to fill in a script and territory for an
// under-specified tag such as "zh_TW".
//
// Selecting a language-specific service typically means calling Negotiate
// with the user's preferred tags and the tags an application supports, then
// using the returned Tag to look up locale-specific data through the cldr
// package's Store.
package language
