// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list implements CLDR list composition (spec §4.6, C6): joining
// a sequence of strings ("red", "green", "blue") into a single localized
// string ("red, green, and blue") using a locale's start/middle/end/two
// patterns.
package list

import (
	"errors"
	"strings"

	"github.com/gocldr/gocldr/cldr"
)

// Type selects which list pattern set to use: And for a conjunctive list
// ("A, B, and C"), Or for a disjunctive list ("A, B, or C"), Unit for a
// list of unit quantities, which CLDR renders without a conjunction word
// ("A, B, C").
type Type string

const (
	And  Type = "standard"
	Or   Type = "or"
	Unit Type = "unit"
)

// ErrNoPattern is returned when a locale (and its root ancestor) has no
// listPatterns entry for the requested Type.
var ErrNoPattern = errors.New("list: no list pattern for this type")

// Format joins items according to locale's listPatterns[typ] (spec §4.6
// "list composition"): zero items yields "", one item is returned
// unchanged, two items use the "two" pattern, and three or more use
// "start" for the first join, "middle" for each inner join, and "end" for
// the last join, CLDR's standard recursive list-pattern algorithm.
func Format(store *cldr.Store, locale string, typ Type, items []string) (string, error) {
	switch len(items) {
	case 0:
		return "", nil
	case 1:
		return items[0], nil
	}

	d, err := store.Load(locale)
	if err != nil {
		return "", err
	}
	p := d.DictAt("listPatterns", string(typ))
	if p == nil {
		return "", ErrNoPattern
	}

	if len(items) == 2 {
		return joinPair(p.String("two"), items[0], items[1]), nil
	}

	result := joinPair(p.String("start"), items[0], items[1])
	for i := 2; i < len(items)-1; i++ {
		result = joinPair(p.String("middle"), result, items[i])
	}
	result = joinPair(p.String("end"), result, items[len(items)-1])
	return result, nil
}

func joinPair(tmpl, a, b string) string {
	if tmpl == "" {
		return a + ", " + b
	}
	out := strings.Replace(tmpl, "{0}", a, 1)
	out = strings.Replace(out, "{1}", b, 1)
	return out
}
