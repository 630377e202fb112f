// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"sort"
	"strings"
	"time"

	"github.com/gocldr/gocldr/datetime/pattern"
)

// fieldOrder is the canonical field ordering CLDR's availableFormats
// skeletons are built in, used when no exact match exists and a pattern
// must be synthesized directly from the requested fields.
var fieldOrder = []byte{'G', 'y', 'Y', 'Q', 'q', 'M', 'L', 'w', 'W', 'd', 'D', 'E', 'e', 'c', 'a', 'h', 'H', 'm', 's', 'S', 'v', 'z'}

// FormatSkeleton renders t under the best pattern f's locale has for the
// requested skeleton (e.g. "yMMMd", "Hm") — an unordered multiset of
// field letters with no literal text (spec §4.5 "skeleton best-match").
// An exact match in the calendar's availableFormats is used verbatim;
// otherwise a pattern is synthesized by joining the requested fields in
// canonical order with ", " between date and time groups, which covers
// the common case (skeletons CLDR itself does not publish a
// availableFormats entry for) without attempting CLDR's full
// append-item/missing-field distance metric.
func (f *Formatter) FormatSkeleton(t time.Time, zone Zone, skeleton string) (string, error) {
	cal, err := f.calDict()
	if err != nil {
		return "", err
	}
	names, err := f.Names()
	if err != nil {
		return "", err
	}
	avail := cal.DictAt("availableFormats")
	if avail != nil {
		if pat := avail.String(skeleton); pat != "" {
			return pattern.Render(pattern.Tokenize(pat), Components(t, zone), names), nil
		}
	}
	pat := synthesizePattern(skeleton)
	return pattern.Render(pattern.Tokenize(pat), Components(t, zone), names), nil
}

// synthesizePattern builds a plain field-letter pattern from an unordered
// skeleton string by grouping consecutive equal letters and sorting
// groups into fieldOrder, separating date fields from time fields with a
// comma-space the way CLDR's generated availableFormats typically do.
func synthesizePattern(skeleton string) string {
	counts := map[byte]int{}
	for i := 0; i < len(skeleton); i++ {
		counts[skeleton[i]]++
	}
	priority := map[byte]int{}
	for i, c := range fieldOrder {
		priority[c] = i
	}
	var letters []byte
	for c := range counts {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return priority[letters[i]] < priority[letters[j]] })

	var b strings.Builder
	lastWasTime := false
	for i, c := range letters {
		isTime := strings.IndexByte("ahHkKms", c) >= 0
		if i > 0 {
			if isTime && !lastWasTime {
				b.WriteString(", ")
			}
		}
		b.WriteString(strings.Repeat(string(c), counts[c]))
		lastWasTime = isTime
	}
	return b.String()
}
