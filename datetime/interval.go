// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"time"

	"github.com/gocldr/gocldr/datetime/pattern"
)

// FormatInterval renders the [start, end) span at style. When start and
// end fall on different calendar days both are rendered with the
// locale's date pattern, otherwise both are rendered with its time
// pattern; the two strings are joined with " – ", or the single string is
// returned when both render identically. The locale's intervalFormats
// table is not consulted, and fields common to start and end are
// repeated in both halves rather than written once.
func (f *Formatter) FormatInterval(start, end time.Time, zone Zone, style Style) (string, error) {
	startDT := Components(start, zone)
	endDT := Components(end, zone)
	names, err := f.Names()
	if err != nil {
		return "", err
	}
	datePat, err := f.patternString("date", style)
	if err != nil {
		return "", err
	}
	timePat, err := f.patternString("time", style)
	if err != nil {
		return "", err
	}
	toks := pattern.Tokenize(greatestDifferingPattern(startDT, endDT, datePat, timePat))
	startStr := pattern.Render(toks, startDT, names)
	endStr := pattern.Render(toks, endDT, names)
	if startStr == endStr {
		return startStr, nil
	}
	return startStr + " – " + endStr, nil
}

// greatestDifferingPattern picks the date pattern if start/end fall on
// different calendar days, else the time pattern (spec §4.5's
// greatest-differing-field rule, simplified to a date/time binary choice
// since the seed data's patterns do not carry per-field interval
// skeletons).
func greatestDifferingPattern(start, end pattern.Components, datePat, timePat string) string {
	if start.Year != end.Year || start.Month != end.Month || start.Day != end.Day {
		return datePat
	}
	return timePat
}
