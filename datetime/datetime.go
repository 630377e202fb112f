// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime is the public, locale-aware face of the date/time
// pattern interpreter (spec §4.5, C5): it resolves a locale's calendar
// field names and pattern strings out of a cldr.Store, derives
// pattern.Components from a time.Time plus a Zone, and drives package
// datetime/pattern's Render against them.
package datetime

import (
	"errors"
	"time"

	"github.com/gocldr/gocldr/cldr"
	"github.com/gocldr/gocldr/datetime/pattern"
)

// Style selects one of a locale's four standard length variants (spec
// §4.5 "full, long, medium, short").
type Style int

const (
	Full Style = iota
	Long
	Medium
	Short
)

var styleKey = map[Style]string{Full: "full", Long: "long", Medium: "medium", Short: "short"}

// ErrNoPattern is returned when a locale/calendar has no pattern for the
// requested Style.
var ErrNoPattern = errors.New("datetime: locale has no pattern for this style")

// Formatter formats date, time and combined date-time values for one
// locale and calendar, sourced from a cldr.Store.
type Formatter struct {
	store    *cldr.Store
	Locale   string
	Calendar string // e.g. "gregorian"; defaults to "gregorian" if empty
}

// NewFormatter returns a Formatter for locale using the Gregorian
// calendar, backed by store.
func NewFormatter(store *cldr.Store, locale string) *Formatter {
	return &Formatter{store: store, Locale: locale, Calendar: "gregorian"}
}

func (f *Formatter) calendar() string {
	if f.Calendar != "" {
		return f.Calendar
	}
	return "gregorian"
}

func (f *Formatter) calDict() (cldr.Dict, error) {
	d, err := f.store.Load(f.Locale)
	if err != nil {
		return nil, err
	}
	return d.DictAt("dates", "calendars", f.calendar()), nil
}

// Names resolves f's locale's month/day/era/day-period names.
func (f *Formatter) Names() (pattern.Names, error) {
	cal, err := f.calDict()
	if err != nil {
		return pattern.Names{}, err
	}
	toStrings := func(seq cldr.Seq) []string {
		out := make([]string, len(seq))
		for i, v := range seq {
			if s, ok := v.(cldr.Str); ok {
				out[i] = string(s)
			}
		}
		return out
	}
	n := pattern.Names{
		MonthsWide:   toStrings(cal.SeqAt("months", "format", "wide")),
		MonthsAbbrev: toStrings(cal.SeqAt("months", "format", "abbreviated")),
		DaysWide:     toStrings(cal.SeqAt("days", "format", "wide")),
		DaysAbbrev:   toStrings(cal.SeqAt("days", "format", "abbreviated")),
		ErasWide:     toStrings(cal.SeqAt("eras", "wide")),
		ErasAbbrev:   toStrings(cal.SeqAt("eras", "abbreviated")),
		DayPeriodAM:  cal.String("dayPeriods", "format", "wide", "am"),
		DayPeriodPM:  cal.String("dayPeriods", "format", "wide", "pm"),
	}
	if n.DayPeriodAM == "" {
		n.DayPeriodAM = "AM"
	}
	if n.DayPeriodPM == "" {
		n.DayPeriodPM = "PM"
	}
	return n, nil
}

// patternString looks up one of the calendar's date, time or combined
// date-time patterns (spec §4.5 "patterns: {full,long,medium,short} x
// {date,time}, plus dateTimePatterns combining the two").
func (f *Formatter) patternString(kind string, style Style) (string, error) {
	cal, err := f.calDict()
	if err != nil {
		return "", err
	}
	group := "patterns"
	switch kind {
	case "time":
		group = "timePatterns"
	case "dateTime":
		group = "dateTimePatterns"
	}
	s := cal.String(group, styleKey[style])
	if s == "" {
		return "", ErrNoPattern
	}
	return s, nil
}

// Components projects t, displayed in zone, into the calendar fields
// Render needs.
func Components(t time.Time, zone Zone) pattern.Components {
	offset := zone.Offset(t)
	local := t.In(time.FixedZone(zone.Name(t), offset))
	era := 1
	if local.Year() <= 0 {
		era = 0
	}
	return pattern.Components{
		Year:              local.Year(),
		Month:             int(local.Month()),
		Day:               local.Day(),
		Hour:              local.Hour(),
		Minute:            local.Minute(),
		Second:            local.Second(),
		Nano:              local.Nanosecond(),
		Weekday:           int(local.Weekday()),
		ZoneOffsetSeconds: offset,
		ZoneName:          zone.Name(t),
		Era:               era,
	}
}

// FormatDate renders t's date-only fields at the given Style.
func (f *Formatter) FormatDate(t time.Time, zone Zone, style Style) (string, error) {
	return f.formatWith("date", t, zone, style)
}

// FormatTime renders t's time-only fields at the given Style.
func (f *Formatter) FormatTime(t time.Time, zone Zone, style Style) (string, error) {
	return f.formatWith("time", t, zone, style)
}

// FormatDateTime renders t's combined date and time at the given Style,
// using the calendar's dateTimePatterns template to splice the date and
// time patterns together (spec §4.5 "{0}"=time, "{1}"=date placeholders).
func (f *Formatter) FormatDateTime(t time.Time, zone Zone, style Style) (string, error) {
	datePat, err := f.patternString("date", style)
	if err != nil {
		return "", err
	}
	timePat, err := f.patternString("time", style)
	if err != nil {
		return "", err
	}
	glue, err := f.patternString("dateTime", style)
	if err != nil {
		return "", err
	}
	names, err := f.Names()
	if err != nil {
		return "", err
	}
	c := Components(t, zone)
	dateStr := pattern.Render(pattern.Tokenize(datePat), c, names)
	timeStr := pattern.Render(pattern.Tokenize(timePat), c, names)
	return spliceGlue(unquoteGlue(glue), dateStr, timeStr), nil
}

// unquoteGlue strips the '...' literal-quoting CLDR dateTimePatterns use
// around fixed words like "'at'", since the {0}/{1} placeholders are not
// field letters and need no further tokenizing.
func unquoteGlue(s string) string {
	var b []byte
	inQuote := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				b = append(b, '\'')
				i++
				continue
			}
			inQuote = !inQuote
			continue
		}
		b = append(b, s[i])
	}
	_ = inQuote
	return string(b)
}

func (f *Formatter) formatWith(kind string, t time.Time, zone Zone, style Style) (string, error) {
	pat, err := f.patternString(kind, style)
	if err != nil {
		return "", err
	}
	names, err := f.Names()
	if err != nil {
		return "", err
	}
	return pattern.Render(pattern.Tokenize(pat), Components(t, zone), names), nil
}

// spliceGlue substitutes "{0}" with timeStr and "{1}" with dateStr in
// glue (CLDR's dateTimePatterns convention).
func spliceGlue(glue, dateStr, timeStr string) string {
	out := make([]byte, 0, len(glue)+len(dateStr)+len(timeStr))
	for i := 0; i < len(glue); i++ {
		if i+2 < len(glue) && glue[i] == '{' && glue[i+2] == '}' {
			switch glue[i+1] {
			case '0':
				out = append(out, timeStr...)
				i += 2
				continue
			case '1':
				out = append(out, dateStr...)
				i += 2
				continue
			}
		}
		out = append(out, glue[i])
	}
	return string(out)
}
