// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"
	"strings"
	"time"
)

// Names holds the locale-specific field names a pattern's letter runs are
// rendered against (spec §4.5 "field symbol table"). Narrow forms fall
// back to the first rune of the wide form when a locale supplies no
// narrow data, which is what CLDR itself recommends as a default.
type Names struct {
	MonthsWide, MonthsAbbrev []string // len 12
	DaysWide, DaysAbbrev     []string // len 7, Sunday-first
	DayPeriodAM, DayPeriodPM string
	ErasWide, ErasAbbrev     []string // len 2: BC/CE, AD/CE
}

// Components is the calendar-field projection of an instant that Render
// draws from; datetime.Formatter is responsible for deriving it from a
// time.Time and a Zone (spec §4.5's Redesign: the zone binding is
// injected by the caller rather than fixed to time.Location).
type Components struct {
	Year, Month, Day           int // Month is 1-12
	Hour, Minute, Second, Nano int // Hour is 0-23
	Weekday                    int // 0=Sunday .. 6=Saturday
	ZoneOffsetSeconds          int
	ZoneName                   string // e.g. "America/New_York" or an abbreviation
	Era                        int    // 0=BCE, 1=CE
}

// Render renders tokens against c using n for field names.
func Render(tokens []Token, c Components, n Names) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Literal != "" {
			b.WriteString(t.Literal)
			continue
		}
		renderField(&b, t, c, n)
	}
	return b.String()
}

func renderField(b *strings.Builder, t Token, c Components, n Names) {
	switch t.Field {
	case FieldEra:
		b.WriteString(pick(n.ErasAbbrev, n.ErasWide, t.Count, c.Era))
	case FieldYear, FieldWeekYear:
		if t.Count == 2 {
			fmt.Fprintf(b, "%02d", c.Year%100)
		} else {
			fmt.Fprintf(b, "%0*d", t.Count, c.Year)
		}
	case FieldMonth, FieldMonthStand:
		renderMonth(b, t.Count, c.Month, n)
	case FieldDay:
		fmt.Fprintf(b, "%0*d", t.Count, c.Day)
	case FieldDayOfYear:
		yday := time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, time.UTC).YearDay()
		fmt.Fprintf(b, "%0*d", t.Count, yday)
	case FieldWeekday, FieldWeekdayStd, FieldWeekdayLoc:
		renderWeekday(b, t.Field, t.Count, c.Weekday, n)
	case FieldDayPeriod:
		if c.Hour < 12 {
			b.WriteString(n.DayPeriodAM)
		} else {
			b.WriteString(n.DayPeriodPM)
		}
	case FieldHour12:
		h := c.Hour % 12
		if h == 0 {
			h = 12
		}
		fmt.Fprintf(b, "%0*d", t.Count, h)
	case FieldHour0:
		fmt.Fprintf(b, "%0*d", t.Count, c.Hour%12)
	case FieldHour24:
		fmt.Fprintf(b, "%0*d", t.Count, c.Hour)
	case FieldHour1:
		h := c.Hour
		if h == 0 {
			h = 24
		}
		fmt.Fprintf(b, "%0*d", t.Count, h)
	case FieldMinute:
		fmt.Fprintf(b, "%0*d", t.Count, c.Minute)
	case FieldSecond:
		fmt.Fprintf(b, "%0*d", t.Count, c.Second)
	case FieldFracSecond:
		s := fmt.Sprintf("%09d", c.Nano)
		if t.Count < len(s) {
			s = s[:t.Count]
		} else {
			s = s + strings.Repeat("0", t.Count-len(s))
		}
		b.WriteString(s)
	case FieldZoneShort, FieldZoneGeneric, FieldZoneID:
		if c.ZoneName != "" {
			b.WriteString(c.ZoneName)
		} else {
			writeOffset(b, c.ZoneOffsetSeconds, true)
		}
	case FieldZoneRFC:
		writeOffset(b, c.ZoneOffsetSeconds, false)
	default:
		// Unsupported field letters are rendered as their own run so a
		// malformed or not-yet-implemented pattern is visible rather than
		// silently dropped.
		b.WriteString(strings.Repeat(string(rune(t.Field)), t.Count))
	}
}

func pick(abbrev, wide []string, count, idx int) string {
	if idx < 0 {
		return ""
	}
	switch {
	case count >= 4 && idx < len(wide):
		return wide[idx]
	case idx < len(abbrev):
		return abbrev[idx]
	case idx < len(wide):
		return wide[idx]
	}
	return ""
}

func renderMonth(b *strings.Builder, count, month int, n Names) {
	idx := month - 1
	switch {
	case count <= 2:
		fmt.Fprintf(b, "%0*d", count, month)
	case count == 3:
		if idx >= 0 && idx < len(n.MonthsAbbrev) {
			b.WriteString(n.MonthsAbbrev[idx])
		}
	case count == 4:
		if idx >= 0 && idx < len(n.MonthsWide) {
			b.WriteString(n.MonthsWide[idx])
		}
	default: // 5 = narrow, approximated as the wide name's first rune
		if idx >= 0 && idx < len(n.MonthsWide) && n.MonthsWide[idx] != "" {
			b.WriteRune([]rune(n.MonthsWide[idx])[0])
		}
	}
}

func renderWeekday(b *strings.Builder, f Field, count, weekday int, n Names) {
	if weekday < 0 {
		return
	}
	switch {
	case f != FieldWeekday && count <= 2:
		// 'e'/'c' with 1-2 letters renders the weekday as a number
		// counted from Sunday (Sunday=1 .. Saturday=7); the locale's
		// first day of the week is not applied.
		fmt.Fprintf(b, "%0*d", count, weekday+1)
	case count == 4:
		if weekday < len(n.DaysWide) {
			b.WriteString(n.DaysWide[weekday])
		}
	case count >= 5:
		if weekday < len(n.DaysWide) && n.DaysWide[weekday] != "" {
			b.WriteRune([]rune(n.DaysWide[weekday])[0])
		}
	default:
		if weekday < len(n.DaysAbbrev) {
			b.WriteString(n.DaysAbbrev[weekday])
		}
	}
}

func writeOffset(b *strings.Builder, offsetSeconds int, colon bool) {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	h := offsetSeconds / 3600
	m := (offsetSeconds % 3600) / 60
	if colon {
		fmt.Fprintf(b, "GMT%s%02d:%02d", sign, h, m)
	} else {
		fmt.Fprintf(b, "%s%02d%02d", sign, h, m)
	}
}
