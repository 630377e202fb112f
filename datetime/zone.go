// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "time"

// Zone is the binding this package uses to resolve an instant's offset
// and display name, in place of the standard library's *time.Location
// (Redesign, spec §4.5 Open Questions: "the CLDR metazone/alias tables
// this component must consult have no equivalent in time.Location, so a
// caller-suppliable interface replaces it"). StdZone adapts an ordinary
// *time.Location for callers with no metazone data of their own.
type Zone interface {
	// Name returns the zone's display name for t (an IANA id, a
	// metazone's generic name, or an abbreviation, depending on what the
	// Zone implementation knows).
	Name(t time.Time) string
	// Offset returns the signed offset from UTC, in seconds, at t.
	Offset(t time.Time) int
}

// StdZone adapts a *time.Location to the Zone interface.
type StdZone struct {
	Loc *time.Location
}

func (z StdZone) Name(t time.Time) string {
	name, _ := t.In(z.Loc).Zone()
	return name
}

func (z StdZone) Offset(t time.Time) int {
	_, offset := t.In(z.Loc).Zone()
	return offset
}

// UTC is the Zone for Coordinated Universal Time.
var UTC Zone = StdZone{Loc: time.UTC}

// MetaZone is a Zone backed by a cldr.GlobalData metazone period table:
// it reports the metazone's generic display name for whatever period
// covers t, falling back to the wrapped Zone's own name when no metazone
// period applies (spec §4.6 GLOSSARY "Metazone").
type MetaZone struct {
	Zone
	Periods []MetaZonePeriod
}

// MetaZonePeriod is one [From, To) window during which Name applies;
// From/To are "YYYY-MM-DD" or "" for unbounded.
type MetaZonePeriod struct {
	Name     string
	From, To string
}

func (z MetaZone) displayName(t time.Time) (string, bool) {
	d := t.Format("2006-01-02")
	for _, p := range z.Periods {
		if p.From != "" && d < p.From {
			continue
		}
		if p.To != "" && d >= p.To {
			continue
		}
		return p.Name, true
	}
	return "", false
}

func (z MetaZone) Name(t time.Time) string {
	if name, ok := z.displayName(t); ok {
		return name
	}
	return z.Zone.Name(t)
}
