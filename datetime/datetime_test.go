// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"testing"
	"time"

	"github.com/gocldr/gocldr/cldr"
)

func testStore(t *testing.T) *cldr.Store {
	t.Helper()
	return cldr.NewStore(cldr.NewSeedSource(), cldr.NewSeedGlobalData())
}

func TestFormatDateEnglish(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	got, err := f.FormatDate(ts, UTC, Long)
	if err != nil {
		t.Fatal(err)
	}
	if want := "March 5, 2026"; got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
}

func TestFormatTimeEnglish(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	got, err := f.FormatTime(ts, UTC, Short)
	if err != nil {
		t.Fatal(err)
	}
	if want := "2:30 PM"; got != want {
		t.Errorf("FormatTime = %q, want %q", got, want)
	}
}

func TestFormatDateTimeGlue(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	got, err := f.FormatDateTime(ts, UTC, Full)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Thursday, March 5, 2026 at 2:30:00 PM UTC"; got != want {
		t.Errorf("FormatDateTime = %q, want %q", got, want)
	}
}

func TestFormatDateGerman(t *testing.T) {
	f := NewFormatter(testStore(t), "de_DE")
	ts := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	got, err := f.FormatDate(ts, UTC, Long)
	if err != nil {
		t.Fatal(err)
	}
	if want := "5. März 2026"; got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
}

func TestFormatSkeletonFallsBackToExact(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	got, err := f.FormatSkeleton(ts, UTC, "yMMMd")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Mar 5, 2026"; got != want {
		t.Errorf("FormatSkeleton = %q, want %q", got, want)
	}
}

func TestFormatIntervalSameDay(t *testing.T) {
	f := NewFormatter(testStore(t), "en_US")
	start := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 5, 17, 0, 0, 0, time.UTC)
	got, err := f.FormatInterval(start, end, UTC, Short)
	if err != nil {
		t.Fatal(err)
	}
	if want := "9:00 AM – 5:00 PM"; got != want {
		t.Errorf("FormatInterval = %q, want %q", got, want)
	}
}
