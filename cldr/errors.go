// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

import "fmt"

// UnknownLocaleError is returned when a locale has no data file and no
// fallback (spec §7 UnknownLocale).
type UnknownLocaleError struct {
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("cldr: unknown locale %q", e.Locale)
}

// MalformedDataError is returned for an alias cycle or a truncated
// compiled file (spec §7 MalformedData); it is always fatal to the load.
type MalformedDataError struct {
	Locale string
	Reason string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("cldr: malformed data for %q: %s", e.Locale, e.Reason)
}
