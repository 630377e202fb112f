// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cldr implements the locale-data model and inheritance resolver
// (spec §3, §4.2): a tagged-union dictionary tree per locale, a process-wide
// Store that loads compiled per-locale data and merges it with its parent
// chain, and the cross-locale GlobalData tables (likely subtags, zone
// aliases, currency fractions, territory-language associations, parent
// exceptions) consumed by the higher-level formatters.
//
// Values are stored once and never mutated after the owning Store
// publishes them (spec §5): a Dict returned by Store.Load is read-only and
// safe for concurrent use by many goroutines without further
// synchronization.
package cldr
