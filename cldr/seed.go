// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

import "sort"

// EmbeddedSource is a Source backed by an in-memory map of locale
// dictionaries. It is the default Source used when no compiled CLDR
// archive (the output of cmd/cldrimport) is supplied, and is what the
// rest of this module's tests run against. A production deployment
// supplies a Source backed by the importer's compiled blobs instead; the
// Store, merge and alias-resolution logic is identical either way.
type EmbeddedSource struct {
	locales map[string]Dict
}

// NewEmbeddedSource returns a Source wrapping the given locale dictionaries
// (keyed by canonical locale id, e.g. "root", "en", "en_US").
func NewEmbeddedSource(locales map[string]Dict) *EmbeddedSource {
	return &EmbeddedSource{locales: locales}
}

func (s *EmbeddedSource) LoadLocale(id string) (Dict, bool, error) {
	if id == "" || id == "und" {
		id = "root"
	}
	d, ok := s.locales[id]
	return d, ok, nil
}

func (s *EmbeddedSource) ListIdentifiers() []string {
	out := make([]string, 0, len(s.locales))
	for k := range s.locales {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// strSeq builds a Seq of Str values concisely; exists purely to keep the
// seed data readable.
func strSeq(ss ...string) Seq {
	out := make(Seq, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}
