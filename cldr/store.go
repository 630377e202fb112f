// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cldr

import "sync"

// Source supplies the raw, single-locale data a Store merges into the
// effective per-locale dictionary. A compiled-file-backed implementation
// lives in cmd/cldrimport's output; EmbeddedSource (seed.go) is the
// in-memory implementation used by default and by tests.
type Source interface {
	// LoadLocale returns the raw (unmerged, un-alias-resolved) dictionary
	// for id, or ok=false if no data file exists for it.
	LoadLocale(id string) (dict Dict, ok bool, err error)
	// ListIdentifiers enumerates every locale id the source can load.
	ListIdentifiers() []string
}

// entry is the per-locale cache slot. once guards first-time computation;
// after once.Do returns, dict/err are immutable and may be read by any
// number of goroutines without further synchronization (spec §5 "steady-
// state reads require no synchronization because data is immutable").
type entry struct {
	once sync.Once
	dict Dict
	err  error
}

// Store is the process-wide locale-data cache (spec §4.2 C2). It loads
// compiled per-locale files on first use, computes the parent chain via
// Global.DefaultParent, loads each ancestor, and publishes the deep-merged
// result. Aliases stay unresolved in the published Dict; Lookup follows
// them at lookup time.
//
// A Store must be constructed with NewStore and is safe for concurrent
// use. First-time loads for a given id are serialized via a per-id
// sync.Once; because each id has its own Once, a load that recursively
// loads its parent under the same call does not deadlock (spec §4.2
// "guarded by a reentrant lock... required because loading a child
// triggers loading its parent on the same thread").
type Store struct {
	source Source
	Global *GlobalData

	mu      sync.Mutex
	entries map[string]*entry
}

// NewStore returns a Store reading locale dictionaries from source and
// cross-locale tables from global.
func NewStore(source Source, global *GlobalData) *Store {
	return &Store{
		source:  source,
		Global:  global,
		entries: map[string]*entry{},
	}
}

func (s *Store) entryFor(id string) *entry {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		e = &entry{}
		s.entries[id] = e
	}
	s.mu.Unlock()
	return e
}

// Exists reports whether a data file is present for id, without loading or
// merging it.
func (s *Store) Exists(id string) bool {
	_, ok, _ := s.source.LoadLocale(id)
	return ok
}

// ListIdentifiers enumerates the compiled locale ids the backing Source
// can load.
func (s *Store) ListIdentifiers() []string {
	return s.source.ListIdentifiers()
}

// Load returns the merged, read-only dictionary for id: spec §4.2's
// contract of loading the compiled file, computing the parent chain,
// recursively loading each parent, and deep-merging child over parent.
// Aliases in the result are left unresolved at rest; use Lookup to follow
// them transparently.
func (s *Store) Load(id string) (Dict, error) {
	e := s.entryFor(id)
	e.once.Do(func() {
		e.dict, e.err = s.load(id)
	})
	return e.dict, e.err
}

func (s *Store) load(id string) (Dict, error) {
	chain, err := s.parentChain(id)
	if err != nil {
		return nil, err
	}
	merged := make([]Dict, 0, len(chain))
	for _, ancestor := range chain {
		d, ok, err := s.source.LoadLocale(ancestor)
		if err != nil {
			return nil, &MalformedDataError{Locale: ancestor, Reason: err.Error()}
		}
		if !ok {
			continue
		}
		merged = append(merged, d)
	}
	if len(merged) == 0 {
		return nil, &UnknownLocaleError{Locale: id}
	}
	return MergeChain(merged), nil
}

// parentChain returns the chain of locale ids from root to id (root
// first), following Global.DefaultParent and guarding against a
// pathological cycle.
func (s *Store) parentChain(id string) ([]string, error) {
	var chain []string
	seen := map[string]bool{}
	cur := id
	for {
		if seen[cur] {
			return nil, &MalformedDataError{Locale: id, Reason: "parent-chain cycle"}
		}
		seen[cur] = true
		chain = append([]string{cur}, chain...)
		if cur == "" || cur == "und" {
			break
		}
		cur = s.Global.DefaultParent(cur)
	}
	return chain, nil
}

// Lookup resolves path in id's merged dictionary, transparently following
// any Alias encountered (spec §4.2 resolve_alias).
func (s *Store) Lookup(id string, path ...string) (Value, error) {
	d, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	return ResolveAlias(id, d, path)
}
